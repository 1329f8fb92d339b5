package mongo

import (
	"context"
	"time"

	"github.com/aussiebroadwan/technotes/internal/notes/domain"
	"github.com/aussiebroadwan/technotes/internal/notes/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type noteDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      primitive.ObjectID `bson:"user"`
	Title     string             `bson:"title"`
	Text      string             `bson:"text"`
	Completed bool               `bson:"completed"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d noteDoc) toDomain() domain.Note {
	return domain.Note{
		ID:        d.ID.Hex(),
		UserID:    d.User.Hex(),
		Title:     d.Title,
		Text:      d.Text,
		Completed: d.Completed,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

type notesRepo struct {
	c *mongo.Collection
}

func (r *notesRepo) ListNotes(ctx context.Context) ([]domain.Note, error) {
	cur, err := r.c.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var docs []noteDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]domain.Note, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *notesRepo) GetNoteByID(ctx context.Context, id string) (domain.Note, error) {
	oid, err := parseID(id)
	if err != nil {
		return domain.Note{}, err
	}

	var d noteDoc
	if err := r.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		return domain.Note{}, mapNotFound(err)
	}
	return d.toDomain(), nil
}

func (r *notesRepo) CreateNote(ctx context.Context, n domain.Note) (domain.Note, error) {
	owner, err := parseID(n.UserID)
	if err != nil {
		return domain.Note{}, err
	}

	ts := now()
	d := noteDoc{
		ID:        primitive.NewObjectID(),
		User:      owner,
		Title:     n.Title,
		Text:      n.Text,
		Completed: n.Completed,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	if _, err := r.c.InsertOne(ctx, d); err != nil {
		return domain.Note{}, mapDuplicate(err)
	}
	return d.toDomain(), nil
}

func (r *notesRepo) UpdateNote(ctx context.Context, n domain.Note) error {
	oid, err := parseID(n.ID)
	if err != nil {
		return store.ErrNotFound
	}
	owner, err := parseID(n.UserID)
	if err != nil {
		return err
	}

	res, err := r.c.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"user":      owner,
		"title":     n.Title,
		"text":      n.Text,
		"completed": n.Completed,
		"updatedAt": now(),
	}})
	if err != nil {
		return mapDuplicate(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *notesRepo) DeleteNote(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return store.ErrNotFound
	}

	res, err := r.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *notesRepo) HasNotesForUser(ctx context.Context, userID string) (bool, error) {
	owner, err := parseID(userID)
	if err != nil {
		// no note can reference an id that is not an ObjectID
		return false, nil
	}

	n, err := r.c.CountDocuments(ctx, bson.M{"user": owner}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
