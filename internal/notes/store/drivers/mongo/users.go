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

type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Password  string             `bson:"password"`
	Roles     []string           `bson:"roles"`
	Active    bool               `bson:"active"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d userDoc) toDomain() domain.User {
	return domain.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		PasswordHash: d.Password,
		Roles:        d.Roles,
		Active:       d.Active,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

type usersRepo struct {
	c *mongo.Collection
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	cur, err := r.c.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return domain.User{}, err
	}

	var d userDoc
	if err := r.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return d.toDomain(), nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var d userDoc
	err := r.c.FindOne(ctx, bson.M{"username": username},
		options.FindOne().SetCollation(polishCI)).Decode(&d)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return d.toDomain(), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	ts := now()
	d := userDoc{
		ID:        primitive.NewObjectID(),
		Username:  u.Username,
		Password:  u.PasswordHash,
		Roles:     u.Roles,
		Active:    u.Active,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	if _, err := r.c.InsertOne(ctx, d); err != nil {
		return domain.User{}, mapDuplicate(err)
	}
	return d.toDomain(), nil
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	oid, err := parseID(u.ID)
	if err != nil {
		return store.ErrNotFound
	}

	res, err := r.c.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"username":  u.Username,
		"password":  u.PasswordHash,
		"roles":     u.Roles,
		"active":    u.Active,
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

func (r *usersRepo) DeleteUser(ctx context.Context, id string) error {
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
