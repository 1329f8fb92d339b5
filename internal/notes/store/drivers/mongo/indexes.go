package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ApplyMigrations creates the collated unique indexes and the owner index.
// CreateMany is a no-op for indexes that already exist with the same spec.
func (s *Store) ApplyMigrations(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "username", Value: 1}},
			Options: options.Index().
				SetName("username_pl_ci").
				SetUnique(true).
				SetCollation(polishCI),
		},
	})
	if err != nil {
		return fmt.Errorf("mongo: users indexes: %w", err)
	}

	_, err = s.db.Collection(notesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "title", Value: 1}},
			Options: options.Index().
				SetName("title_pl_ci").
				SetUnique(true).
				SetCollation(polishCI),
		},
		{
			Keys:    bson.D{{Key: "user", Value: 1}},
			Options: options.Index().SetName("user_1"),
		},
	})
	if err != nil {
		return fmt.Errorf("mongo: notes indexes: %w", err)
	}

	return nil
}
