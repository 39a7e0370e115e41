// internal/app/store/users/userstore.go
package userstore

import (
	"context"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinelog/cinelog/internal/domain/models"
)

// Store provides access to the Users collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("Users")}
}

// All returns every user document in collection order.
func (s *Store) All(ctx context.Context) ([]models.User, error) {
	cursor, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// InsertIfAbsent inserts the user unless a document with its userId
// already exists. A duplicate-key race on insert is treated the same
// as an existing document.
func (s *Store) InsertIfAbsent(ctx context.Context, u models.User) error {
	n, err := s.c.CountDocuments(ctx, bson.M{"userId": u.UserID})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return nil
		}
		return err
	}
	return nil
}
