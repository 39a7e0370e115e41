// internal/app/store/movies/moviestore.go
package moviestore

import (
	"context"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinelog/cinelog/internal/domain/models"
)

// Store provides access to the Movies collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("Movies")}
}

// All returns every movie document in collection order.
func (s *Store) All(ctx context.Context) ([]models.Movie, error) {
	cursor, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var movies []models.Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// InsertIfAbsent inserts the movie unless a document with its movieId
// already exists. A duplicate-key race on insert is treated the same
// as an existing document.
func (s *Store) InsertIfAbsent(ctx context.Context, m models.Movie) error {
	n, err := s.c.CountDocuments(ctx, bson.M{"movieId": m.MovieID})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		if wafflemongo.IsDup(err) {
			return nil
		}
		return err
	}
	return nil
}
