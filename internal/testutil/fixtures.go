package testutil

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinelog/cinelog/internal/domain/models"
)

// Fixtures provides helper methods for seeding test documents.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// SeedMovie inserts a movie document.
func (f *Fixtures) SeedMovie(ctx context.Context, id, title, releaseDate, genre string) models.Movie {
	f.t.Helper()

	m := models.Movie{
		MovieID:     id,
		Title:       title,
		Description: "Test description for " + title,
		ReleaseDate: releaseDate,
		Genre:       genre,
	}
	if _, err := f.db.Collection("Movies").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to seed movie: %v", err)
	}
	return m
}

// SeedUser inserts a user document.
func (f *Fixtures) SeedUser(ctx context.Context, id, username, password, email string) models.User {
	f.t.Helper()

	u := models.User{
		UserID:   id,
		Username: username,
		Password: password,
		Email:    email,
	}
	if _, err := f.db.Collection("Users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to seed user: %v", err)
	}
	return u
}

// SeedReview inserts a review document. The referenced user and movie
// are not required to exist; tests use that to exercise the load-time
// foreign key checks.
func (f *Fixtures) SeedReview(ctx context.Context, id, userID, movieID string, rating int, comments string) models.Review {
	f.t.Helper()

	r := models.Review{
		ReviewID: id,
		UserID:   userID,
		MovieID:  movieID,
		Rating:   rating,
		Comments: comments,
	}
	if _, err := f.db.Collection("Reviews").InsertOne(ctx, r); err != nil {
		f.t.Fatalf("failed to seed review: %v", err)
	}
	return r
}
