// internal/app/store/reviews/reviewstore.go
package reviewstore

// Terminology: review identity
//   - reviewId: the nominal identity field, used by the bulk upsert.
//   - (userId, movieId): the pair existing deployments filter update
//     and delete by. Kept for wire compatibility; when a user holds
//     two reviews for the same movie, these two operations touch
//     whichever document matches first.

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cinelog/cinelog/internal/domain/models"
)

// Store provides access to the Reviews collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("Reviews")}
}

// All returns every review document in collection order.
func (s *Store) All(ctx context.Context) ([]models.Review, error) {
	cursor, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Upsert writes the full review keyed by reviewId, inserting it when
// no document matches.
func (s *Store) Upsert(ctx context.Context, r models.Review) error {
	update := bson.M{"$set": bson.M{
		"reviewId": r.ReviewID,
		"userId":   r.UserID,
		"movieId":  r.MovieID,
		"rating":   r.Rating,
		"comments": r.Comments,
	}}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, bson.M{"reviewId": r.ReviewID}, update, opts)
	return err
}

// UpdateRatingComments sets a new rating and comments on the review
// matching the (userId, movieId) pair.
func (s *Store) UpdateRatingComments(ctx context.Context, userID, movieID string, rating int, comments string) error {
	filter := bson.M{"userId": userID, "movieId": movieID}
	update := bson.M{"$set": bson.M{"rating": rating, "comments": comments}}
	_, err := s.c.UpdateOne(ctx, filter, update)
	return err
}

// DeleteByUserAndMovie removes one review matching the
// (userId, movieId) pair.
func (s *Store) DeleteByUserAndMovie(ctx context.Context, userID, movieID string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"userId": userID, "movieId": movieID})
	return err
}
