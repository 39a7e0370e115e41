// internal/domain/models/review.go
package models

// Review links a user to a movie with a rating and optional comments.
//
// UserID and MovieID are foreign keys into the Users and Movies
// collections; nothing in the schema enforces them. A user may hold
// several reviews for the same movie. Rating is intended to be 1-5
// but is stored as given.
type Review struct {
	ReviewID string `bson:"reviewId" json:"reviewId"`
	UserID   string `bson:"userId" json:"userId"`
	MovieID  string `bson:"movieId" json:"movieId"`
	Rating   int    `bson:"rating" json:"rating"`
	Comments string `bson:"comments" json:"comments"`
}
