// internal/domain/models/movie.go
package models

// Movie is a single catalog entry.
//
// MovieID is the externally visible identity and never changes after
// creation. ReleaseDate is free text, not a parsed date; existing
// documents carry values like "2010" or "Summer 1994".
type Movie struct {
	MovieID     string `bson:"movieId" json:"movieId"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	ReleaseDate string `bson:"releaseDate" json:"releaseDate"`
	Genre       string `bson:"genre" json:"genre"`
}
