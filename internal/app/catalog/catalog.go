// internal/app/catalog/catalog.go

// Package catalog holds the in-memory movie, user, and review
// collections for the lifetime of the process.
//
// The catalog is the only stateful core of the application: it is
// populated once at startup by the gateway and mutated by menu
// actions. Collections preserve insertion order and lookups are
// linear scans; the app is single-user and the datasets are small.
// The catalog is not safe for concurrent use.
package catalog

import (
	"github.com/cinelog/cinelog/internal/app/system/ids"
	"github.com/cinelog/cinelog/internal/domain/models"
)

// Catalog owns the three in-memory collections.
type Catalog struct {
	movies  []models.Movie
	users   []models.User
	reviews []models.Review
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// Movies returns the movie collection in insertion order. The slice is
// a read-only view; callers must not mutate it.
func (c *Catalog) Movies() []models.Movie { return c.movies }

// Users returns the user collection in insertion order.
func (c *Catalog) Users() []models.User { return c.users }

// Reviews returns the review collection in insertion order.
func (c *Catalog) Reviews() []models.Review { return c.reviews }

// AddMovie appends a movie to the collection.
func (c *Catalog) AddMovie(m models.Movie) { c.movies = append(c.movies, m) }

// AddUser appends a user to the collection.
func (c *Catalog) AddUser(u models.User) { c.users = append(c.users, u) }

// AddReview appends a review to the collection.
func (c *Catalog) AddReview(r models.Review) { c.reviews = append(c.reviews, r) }

// FindUserByID returns the first user with the given id. Absence is
// not an error.
func (c *Catalog) FindUserByID(id string) (models.User, bool) {
	for _, u := range c.users {
		if u.UserID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// FindMovieByID returns the first movie with the given id.
func (c *Catalog) FindMovieByID(id string) (models.Movie, bool) {
	for _, m := range c.movies {
		if m.MovieID == id {
			return m, true
		}
	}
	return models.Movie{}, false
}

// FindUserByCredentials returns the user whose username and password
// both match exactly.
func (c *Catalog) FindUserByCredentials(username, password string) (models.User, bool) {
	for _, u := range c.users {
		if u.Username == username && u.Password == password {
			return u, true
		}
	}
	return models.User{}, false
}

// IsUsernameTaken reports whether any user already has the given
// username. The comparison is case-sensitive.
func (c *Catalog) IsUsernameTaken(username string) bool {
	for _, u := range c.users {
		if u.Username == username {
			return true
		}
	}
	return false
}

// NextUserID allocates the next user id.
func (c *Catalog) NextUserID() (string, error) {
	existing := make([]string, 0, len(c.users))
	for _, u := range c.users {
		existing = append(existing, u.UserID)
	}
	return ids.Next(existing)
}

// NextMovieID allocates the next movie id.
func (c *Catalog) NextMovieID() (string, error) {
	existing := make([]string, 0, len(c.movies))
	for _, m := range c.movies {
		existing = append(existing, m.MovieID)
	}
	return ids.Next(existing)
}

// NextReviewID allocates the next review id.
func (c *Catalog) NextReviewID() (string, error) {
	existing := make([]string, 0, len(c.reviews))
	for _, r := range c.reviews {
		existing = append(existing, r.ReviewID)
	}
	return ids.Next(existing)
}

// ReviewsByUser returns the user's reviews in insertion order. The
// result is recomputed on every call.
func (c *Catalog) ReviewsByUser(userID string) []models.Review {
	var out []models.Review
	for _, r := range c.reviews {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

// ReviewsByMovie returns the movie's reviews in insertion order.
func (c *Catalog) ReviewsByMovie(movieID string) []models.Review {
	var out []models.Review
	for _, r := range c.reviews {
		if r.MovieID == movieID {
			out = append(out, r)
		}
	}
	return out
}

// RemoveUser removes the first user with the given username and
// reports whether one was found. The user's reviews are left in
// place; there is no cascade.
func (c *Catalog) RemoveUser(username string) bool {
	for i, u := range c.users {
		if u.Username == username {
			c.users = append(c.users[:i], c.users[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateReview sets a new rating and comments on the identified
// review, leaving every other field untouched. It returns the updated
// review so the caller can write it through.
func (c *Catalog) UpdateReview(reviewID string, rating int, comments string) (models.Review, bool) {
	for i := range c.reviews {
		if c.reviews[i].ReviewID == reviewID {
			c.reviews[i].Rating = rating
			c.reviews[i].Comments = comments
			return c.reviews[i], true
		}
	}
	return models.Review{}, false
}

// RemoveReview removes exactly the review with the given id and
// returns it so the caller can delete the backing document.
func (c *Catalog) RemoveReview(reviewID string) (models.Review, bool) {
	for i, r := range c.reviews {
		if r.ReviewID == reviewID {
			c.reviews = append(c.reviews[:i], c.reviews[i+1:]...)
			return r, true
		}
	}
	return models.Review{}, false
}
