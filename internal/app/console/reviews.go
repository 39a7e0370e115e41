// internal/app/console/reviews.go
package console

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cinelog/cinelog/internal/domain/models"
)

// addMovie creates a movie with a freshly allocated id. Movies are
// only persisted by the exit-time flush.
func (s *Session) addMovie() error {
	fmt.Fprintln(s.out, "Adding a Movie")

	title, err := s.promptLine("Enter Title: ")
	if err != nil {
		return err
	}
	description, err := s.promptLine("Enter Description: ")
	if err != nil {
		return err
	}
	releaseDate, err := s.promptLine("Enter Release Date: ")
	if err != nil {
		return err
	}
	genre, err := s.promptLine("Enter Genre: ")
	if err != nil {
		return err
	}

	id, err := s.cat.NextMovieID()
	if err != nil {
		s.logger.Error("movie id allocation failed", zap.Error(err))
		fmt.Fprintln(s.out, "Cannot add movie: the movie collection holds a corrupt id.")
		return nil
	}

	s.cat.AddMovie(models.Movie{
		MovieID:     id,
		Title:       title,
		Description: description,
		ReleaseDate: releaseDate,
		Genre:       genre,
	})
	fmt.Fprintln(s.out, "Movie added successfully!")
	return nil
}

// postReview records a review by the signed-in user for a movie chosen
// from the numbered list. The menu only offers this while
// authenticated, but the check stays for direct calls.
func (s *Session) postReview() error {
	fmt.Fprintln(s.out, "Posting a Review")
	if s.current == nil {
		fmt.Fprintln(s.out, "You must be logged in to post a review.")
		return nil
	}

	movies := s.cat.Movies()
	if len(movies) == 0 {
		fmt.Fprintln(s.out, "No movies available to review.")
		return nil
	}

	fmt.Fprintln(s.out, "Available Movies:")
	for i, m := range movies {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, m.Title)
	}

	idx, ok, err := s.promptInt("Select a movie to review (enter number): ")
	if err != nil {
		return err
	}
	if !ok || idx < 1 || idx > len(movies) {
		fmt.Fprintln(s.out, "Invalid movie selection.")
		return nil
	}
	selected := movies[idx-1]

	rating, ok, err := s.promptInt("Enter Rating (1-5): ")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(s.out, "Invalid rating.")
		return nil
	}
	comments, err := s.promptLine("Enter Comments (optional): ")
	if err != nil {
		return err
	}

	id, err := s.cat.NextReviewID()
	if err != nil {
		s.logger.Error("review id allocation failed", zap.Error(err))
		fmt.Fprintln(s.out, "Cannot post review: the review collection holds a corrupt id.")
		return nil
	}

	s.cat.AddReview(models.Review{
		ReviewID: id,
		UserID:   s.current.UserID,
		MovieID:  selected.MovieID,
		Rating:   rating,
		Comments: comments,
	})
	fmt.Fprintln(s.out, "Review posted successfully!")
	return nil
}

// listMoviesWithReviews prints every movie followed by its reviews.
// Reviews whose author can no longer be resolved are skipped.
func (s *Session) listMoviesWithReviews() {
	fmt.Fprintln(s.out, "Movies with Reviews:")
	for _, m := range s.cat.Movies() {
		fmt.Fprintf(s.out, "%s - %s\n", m.Title, m.Description)
		fmt.Fprintln(s.out, "Reviews:")
		hasReviews := false
		for _, r := range s.cat.ReviewsByMovie(m.MovieID) {
			u, ok := s.cat.FindUserByID(r.UserID)
			if !ok {
				continue
			}
			hasReviews = true
			fmt.Fprintf(s.out, "%s: \nRating: %d, Comments: %s\n", u.Username, r.Rating, r.Comments)
		}
		if !hasReviews {
			fmt.Fprintln(s.out, "No reviews yet.")
		}
		fmt.Fprintln(s.out)
	}
}

// selectOwnReview lists the signed-in user's reviews and returns the
// chosen one. ok is false when there is nothing to choose or the
// selection is invalid; the caller has already printed the reason.
func (s *Session) selectOwnReview(header, emptyMsg string, detailed bool) (models.Review, bool, error) {
	reviews := s.cat.ReviewsByUser(s.current.UserID)
	if len(reviews) == 0 {
		fmt.Fprintln(s.out, emptyMsg)
		return models.Review{}, false, nil
	}

	fmt.Fprintln(s.out, header)
	for i, r := range reviews {
		if detailed {
			fmt.Fprintf(s.out, "%d. Movie: %s, Rating: %d, Comments: %s\n", i+1, r.MovieID, r.Rating, r.Comments)
		} else {
			fmt.Fprintf(s.out, "%d. %s - Rating: %d\n", i+1, r.MovieID, r.Rating)
		}
	}

	idx, ok, err := s.promptInt("Select a review (enter number): ")
	if err != nil {
		return models.Review{}, false, err
	}
	if !ok || idx < 1 || idx > len(reviews) {
		fmt.Fprintln(s.out, "Invalid review selection.")
		return models.Review{}, false, nil
	}
	return reviews[idx-1], true, nil
}

// updateReview replaces the rating and comments of one of the user's
// reviews and writes the change through to the store immediately.
func (s *Session) updateReview(ctx context.Context) error {
	if s.current == nil {
		fmt.Fprintln(s.out, "You must be logged in to update a review.")
		return nil
	}

	fmt.Fprintln(s.out, "Updating Review")
	selected, ok, err := s.selectOwnReview("Your Reviews:", "You haven't posted any reviews yet.", false)
	if err != nil || !ok {
		return err
	}

	rating, ok, err := s.promptInt("Enter new rating (1-5): ")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(s.out, "Invalid rating.")
		return nil
	}
	comments, err := s.promptLine("Enter new comments: ")
	if err != nil {
		return err
	}

	updated, ok := s.cat.UpdateReview(selected.ReviewID, rating, comments)
	if !ok {
		fmt.Fprintln(s.out, "Invalid review selection.")
		return nil
	}
	if err := s.store.UpdateReview(ctx, updated); err != nil {
		s.logger.Error("review write-through failed",
			zap.String("reviewId", updated.ReviewID), zap.Error(err))
	}

	fmt.Fprintln(s.out, "Review updated successfully!")
	return nil
}

// removeReview deletes one of the user's reviews from the catalog and
// from the store.
func (s *Session) removeReview(ctx context.Context) error {
	if s.current == nil {
		fmt.Fprintln(s.out, "You must be logged in to remove a review.")
		return nil
	}

	selected, ok, err := s.selectOwnReview("Your Reviews:", "You have no reviews to remove.", true)
	if err != nil || !ok {
		return err
	}

	removed, ok := s.cat.RemoveReview(selected.ReviewID)
	if !ok {
		fmt.Fprintln(s.out, "Invalid review selection.")
		return nil
	}
	if err := s.store.RemoveReview(ctx, removed); err != nil {
		s.logger.Error("review delete write-through failed",
			zap.String("reviewId", removed.ReviewID), zap.Error(err))
	}

	fmt.Fprintln(s.out, "Review removed successfully.")
	return nil
}
