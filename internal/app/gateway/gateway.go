// internal/app/gateway/gateway.go

// Package gateway synchronizes the in-memory catalog with the backing
// document store.
//
// The contract is one-directional: a full load at startup, a bulk
// best-effort flush at shutdown or on the Exit action, and immediate
// write-through for review updates and removals. Movie and user
// additions rely solely on the flush; anything added and lost to a
// crash before then is gone, which is accepted behavior.
package gateway

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/cinelog/cinelog/internal/app/catalog"
	moviestore "github.com/cinelog/cinelog/internal/app/store/movies"
	reviewstore "github.com/cinelog/cinelog/internal/app/store/reviews"
	userstore "github.com/cinelog/cinelog/internal/app/store/users"
	"github.com/cinelog/cinelog/internal/domain/models"
)

// Gateway moves records between the catalog and the three backing
// collections. It never holds its own copy of the data.
type Gateway struct {
	movies  *moviestore.Store
	users   *userstore.Store
	reviews *reviewstore.Store
	logger  *zap.Logger
}

func New(db *mongo.Database, logger *zap.Logger) *Gateway {
	return &Gateway{
		movies:  moviestore.New(db),
		users:   userstore.New(db),
		reviews: reviewstore.New(db),
		logger:  logger,
	}
}

// Load performs one full read of each collection and populates the
// catalog. Movies and users load first so review foreign keys can be
// resolved; a review whose user or movie is missing is dropped with a
// warning. A failed read aborts that collection only.
func (g *Gateway) Load(ctx context.Context, cat *catalog.Catalog) error {
	var errs []error

	movies, err := g.movies.All(ctx)
	if err != nil {
		g.logger.Error("loading movies failed", zap.Error(err))
		errs = append(errs, fmt.Errorf("movies: %w", err))
	}
	for _, m := range movies {
		cat.AddMovie(m)
	}

	users, err := g.users.All(ctx)
	if err != nil {
		g.logger.Error("loading users failed", zap.Error(err))
		errs = append(errs, fmt.Errorf("users: %w", err))
	}
	for _, u := range users {
		cat.AddUser(u)
	}

	reviews, err := g.reviews.All(ctx)
	if err != nil {
		g.logger.Error("loading reviews failed", zap.Error(err))
		errs = append(errs, fmt.Errorf("reviews: %w", err))
	}
	for _, r := range reviews {
		_, userOK := cat.FindUserByID(r.UserID)
		_, movieOK := cat.FindMovieByID(r.MovieID)
		if !userOK || !movieOK {
			g.logger.Warn("dropping review with unresolvable reference",
				zap.String("reviewId", r.ReviewID),
				zap.String("userId", r.UserID),
				zap.String("movieId", r.MovieID))
			continue
		}
		cat.AddReview(r)
	}

	g.logger.Info("catalog loaded",
		zap.Int("movies", len(cat.Movies())),
		zap.Int("users", len(cat.Users())),
		zap.Int("reviews", len(cat.Reviews())))

	return errors.Join(errs...)
}

// Flush writes the catalog back out: every user and movie is inserted
// if absent (keyed by its external id) and every review is upserted by
// reviewId. Flush is idempotent and best-effort; individual write
// failures are logged and collected but do not stop the pass.
func (g *Gateway) Flush(ctx context.Context, cat *catalog.Catalog) error {
	var errs []error

	for _, u := range cat.Users() {
		if err := g.users.InsertIfAbsent(ctx, u); err != nil {
			g.logger.Error("flushing user failed", zap.String("userId", u.UserID), zap.Error(err))
			errs = append(errs, fmt.Errorf("user %s: %w", u.UserID, err))
		}
	}
	for _, m := range cat.Movies() {
		if err := g.movies.InsertIfAbsent(ctx, m); err != nil {
			g.logger.Error("flushing movie failed", zap.String("movieId", m.MovieID), zap.Error(err))
			errs = append(errs, fmt.Errorf("movie %s: %w", m.MovieID, err))
		}
	}
	for _, r := range cat.Reviews() {
		if err := g.reviews.Upsert(ctx, r); err != nil {
			g.logger.Error("flushing review failed", zap.String("reviewId", r.ReviewID), zap.Error(err))
			errs = append(errs, fmt.Errorf("review %s: %w", r.ReviewID, err))
		}
	}

	g.logger.Info("flush complete",
		zap.Int("users", len(cat.Users())),
		zap.Int("movies", len(cat.Movies())),
		zap.Int("reviews", len(cat.Reviews())),
		zap.Int("failures", len(errs)))

	return errors.Join(errs...)
}

// UpdateReview writes a review mutation through to the store at the
// moment of the in-memory change. The backing filter is the
// (userId, movieId) pair.
func (g *Gateway) UpdateReview(ctx context.Context, r models.Review) error {
	return g.reviews.UpdateRatingComments(ctx, r.UserID, r.MovieID, r.Rating, r.Comments)
}

// RemoveReview deletes the review's backing document, filtered by the
// (userId, movieId) pair.
func (g *Gateway) RemoveReview(ctx context.Context, r models.Review) error {
	return g.reviews.DeleteByUserAndMovie(ctx, r.UserID, r.MovieID)
}
