// internal/app/console/session.go

// Package console implements the interactive menu surface.
//
// A Session drives two loops: the unauthenticated menu (register,
// login, roster management, inspection) and the authenticated menu
// (movies and reviews). All input and output go through an injected
// reader and writer so tests can script a whole session.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cinelog/cinelog/internal/app/catalog"
	"github.com/cinelog/cinelog/internal/domain/models"
)

// Persister is the slice of the gateway the session needs: the bulk
// flush on exit plus the synchronous review write-throughs.
type Persister interface {
	Flush(ctx context.Context, cat *catalog.Catalog) error
	UpdateReview(ctx context.Context, r models.Review) error
	RemoveReview(ctx context.Context, r models.Review) error
}

// Session holds the authentication state and drives the menus. It is
// the single logical actor of the process; it is not safe for
// concurrent use.
type Session struct {
	cat     *catalog.Catalog
	store   Persister
	in      *lineReader
	out     io.Writer
	logger  *zap.Logger
	current *models.User
}

// New builds a session over the given catalog and persister, reading
// menu input from in and writing to out.
func New(cat *catalog.Catalog, store Persister, in io.Reader, out io.Writer, logger *zap.Logger) *Session {
	return &Session{
		cat:    cat,
		store:  store,
		in:     newLineReader(in),
		out:    out,
		logger: logger,
	}
}

// CurrentUser returns the signed-in user, or false when the session is
// unauthenticated.
func (s *Session) CurrentUser() (models.User, bool) {
	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

// Run drives the menu loops until the user exits or input ends. The
// Exit action flushes the catalog before returning; end of input
// terminates without a flush.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Welcome to the Movie Review Application!")

	for {
		err := s.unauthenticatedMenu(ctx)
		if errors.Is(err, errExit) {
			return nil
		}
		if errors.Is(err, io.EOF) {
			s.logger.Info("input ended, leaving menu loop")
			return nil
		}
		if err != nil {
			return err
		}
		// Login succeeded; stay in the authenticated loop until
		// logout or end of input.
		if err := s.authenticatedMenu(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Info("input ended, leaving menu loop")
				return nil
			}
			return err
		}
	}
}

// errExit signals the Exit menu action up through the loop.
var errExit = errors.New("exit requested")

// unauthenticatedMenu prompts until the user logs in (returns nil),
// exits (errExit), or input ends.
func (s *Session) unauthenticatedMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(s.out, "1. Register")
		fmt.Fprintln(s.out, "2. Login")
		fmt.Fprintln(s.out, "3. Exit")
		fmt.Fprintln(s.out, "4. View all users")
		fmt.Fprintln(s.out, "5. Remove user")
		fmt.Fprintln(s.out, "6. All user details")
		fmt.Fprintln(s.out, "7. All movie details")
		fmt.Fprintln(s.out, "8. All review details")

		choice, ok, err := s.promptInt("Enter your choice: ")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
			continue
		}

		switch choice {
		case 1:
			if err := s.registerUser(); err != nil {
				return err
			}
		case 2:
			if err := s.login(); err != nil {
				return err
			}
			if s.current != nil {
				return nil
			}
		case 3:
			fmt.Fprintln(s.out, "Saving data...")
			if err := s.store.Flush(ctx, s.cat); err != nil {
				s.logger.Error("flush on exit failed", zap.Error(err))
			}
			fmt.Fprintln(s.out, "Exiting...")
			return errExit
		case 4:
			s.viewAllUsers()
		case 5:
			if err := s.removeUser(); err != nil {
				return err
			}
		case 6:
			s.allUserDetails()
		case 7:
			s.allMovieDetails()
		case 8:
			s.allReviewDetails()
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

// authenticatedMenu prompts until the user logs out (returns nil) or
// input ends.
func (s *Session) authenticatedMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(s.out, "\nMain Menu")
		fmt.Fprintln(s.out, "1. Add a Movie")
		fmt.Fprintln(s.out, "2. Post a Review")
		fmt.Fprintln(s.out, "3. List Movies with Reviews")
		fmt.Fprintln(s.out, "4. Logout")
		fmt.Fprintln(s.out, "5. Update Review")
		fmt.Fprintln(s.out, "6. Remove a Review")

		choice, ok, err := s.promptInt("Enter your choice: ")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
			continue
		}

		switch choice {
		case 1:
			if err := s.addMovie(); err != nil {
				return err
			}
		case 2:
			if err := s.postReview(); err != nil {
				return err
			}
		case 3:
			s.listMoviesWithReviews()
		case 4:
			s.current = nil
			return nil
		case 5:
			if err := s.updateReview(ctx); err != nil {
				return err
			}
		case 6:
			if err := s.removeReview(ctx); err != nil {
				return err
			}
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}
