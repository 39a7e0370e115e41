// internal/app/console/accounts.go
package console

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cinelog/cinelog/internal/domain/models"
)

// registerUser creates an account after checking the username is free.
// The username check is case-sensitive and there is no password
// policy.
func (s *Session) registerUser() error {
	fmt.Fprintln(s.out, "Registration")

	username, err := s.promptLine("Enter Username: ")
	if err != nil {
		return err
	}
	if s.cat.IsUsernameTaken(username) {
		fmt.Fprintln(s.out, "Username already taken. Please choose another one.")
		return nil
	}

	password, err := s.promptLine("Enter Password: ")
	if err != nil {
		return err
	}
	email, err := s.promptLine("Enter Email: ")
	if err != nil {
		return err
	}

	id, err := s.cat.NextUserID()
	if err != nil {
		s.logger.Error("user id allocation failed", zap.Error(err))
		fmt.Fprintln(s.out, "Cannot register: the user collection holds a corrupt id.")
		return nil
	}

	s.cat.AddUser(models.User{
		UserID:   id,
		Username: username,
		Password: password,
		Email:    email,
	})
	fmt.Fprintln(s.out, "Registration successful. You can now log in.")
	return nil
}

// login authenticates by exact username and password match. Failure is
// reported generically; it does not say whether the username exists.
func (s *Session) login() error {
	fmt.Fprintln(s.out, "Login")

	username, err := s.promptLine("Enter Username: ")
	if err != nil {
		return err
	}
	password, err := s.promptLine("Enter Password: ")
	if err != nil {
		return err
	}

	if u, ok := s.cat.FindUserByCredentials(username, password); ok {
		s.current = &u
		fmt.Fprintf(s.out, "Login successful. Welcome, %s!\n", u.Username)
		return nil
	}

	fmt.Fprintln(s.out, "Login failed. Please check your username and password.")
	return nil
}

func (s *Session) viewAllUsers() {
	fmt.Fprintln(s.out, "All Users:")
	for _, u := range s.cat.Users() {
		fmt.Fprintf(s.out, "Username: %s, Email: %s\n", u.Username, u.Email)
	}
}

// removeUser deletes the first user matching the entered username. The
// user's reviews are left behind; there is no cascade.
func (s *Session) removeUser() error {
	fmt.Fprintln(s.out, "Removing a User")

	username, err := s.promptLine("Enter the username of the user you want to remove: ")
	if err != nil {
		return err
	}

	if s.cat.RemoveUser(username) {
		fmt.Fprintf(s.out, "User '%s' removed successfully.\n", username)
	} else {
		fmt.Fprintln(s.out, "User not found.")
	}
	return nil
}

func (s *Session) allUserDetails() {
	fmt.Fprintln(s.out, "All User Details:")
	for _, u := range s.cat.Users() {
		fmt.Fprintf(s.out, "User ID: %s\n", u.UserID)
		fmt.Fprintf(s.out, "Username: %s\n", u.Username)
		fmt.Fprintf(s.out, "Email: %s\n", u.Email)
		fmt.Fprintln(s.out)
	}
}

func (s *Session) allMovieDetails() {
	fmt.Fprintln(s.out, "All Movie Details:")
	for _, m := range s.cat.Movies() {
		fmt.Fprintf(s.out, "Movie ID: %s\n", m.MovieID)
		fmt.Fprintf(s.out, "Title: %s\n", m.Title)
		fmt.Fprintf(s.out, "Description: %s\n", m.Description)
		fmt.Fprintf(s.out, "Release Date: %s\n", m.ReleaseDate)
		fmt.Fprintf(s.out, "Genre: %s\n", m.Genre)
		fmt.Fprintln(s.out)
	}
}

func (s *Session) allReviewDetails() {
	fmt.Fprintln(s.out, "All Review Details:")
	for _, r := range s.cat.Reviews() {
		fmt.Fprintf(s.out, "User ID: %s\n", r.UserID)
		fmt.Fprintf(s.out, "Movie ID: %s\n", r.MovieID)
		fmt.Fprintf(s.out, "Rating: %d\n", r.Rating)
		fmt.Fprintf(s.out, "Comments: %s\n", r.Comments)
		fmt.Fprintln(s.out)
	}
}
