package user

import (
	"errors"

	"github.com/KirkDiggler/partyline/internal/models"
)

var (
	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when another user already owns the username
	ErrUsernameTaken = errors.New("username taken")
)

type GetUserByIDInput struct {
	UserID string
}

type GetUserByUsernameInput struct {
	Username string
}

type SaveUserInput struct {
	User *models.User
}
