// Package usecase defines the application's business operations and their
// input/output shapes. Handlers depend on these interfaces, not on the
// concrete services in impl.
package usecase

import (
	"context"
	"time"

	"accounts/internal/domain/entity"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput carries the login form fields.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PublicUser is the externally visible projection of a user record.
// It deliberately has no field for the password hash.
type PublicUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionUser is the slimmer projection returned alongside a fresh token.
type SessionUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// RegisterOutput is the result of a successful registration.
type RegisterOutput struct {
	User PublicUser `json:"user"`
}

// LoginOutput is the result of a successful login.
type LoginOutput struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// ListOutput is the result of listing all users.
type ListOutput struct {
	Count int          `json:"count"`
	Users []PublicUser `json:"users"`
}

// AccountUsecase defines the application's account operations.
type AccountUsecase interface {
	// Register validates the input, hashes the password and persists a new user.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ListAll returns every user's public fields, most recently created first.
	ListAll(ctx context.Context) (*ListOutput, error)
}

// ToPublicUser projects a domain entity to its public shape.
func ToPublicUser(user *entity.User) PublicUser {
	return PublicUser{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// ToSessionUser projects a domain entity to the login response shape.
func ToSessionUser(user *entity.User) SessionUser {
	return SessionUser{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
