package service

import (
	"errors"

	"accounts/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failure kinds. Callers use these to word the client message;
// both ultimately surface as 401 at the HTTP boundary.
var (
	// ErrTokenExpired means the signature checked out but the token is past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid means the token is structurally broken, signed with the
	// wrong key, or otherwise tampered with.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims defines the identity facts embedded in a session token.
type Claims struct {
	UserID   int64  `json:"uid"`
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-limited token carrying the user's identity.
	Issue(user *entity.User) (string, error)

	// Verify checks the signature and expiry of a token string and returns its
	// claims. Fails with ErrTokenExpired or ErrTokenInvalid.
	Verify(tokenString string) (*Claims, error)
}
