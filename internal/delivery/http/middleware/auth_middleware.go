package middleware

import (
	"strings"

	deliverycontext "accounts/internal/delivery/context"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware is the gate in front of protected operations: it validates
// the bearer token and confirms the account behind it still exists.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	users    repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, users: users}
}

// Authenticate validates the session token and attaches the principal to the
// request context. Every failure mode is a 401; the details field narrows the
// cause for the client without changing the status.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthenticated.WithDetails("authorization header must use the Bearer scheme")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return domainerrors.ErrUnauthenticated.WithDetails("token has expired")
			}

			return domainerrors.ErrUnauthenticated.WithDetails("token is invalid")
		}

		// Re-fetch the account so a token can't outlive its user. One extra
		// round trip per protected request, freshness over latency.
		user, err := m.users.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUnauthenticated.WithDetails("account no longer exists")
			}

			return errors.Wrap(err, "failed to load account for token")
		}

		deliverycontext.SetPrincipal(c, &deliverycontext.Principal{
			UserID:   user.ID,
			Email:    user.Email,
			Username: user.Username,
		})

		return next(c)
	}
}
