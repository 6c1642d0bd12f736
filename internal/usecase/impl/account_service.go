// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/pkg/errors"
)

const (
	minPasswordLength = 6
	minUsernameLength = 3
	maxUsernameLength = 100
)

// emailPattern accepts local@domain with at least one dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// accountService implements the AccountUsecase interface.
type accountService struct {
	users        repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	users repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		users:        users,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register orchestrates the complete registration process.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting user registration", "email", input.Email)

	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}

	// Pre-checks give precise conflict answers; the unique constraints at
	// insert time remain the authoritative guard (see Create below).
	if _, err := srv.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		srv.logger.Error("Failed to check email availability", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to check email availability")
	}

	if _, err := srv.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, domainerrors.ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		srv.logger.Error("Failed to check username availability", "error", err, "username", input.Username)

		return nil, errors.Wrap(err, "failed to check username availability")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := srv.users.Create(ctx, newUser); err != nil {
		// A concurrent registration may have won the race between the
		// pre-checks and this insert; the constraint violation decides.
		var dup *repository.DuplicateError
		if errors.As(err, &dup) {
			if dup.Field == "username" {
				return nil, domainerrors.ErrUsernameTaken
			}

			return nil, domainerrors.ErrEmailTaken
		}
		srv.logger.Error("Failed to create user", "error", err, "email", input.Email)

		return nil, errors.WithStack(err)
	}

	srv.logger.Debug("User registered successfully", "userID", newUser.ID)

	return &usecase.RegisterOutput{User: usecase.ToPublicUser(newUser)}, nil
}

// Login orchestrates the login process. An unknown email and a wrong password
// return the same error value so the response never reveals which was wrong.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting user login", "email", input.Email)

	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	user, err := srv.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		srv.logger.Error("Failed to fetch user during login", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to fetch user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user)
	if err != nil {
		srv.logger.Error("Failed to issue session token", "error", err, "userID", user.ID)

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.logger.Debug("User logged in successfully", "userID", user.ID)

	return &usecase.LoginOutput{
		Token: token,
		User:  usecase.ToSessionUser(user),
	}, nil
}

// ListAll returns every user's public fields, most recently created first.
func (srv *accountService) ListAll(ctx context.Context) (*usecase.ListOutput, error) {
	users, err := srv.users.ListAll(ctx)
	if err != nil {
		srv.logger.Error("Failed to list users", "error", err)

		return nil, errors.Wrap(err, "failed to list users")
	}

	out := make([]usecase.PublicUser, 0, len(users))
	for _, user := range users {
		out = append(out, usecase.ToPublicUser(user))
	}

	return &usecase.ListOutput{Count: len(out), Users: out}, nil
}

func validateRegisterInput(input *usecase.RegisterInput) error {
	if strings.TrimSpace(input.Username) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		input.Password == "" {
		return domainerrors.ErrValidationFailed.WithDetails("username, email and password are required")
	}
	if len(input.Username) < minUsernameLength || len(input.Username) > maxUsernameLength {
		return domainerrors.ErrValidationFailed.WithDetails("username must be between 3 and 100 characters")
	}
	if !emailPattern.MatchString(input.Email) {
		return domainerrors.ErrValidationFailed.WithDetails("email address is invalid")
	}
	if len(input.Password) < minPasswordLength {
		return domainerrors.ErrValidationFailed.WithDetails("password must be at least 6 characters")
	}

	return nil
}
