package auth

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/semexe/backend/domain"
	internalAuth "github.com/semexe/backend/internal/auth"
	"github.com/semexe/backend/repository"
)

type UseCase struct {
	users    repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
	logger   *zap.Logger
}

func New(users repository.UserRepository, secret []byte, tokenTTL time.Duration, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tokenTTL <= 0 {
		tokenTTL = internalAuth.DefaultTokenTTL
	}
	return &UseCase{
		users:    users,
		secret:   secret,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// Register creates an account. No token is issued; the client logs in
// separately. The email pre-check is advisory only: the unique index in the
// store is what actually prevents two concurrent registrations from sharing
// an email, and the repository reports that as domain.ErrEmailTaken.
func (uc *UseCase) Register(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return domain.NewError(domain.ErrCodeInvalid, "name, email and password are required")
	}
	if len(password) < internalAuth.MinPasswordLength {
		return domain.NewError(domain.ErrCodeInvalid, "password must be at least 6 characters")
	}

	if _, err := uc.users.GetByEmail(ctx, email); err == nil {
		return domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.WrapError(domain.ErrCodeInternal, "failed to check email", err)
	}

	hash, err := internalAuth.HashPassword(password)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "failed to hash password", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return domain.ErrEmailTaken
		}
		return domain.WrapError(domain.ErrCodeInternal, "failed to create user", err)
	}

	uc.logger.Info("user registered", zap.Int64("user_id", user.ID))
	return nil
}

// Login verifies credentials and mints a signed bearer token. Unknown email
// and wrong password take the same exit so responses cannot be used to probe
// which emails are registered.
func (uc *UseCase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.NewError(domain.ErrCodeInvalid, "email and password are required")
	}

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, domain.WrapError(domain.ErrCodeInternal, "failed to look up user", err)
	}

	if !internalAuth.CheckPassword(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := internalAuth.IssueToken(user.ID, user.Email, uc.secret, uc.tokenTTL)
	if err != nil {
		return "", nil, domain.WrapError(domain.ErrCodeInternal, "failed to issue token", err)
	}

	uc.logger.Info("user logged in", zap.Int64("user_id", user.ID))
	return token, user.Public(), nil
}
