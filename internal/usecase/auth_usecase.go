package usecase

import (
	"context"
	"fmt"
	"time"

	"globemart-backend/internal/domain"
	"globemart-backend/pkg/logger"
	"globemart-backend/pkg/utils"

	"github.com/google/uuid"
)

// AuthUsecase implements the credential flow: hash-and-store on register,
// verify-and-sign on login, verify-and-lookup on session resolution.
type AuthUsecase struct {
	users       domain.UserStore
	tokenExpiry time.Duration
}

func NewAuthUsecase(users domain.UserStore, tokenExpiry time.Duration) *AuthUsecase {
	return &AuthUsecase{
		users:       users,
		tokenExpiry: tokenExpiry,
	}
}

// Register creates an account and issues a session token. Returns
// domain.ErrDuplicateAccount when the (case-insensitive) email is taken.
func (u *AuthUsecase) Register(ctx context.Context, email, password, firstName, lastName string) (*domain.User, string, error) {
	email = utils.NormalizeEmail(email)

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    time.Now().UTC(),
	}

	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, u.tokenExpiry)
	if err != nil {
		return nil, "", err
	}

	logger.WithContext(ctx).Info().Str("user_id", user.ID).Msg("Account created")
	return user, token, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password both come back as domain.ErrInvalidCredentials so callers
// cannot enumerate accounts.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = utils.NormalizeEmail(email)

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !utils.CheckPassword(password, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, u.tokenExpiry)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// ResolveSession verifies the token and loads the user. Any failure —
// malformed, expired, bad signature, unknown user, store error — yields nil;
// the reason is never exposed to the caller.
func (u *AuthUsecase) ResolveSession(ctx context.Context, token string) *domain.User {
	claims, err := utils.ValidateJWT(token)
	if err != nil {
		return nil
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil
	}

	user, err := u.users.GetByID(ctx, sub)
	if err != nil {
		logger.WithContext(ctx).Error().Err(err).Msg("Session lookup failed")
		return nil
	}
	return user
}
