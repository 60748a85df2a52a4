package services

import (
	"context"
	"fmt"
	"time"

	"github.com/caterops/staffdesk/internal/apperrors"
	"github.com/caterops/staffdesk/internal/core/ports"
	"github.com/caterops/staffdesk/internal/models"
	"github.com/caterops/staffdesk/internal/utils"
)

// AuthService verifies credentials and mints bearer tokens.
type AuthService struct {
	userRepo    ports.UserRepository
	jwtSecret   string
	jwtDuration time.Duration
	jwtIssuer   string
}

func NewAuthService(userRepo ports.UserRepository, jwtSecret string, jwtDuration time.Duration, jwtIssuer string) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		jwtSecret:   jwtSecret,
		jwtDuration: jwtDuration,
		jwtIssuer:   jwtIssuer,
	}
}

// Authenticate checks the email/password pair and returns the user with a
// signed JWT. Unknown email and wrong password produce the same error so the
// login form cannot be used to probe for accounts.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", apperrors.ErrForbidden
	}

	token, err := utils.GenerateJWT(user.UserID, s.jwtSecret, s.jwtDuration, s.jwtIssuer)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return user, token, nil
}
