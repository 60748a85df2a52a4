package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caterops/staffdesk/internal/apperrors"
	"github.com/caterops/staffdesk/internal/repositories/memory"
	"github.com/caterops/staffdesk/internal/utils"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	repos := memory.NewSeededProvider()
	return NewAuthService(repos.User(), "test-secret", time.Hour, "staffdesk-test")
}

func TestAuthenticateSuccess(t *testing.T) {
	svc := newAuthService(t)

	user, token, err := svc.Authenticate(context.Background(), "admin@staffdesk.local", "admin123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "admin@staffdesk.local", user.Email)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, claims.Subject)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Authenticate(context.Background(), "admin@staffdesk.local", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestAuthenticateUnknownEmailSameError(t *testing.T) {
	svc := newAuthService(t)

	_, _, wrongPass := svc.Authenticate(context.Background(), "admin@staffdesk.local", "wrong")
	_, _, unknown := svc.Authenticate(context.Background(), "nobody@staffdesk.local", "admin123")

	// Unknown account and wrong password must be indistinguishable.
	assert.Equal(t, wrongPass, unknown)
}
