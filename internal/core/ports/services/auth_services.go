package services

import (
	"context"

	"github.com/caterops/staffdesk/internal/models"
)

// AuthSvcFacade authenticates portal users.
type AuthSvcFacade interface {
	// Authenticate verifies credentials and returns the user plus a signed JWT.
	Authenticate(ctx context.Context, email, password string) (*models.User, string, error)
}
