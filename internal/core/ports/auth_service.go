package ports

import (
	"context"

	"github.com/esas/tree-species-api/internal/core/domain"
)

// AuthService issues and verifies bearer tokens.
type AuthService interface {
	// Login checks the credentials and returns "Bearer <token>".
	Login(ctx context.Context, username, password string) (string, error)
	// Authenticate verifies a raw token (without the scheme prefix) and
	// resolves it to the current state of its user.
	Authenticate(ctx context.Context, token string) (*domain.Principal, error)
}
