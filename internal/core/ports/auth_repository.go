package ports

import (
	"context"

	"github.com/esas/tree-species-api/internal/core/domain"
)

// UserRepository is the read side of the credential store consumed by the
// auth core. Both lookups return domain.ErrUserNotFound on a miss.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
