package ports

import (
	"context"

	"github.com/filmotheque/catalog-api/internal/core/domain"
)

// RegisterUserInput carries the public registration payload. Role is always
// defaulted by the service, never taken from the caller.
type RegisterUserInput struct {
	Username string
	Password string
}

// UpdateUserInput carries the optional fields of a profile update.
type UpdateUserInput struct {
	Username *string
	Password *string
	Role     *string
}

// UserService defines account use-cases. Get, Update, and Delete enforce the
// ownership policy: admins may act on any account, other callers only on
// their own.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string, caller domain.Identity) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput, caller domain.Identity) (*domain.User, error)
	Delete(ctx context.Context, id string, caller domain.Identity) (*domain.User, error)
}
