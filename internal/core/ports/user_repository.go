package ports

import (
	"context"

	"github.com/filmotheque/catalog-api/internal/core/domain"
)

// UserPatch carries the optional fields of a user update. Nil means "leave
// unchanged".
type UserPatch struct {
	Username     *string
	PasswordHash *string
	Role         *string
}

// UserRepository defines persistence for the credential store.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
