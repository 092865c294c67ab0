package ports

import (
	"context"

	"github.com/filmotheque/catalog-api/internal/core/domain"
)

// ActorPatch carries the optional fields of an actor update.
type ActorPatch struct {
	Name        *string
	Born        *string
	Height      *int
	Nationality *string
	Photo       *string
}

// ActorRepository defines persistence for cast members.
type ActorRepository interface {
	Insert(ctx context.Context, actor *domain.Actor) (*domain.Actor, error)
	FindByID(ctx context.Context, id string) (*domain.Actor, error)
	// FindByIDs resolves a cast set; unknown ids are simply absent from the
	// result.
	FindByIDs(ctx context.Context, ids []string) ([]domain.Actor, error)
	// List returns actors whose name contains keyword (case-insensitive).
	List(ctx context.Context, keyword string) ([]domain.Actor, error)
	Update(ctx context.Context, id string, patch ActorPatch) (*domain.Actor, error)
	Delete(ctx context.Context, id string) (*domain.Actor, error)
}
