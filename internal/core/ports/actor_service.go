package ports

import (
	"context"

	"github.com/filmotheque/catalog-api/internal/core/domain"
)

// CreateActorInput carries all data needed to create a cast member.
type CreateActorInput struct {
	Name        string
	Born        string
	Height      int
	Nationality string
	Photo       string
}

// UpdateActorInput carries the optional fields of an actor update.
type UpdateActorInput struct {
	Name        *string
	Born        *string
	Height      *int
	Nationality *string
	Photo       *string
}

// ActorService defines catalog use-cases for actors.
type ActorService interface {
	Create(ctx context.Context, input CreateActorInput) (*domain.Actor, error)
	List(ctx context.Context, keyword string) ([]domain.Actor, error)
	Get(ctx context.Context, id string) (*domain.Actor, error)
	Update(ctx context.Context, id string, input UpdateActorInput) (*domain.Actor, error)
	Delete(ctx context.Context, id string) (*domain.Actor, error)
}
