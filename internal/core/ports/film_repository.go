package ports

import (
	"context"

	"github.com/filmotheque/catalog-api/internal/core/domain"
)

// FilmPatch carries the optional fields of a film update. ActorIDs, when
// set, replaces the whole cast set.
type FilmPatch struct {
	Title    *string
	Year     *string
	Director *string
	Genre    *string
	ActorIDs *[]string
}

// FilmRepository defines persistence for catalog films.
type FilmRepository interface {
	Insert(ctx context.Context, film *domain.Film) (*domain.Film, error)
	FindByID(ctx context.Context, id string) (*domain.Film, error)
	// List returns films whose title contains keyword (case-insensitive).
	// An empty keyword returns the whole catalog.
	List(ctx context.Context, keyword string) ([]domain.Film, error)
	Update(ctx context.Context, id string, patch FilmPatch) (*domain.Film, error)
	Delete(ctx context.Context, id string) (*domain.Film, error)
}
