package ports

import (
	"context"

	"github.com/filmotheque/catalog-api/internal/core/domain"
)

// CreateFilmInput carries all data needed to create a catalog entry.
type CreateFilmInput struct {
	Title    string
	Year     string
	Director string
	Genre    string
	ActorIDs []string
}

// UpdateFilmInput carries the optional fields of a film update.
type UpdateFilmInput struct {
	Title    *string
	Year     *string
	Director *string
	Genre    *string
	ActorIDs *[]string
}

// FilmDetail is a film with its cast resolved.
type FilmDetail struct {
	Film domain.Film
	Cast []domain.Actor
}

// FilmService defines catalog use-cases for films.
type FilmService interface {
	Create(ctx context.Context, input CreateFilmInput) (*FilmDetail, error)
	List(ctx context.Context, keyword string) ([]domain.Film, error)
	Get(ctx context.Context, id string) (*FilmDetail, error)
	Update(ctx context.Context, id string, input UpdateFilmInput) (*FilmDetail, error)
	Delete(ctx context.Context, id string) (*domain.Film, error)
}
