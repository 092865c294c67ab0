package ports

import (
	"context"

	"github.com/filmotheque/catalog-api/internal/core/domain"
)

// ReviewPatch carries the optional fields of a review update.
type ReviewPatch struct {
	Rating  *int
	Comment *string
}

// ReviewRepository defines persistence for reviews. The list operations
// return reviews joined with their reviewer's public fields.
type ReviewRepository interface {
	Insert(ctx context.Context, review *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	ListByFilm(ctx context.Context, filmID string) ([]ReviewWithUser, error)
	ListByUser(ctx context.Context, userID string) ([]ReviewWithUser, error)
	Update(ctx context.Context, id string, patch ReviewPatch) (*domain.Review, error)
	Delete(ctx context.Context, id string) (*domain.Review, error)
}
