package ports

import (
	"context"

	"github.com/filmotheque/catalog-api/internal/core/domain"
)

// CreateReviewInput carries a new review. The owner is always the caller;
// there is no way to submit a review on someone else's behalf.
type CreateReviewInput struct {
	FilmID  string
	Rating  int
	Comment string
}

// UpdateReviewInput carries the optional fields of a review update.
type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

// ReviewWithUser pairs a review with its reviewer's public fields.
type ReviewWithUser struct {
	Review domain.Review
	User   domain.Reviewer
}

// ReviewService defines review use-cases. Update and Delete enforce the
// ownership policy: admins may act on any review, other callers only on
// reviews whose UserID equals their own id.
type ReviewService interface {
	Create(ctx context.Context, input CreateReviewInput, caller domain.Identity) (*domain.Review, error)
	ListByFilm(ctx context.Context, filmID string) ([]ReviewWithUser, error)
	ListByUser(ctx context.Context, userID string) ([]ReviewWithUser, error)
	Update(ctx context.Context, id string, input UpdateReviewInput, caller domain.Identity) (*domain.Review, error)
	Delete(ctx context.Context, id string, caller domain.Identity) (*domain.Review, error)
}
