package handler

import (
	"time"

	"github.com/filmotheque/catalog-api/internal/core/domain"
	"github.com/filmotheque/catalog-api/internal/core/ports"
)

type createReviewRequest struct {
	FilmID  string `json:"film_id" validate:"required"`
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,min=1"`
}

type updateReviewRequest struct {
	Rating  *int    `json:"rating"  validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,min=1"`
}

type reviewResponse struct {
	ID        string     `json:"id"`
	FilmID    string     `json:"film_id"`
	UserID    string     `json:"user_id"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type reviewerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type reviewWithUserResponse struct {
	reviewResponse
	User reviewerResponse `json:"user"`
}

func toReviewResponse(r *domain.Review) reviewResponse {
	resp := reviewResponse{
		ID:        r.ID,
		FilmID:    r.FilmID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.UTC(),
	}
	if !r.UpdatedAt.IsZero() {
		updated := r.UpdatedAt.UTC()
		resp.UpdatedAt = &updated
	}
	return resp
}

func toReviewWithUserResponses(items []ports.ReviewWithUser) []reviewWithUserResponse {
	out := make([]reviewWithUserResponse, len(items))
	for i, item := range items {
		review := item.Review
		out[i] = reviewWithUserResponse{
			reviewResponse: toReviewResponse(&review),
			User: reviewerResponse{
				ID:       item.User.ID,
				Username: item.User.Username,
			},
		}
	}
	return out
}
