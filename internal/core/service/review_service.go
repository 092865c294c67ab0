package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/filmotheque/catalog-api/internal/core/domain"
	"github.com/filmotheque/catalog-api/internal/core/ports"
)

// ReviewService implements review CRUD with the ownership policy: admins may
// mutate any review, other callers only reviews they own.
type ReviewService struct {
	reviews ports.ReviewRepository
	films   ports.FilmRepository
	log     zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, films ports.FilmRepository, log zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, films: films, log: log}
}

// Create submits a review owned by the caller. The film must exist; a user
// may review a given film only once.
func (s *ReviewService) Create(ctx context.Context, input ports.CreateReviewInput, caller domain.Identity) (*domain.Review, error) {
	if _, err := s.films.FindByID(ctx, input.FilmID); err != nil {
		if errors.Is(err, domain.ErrFilmNotFound) {
			return nil, domain.ErrInvalidReference
		}
		return nil, err
	}

	review := &domain.Review{
		FilmID:    input.FilmID,
		UserID:    caller.ID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.reviews.Insert(ctx, review)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("review_id", created.ID).Str("film_id", input.FilmID).Str("user_id", caller.ID).Msg("review created")
	return created, nil
}

func (s *ReviewService) ListByFilm(ctx context.Context, filmID string) ([]ports.ReviewWithUser, error) {
	return s.reviews.ListByFilm(ctx, filmID)
}

func (s *ReviewService) ListByUser(ctx context.Context, userID string) ([]ports.ReviewWithUser, error) {
	return s.reviews.ListByUser(ctx, userID)
}

// Update patches a review after the ownership check. Existence is checked
// first so an unknown id is 404 rather than 403.
func (s *ReviewService) Update(ctx context.Context, id string, input ports.UpdateReviewInput, caller domain.Identity) (*domain.Review, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(review.UserID) {
		return nil, domain.ErrForbidden
	}

	updated, err := s.reviews.Update(ctx, id, ports.ReviewPatch{Rating: input.Rating, Comment: input.Comment})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("review_id", id).Str("by", caller.ID).Msg("review updated")
	return updated, nil
}

// Delete removes a review after the ownership check.
func (s *ReviewService) Delete(ctx context.Context, id string, caller domain.Identity) (*domain.Review, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(review.UserID) {
		return nil, domain.ErrForbidden
	}

	deleted, err := s.reviews.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("review_id", id).Str("by", caller.ID).Msg("review deleted")
	return deleted, nil
}
