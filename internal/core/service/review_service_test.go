package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/filmotheque/catalog-api/internal/core/domain"
	"github.com/filmotheque/catalog-api/internal/core/ports"
)

type stubReviewRepo struct {
	reviews map[string]*domain.Review
	nextID  int
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[string]*domain.Review)}
}

func (r *stubReviewRepo) Insert(_ context.Context, review *domain.Review) (*domain.Review, error) {
	for _, existing := range r.reviews {
		if existing.UserID == review.UserID && existing.FilmID == review.FilmID {
			return nil, domain.ErrReviewExists
		}
	}
	clone := *review
	r.nextID++
	clone.ID = fmt.Sprintf("review-%d", r.nextID)
	stored := clone
	r.reviews[clone.ID] = &stored
	return &clone, nil
}

func (r *stubReviewRepo) FindByID(_ context.Context, id string) (*domain.Review, error) {
	if rev, ok := r.reviews[id]; ok {
		clone := *rev
		return &clone, nil
	}
	return nil, domain.ErrReviewNotFound
}

func (r *stubReviewRepo) ListByFilm(_ context.Context, filmID string) ([]ports.ReviewWithUser, error) {
	out := make([]ports.ReviewWithUser, 0)
	for _, rev := range r.reviews {
		if rev.FilmID == filmID {
			out = append(out, ports.ReviewWithUser{Review: *rev, User: domain.Reviewer{ID: rev.UserID}})
		}
	}
	return out, nil
}

func (r *stubReviewRepo) ListByUser(_ context.Context, userID string) ([]ports.ReviewWithUser, error) {
	out := make([]ports.ReviewWithUser, 0)
	for _, rev := range r.reviews {
		if rev.UserID == userID {
			out = append(out, ports.ReviewWithUser{Review: *rev, User: domain.Reviewer{ID: rev.UserID}})
		}
	}
	return out, nil
}

func (r *stubReviewRepo) Update(_ context.Context, id string, patch ports.ReviewPatch) (*domain.Review, error) {
	rev, ok := r.reviews[id]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	if patch.Rating != nil {
		rev.Rating = *patch.Rating
	}
	if patch.Comment != nil {
		rev.Comment = *patch.Comment
	}
	rev.UpdatedAt = time.Now().UTC()
	clone := *rev
	return &clone, nil
}

func (r *stubReviewRepo) Delete(_ context.Context, id string) (*domain.Review, error) {
	rev, ok := r.reviews[id]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return rev, nil
}

func reviewFixture(t *testing.T) (*ReviewService, *stubReviewRepo, *domain.Film) {
	t.Helper()
	films := newStubFilmRepo()
	film, err := films.Insert(context.Background(), &domain.Film{Title: "Alien"})
	if err != nil {
		t.Fatalf("seed film: %v", err)
	}
	reviews := newStubReviewRepo()
	return NewReviewService(reviews, films, zerolog.Nop()), reviews, film
}

func TestReviewService_Create_OwnedByCaller(t *testing.T) {
	svc, _, film := reviewFixture(t)
	alice := domain.Identity{ID: "u-alice", Username: "alice", Role: domain.RoleUser}

	review, err := svc.Create(context.Background(), ports.CreateReviewInput{
		FilmID: film.ID, Rating: 5, Comment: "great",
	}, alice)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if review.UserID != alice.ID {
		t.Fatalf("expected review owned by %q, got %q", alice.ID, review.UserID)
	}
}

func TestReviewService_Create_UnknownFilm(t *testing.T) {
	svc, _, _ := reviewFixture(t)
	alice := domain.Identity{ID: "u-alice", Role: domain.RoleUser}

	_, err := svc.Create(context.Background(), ports.CreateReviewInput{
		FilmID: "ghost", Rating: 3, Comment: "meh",
	}, alice)
	if !errors.Is(err, domain.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}

func TestReviewService_Create_OnePerUserAndFilm(t *testing.T) {
	svc, _, film := reviewFixture(t)
	alice := domain.Identity{ID: "u-alice", Role: domain.RoleUser}

	if _, err := svc.Create(context.Background(), ports.CreateReviewInput{FilmID: film.ID, Rating: 4, Comment: "good"}, alice); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateReviewInput{FilmID: film.ID, Rating: 2, Comment: "changed my mind"}, alice); !errors.Is(err, domain.ErrReviewExists) {
		t.Fatalf("expected ErrReviewExists, got %v", err)
	}
}

func TestReviewService_Update_OwnershipPolicy(t *testing.T) {
	svc, _, film := reviewFixture(t)
	alice := domain.Identity{ID: "u-alice", Role: domain.RoleUser}
	bob := domain.Identity{ID: "u-bob", Role: domain.RoleUser}
	admin := domain.Identity{ID: "u-root", Role: domain.RoleAdmin}

	review, err := svc.Create(context.Background(), ports.CreateReviewInput{FilmID: film.ID, Rating: 4, Comment: "good"}, alice)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	rating := 1

	// another user may not touch alice's review
	if _, err := svc.Update(context.Background(), review.ID, ports.UpdateReviewInput{Rating: &rating}, bob); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	// the owner may
	updated, err := svc.Update(context.Background(), review.ID, ports.UpdateReviewInput{Rating: &rating}, alice)
	if err != nil {
		t.Fatalf("owner Update returned error: %v", err)
	}
	if updated.Rating != 1 {
		t.Fatalf("expected rating 1, got %d", updated.Rating)
	}

	// so may an admin
	rating = 5
	if _, err := svc.Update(context.Background(), review.ID, ports.UpdateReviewInput{Rating: &rating}, admin); err != nil {
		t.Fatalf("admin Update returned error: %v", err)
	}
}

func TestReviewService_Update_UnknownIDIsNotFound(t *testing.T) {
	svc, _, _ := reviewFixture(t)
	bob := domain.Identity{ID: "u-bob", Role: domain.RoleUser}
	rating := 3

	// an unknown review reports not-found even to a caller who could not
	// have owned it
	if _, err := svc.Update(context.Background(), "ghost", ports.UpdateReviewInput{Rating: &rating}, bob); !errors.Is(err, domain.ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}

func TestReviewService_Delete_OwnershipPolicy(t *testing.T) {
	svc, repo, film := reviewFixture(t)
	alice := domain.Identity{ID: "u-alice", Role: domain.RoleUser}
	bob := domain.Identity{ID: "u-bob", Role: domain.RoleUser}

	review, err := svc.Create(context.Background(), ports.CreateReviewInput{FilmID: film.ID, Rating: 4, Comment: "good"}, alice)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.Delete(context.Background(), review.ID, bob); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	if _, err := svc.Delete(context.Background(), review.ID, alice); err != nil {
		t.Fatalf("owner Delete returned error: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), review.ID); !errors.Is(err, domain.ErrReviewNotFound) {
		t.Fatalf("expected review to be gone, got %v", err)
	}
}
