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

type stubFilmRepo struct {
	films  map[string]*domain.Film
	nextID int
}

func newStubFilmRepo() *stubFilmRepo {
	return &stubFilmRepo{films: make(map[string]*domain.Film)}
}

func cloneFilm(f *domain.Film) *domain.Film {
	if f == nil {
		return nil
	}
	clone := *f
	return &clone
}

func (r *stubFilmRepo) Insert(_ context.Context, film *domain.Film) (*domain.Film, error) {
	for _, f := range r.films {
		if f.Title == film.Title {
			return nil, domain.ErrFilmExists
		}
	}
	copy := cloneFilm(film)
	r.nextID++
	copy.ID = fmt.Sprintf("film-%d", r.nextID)
	r.films[copy.ID] = cloneFilm(copy)
	return copy, nil
}

func (r *stubFilmRepo) FindByID(_ context.Context, id string) (*domain.Film, error) {
	if f, ok := r.films[id]; ok {
		return cloneFilm(f), nil
	}
	return nil, domain.ErrFilmNotFound
}

func (r *stubFilmRepo) List(_ context.Context, keyword string) ([]domain.Film, error) {
	out := make([]domain.Film, 0, len(r.films))
	for _, f := range r.films {
		out = append(out, *cloneFilm(f))
	}
	return out, nil
}

func (r *stubFilmRepo) Update(_ context.Context, id string, patch ports.FilmPatch) (*domain.Film, error) {
	f, ok := r.films[id]
	if !ok {
		return nil, domain.ErrFilmNotFound
	}
	if patch.Title != nil {
		f.Title = *patch.Title
	}
	if patch.Year != nil {
		f.Year = *patch.Year
	}
	if patch.Director != nil {
		f.Director = *patch.Director
	}
	if patch.Genre != nil {
		f.Genre = *patch.Genre
	}
	if patch.ActorIDs != nil {
		f.ActorIDs = *patch.ActorIDs
	}
	f.UpdatedAt = time.Now().UTC()
	return cloneFilm(f), nil
}

func (r *stubFilmRepo) Delete(_ context.Context, id string) (*domain.Film, error) {
	f, ok := r.films[id]
	if !ok {
		return nil, domain.ErrFilmNotFound
	}
	delete(r.films, id)
	return f, nil
}

type stubActorRepo struct {
	actors map[string]*domain.Actor
}

func newStubActorRepo() *stubActorRepo {
	return &stubActorRepo{actors: make(map[string]*domain.Actor)}
}

func (r *stubActorRepo) Insert(_ context.Context, actor *domain.Actor) (*domain.Actor, error) {
	clone := *actor
	if clone.ID == "" {
		clone.ID = "actor-" + actor.Name
	}
	r.actors[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubActorRepo) FindByID(_ context.Context, id string) (*domain.Actor, error) {
	if a, ok := r.actors[id]; ok {
		copy := *a
		return &copy, nil
	}
	return nil, domain.ErrActorNotFound
}

func (r *stubActorRepo) FindByIDs(_ context.Context, ids []string) ([]domain.Actor, error) {
	out := make([]domain.Actor, 0, len(ids))
	for _, id := range ids {
		if a, ok := r.actors[id]; ok {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubActorRepo) List(_ context.Context, keyword string) ([]domain.Actor, error) {
	out := make([]domain.Actor, 0, len(r.actors))
	for _, a := range r.actors {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubActorRepo) Update(_ context.Context, id string, patch ports.ActorPatch) (*domain.Actor, error) {
	a, ok := r.actors[id]
	if !ok {
		return nil, domain.ErrActorNotFound
	}
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	copy := *a
	return &copy, nil
}

func (r *stubActorRepo) Delete(_ context.Context, id string) (*domain.Actor, error) {
	a, ok := r.actors[id]
	if !ok {
		return nil, domain.ErrActorNotFound
	}
	delete(r.actors, id)
	return a, nil
}

// stubCache records hits and writes; Get methods serve the seeded values.
type stubCache struct {
	lists       map[string][]domain.Film
	details     map[string]*ports.FilmDetail
	invalidated int
}

func newStubCache() *stubCache {
	return &stubCache{
		lists:   make(map[string][]domain.Film),
		details: make(map[string]*ports.FilmDetail),
	}
}

func (c *stubCache) GetList(_ context.Context, keyword string) ([]domain.Film, error) {
	return c.lists[keyword], nil
}

func (c *stubCache) SetList(_ context.Context, keyword string, films []domain.Film) error {
	c.lists[keyword] = films
	return nil
}

func (c *stubCache) GetDetail(_ context.Context, id string) (*ports.FilmDetail, error) {
	return c.details[id], nil
}

func (c *stubCache) SetDetail(_ context.Context, id string, detail *ports.FilmDetail) error {
	c.details[id] = detail
	return nil
}

func (c *stubCache) Invalidate(_ context.Context) error {
	c.lists = make(map[string][]domain.Film)
	c.details = make(map[string]*ports.FilmDetail)
	c.invalidated++
	return nil
}

func seedActor(t *testing.T, repo *stubActorRepo, name string) *domain.Actor {
	t.Helper()
	actor, err := repo.Insert(context.Background(), &domain.Actor{Name: name, CreatedAt: time.Now().UTC()})
	if err != nil {
		t.Fatalf("seed actor: %v", err)
	}
	return actor
}

func TestFilmService_Create_ResolvesCast(t *testing.T) {
	films := newStubFilmRepo()
	actors := newStubActorRepo()
	cache := newStubCache()
	svc := NewFilmService(films, actors, cache, zerolog.Nop())

	a1 := seedActor(t, actors, "Anna")
	a2 := seedActor(t, actors, "Ben")

	detail, err := svc.Create(context.Background(), ports.CreateFilmInput{
		Title:    "Metropolis",
		Year:     "1927",
		Director: "Fritz Lang",
		Genre:    "sci-fi",
		ActorIDs: []string{a1.ID, a2.ID, a1.ID}, // duplicate id collapses
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if len(detail.Cast) != 2 {
		t.Fatalf("expected 2 cast members, got %d", len(detail.Cast))
	}
	if len(detail.Film.ActorIDs) != 2 {
		t.Fatalf("expected deduplicated cast ids, got %v", detail.Film.ActorIDs)
	}
}

func TestFilmService_Create_UnknownActor(t *testing.T) {
	svc := NewFilmService(newStubFilmRepo(), newStubActorRepo(), newStubCache(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateFilmInput{
		Title:    "Metropolis",
		Year:     "1927",
		Director: "Fritz Lang",
		Genre:    "sci-fi",
		ActorIDs: []string{"ghost"},
	})
	if !errors.Is(err, domain.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}

func TestFilmService_List_ServesFromCache(t *testing.T) {
	films := newStubFilmRepo()
	cache := newStubCache()
	svc := NewFilmService(films, newStubActorRepo(), cache, zerolog.Nop())

	cached := []domain.Film{{ID: "film-1", Title: "Cached"}}
	cache.lists[""] = cached

	got, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Cached" {
		t.Fatalf("expected cached listing, got %v", got)
	}
}

func TestFilmService_List_PopulatesCacheOnMiss(t *testing.T) {
	films := newStubFilmRepo()
	cache := newStubCache()
	svc := NewFilmService(films, newStubActorRepo(), cache, zerolog.Nop())

	if _, err := films.Insert(context.Background(), &domain.Film{Title: "Alien"}); err != nil {
		t.Fatalf("seed film: %v", err)
	}

	got, err := svc.List(context.Background(), "ali")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 film, got %d", len(got))
	}
	if cache.lists["ali"] == nil {
		t.Fatalf("expected listing to be cached")
	}
}

func TestFilmService_Update_ReplacesCastSet(t *testing.T) {
	films := newStubFilmRepo()
	actors := newStubActorRepo()
	svc := NewFilmService(films, actors, newStubCache(), zerolog.Nop())

	a1 := seedActor(t, actors, "Anna")
	a2 := seedActor(t, actors, "Ben")

	created, err := svc.Create(context.Background(), ports.CreateFilmInput{
		Title: "Metropolis", Year: "1927", Director: "Fritz Lang", Genre: "sci-fi",
		ActorIDs: []string{a1.ID},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	newCast := []string{a2.ID}
	updated, err := svc.Update(context.Background(), created.Film.ID, ports.UpdateFilmInput{ActorIDs: &newCast})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if len(updated.Film.ActorIDs) != 1 || updated.Film.ActorIDs[0] != a2.ID {
		t.Fatalf("expected cast replaced with %q, got %v", a2.ID, updated.Film.ActorIDs)
	}
}

func TestFilmService_Delete_InvalidatesCache(t *testing.T) {
	films := newStubFilmRepo()
	cache := newStubCache()
	svc := NewFilmService(films, newStubActorRepo(), cache, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateFilmInput{
		Title: "Alien", Year: "1979", Director: "Ridley Scott", Genre: "horror",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	invalidationsAfterCreate := cache.invalidated

	if _, err := svc.Delete(context.Background(), created.Film.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if cache.invalidated != invalidationsAfterCreate+1 {
		t.Fatalf("expected cache invalidation on delete")
	}
}
