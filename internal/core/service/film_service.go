package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/filmotheque/catalog-api/internal/core/domain"
	"github.com/filmotheque/catalog-api/internal/core/ports"
)

// CatalogCache abstracts the film read cache (Redis). A (nil, nil) return
// means cache miss; cache failures are never fatal to a request.
type CatalogCache interface {
	GetList(ctx context.Context, keyword string) ([]domain.Film, error)
	SetList(ctx context.Context, keyword string, films []domain.Film) error
	GetDetail(ctx context.Context, id string) (*ports.FilmDetail, error)
	SetDetail(ctx context.Context, id string, detail *ports.FilmDetail) error
	Invalidate(ctx context.Context) error
}

// FilmService implements catalog CRUD with read-through caching.
type FilmService struct {
	films  ports.FilmRepository
	actors ports.ActorRepository
	cache  CatalogCache
	log    zerolog.Logger
}

func NewFilmService(films ports.FilmRepository, actors ports.ActorRepository, cache CatalogCache, log zerolog.Logger) *FilmService {
	return &FilmService{films: films, actors: actors, cache: cache, log: log}
}

// Create inserts a film and links its cast. Every referenced actor id must
// exist.
func (s *FilmService) Create(ctx context.Context, input ports.CreateFilmInput) (*ports.FilmDetail, error) {
	cast, err := s.resolveCast(ctx, input.ActorIDs)
	if err != nil {
		return nil, err
	}

	film := &domain.Film{
		Title:     input.Title,
		Year:      input.Year,
		Director:  input.Director,
		Genre:     input.Genre,
		ActorIDs:  uniqueIDs(input.ActorIDs),
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.films.Insert(ctx, film)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.Info().Str("film_id", created.ID).Str("title", created.Title).Msg("film created")
	return &ports.FilmDetail{Film: *created, Cast: cast}, nil
}

func (s *FilmService) List(ctx context.Context, keyword string) ([]domain.Film, error) {
	if cached, err := s.cache.GetList(ctx, keyword); err != nil {
		s.log.Warn().Err(err).Msg("film list cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	films, err := s.films.List(ctx, keyword)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetList(ctx, keyword, films); err != nil {
		s.log.Warn().Err(err).Msg("film list cache write failed")
	}
	return films, nil
}

func (s *FilmService) Get(ctx context.Context, id string) (*ports.FilmDetail, error) {
	if cached, err := s.cache.GetDetail(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("film_id", id).Msg("film detail cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	film, err := s.films.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cast, err := s.actors.FindByIDs(ctx, film.ActorIDs)
	if err != nil {
		return nil, err
	}

	detail := &ports.FilmDetail{Film: *film, Cast: cast}
	if err := s.cache.SetDetail(ctx, id, detail); err != nil {
		s.log.Warn().Err(err).Str("film_id", id).Msg("film detail cache write failed")
	}
	return detail, nil
}

// Update patches a film. When ActorIDs is set it replaces the whole cast
// set, it never appends.
func (s *FilmService) Update(ctx context.Context, id string, input ports.UpdateFilmInput) (*ports.FilmDetail, error) {
	patch := ports.FilmPatch{
		Title:    input.Title,
		Year:     input.Year,
		Director: input.Director,
		Genre:    input.Genre,
	}
	if input.ActorIDs != nil {
		if _, err := s.resolveCast(ctx, *input.ActorIDs); err != nil {
			return nil, err
		}
		ids := uniqueIDs(*input.ActorIDs)
		patch.ActorIDs = &ids
	}

	updated, err := s.films.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	cast, err := s.actors.FindByIDs(ctx, updated.ActorIDs)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.Info().Str("film_id", id).Msg("film updated")
	return &ports.FilmDetail{Film: *updated, Cast: cast}, nil
}

func (s *FilmService) Delete(ctx context.Context, id string) (*domain.Film, error) {
	deleted, err := s.films.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.Info().Str("film_id", id).Str("title", deleted.Title).Msg("film deleted")
	return deleted, nil
}

// resolveCast loads the referenced actors and fails with ErrInvalidReference
// when any id is unknown.
func (s *FilmService) resolveCast(ctx context.Context, ids []string) ([]domain.Actor, error) {
	unique := uniqueIDs(ids)
	if len(unique) == 0 {
		return nil, nil
	}
	cast, err := s.actors.FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	if len(cast) != len(unique) {
		return nil, domain.ErrInvalidReference
	}
	return cast, nil
}

func (s *FilmService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}

func uniqueIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
