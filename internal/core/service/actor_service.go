package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/filmotheque/catalog-api/internal/core/domain"
	"github.com/filmotheque/catalog-api/internal/core/ports"
)

// ActorService implements cast member CRUD.
type ActorService struct {
	repo ports.ActorRepository
	log  zerolog.Logger
}

func NewActorService(repo ports.ActorRepository, log zerolog.Logger) *ActorService {
	return &ActorService{repo: repo, log: log}
}

func (s *ActorService) Create(ctx context.Context, input ports.CreateActorInput) (*domain.Actor, error) {
	actor := &domain.Actor{
		Name:        input.Name,
		Born:        input.Born,
		Height:      input.Height,
		Nationality: input.Nationality,
		Photo:       input.Photo,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, actor)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("actor_id", created.ID).Str("name", created.Name).Msg("actor created")
	return created, nil
}

func (s *ActorService) List(ctx context.Context, keyword string) ([]domain.Actor, error) {
	return s.repo.List(ctx, keyword)
}

func (s *ActorService) Get(ctx context.Context, id string) (*domain.Actor, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ActorService) Update(ctx context.Context, id string, input ports.UpdateActorInput) (*domain.Actor, error) {
	updated, err := s.repo.Update(ctx, id, ports.ActorPatch{
		Name:        input.Name,
		Born:        input.Born,
		Height:      input.Height,
		Nationality: input.Nationality,
		Photo:       input.Photo,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("actor_id", id).Msg("actor updated")
	return updated, nil
}

func (s *ActorService) Delete(ctx context.Context, id string) (*domain.Actor, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("actor_id", id).Str("name", deleted.Name).Msg("actor deleted")
	return deleted, nil
}
