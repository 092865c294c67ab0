package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/filmotheque/catalog-api/internal/core/domain"
	"github.com/filmotheque/catalog-api/internal/core/ports"
)

// hashCost matches the work factor the accounts were originally created
// with; changing it would invalidate no existing hash but slow new ones.
const hashCost = 10

// UserService implements account registration and self-service.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Register creates an account with the default user role. The role is never
// taken from the request payload.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), hashCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// Get returns a single account. Non-admin callers may only read their own.
func (s *UserService) Get(ctx context.Context, id string, caller domain.Identity) (*domain.User, error) {
	if !caller.CanAccess(id) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, id)
}

// Update patches an account. Non-admin callers may only update their own,
// and only admins may touch the role field.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput, caller domain.Identity) (*domain.User, error) {
	if !caller.CanAccess(id) {
		return nil, domain.ErrForbidden
	}
	if input.Role != nil && caller.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	patch := ports.UserPatch{Username: input.Username, Role: input.Role}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), hashCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		patch.PasswordHash = &hashed
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Str("by", caller.ID).Msg("user updated")
	return updated, nil
}

// Delete removes an account. Non-admin callers may only delete their own.
func (s *UserService) Delete(ctx context.Context, id string, caller domain.Identity) (*domain.User, error) {
	if !caller.CanAccess(id) {
		return nil, domain.ErrForbidden
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Str("by", caller.ID).Msg("user deleted")
	return deleted, nil
}
