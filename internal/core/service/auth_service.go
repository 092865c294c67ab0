package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/filmotheque/catalog-api/internal/core/domain"
	"github.com/filmotheque/catalog-api/internal/core/ports"
)

// dummyHash is a bcrypt hash of a throwaway value, compared on the
// unknown-user path so that lookups and password mismatches take comparable
// time.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthService implements credential validation and token issuance.
type AuthService struct {
	users  ports.UserRepository
	tokens *TokenManager
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *TokenManager, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// ValidateCredentials looks the user up by username and compares the
// password against the stored hash. Unknown username and password mismatch
// both return domain.ErrInvalidCredentials.
func (s *AuthService) ValidateCredentials(ctx context.Context, username, password string) (domain.Identity, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return domain.Identity{}, domain.ErrInvalidCredentials
		}
		return domain.Identity{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	return user.Identity(), nil
}

// Login issues an access token for an already validated identity.
func (s *AuthService) Login(_ context.Context, identity domain.Identity) (string, error) {
	token, err := s.tokens.Issue(identity)
	if err != nil {
		return "", err
	}
	s.log.Info().Str("user_id", identity.ID).Str("username", identity.Username).Msg("user logged in")
	return token, nil
}
