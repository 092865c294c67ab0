package ports

import (
	"context"

	"github.com/filmotheque/catalog-api/internal/core/domain"
)

// AuthService validates credentials and issues access tokens.
//
// ValidateCredentials returns domain.ErrInvalidCredentials for both an
// unknown username and a password mismatch so callers cannot distinguish
// the two. Login trusts its input: it is only called after
// ValidateCredentials has succeeded.
type AuthService interface {
	ValidateCredentials(ctx context.Context, username, password string) (domain.Identity, error)
	Login(ctx context.Context, identity domain.Identity) (string, error)
}

// TokenVerifier checks a bearer token's signature and expiry and rebuilds
// the identity embedded in it. Failure is always domain.ErrInvalidToken.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}
