package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/filmotheque/catalog-api/internal/core/domain"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	mgr := NewTokenManager("secret", time.Hour)

	identity := domain.Identity{ID: "u1", Username: "alice", Role: domain.RoleAdmin}
	token, err := mgr.Issue(identity)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	got, err := mgr.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if got != identity {
		t.Fatalf("identity mismatch: got %+v, want %+v", got, identity)
	}
}

func TestTokenManager_Expired(t *testing.T) {
	mgr := NewTokenManager("secret", time.Hour)

	now := time.Now().Add(-2 * time.Hour)
	claims := tokenClaims{
		Username: "alice",
		Role:     domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := mgr.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue(domain.Identity{ID: "u1", Username: "alice", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenManager_Truncated(t *testing.T) {
	mgr := NewTokenManager("secret", time.Hour)

	token, err := mgr.Issue(domain.Identity{ID: "u1", Username: "alice", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	truncated := token[:len(token)-5]
	if _, err := mgr.Verify(truncated); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for truncated token, got %v", err)
	}
}

func TestTokenManager_RejectsUnsignedAlg(t *testing.T) {
	mgr := NewTokenManager("secret", time.Hour)

	claims := tokenClaims{
		Username: "alice",
		Role:     domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := mgr.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}
