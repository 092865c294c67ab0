package ports

import (
	"context"

	"github.com/filmotheque/catalog-api/internal/core/domain"
)

// ActivityRepository persists the audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) error
	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.Activity, error)
}
