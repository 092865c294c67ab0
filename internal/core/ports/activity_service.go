package ports

import (
	"context"
	"time"

	"github.com/filmotheque/catalog-api/internal/core/domain"
)

// ActivityInput is the DTO handed from the mutating services to the
// activity pipeline.
type ActivityInput struct {
	ActorID     string
	Action      string
	SubjectType string
	SubjectID   string
	At          time.Time
}

// ActivityRecorder enqueues audit events without blocking the request.
type ActivityRecorder interface {
	Enqueue(event ActivityInput)
}

// ActivityService processes enqueued audit events and serves the trail.
type ActivityService interface {
	Process(ctx context.Context, event ActivityInput) error
	ListRecent(ctx context.Context, limit int) ([]domain.Activity, error)
}
