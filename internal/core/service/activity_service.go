package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/filmotheque/catalog-api/internal/api/metrics"
	"github.com/filmotheque/catalog-api/internal/core/domain"
	"github.com/filmotheque/catalog-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis) for activity events.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, actorID, action, subjectID string, at time.Time) (bool, error)
	Mark(ctx context.Context, actorID, action, subjectID string, at time.Time) error
}

type activityService struct {
	repo  ports.ActivityRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, dedup DedupChecker, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single audit event.
func (s *activityService) Process(ctx context.Context, event ports.ActivityInput) error {
	start := time.Now()

	isDup, err := s.dedup.IsDuplicate(ctx, event.ActorID, event.Action, event.SubjectID, event.At)
	if err != nil {
		s.log.Warn().Err(err).Str("action", event.Action).Msg("dedup check failed, recording anyway")
	} else if isDup {
		metrics.ActivitiesDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("action", event.Action).Str("subject_id", event.SubjectID).Msg("duplicate activity skipped")
		return nil
	}
	metrics.ActivitiesDedupTotal.WithLabelValues("miss").Inc()

	// Mark before writing so a crashed retry cannot record the entry twice.
	if markErr := s.dedup.Mark(ctx, event.ActorID, event.Action, event.SubjectID, event.At); markErr != nil {
		s.log.Warn().Err(markErr).Str("action", event.Action).Msg("failed to set dedup key")
	}

	entry := &domain.Activity{
		ActorID:     event.ActorID,
		Action:      event.Action,
		SubjectType: event.SubjectType,
		SubjectID:   event.SubjectID,
		At:          event.At,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		metrics.ActivitiesErrorsTotal.WithLabelValues("insert_failed").Inc()
		metrics.ActivityProcessingDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("record activity: %w", err)
	}

	metrics.ActivitiesRecordedTotal.WithLabelValues(event.Action).Inc()
	metrics.ActivityProcessingDuration.WithLabelValues(event.Action).Observe(time.Since(start).Seconds())
	return nil
}

// ListRecent returns up to limit audit entries, newest first.
func (s *activityService) ListRecent(ctx context.Context, limit int) ([]domain.Activity, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.ListRecent(ctx, limit)
}
