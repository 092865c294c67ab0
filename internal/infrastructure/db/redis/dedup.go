package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dedupPrefix = "catalog:activity:dedup:"
	dedupTTL    = time.Hour
)

// DedupChecker marks processed activity events in Redis so redelivered
// events are not recorded twice. Keys expire after an hour; an event seen
// again later than that is treated as new.
type DedupChecker struct {
	client *redis.Client
}

func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

func dedupKey(actorID, action, subjectID string, at time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s:%d", dedupPrefix, actorID, action, subjectID, at.Unix())
}

func (d *DedupChecker) IsDuplicate(ctx context.Context, actorID, action, subjectID string, at time.Time) (bool, error) {
	err := d.client.Get(ctx, dedupKey(actorID, action, subjectID, at)).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("dedup get: %w", err)
	}
	return true, nil
}

func (d *DedupChecker) Mark(ctx context.Context, actorID, action, subjectID string, at time.Time) error {
	return d.client.Set(ctx, dedupKey(actorID, action, subjectID, at), 1, dedupTTL).Err()
}
