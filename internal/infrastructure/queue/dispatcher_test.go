package queue

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/filmotheque/catalog-api/internal/core/domain"
	"github.com/filmotheque/catalog-api/internal/core/ports"
)

type captureService struct {
	processed chan ports.ActivityInput
}

func (s *captureService) Process(_ context.Context, event ports.ActivityInput) error {
	s.processed <- event
	return nil
}

func (s *captureService) ListRecent(_ context.Context, _ int) ([]domain.Activity, error) {
	return nil, nil
}

func TestDispatcher_ProcessesEnqueuedEvents(t *testing.T) {
	svc := &captureService{processed: make(chan ports.ActivityInput, 8)}
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	events := []ports.ActivityInput{
		{ActorID: "u1", Action: domain.ActionFilmCreated, SubjectType: "film", SubjectID: "f1", At: time.Now().UTC()},
		{ActorID: "u1", Action: domain.ActionFilmUpdated, SubjectType: "film", SubjectID: "f1", At: time.Now().UTC()},
		{ActorID: "u2", Action: domain.ActionReviewCreated, SubjectType: "review", SubjectID: "r9", At: time.Now().UTC()},
	}
	for _, e := range events {
		d.Enqueue(e)
	}

	got := make([]ports.ActivityInput, 0, len(events))
	for range events {
		select {
		case e := <-svc.processed:
			got = append(got, e)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for events, got %d of %d", len(got), len(events))
		}
	}
}

func TestDispatcher_SameSubjectKeepsOrder(t *testing.T) {
	svc := &captureService{processed: make(chan ports.ActivityInput, 8)}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	actions := []string{domain.ActionFilmCreated, domain.ActionFilmUpdated, domain.ActionFilmDeleted}
	for _, a := range actions {
		d.Enqueue(ports.ActivityInput{ActorID: "u1", Action: a, SubjectType: "film", SubjectID: "same-film", At: time.Now().UTC()})
	}

	for i, want := range actions {
		select {
		case e := <-svc.processed:
			if e.Action != want {
				t.Fatalf("event %d: expected %q, got %q", i, want, e.Action)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(4, &captureService{processed: make(chan ports.ActivityInput, 1)}, zerolog.Nop())

	first := d.shardIndex("subject-42")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("subject-42"); got != first {
			t.Fatalf("shard index not deterministic: %d != %d", got, first)
		}
	}
}
