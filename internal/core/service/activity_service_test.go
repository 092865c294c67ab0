package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/filmotheque/catalog-api/internal/core/domain"
	"github.com/filmotheque/catalog-api/internal/core/ports"
)

type stubActivityRepo struct {
	entries   []domain.Activity
	lastLimit int
}

func (r *stubActivityRepo) Insert(_ context.Context, activity *domain.Activity) error {
	r.entries = append(r.entries, *activity)
	return nil
}

func (r *stubActivityRepo) ListRecent(_ context.Context, limit int) ([]domain.Activity, error) {
	r.lastLimit = limit
	if len(r.entries) > limit {
		return r.entries[:limit], nil
	}
	return r.entries, nil
}

type stubDedup struct {
	marked map[string]bool
}

func newStubDedup() *stubDedup {
	return &stubDedup{marked: make(map[string]bool)}
}

func (d *stubDedup) key(actorID, action, subjectID string, at time.Time) string {
	return actorID + "|" + action + "|" + subjectID + "|" + at.UTC().String()
}

func (d *stubDedup) IsDuplicate(_ context.Context, actorID, action, subjectID string, at time.Time) (bool, error) {
	return d.marked[d.key(actorID, action, subjectID, at)], nil
}

func (d *stubDedup) Mark(_ context.Context, actorID, action, subjectID string, at time.Time) error {
	d.marked[d.key(actorID, action, subjectID, at)] = true
	return nil
}

func TestActivityService_Process_RecordsEntry(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, newStubDedup(), zerolog.Nop())

	event := ports.ActivityInput{
		ActorID:     "u1",
		Action:      domain.ActionFilmCreated,
		SubjectType: "film",
		SubjectID:   "f1",
		At:          time.Now().UTC(),
	}
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(repo.entries))
	}
	if repo.entries[0].Action != domain.ActionFilmCreated {
		t.Fatalf("unexpected action: %s", repo.entries[0].Action)
	}
}

func TestActivityService_Process_SkipsDuplicates(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, newStubDedup(), zerolog.Nop())

	event := ports.ActivityInput{
		ActorID:     "u1",
		Action:      domain.ActionReviewCreated,
		SubjectType: "review",
		SubjectID:   "r1",
		At:          time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("first Process returned error: %v", err)
	}
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("redelivered Process returned error: %v", err)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("expected duplicate to be skipped, got %d entries", len(repo.entries))
	}
}

func TestActivityService_ListRecent_ClampsLimit(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, newStubDedup(), zerolog.Nop())

	cases := []struct {
		in   int
		want int
	}{
		{0, 50},
		{-3, 50},
		{101, 50},
		{10, 10},
	}
	for _, tc := range cases {
		if _, err := svc.ListRecent(context.Background(), tc.in); err != nil {
			t.Fatalf("ListRecent(%d) returned error: %v", tc.in, err)
		}
		if repo.lastLimit != tc.want {
			t.Fatalf("ListRecent(%d): expected limit %d, got %d", tc.in, tc.want, repo.lastLimit)
		}
	}
}
