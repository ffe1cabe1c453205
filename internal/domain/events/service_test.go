package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"eldercare-panel/internal/domain/validation"
)

type testRepo struct {
	sent []Payload
}

func (r *testRepo) GetAll(context.Context) ([]Event, error) {
	return []Event{}, nil
}

func (r *testRepo) Get(_ context.Context, id string) (Event, error) {
	return Event{ID: id}, nil
}

func (r *testRepo) Delete(context.Context, string) error {
	return nil
}

func (r *testRepo) Create(_ context.Context, payload any) (Event, error) {
	p := payload.(Payload)
	r.sent = append(r.sent, p)
	return Event{ID: "new", Title: p.Title, StartDateTime: p.StartDateTime, EndDateTime: p.EndDateTime}, nil
}

func (r *testRepo) Update(_ context.Context, id string, payload any) (Event, error) {
	p := payload.(Payload)
	r.sent = append(r.sent, p)
	return Event{ID: id, Title: p.Title}, nil
}

func TestCreate_NeverSendsEndBeforeStart(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	f := Form{Title: "X", StartDateTime: "2024-07-01T10:00", EndDateTime: "2024-07-01T12:00:00Z"}
	_, err := svc.Create(context.Background(), f)

	var vErr *validation.Error
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.Update(context.Background(), "1", f); !errors.As(err, &vErr) {
		t.Fatalf("update: expected validation error, got %v", err)
	}
	if len(repo.sent) != 0 {
		t.Fatalf("backend must not be called, got %+v", repo.sent)
	}
}

func TestCreate_SentRangeIsOrdered(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	f := Form{Title: "X", StartDateTime: "2024-07-01T08:00", EndDateTime: "2024-07-01T12:00:00Z"}
	if _, err := svc.Create(context.Background(), f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.sent) != 1 {
		t.Fatalf("expected one request, got %d", len(repo.sent))
	}
	start, _ := time.Parse(time.RFC3339, repo.sent[0].StartDateTime)
	end, _ := time.Parse(time.RFC3339, repo.sent[0].EndDateTime)
	if end.Before(start) {
		t.Fatalf("sent end %s before start %s", repo.sent[0].EndDateTime, repo.sent[0].StartDateTime)
	}
	if repo.sent[0].StartDateTime != "2024-07-01T11:00:00Z" {
		t.Fatalf("unexpected start %s", repo.sent[0].StartDateTime)
	}
}
