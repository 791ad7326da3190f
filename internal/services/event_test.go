package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventregister/internal/domain"
)

type listParticipantRepository struct {
	mockParticipantRepository
	byEvent map[string][]*domain.Participant
	err     error
}

func (m *listParticipantRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Participant, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byEvent[eventID], nil
}

type listEventRepository struct {
	mockEventRepository
	list    []*domain.Event
	listErr error
	created []*domain.Event
}

func (m *listEventRepository) Create(ctx context.Context, event *domain.Event) error {
	event.ID = "e-created"
	m.created = append(m.created, event)
	return nil
}

func (m *listEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.list, nil
}

func TestEventService_CreateEvent(t *testing.T) {
	repo := &listEventRepository{}
	svc := NewEventService(repo, &mockParticipantRepository{}, time.Second)

	event := domain.NewEvent("Go Meetup", "Monthly meetup", "2026-06-02", "19:00:00", time.Time{}, time.Time{})
	if err := svc.CreateEvent(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.ID != "e-created" {
		t.Fatalf("expected repository-assigned id, got %q", event.ID)
	}
	if event.CreatedAt.IsZero() || event.UpdatedAt.IsZero() {
		t.Fatal("timestamps must be set on create")
	}
}

func TestEventService_ListEvents(t *testing.T) {
	tests := []struct {
		name      string
		repo      *listEventRepository
		wantCount int
		wantErr   bool
	}{
		{
			name:      "nil result becomes empty slice",
			repo:      &listEventRepository{list: nil},
			wantCount: 0,
		},
		{
			name: "events returned in repository order",
			repo: &listEventRepository{list: []*domain.Event{
				{ID: "e1", Date: "2026-06-01"},
				{ID: "e2", Date: "2026-06-02"},
			}},
			wantCount: 2,
		},
		{
			name:    "repository error",
			repo:    &listEventRepository{listErr: errors.New("db error")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEventService(tt.repo, &mockParticipantRepository{}, time.Second)
			got, err := svc.ListEvents(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got %v", tt.wantErr, err)
			}
			if err != nil {
				return
			}
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if len(got) != tt.wantCount {
				t.Fatalf("expected %d events, got %d", tt.wantCount, len(got))
			}
		})
	}
}

func TestEventService_GetEventByID(t *testing.T) {
	event := &domain.Event{ID: "e1", Name: "Go Meetup"}
	svc := NewEventService(
		&mockEventRepository{events: map[string]*domain.Event{"e1": event}},
		&mockParticipantRepository{},
		time.Second,
	)

	got, err := svc.GetEventByID(context.Background(), "e1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "e1" {
		t.Fatalf("unexpected event %+v", got)
	}

	if _, err := svc.GetEventByID(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEventService_ListEventParticipants(t *testing.T) {
	repo := &listParticipantRepository{
		byEvent: map[string][]*domain.Participant{
			"e1": {
				{ID: "p1", Name: "Ann"},
				{ID: "p2", Name: "Bo"},
			},
		},
	}
	svc := NewEventService(&mockEventRepository{events: map[string]*domain.Event{}}, repo, time.Second)

	got, err := svc.ListEventParticipants(context.Background(), "e1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(got))
	}

	// Unknown event yields an empty slice, not an error.
	got, err = svc.ListEventParticipants(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}
