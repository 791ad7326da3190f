package domain

import (
	"context"
	"time"
)

// DateLayout and TimeLayout are the wire and storage formats for an event's
// calendar date and time of day.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Event represents a scheduled happening participants register for.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Time        string    `json:"time"` // HH:MM:SS
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(name, description, date, timeOfDay string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Name:        name,
		Description: description,
		Date:        date,
		Time:        timeOfDay,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// StartsAt combines the event's date and time of day into a single moment
// interpreted in loc.
func (e *Event) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, e.Date+" "+e.Time, loc)
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// List returns all events ordered by date, then time, ascending.
	List(ctx context.Context) ([]*Event, error)
}

// EventService defines event creation and the read-only projections.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEventByID(ctx context.Context, id string) (*Event, error)
	// ListEventParticipants returns the participants registered for the
	// event ordered by name; an unknown event yields an empty slice.
	ListEventParticipants(ctx context.Context, eventID string) ([]*Participant, error)
}
