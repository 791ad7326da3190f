package domain

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Participant represents a person identified by email, reusable across events.
// swagger:model Participant
type Participant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewParticipant returns a new Participant with the given fields. ID is typically set by the repository on create.
func NewParticipant(name, email string, createdAt, updatedAt time.Time) *Participant {
	return &Participant{
		Name:      name,
		Email:     email,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// ParticipantInput carries the candidate attributes supplied with a
// registration request, before any participant is resolved or created.
type ParticipantInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate checks the input independent of whether a matching participant
// exists. It returns nil when the input is valid.
func (in ParticipantInput) Validate() *ValidationError {
	verr := NewValidationError()
	if strings.TrimSpace(in.Name) == "" {
		verr.Add("name", "name is required")
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		verr.Add("email", "email is required")
	} else if !emailRegex.MatchString(email) {
		verr.Add("email", "email is not a valid email address")
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// ParticipantRepository defines the interface for participant storage
type ParticipantRepository interface {
	// Create inserts the participant; ErrDuplicateEmail signals that the
	// unique email constraint was violated.
	Create(ctx context.Context, participant *Participant) error
	GetByEmail(ctx context.Context, email string) (*Participant, error)
	Delete(ctx context.Context, id string) error
	// ListByEventID returns the participants registered for the event
	// ordered by name ascending.
	ListByEventID(ctx context.Context, eventID string) ([]*Participant, error)
}
