package domain

import (
	"context"
	"time"
)

// Registration links exactly one event and one participant. The pair is
// unique: at most one registration per participant per event.
// swagger:model Registration
type Registration struct {
	ID            string    `json:"id"`
	EventID       string    `json:"event_id"`
	ParticipantID string    `json:"participant_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewRegistration creates a new Registration. ID is typically set by the repository on create.
func NewRegistration(eventID, participantID string, createdAt time.Time) *Registration {
	return &Registration{
		EventID:       eventID,
		ParticipantID: participantID,
		CreatedAt:     createdAt,
	}
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	// Create inserts the registration. The store's uniqueness constraint on
	// (event_id, participant_id) is authoritative: a violation surfaces as
	// ErrAlreadyRegistered.
	Create(ctx context.Context, reg *Registration) error
	ExistsByEventAndParticipant(ctx context.Context, eventID, participantID string) (bool, error)
}

// RegistrationService runs the registration workflow: event resolution,
// timing window, participant lookup-or-create, duplicate check, creation,
// and compensating cleanup of a provisional participant on failure.
type RegistrationService interface {
	Register(ctx context.Context, eventID string, input ParticipantInput) (*Registration, error)
}
