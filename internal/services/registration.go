package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"eventregister/internal/domain"
)

type registrationService struct {
	eventRepo        domain.EventRepository
	participantRepo  domain.ParticipantRepository
	registrationRepo domain.RegistrationRepository
	emailService     domain.EmailService
	location         *time.Location
	now              func() time.Time
	contextTimeout   time.Duration
}

// NewRegistrationService creates a RegistrationService. Event dates and times
// are interpreted in loc when checking the registration window.
func NewRegistrationService(
	eventRepo domain.EventRepository,
	participantRepo domain.ParticipantRepository,
	registrationRepo domain.RegistrationRepository,
	emailService domain.EmailService,
	loc *time.Location,
	timeout time.Duration,
) domain.RegistrationService {
	return &registrationService{
		eventRepo:        eventRepo,
		participantRepo:  participantRepo,
		registrationRepo: registrationRepo,
		emailService:     emailService,
		location:         loc,
		now:              time.Now,
		contextTimeout:   timeout,
	}
}

// Register produces exactly one of a created registration or a typed error.
// It performs no writes until the event exists, its start is in the future,
// and the participant attributes are valid; a participant created by this
// request is deleted again on any subsequent failure.
func (s *registrationService) Register(ctx context.Context, eventID string, input domain.ParticipantInput) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	startsAt, err := event.StartsAt(s.location)
	if err != nil {
		return nil, fmt.Errorf("combine event date and time: %w", err)
	}
	// An event starting exactly now is closed.
	if !startsAt.After(s.now()) {
		return nil, domain.ErrRegistrationClosed
	}

	if verr := input.Validate(); verr != nil {
		return nil, verr
	}

	participant, created, err := s.resolveParticipant(ctx, input)
	if err != nil {
		return nil, err
	}

	// Best-effort pre-check for a friendly error; the store's uniqueness
	// constraint is the actual safety net under concurrent requests.
	exists, err := s.registrationRepo.ExistsByEventAndParticipant(ctx, event.ID, participant.ID)
	if err != nil {
		s.discardProvisional(ctx, participant, created)
		return nil, fmt.Errorf("check existing registration: %w", err)
	}
	if exists {
		s.discardProvisional(ctx, participant, created)
		return nil, domain.ErrAlreadyRegistered
	}

	reg := domain.NewRegistration(event.ID, participant.ID, s.now())
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		s.discardProvisional(ctx, participant, created)
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			return nil, domain.ErrAlreadyRegistered
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, domain.ErrInvalidInput
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.sendConfirmation(ctx, event, participant)

	return reg, nil
}

// resolveParticipant looks up a participant by email and creates one when no
// match exists. An existing participant is reused as stored; the request's
// name is discarded. The returned bool reports whether this request created
// the participant.
func (s *registrationService) resolveParticipant(ctx context.Context, input domain.ParticipantInput) (*domain.Participant, bool, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	existing, err := s.participantRepo.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("get participant by email: %w", err)
	}

	now := s.now()
	participant := domain.NewParticipant(strings.TrimSpace(input.Name), email, now, now)
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			// Lost a concurrent create race; the winner's row is reused.
			winner, gerr := s.participantRepo.GetByEmail(ctx, email)
			if gerr != nil {
				return nil, false, fmt.Errorf("get participant after duplicate email: %w", gerr)
			}
			return winner, false, nil
		}
		return nil, false, fmt.Errorf("create participant: %w", err)
	}
	return participant, true, nil
}

// discardProvisional deletes a participant created by this request so a
// failed registration leaves no orphaned record behind. Participants that
// existed before the request are never touched.
func (s *registrationService) discardProvisional(ctx context.Context, participant *domain.Participant, created bool) {
	if !created {
		return
	}
	if err := s.participantRepo.Delete(ctx, participant.ID); err != nil {
		log.Printf("[REGISTRATION] failed to roll back participant %s: %v", participant.ID, err)
	}
}

// sendConfirmation emails the participant after a successful registration.
// Failures are logged and never surfaced to the caller.
func (s *registrationService) sendConfirmation(ctx context.Context, event *domain.Event, participant *domain.Participant) {
	if s.emailService == nil {
		return
	}
	data := &domain.RegistrationConfirmationEmailData{
		Email:           participant.Email,
		ParticipantName: participant.Name,
		EventName:       event.Name,
		EventDate:       event.Date,
		EventTime:       event.Time,
	}
	if err := s.emailService.SendRegistrationConfirmation(ctx, data); err != nil {
		log.Printf("[REGISTRATION] failed to send confirmation email to %s: %v", participant.Email, err)
	}
}
