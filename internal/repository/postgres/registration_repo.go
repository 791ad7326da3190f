package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventregister/internal/domain"
)

// Postgres error codes of interest.
const (
	uniqueViolation     = pq.ErrorCode("23505")
	foreignKeyViolation = pq.ErrorCode("23503")
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Create inserts the registration. The unique constraint on
// (event_id, participant_id) is the authoritative duplicate signal, so a
// violation is reported as domain.ErrAlreadyRegistered rather than a raw
// storage error.
func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (event_id, participant_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, reg.EventID, reg.ParticipantID, reg.CreatedAt).
		Scan(&reg.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyRegistered
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return err
	}
	return nil
}

func (r *registrationRepository) ExistsByEventAndParticipant(ctx context.Context, eventID, participantID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM registrations
			WHERE event_id = $1 AND participant_id = $2
		)
	`
	var exists bool
	err := r.DB.QueryRowContext(ctx, query, eventID, participantID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
