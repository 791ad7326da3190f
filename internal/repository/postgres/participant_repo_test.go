package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"eventregister/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestParticipantRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		participant *domain.Participant
		mock        func(mock sqlmock.Sqlmock)
		wantID      string
		wantErr     error
	}{
		{
			name:        "success",
			participant: &domain.Participant{Name: "Ann", Email: "ann@x.com", CreatedAt: now, UpdatedAt: now},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO participants \(name, email, created_at, updated_at\)`).
					WithArgs("Ann", "ann@x.com", now, now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p-uuid-1"))
			},
			wantID: "p-uuid-1",
		},
		{
			name:        "unique email violation",
			participant: &domain.Participant{Name: "Ann", Email: "ann@x.com", CreatedAt: now, UpdatedAt: now},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO participants`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "participants_email_key"})
			},
			wantErr: domain.ErrDuplicateEmail,
		},
		{
			name:        "db error",
			participant: &domain.Participant{Name: "Ann", Email: "ann@x.com"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO participants`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewParticipantRepository(db)
			err = repo.Create(ctx, tt.participant)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.participant.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestParticipantRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, email, created_at, updated_at[\s\S]*FROM participants`).
		WithArgs("ann@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "created_at", "updated_at"}).
			AddRow("p-1", "Ann", "ann@x.com", now, now))

	repo := NewParticipantRepository(db)
	got, err := repo.GetByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	require.Equal(t, "p-1", got.ID)
	require.Equal(t, "Ann", got.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipantRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, email`).
		WithArgs("missing@x.com").
		WillReturnError(sql.ErrNoRows)

	repo := NewParticipantRepository(db)
	_, err = repo.GetByEmail(context.Background(), "missing@x.com")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParticipantRepository_Delete(t *testing.T) {
	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM participants WHERE id = \$1`).
					WithArgs("p-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM participants WHERE id = \$1`).
					WithArgs("p-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewParticipantRepository(db)
			err = repo.Delete(context.Background(), "p-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestParticipantRepository_ListByEventID(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT p.id, p.name, p.email[\s\S]*JOIN registrations r[\s\S]*ORDER BY p.name`).
		WithArgs("ev-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "created_at", "updated_at"}).
			AddRow("p-1", "Ann", "ann@x.com", now, now).
			AddRow("p-2", "Bo", "bo@x.com", now, now))

	repo := NewParticipantRepository(db)
	got, err := repo.ListByEventID(context.Background(), "ev-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Ann", got[0].Name)
	require.Equal(t, "Bo", got[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipantRepository_ListByEventID_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT p.id, p.name, p.email`).
		WithArgs("ev-none").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "created_at", "updated_at"}))

	repo := NewParticipantRepository(db)
	got, err := repo.ListByEventID(context.Background(), "ev-none")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}
