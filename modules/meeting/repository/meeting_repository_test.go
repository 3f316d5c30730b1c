package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"scheduler-api/core/database"
	"scheduler-api/core/errors"
	"scheduler-api/modules/meeting/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var meetingCols = []string{"id", "title", "description", "date", "timezone", "duration", "host_id", "guest_id", "status", "created_at", "updated_at"}

func newTestRepo(t *testing.T) (*MeetingRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db := database.NewWithSQLX(sqlx.NewDb(mockDB, "sqlmock"))
	return NewMeetingRepository(db), mock
}

func meetingRow(id, host, guest uuid.UUID, status string, now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(meetingCols).
		AddRow(id.String(), "Sync", "weekly", now, "UTC", 30, host.String(), guest.String(), status, now, now)
}

func TestMeetingRepository_GetByID(t *testing.T) {
	repo, mock := newTestRepo(t)
	id, host, guest := uuid.New(), uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT (.+) FROM meetings WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(meetingRow(id, host, guest, "PENDING", now))

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, host, got.HostID)
	assert.Equal(t, guest, got.GuestID)
	assert.Equal(t, 30, got.Duration)
	assert.Equal(t, entity.MeetingStatusPending, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMeetingRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`FROM meetings WHERE id = \$1`).WithArgs(id).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, errors.ErrRecordNotFound)
}

func TestMeetingRepository_Create(t *testing.T) {
	repo, mock := newTestRepo(t)
	id, host, guest := uuid.New(), uuid.New(), uuid.New()
	now := time.Now().UTC()

	m := &entity.Meeting{
		Title: "Sync", Description: "weekly", Date: now, Timezone: "UTC",
		Duration: 30, HostID: host, GuestID: guest, Status: entity.MeetingStatusPending,
	}

	mock.ExpectQuery(`INSERT INTO meetings`).
		WithArgs("Sync", "weekly", now, "UTC", 30, host, guest, "PENDING").
		WillReturnRows(meetingRow(id, host, guest, "PENDING", now))

	got, err := repo.Create(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMeetingRepository_Create_CheckViolation(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`INSERT INTO meetings`).
		WillReturnError(&pq.Error{Code: "23514", Message: "violates check constraint"})

	_, err := repo.Create(context.Background(), &entity.Meeting{Status: "LATER"})
	assert.ErrorIs(t, err, errors.ErrConstraintViolation)
}

func TestMeetingRepository_Update_KeepsOmittedFields(t *testing.T) {
	repo, mock := newTestRepo(t)
	id, host, guest := uuid.New(), uuid.New(), uuid.New()
	now := time.Now().UTC()
	duration := 45

	mock.ExpectQuery(`UPDATE meetings\s+SET description = COALESCE\(\$2, description\)`).
		WithArgs(id, nil, nil, nil, duration, "ACCEPTED").
		WillReturnRows(meetingRow(id, host, guest, "ACCEPTED", now))

	got, err := repo.Update(context.Background(), id, &entity.MeetingUpdate{
		Duration: &duration,
		Status:   entity.MeetingStatusAccepted,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MeetingStatusAccepted, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMeetingRepository_Update_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`UPDATE meetings`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), uuid.New(), &entity.MeetingUpdate{Status: entity.MeetingStatusPending})
	assert.ErrorIs(t, err, errors.ErrRecordNotFound)
}

func TestMeetingRepository_UpdateStatus(t *testing.T) {
	repo, mock := newTestRepo(t)
	id, host, guest := uuid.New(), uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`UPDATE meetings\s+SET status = \$2, updated_at = NOW\(\)`).
		WithArgs(id, "CANCELED").
		WillReturnRows(meetingRow(id, host, guest, "CANCELED", now))

	got, err := repo.UpdateStatus(context.Background(), id, entity.MeetingStatusCanceled)
	require.NoError(t, err)
	assert.Equal(t, entity.MeetingStatusCanceled, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMeetingRepository_Delete(t *testing.T) {
	repo, mock := newTestRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`DELETE FROM meetings WHERE id = \$1 RETURNING id`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))
	require.NoError(t, repo.Delete(context.Background(), id))

	mock.ExpectQuery(`DELETE FROM meetings`).WillReturnError(sql.ErrNoRows)
	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), errors.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
