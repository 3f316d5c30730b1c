package repository

import (
	"context"
	"testing"
	"time"

	"scheduler-api/core/database"
	"scheduler-api/core/errors"
	"scheduler-api/modules/notification/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*NotificationRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	// Named as postgres so sqlx binds with $N placeholders.
	db := database.NewWithSQLX(sqlx.NewDb(mockDB, "postgres"))
	return NewNotificationRepository(db), mock
}

func TestNotificationRepository_Create(t *testing.T) {
	repo, mock := newTestRepo(t)
	id := uuid.New()
	now := time.Now().UTC()

	n := &entity.Notification{
		UserID:    uuid.New(),
		MeetingID: uuid.New(),
		Type:      "meeting:created",
		Message:   "Meeting \"Sync\" was scheduled",
		Data:      entity.JSONB{"role": "host"},
	}

	mock.ExpectQuery(`INSERT INTO notifications \(user_id, meeting_id, type, message, data, task_id\)\s+VALUES \(\$1, \$2, \$3, \$4, \$5, NULLIF\(\$6, ''\)\)\s+ON CONFLICT \(task_id, user_id\) DO NOTHING`).
		WithArgs(n.UserID, n.MeetingID, n.Type, n.Message, `{"role":"host"}`, "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id.String(), now))

	require.NoError(t, repo.Create(context.Background(), n))
	assert.Equal(t, id, n.ID)
	assert.Equal(t, now, n.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_Create_SameTaskTwice(t *testing.T) {
	repo, mock := newTestRepo(t)

	n := &entity.Notification{
		UserID:    uuid.New(),
		MeetingID: uuid.New(),
		Type:      "meeting:created",
		Message:   "Meeting \"Sync\" was scheduled",
		Data:      entity.JSONB{"role": "host"},
		TaskID:    "task-1",
	}

	mock.ExpectQuery(`ON CONFLICT \(task_id, user_id\) DO NOTHING`).
		WithArgs(n.UserID, n.MeetingID, n.Type, n.Message, `{"role":"host"}`, "task-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))

	require.NoError(t, repo.Create(context.Background(), n))
	assert.Equal(t, uuid.Nil, n.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_Create_ForeignKey(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`INSERT INTO notifications`).
		WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})

	err := repo.Create(context.Background(), &entity.Notification{UserID: uuid.New()})
	assert.ErrorIs(t, err, errors.ErrConstraintViolation)
}

func TestNotificationRepository_GetByUserID(t *testing.T) {
	repo, mock := newTestRepo(t)
	userID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`FROM notifications\s+WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "meeting_id", "type", "message", "data", "created_at"}).
			AddRow(uuid.NewString(), userID.String(), uuid.NewString(), "meeting:created", "hi", []byte(`{"role":"guest"}`), now))

	items, err := repo.GetByUserID(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "guest", items[0].Data["role"])
}
