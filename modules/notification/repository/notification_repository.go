package repository

import (
	"context"

	"scheduler-api/core/database"
	"scheduler-api/modules/notification/entity"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	DB database.IDatabase
}

func NewNotificationRepository(db database.IDatabase) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

type NotificationRepositoryInterface interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Notification, error)
}

// Create inserts the notification and fills in its generated id and
// creation time. A row already recorded for the same task and user is left
// as is and the id stays unset.
func (r *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (user_id, meeting_id, type, message, data, task_id)
		VALUES (:user_id, :meeting_id, :type, :message, :data, NULLIF(:task_id, ''))
		ON CONFLICT (task_id, user_id) DO NOTHING
		RETURNING id, created_at
	`
	rows, err := r.DB.NamedQueryContext(ctx, query, notification)
	if err != nil {
		return database.Wrap("NotificationRepository:Create", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&notification.ID, &notification.CreatedAt); err != nil {
			return database.Wrap("NotificationRepository:Create:Scan", err)
		}
	}
	return database.Wrap("NotificationRepository:Create:Rows", rows.Err())
}

func (r *NotificationRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Notification, error) {
	query := `
		SELECT id, user_id, meeting_id, type, message, data, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	notifications := []entity.Notification{}
	if err := r.DB.SelectContext(ctx, &notifications, query, userID); err != nil {
		return nil, database.Wrap("NotificationRepository:GetByUserID", err)
	}
	return notifications, nil
}
