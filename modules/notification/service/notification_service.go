package service

import (
	"context"
	"fmt"

	"scheduler-api/core/errors"
	"scheduler-api/core/logger"
	"scheduler-api/core/queue"
	"scheduler-api/modules/notification/dto"
	"scheduler-api/modules/notification/entity"
	"scheduler-api/modules/notification/repository"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

// HandleMeetingCreated records a notification for the host and the guest.
func (s *NotificationService) HandleMeetingCreated(ctx context.Context, t *asynq.Task) error {
	var p dto.MeetingCreatedPayload
	if err := queue.Decode(t, &p); err != nil {
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}

	data := entity.JSONB{"title": p.Title}
	return s.notifyParticipants(ctx, t.Type(), p.MeetingID, p.HostID, p.GuestID,
		fmt.Sprintf("Meeting %q was scheduled", p.Title), data)
}

// HandleMeetingStatusChanged records the new status for both participants.
func (s *NotificationService) HandleMeetingStatusChanged(ctx context.Context, t *asynq.Task) error {
	var p dto.MeetingStatusChangedPayload
	if err := queue.Decode(t, &p); err != nil {
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}

	data := entity.JSONB{"status": p.Status}
	return s.notifyParticipants(ctx, t.Type(), p.MeetingID, p.HostID, p.GuestID,
		fmt.Sprintf("Meeting status changed to %s", p.Status), data)
}

func (s *NotificationService) notifyParticipants(ctx context.Context, taskType string, meetingID, hostID, guestID uuid.UUID, message string, data entity.JSONB) error {
	participants := []struct {
		userID uuid.UUID
		role   string
	}{
		{userID: hostID, role: "host"},
		{userID: guestID, role: "guest"},
	}

	taskID, _ := asynq.GetTaskID(ctx)

	for _, p := range participants {
		payload := entity.JSONB{"role": p.role}
		for k, v := range data {
			payload[k] = v
		}

		notif := &entity.Notification{
			UserID:    p.userID,
			MeetingID: meetingID,
			Type:      taskType,
			Message:   message,
			Data:      payload,
			TaskID:    taskID,
		}

		if err := s.repo.Create(ctx, notif); err != nil {
			// The participant was deleted after the task was queued.
			if errors.Is(err, errors.ErrConstraintViolation) {
				logger.Warn("NotificationService:Skip", "user_id", p.userID.String(), "type", taskType, err)
				continue
			}
			return err
		}
	}

	logger.Info("NotificationService:Recorded", "meeting_id", meetingID.String(), "type", taskType)
	return nil
}

func (s *NotificationService) GetUserNotifications(ctx context.Context, userID uuid.UUID) ([]dto.NotificationResponse, *errors.AppError) {
	items, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Internal(err)
	}

	out := make([]dto.NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			UserID:    n.UserID,
			MeetingID: n.MeetingID,
			Type:      n.Type,
			Message:   n.Message,
			Data:      n.Data,
			CreatedAt: n.CreatedAt,
		})
	}
	return out, nil
}
