package service

import (
	"context"

	"scheduler-api/core/errors"
	"scheduler-api/core/logger"
	"scheduler-api/core/queue"
	"scheduler-api/modules/meeting/dto"
	"scheduler-api/modules/meeting/entity"
	"scheduler-api/modules/meeting/repository"
	notificationdto "scheduler-api/modules/notification/dto"
	userentity "scheduler-api/modules/user/entity"

	"github.com/google/uuid"
)

const MsgMeetingNotFound = "meeting not found"

// UserFinder resolves meeting participants by email.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*userentity.User, error)
}

// MeetingService handles meeting business logic
type MeetingService struct {
	repo      repository.MeetingRepositoryInterface
	users     UserFinder
	publisher queue.Publisher
}

// MeetingServiceInterface defines the service contract
type MeetingServiceInterface interface {
	GetMeeting(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, *errors.AppError)
	CreateMeeting(ctx context.Context, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, *errors.AppError)
	UpdateMeeting(ctx context.Context, id uuid.UUID, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, *errors.AppError)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateStatusRequest) (*dto.MeetingResponse, *errors.AppError)
	DeleteMeeting(ctx context.Context, id uuid.UUID) *errors.AppError
}

// NewMeetingService creates a new meeting service. A nil publisher disables
// notifications.
func NewMeetingService(repo repository.MeetingRepositoryInterface, users UserFinder, publisher queue.Publisher) MeetingServiceInterface {
	if publisher == nil {
		publisher = queue.NopPublisher{}
	}
	return &MeetingService{
		repo:      repo,
		users:     users,
		publisher: publisher,
	}
}

func (s *MeetingService) GetMeeting(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, *errors.AppError) {
	meeting, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.FromStore(err, MsgMeetingNotFound)
	}
	return dto.ToMeetingResponse(meeting), nil
}

// CreateMeeting resolves the guest and then the host by email and stores a
// PENDING meeting between them. An unknown participant is invalid data.
func (s *MeetingService) CreateMeeting(ctx context.Context, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, *errors.AppError) {
	guest, appErr := s.participant(ctx, req.GuestID)
	if appErr != nil {
		return nil, appErr
	}
	host, appErr := s.participant(ctx, req.HostID)
	if appErr != nil {
		return nil, appErr
	}

	meeting := &entity.Meeting{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Timezone:    req.Time,
		Duration:    req.Duration.Int(),
		HostID:      host.ID,
		GuestID:     guest.ID,
		Status:      entity.MeetingStatusPending,
	}

	created, err := s.repo.Create(ctx, meeting)
	if err != nil {
		return nil, errors.FromStore(err, MsgMeetingNotFound)
	}

	logger.Info("MeetingService:CreateMeeting",
		"meeting_id", created.ID.String(),
		"host_id", created.HostID.String(),
		"guest_id", created.GuestID.String())

	s.publish(ctx, notificationdto.TypeMeetingCreated, notificationdto.MeetingCreatedPayload{
		MeetingID: created.ID,
		HostID:    created.HostID,
		GuestID:   created.GuestID,
		Title:     created.Title,
	})

	return dto.ToMeetingResponse(created), nil
}

// UpdateMeeting rewrites the schedule fields. The status resets to PENDING
// when the request omits it, so participants are told the status again.
func (s *MeetingService) UpdateMeeting(ctx context.Context, id uuid.UUID, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, *errors.AppError) {
	updated, err := s.repo.Update(ctx, id, dto.ToMeetingUpdate(req))
	if err != nil {
		return nil, errors.FromStore(err, MsgMeetingNotFound)
	}

	s.publishStatus(ctx, updated)

	return dto.ToMeetingResponse(updated), nil
}

// UpdateStatus sets only the status, PENDING when omitted.
func (s *MeetingService) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateStatusRequest) (*dto.MeetingResponse, *errors.AppError) {
	status := entity.StatusOrPending(req.Status)

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, errors.FromStore(err, MsgMeetingNotFound)
	}

	s.publishStatus(ctx, updated)

	return dto.ToMeetingResponse(updated), nil
}

func (s *MeetingService) DeleteMeeting(ctx context.Context, id uuid.UUID) *errors.AppError {
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.FromStore(err, MsgMeetingNotFound)
	}

	logger.Info("MeetingService:DeleteMeeting", "meeting_id", id.String())
	return nil
}

func (s *MeetingService) participant(ctx context.Context, email string) (*userentity.User, *errors.AppError) {
	user, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if errors.Is(err, errors.ErrRecordNotFound) {
		return nil, errors.InvalidData(err)
	}
	return nil, errors.Internal(err)
}

func (s *MeetingService) publishStatus(ctx context.Context, m *entity.Meeting) {
	s.publish(ctx, notificationdto.TypeMeetingStatusChanged, notificationdto.MeetingStatusChangedPayload{
		MeetingID: m.ID,
		HostID:    m.HostID,
		GuestID:   m.GuestID,
		Status:    string(m.Status),
	})
}

// publish never fails the request; a lost notification is only logged.
func (s *MeetingService) publish(ctx context.Context, taskType string, payload any) {
	if err := s.publisher.Publish(ctx, taskType, payload); err != nil {
		logger.Error("MeetingService:Publish", "type", taskType, err)
	}
}
