package repository

import (
	"context"

	"scheduler-api/core/database"
	"scheduler-api/modules/meeting/entity"

	"github.com/google/uuid"
)

const meetingColumns = `id, title, description, date, timezone, duration, host_id, guest_id, status, created_at, updated_at`

// MeetingRepository handles meeting database operations
type MeetingRepository struct {
	DB database.IDatabase
}

// NewMeetingRepository creates a new repository instance
func NewMeetingRepository(db database.IDatabase) *MeetingRepository {
	return &MeetingRepository{DB: db}
}

// MeetingRepositoryInterface defines the repository contract
type MeetingRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Meeting, error)
	Create(ctx context.Context, meeting *entity.Meeting) (*entity.Meeting, error)
	Update(ctx context.Context, id uuid.UUID, upd *entity.MeetingUpdate) (*entity.Meeting, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.MeetingStatus) (*entity.Meeting, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

func (r *MeetingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE id = $1`

	var meeting entity.Meeting
	if err := r.DB.GetContext(ctx, &meeting, query, id); err != nil {
		return nil, database.Wrap("MeetingRepository:GetByID", err)
	}
	return &meeting, nil
}

func (r *MeetingRepository) Create(ctx context.Context, meeting *entity.Meeting) (*entity.Meeting, error) {
	query := `
		INSERT INTO meetings (title, description, date, timezone, duration, host_id, guest_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + meetingColumns

	var created entity.Meeting
	err := r.DB.GetContext(ctx, &created, query,
		meeting.Title, meeting.Description, meeting.Date, meeting.Timezone,
		meeting.Duration, meeting.HostID, meeting.GuestID, meeting.Status)
	if err != nil {
		return nil, database.Wrap("MeetingRepository:Create", err)
	}
	return &created, nil
}

// Update writes the non-nil fields of upd and always writes the status.
func (r *MeetingRepository) Update(ctx context.Context, id uuid.UUID, upd *entity.MeetingUpdate) (*entity.Meeting, error) {
	query := `
		UPDATE meetings
		SET description = COALESCE($2, description),
		    timezone = COALESCE($3, timezone),
		    date = COALESCE($4, date),
		    duration = COALESCE($5, duration),
		    status = $6,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + meetingColumns

	var updated entity.Meeting
	err := r.DB.GetContext(ctx, &updated, query,
		id, upd.Description, upd.Timezone, upd.Date, upd.Duration, upd.Status)
	if err != nil {
		return nil, database.Wrap("MeetingRepository:Update", err)
	}
	return &updated, nil
}

func (r *MeetingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.MeetingStatus) (*entity.Meeting, error) {
	query := `
		UPDATE meetings
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + meetingColumns

	var updated entity.Meeting
	if err := r.DB.GetContext(ctx, &updated, query, id, status); err != nil {
		return nil, database.Wrap("MeetingRepository:UpdateStatus", err)
	}
	return &updated, nil
}

func (r *MeetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM meetings WHERE id = $1 RETURNING id`

	var deleted uuid.UUID
	if err := r.DB.GetContext(ctx, &deleted, query, id); err != nil {
		return database.Wrap("MeetingRepository:Delete", err)
	}
	return nil
}
