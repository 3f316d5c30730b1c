package dto

import (
	"time"

	"scheduler-api/modules/meeting/entity"

	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

// CreateMeetingRequest identifies host and guest by email. Time carries the
// meeting's timezone.
type CreateMeetingRequest struct {
	HostID      string    `json:"hostId" validate:"required"`
	GuestID     string    `json:"guestId" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
	Time        string    `json:"time"`
	Duration    *Minutes  `json:"duration" validate:"required,gte=0"`
}

// UpdateMeetingRequest replaces the schedule fields of a meeting. Omitted
// fields keep their value, except Status which resets to PENDING.
type UpdateMeetingRequest struct {
	Description *string              `json:"description"`
	Time        *string              `json:"time"`
	Date        *time.Time           `json:"date"`
	Duration    *Minutes             `json:"duration" validate:"omitempty,gte=0"`
	Status      entity.MeetingStatus `json:"status" validate:"omitempty,oneof=PENDING ACCEPTED CANCELED"`
}

type UpdateStatusRequest struct {
	Status entity.MeetingStatus `json:"status" validate:"omitempty,oneof=PENDING ACCEPTED CANCELED"`
}

// ===================== Response DTOs =====================

type MeetingResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Timezone    string    `json:"timezone"`
	Duration    int       `json:"duration"`
	HostID      uuid.UUID `json:"hostId"`
	GuestID     uuid.UUID `json:"guestId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ===================== Mappers =====================

func ToMeetingResponse(m *entity.Meeting) *MeetingResponse {
	return &MeetingResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Date:        m.Date,
		Timezone:    m.Timezone,
		Duration:    m.Duration,
		HostID:      m.HostID,
		GuestID:     m.GuestID,
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToMeetingUpdate(req *UpdateMeetingRequest) *entity.MeetingUpdate {
	upd := &entity.MeetingUpdate{
		Description: req.Description,
		Timezone:    req.Time,
		Date:        req.Date,
		Status:      entity.StatusOrPending(req.Status),
	}
	if req.Duration != nil {
		d := req.Duration.Int()
		upd.Duration = &d
	}
	return upd
}
