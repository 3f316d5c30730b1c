package dto

import (
	"time"

	"github.com/google/uuid"
)

// Task types published by the meeting service.
const (
	TypeMeetingCreated       = "meeting:created"
	TypeMeetingStatusChanged = "meeting:status_changed"
)

type MeetingCreatedPayload struct {
	MeetingID uuid.UUID `json:"meetingId"`
	HostID    uuid.UUID `json:"hostId"`
	GuestID   uuid.UUID `json:"guestId"`
	Title     string    `json:"title"`
}

type MeetingStatusChangedPayload struct {
	MeetingID uuid.UUID `json:"meetingId"`
	HostID    uuid.UUID `json:"hostId"`
	GuestID   uuid.UUID `json:"guestId"`
	Status    string    `json:"status"`
}

type NotificationResponse struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"userId"`
	MeetingID uuid.UUID      `json:"meetingId"`
	Type      string         `json:"type"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"createdAt"`
}
