package entity

import (
	"time"

	"scheduler-api/core/entity"

	"github.com/google/uuid"
)

// MeetingStatus represents the status of a meeting
type MeetingStatus string

const (
	MeetingStatusPending  MeetingStatus = "PENDING"
	MeetingStatusAccepted MeetingStatus = "ACCEPTED"
	MeetingStatusCanceled MeetingStatus = "CANCELED"
)

// StatusOrPending returns s, or PENDING when s is empty.
func StatusOrPending(s MeetingStatus) MeetingStatus {
	if s == "" {
		return MeetingStatusPending
	}
	return s
}

type Meeting struct {
	Title       string        `db:"title"`
	Description string        `db:"description"`
	Date        time.Time     `db:"date"`
	Timezone    string        `db:"timezone"`
	Duration    int           `db:"duration"` // minutes
	HostID      uuid.UUID     `db:"host_id"`
	GuestID     uuid.UUID     `db:"guest_id"`
	Status      MeetingStatus `db:"status"`
	entity.BaseEntity
}

// MeetingUpdate lists the columns a full update may change. Nil fields keep
// their stored value; Status is always written.
type MeetingUpdate struct {
	Description *string
	Timezone    *string
	Date        *time.Time
	Duration    *int
	Status      MeetingStatus
}
