package dto

import (
	"time"

	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Type  string `json:"type" validate:"required"`
}

type UpdateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Type  string `json:"type" validate:"required"`
}

// ===================== Response DTOs =====================

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LoginResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type UserDetailResponse struct {
	UserResponse
	HostedMeetings []MeetingSummary      `json:"hostedMeetings"`
	GuestMeetings  []MeetingSummary      `json:"guestMeetings"`
	Availabilities []AvailabilitySummary `json:"availabilities"`
}

type MeetingSummary struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Timezone    string    `json:"timezone"`
	Status      string    `json:"status"`
}

type AvailabilitySummary struct {
	ID       uuid.UUID `json:"id"`
	TimeSlot string    `json:"time_slot"`
}
