package dto

import (
	"scheduler-api/modules/availability/entity"

	"github.com/google/uuid"
)

type CreateAvailabilityRequest struct {
	UserID   string `json:"userId" validate:"required,uuid"`
	TimeSlot string `json:"time_slot" validate:"required"`
}

type AvailabilityResponse struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"userId"`
	TimeSlot string    `json:"time_slot"`
}

func ToAvailabilityResponse(a *entity.Availability) *AvailabilityResponse {
	return &AvailabilityResponse{
		ID:       a.ID,
		UserID:   a.UserID,
		TimeSlot: a.TimeSlot,
	}
}
