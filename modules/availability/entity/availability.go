package entity

import "github.com/google/uuid"

// Availability is a bookable interval owned by a user. TimeSlot is free text.
type Availability struct {
	ID       uuid.UUID `db:"id"`
	UserID   uuid.UUID `db:"user_id"`
	TimeSlot string    `db:"time_slot"`
}
