package entity

import (
	"time"

	"scheduler-api/core/entity"

	"github.com/google/uuid"
)

type User struct {
	Name  string `db:"name"`
	Email string `db:"email"`
	Type  string `db:"type"`
	entity.BaseEntity
}

// UserMeeting is the slice of a meeting shown on a user's profile.
type UserMeeting struct {
	ID          uuid.UUID `db:"id"`
	Date        time.Time `db:"date"`
	Description string    `db:"description"`
	Duration    int       `db:"duration"`
	Timezone    string    `db:"timezone"`
	Status      string    `db:"status"`
}

type UserAvailability struct {
	ID       uuid.UUID `db:"id"`
	TimeSlot string    `db:"time_slot"`
}
