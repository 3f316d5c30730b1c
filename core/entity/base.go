package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries the columns shared by timestamped tables.
type BaseEntity struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
