package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	MeetingID uuid.UUID `db:"meeting_id"`
	Type      string    `db:"type"`
	Message   string    `db:"message"`
	Data      JSONB     `db:"data"`
	CreatedAt time.Time `db:"created_at"`
	TaskID    string    `db:"task_id"` // queue task that produced the row, empty outside a worker
}

type JSONB map[string]any

// Value encodes as a string; lib/pq would send []byte as bytea.
func (a JSONB) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (a *JSONB) Scan(value any) error {
	if value == nil {
		*a = nil
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("jsonb: unsupported source type")
	}
	return json.Unmarshal(b, a)
}
