package repository

import (
	"context"

	"scheduler-api/core/database"
	"scheduler-api/modules/availability/entity"

	"github.com/google/uuid"
)

type AvailabilityRepository struct {
	DB database.IDatabase
}

func NewAvailabilityRepository(db database.IDatabase) *AvailabilityRepository {
	return &AvailabilityRepository{DB: db}
}

type AvailabilityRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Availability, error)
	Create(ctx context.Context, availability *entity.Availability) (*entity.Availability, error)
}

func (r *AvailabilityRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Availability, error) {
	query := `SELECT id, user_id, time_slot FROM availabilities WHERE id = $1`

	var availability entity.Availability
	if err := r.DB.GetContext(ctx, &availability, query, id); err != nil {
		return nil, database.Wrap("AvailabilityRepository:GetByID", err)
	}
	return &availability, nil
}

// Create fails with a constraint violation when the user does not exist.
func (r *AvailabilityRepository) Create(ctx context.Context, availability *entity.Availability) (*entity.Availability, error) {
	query := `
		INSERT INTO availabilities (user_id, time_slot)
		VALUES ($1, $2)
		RETURNING id, user_id, time_slot
	`

	var created entity.Availability
	if err := r.DB.GetContext(ctx, &created, query, availability.UserID, availability.TimeSlot); err != nil {
		return nil, database.Wrap("AvailabilityRepository:Create", err)
	}
	return &created, nil
}
