package repository

import (
	"context"

	"scheduler-api/core/database"
	"scheduler-api/modules/user/entity"

	"github.com/google/uuid"
)

const userColumns = `id, name, email, type, created_at, updated_at`

type UserRepository struct {
	DB database.IDatabase
}

func NewUserRepository(db database.IDatabase) *UserRepository {
	return &UserRepository{DB: db}
}

type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error

	GetHostedMeetings(ctx context.Context, userID uuid.UUID) ([]entity.UserMeeting, error)
	GetGuestMeetings(ctx context.Context, userID uuid.UUID) ([]entity.UserMeeting, error)
	GetAvailabilities(ctx context.Context, userID uuid.UUID) ([]entity.UserAvailability, error)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user entity.User
	if err := r.DB.GetContext(ctx, &user, query, id); err != nil {
		return nil, database.Wrap("UserRepository:GetByID", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user entity.User
	if err := r.DB.GetContext(ctx, &user, query, email); err != nil {
		return nil, database.Wrap("UserRepository:GetByEmail", err)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (name, email, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	var created entity.User
	err := r.DB.GetContext(ctx, &created, query,
		user.Name, user.Email, user.Type, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return nil, database.Wrap("UserRepository:Create", err)
	}
	return &created, nil
}

// Update overwrites every mutable column, timestamps included.
func (r *UserRepository) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		UPDATE users
		SET name = $2, email = $3, type = $4, created_at = $5, updated_at = $6
		WHERE id = $1
		RETURNING ` + userColumns

	var updated entity.User
	err := r.DB.GetContext(ctx, &updated, query,
		user.ID, user.Name, user.Email, user.Type, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return nil, database.Wrap("UserRepository:Update", err)
	}
	return &updated, nil
}

// Delete removes the user; availabilities, meetings and notifications go
// with it through ON DELETE CASCADE.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1 RETURNING id`

	var deleted uuid.UUID
	if err := r.DB.GetContext(ctx, &deleted, query, id); err != nil {
		return database.Wrap("UserRepository:Delete", err)
	}
	return nil
}

// ===================== Relations =====================

func (r *UserRepository) GetHostedMeetings(ctx context.Context, userID uuid.UUID) ([]entity.UserMeeting, error) {
	query := `
		SELECT id, date, description, duration, timezone, status
		FROM meetings
		WHERE host_id = $1
		ORDER BY date
	`

	meetings := []entity.UserMeeting{}
	if err := r.DB.SelectContext(ctx, &meetings, query, userID); err != nil {
		return nil, database.Wrap("UserRepository:GetHostedMeetings", err)
	}
	return meetings, nil
}

func (r *UserRepository) GetGuestMeetings(ctx context.Context, userID uuid.UUID) ([]entity.UserMeeting, error) {
	query := `
		SELECT id, date, description, duration, timezone, status
		FROM meetings
		WHERE guest_id = $1
		ORDER BY date
	`

	meetings := []entity.UserMeeting{}
	if err := r.DB.SelectContext(ctx, &meetings, query, userID); err != nil {
		return nil, database.Wrap("UserRepository:GetGuestMeetings", err)
	}
	return meetings, nil
}

func (r *UserRepository) GetAvailabilities(ctx context.Context, userID uuid.UUID) ([]entity.UserAvailability, error) {
	query := `SELECT id, time_slot FROM availabilities WHERE user_id = $1 ORDER BY id`

	availabilities := []entity.UserAvailability{}
	if err := r.DB.SelectContext(ctx, &availabilities, query, userID); err != nil {
		return nil, database.Wrap("UserRepository:GetAvailabilities", err)
	}
	return availabilities, nil
}
