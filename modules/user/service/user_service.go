package service

import (
	"context"
	"time"

	"scheduler-api/core/errors"
	"scheduler-api/core/logger"
	"scheduler-api/modules/user/dto"
	"scheduler-api/modules/user/entity"
	"scheduler-api/modules/user/mapper"
	"scheduler-api/modules/user/repository"

	"github.com/google/uuid"
)

const MsgUserNotFound = "User not found"

type UserService struct {
	repo repository.UserRepositoryInterface
	now  func() time.Time
}

type UserServiceInterface interface {
	Login(ctx context.Context, email string) (*dto.LoginResponse, *errors.AppError)
	GetUser(ctx context.Context, id uuid.UUID) (*dto.UserDetailResponse, *errors.AppError)
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, *errors.AppError)
	UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, *errors.AppError)
	DeleteUser(ctx context.Context, id uuid.UUID) *errors.AppError
}

func NewUserService(repo repository.UserRepositoryInterface) UserServiceInterface {
	return &UserService{
		repo: repo,
		now:  time.Now,
	}
}

// Login resolves a user by email. There is no credential check.
func (s *UserService) Login(ctx context.Context, email string) (*dto.LoginResponse, *errors.AppError) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.FromStore(err, MsgUserNotFound)
	}
	return mapper.ToLoginResponse(user), nil
}

// GetUser returns the user with hosted and attended meetings and
// availabilities.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserDetailResponse, *errors.AppError) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.FromStore(err, MsgUserNotFound)
	}

	hosted, err := s.repo.GetHostedMeetings(ctx, id)
	if err != nil {
		return nil, errors.Internal(err)
	}
	guest, err := s.repo.GetGuestMeetings(ctx, id)
	if err != nil {
		return nil, errors.Internal(err)
	}
	availabilities, err := s.repo.GetAvailabilities(ctx, id)
	if err != nil {
		return nil, errors.Internal(err)
	}

	return mapper.ToUserDetailResponse(user, hosted, guest, availabilities), nil
}

func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, *errors.AppError) {
	user := mapper.ToUserEntity(req)
	now := s.now()
	user.CreatedAt = now
	user.UpdatedAt = now

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, errors.FromStore(err, MsgUserNotFound)
	}

	logger.Info("UserService:CreateUser", "user_id", created.ID.String())
	return mapper.ToUserResponse(created), nil
}

// UpdateUser overwrites name, email and type and stamps both createdAt and
// updatedAt with the current time.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, *errors.AppError) {
	now := s.now()
	user := &entity.User{
		Name:  req.Name,
		Email: req.Email,
		Type:  req.Type,
	}
	user.ID = id
	user.CreatedAt = now
	user.UpdatedAt = now

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, errors.FromStore(err, MsgUserNotFound)
	}
	return mapper.ToUserResponse(updated), nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) *errors.AppError {
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.FromStore(err, MsgUserNotFound)
	}

	logger.Info("UserService:DeleteUser", "user_id", id.String())
	return nil
}
