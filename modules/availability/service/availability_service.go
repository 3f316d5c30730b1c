package service

import (
	"context"

	"scheduler-api/core/errors"
	"scheduler-api/modules/availability/dto"
	"scheduler-api/modules/availability/entity"
	"scheduler-api/modules/availability/repository"

	"github.com/google/uuid"
)

const MsgAvailabilityNotFound = "availability not found"

type AvailabilityService struct {
	repo repository.AvailabilityRepositoryInterface
}

type AvailabilityServiceInterface interface {
	GetAvailability(ctx context.Context, id uuid.UUID) (*dto.AvailabilityResponse, *errors.AppError)
	CreateAvailability(ctx context.Context, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, *errors.AppError)
}

func NewAvailabilityService(repo repository.AvailabilityRepositoryInterface) AvailabilityServiceInterface {
	return &AvailabilityService{repo: repo}
}

func (s *AvailabilityService) GetAvailability(ctx context.Context, id uuid.UUID) (*dto.AvailabilityResponse, *errors.AppError) {
	availability, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.FromStore(err, MsgAvailabilityNotFound)
	}
	return dto.ToAvailabilityResponse(availability), nil
}

func (s *AvailabilityService) CreateAvailability(ctx context.Context, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, *errors.AppError) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, errors.InvalidData(err)
	}

	created, err := s.repo.Create(ctx, &entity.Availability{
		UserID:   userID,
		TimeSlot: req.TimeSlot,
	})
	if err != nil {
		return nil, errors.FromStore(err, MsgAvailabilityNotFound)
	}
	return dto.ToAvailabilityResponse(created), nil
}
