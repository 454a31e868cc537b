package catalog

import (
	"context"
	"errors"
	"time"
)

var (
	ErrClassNotFound   = errors.New("gym class not found")
	ErrInvalidClass    = errors.New("invalid gym class data")
	ErrTimeSlotInvalid = errors.New("invalid time slot")
)

type Service interface {
	CreateClass(ctx context.Context, req CreateClassRequest) (*GymClass, error)
	ListClasses(ctx context.Context) ([]GymClass, error)
	GetClass(ctx context.Context, id int) (*GymClass, error)
	CreateTimeSlot(ctx context.Context, classID int, req CreateTimeSlotRequest) (*TimeSlot, error)
	ListTimeSlots(ctx context.Context, classID *int) ([]TimeSlotWithClass, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) CreateClass(ctx context.Context, req CreateClassRequest) (*GymClass, error) {
	if !ValidClassType(req.ClassType) {
		return nil, ErrInvalidClass
	}

	return s.repo.CreateClass(ctx, req)
}

func (s *service) ListClasses(ctx context.Context) ([]GymClass, error) {
	classes, err := s.repo.ListActiveClasses(ctx)
	if err != nil {
		return nil, err
	}
	if classes == nil {
		classes = []GymClass{}
	}
	return classes, nil
}

func (s *service) GetClass(ctx context.Context, id int) (*GymClass, error) {
	class, err := s.repo.GetClassByID(ctx, id)
	if err != nil {
		return nil, ErrClassNotFound
	}
	// Inactive classes are hidden from the public catalog.
	if !class.IsActive {
		return nil, ErrClassNotFound
	}
	return class, nil
}

func (s *service) CreateTimeSlot(ctx context.Context, classID int, req CreateTimeSlotRequest) (*TimeSlot, error) {
	class, err := s.repo.GetClassByID(ctx, classID)
	if err != nil {
		return nil, ErrClassNotFound
	}
	if !class.IsActive {
		return nil, ErrClassNotFound
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, ErrTimeSlotInvalid
	}

	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, ErrTimeSlotInvalid
	}

	if !endTime.After(startTime) {
		return nil, ErrTimeSlotInvalid
	}

	if startTime.Before(time.Now()) {
		return nil, ErrTimeSlotInvalid
	}

	if req.AvailableSpots > class.MaxParticipants {
		return nil, ErrTimeSlotInvalid
	}

	return s.repo.CreateTimeSlot(ctx, classID, startTime, endTime, req.AvailableSpots)
}

func (s *service) ListTimeSlots(ctx context.Context, classID *int) ([]TimeSlotWithClass, error) {
	if classID != nil {
		if _, err := s.repo.GetClassByID(ctx, *classID); err != nil {
			return nil, ErrClassNotFound
		}
	}

	slots, err := s.repo.ListAvailableSlots(ctx, classID)
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []TimeSlotWithClass{}
	}
	return slots, nil
}
