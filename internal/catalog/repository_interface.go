package catalog

import (
	"context"
	"time"
)

type Repository interface {
	CreateClass(ctx context.Context, req CreateClassRequest) (*GymClass, error)
	ListActiveClasses(ctx context.Context) ([]GymClass, error)
	GetClassByID(ctx context.Context, id int) (*GymClass, error)
	CreateTimeSlot(ctx context.Context, classID int, startTime, endTime time.Time, availableSpots int) (*TimeSlot, error)
	GetTimeSlotByID(ctx context.Context, id int) (*TimeSlotWithClass, error)
	ListAvailableSlots(ctx context.Context, classID *int) ([]TimeSlotWithClass, error)
}
