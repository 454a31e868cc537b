package catalog

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateClass(ctx context.Context, req CreateClassRequest) (*GymClass, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GymClass), args.Error(1)
}

func (m *mockRepository) ListActiveClasses(ctx context.Context) ([]GymClass, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]GymClass), args.Error(1)
}

func (m *mockRepository) GetClassByID(ctx context.Context, id int) (*GymClass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GymClass), args.Error(1)
}

func (m *mockRepository) CreateTimeSlot(ctx context.Context, classID int, startTime, endTime time.Time, availableSpots int) (*TimeSlot, error) {
	args := m.Called(ctx, classID, startTime, endTime, availableSpots)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TimeSlot), args.Error(1)
}

func (m *mockRepository) GetTimeSlotByID(ctx context.Context, id int) (*TimeSlotWithClass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TimeSlotWithClass), args.Error(1)
}

func (m *mockRepository) ListAvailableSlots(ctx context.Context, classID *int) ([]TimeSlotWithClass, error) {
	args := m.Called(ctx, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]TimeSlotWithClass), args.Error(1)
}

func activeClass() *GymClass {
	return &GymClass{
		ID:              1,
		Name:            "Yoga Basics",
		ClassType:       ClassTypeYoga,
		Description:     "Intro yoga",
		DurationMinutes: 60,
		MaxParticipants: 10,
		Instructor:      "Jane Smith",
		IsActive:        true,
	}
}

func TestCreateClass_RejectsUnknownType(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	_, err := svc.CreateClass(context.Background(), CreateClassRequest{
		Name:            "Mystery",
		ClassType:       "PILATES",
		Description:     "?",
		DurationMinutes: 60,
		MaxParticipants: 10,
		Instructor:      "Someone",
	})
	require.ErrorIs(t, err, ErrInvalidClass)
	repo.AssertNotCalled(t, "CreateClass", mock.Anything, mock.Anything)
}

func TestCreateClass_Valid(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	req := CreateClassRequest{
		Name:            "Yoga Basics",
		ClassType:       ClassTypeYoga,
		Description:     "Intro yoga",
		DurationMinutes: 60,
		MaxParticipants: 10,
		Instructor:      "Jane Smith",
	}
	repo.On("CreateClass", mock.Anything, req).Return(activeClass(), nil)

	class, err := svc.CreateClass(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1, class.ID)
	repo.AssertExpectations(t)
}

func TestListClasses_EmptyNotNil(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("ListActiveClasses", mock.Anything).Return(nil, nil)

	classes, err := svc.ListClasses(context.Background())
	require.NoError(t, err)
	require.NotNil(t, classes)
	require.Empty(t, classes)
}

func TestGetClass_HidesInactive(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	inactive := activeClass()
	inactive.IsActive = false
	repo.On("GetClassByID", mock.Anything, 1).Return(inactive, nil)

	_, err := svc.GetClass(context.Background(), 1)
	require.ErrorIs(t, err, ErrClassNotFound)
}

func TestGetClass_NotFound(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("GetClassByID", mock.Anything, 99).Return(nil, sql.ErrNoRows)

	_, err := svc.GetClass(context.Background(), 99)
	require.ErrorIs(t, err, ErrClassNotFound)
}

func TestCreateTimeSlot_Validation(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name string
		req  CreateTimeSlotRequest
	}{
		{
			"bad start time",
			CreateTimeSlotRequest{StartTime: "tomorrow", EndTime: future.Add(time.Hour).Format(time.RFC3339), AvailableSpots: 5},
		},
		{
			"bad end time",
			CreateTimeSlotRequest{StartTime: future.Format(time.RFC3339), EndTime: "later", AvailableSpots: 5},
		},
		{
			"end before start",
			CreateTimeSlotRequest{StartTime: future.Format(time.RFC3339), EndTime: future.Add(-time.Hour).Format(time.RFC3339), AvailableSpots: 5},
		},
		{
			"start in the past",
			CreateTimeSlotRequest{StartTime: time.Now().Add(-24 * time.Hour).Format(time.RFC3339), EndTime: future.Format(time.RFC3339), AvailableSpots: 5},
		},
		{
			"spots exceed class capacity",
			CreateTimeSlotRequest{StartTime: future.Format(time.RFC3339), EndTime: future.Add(time.Hour).Format(time.RFC3339), AvailableSpots: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepository)
			svc := NewService(repo)

			repo.On("GetClassByID", mock.Anything, 1).Return(activeClass(), nil)

			_, err := svc.CreateTimeSlot(context.Background(), 1, tt.req)
			require.ErrorIs(t, err, ErrTimeSlotInvalid)
			repo.AssertNotCalled(t, "CreateTimeSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateTimeSlot_Valid(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	start := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	end := start.Add(time.Hour)

	repo.On("GetClassByID", mock.Anything, 1).Return(activeClass(), nil)
	repo.On("CreateTimeSlot", mock.Anything, 1, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), 5).
		Return(&TimeSlot{ID: 7, GymClassID: 1, StartTime: start, EndTime: end, AvailableSpots: 5, IsAvailable: true}, nil)

	slot, err := svc.CreateTimeSlot(context.Background(), 1, CreateTimeSlotRequest{
		StartTime:      start.Format(time.RFC3339),
		EndTime:        end.Format(time.RFC3339),
		AvailableSpots: 5,
	})
	require.NoError(t, err)
	require.Equal(t, 7, slot.ID)
	repo.AssertExpectations(t)
}

func TestCreateTimeSlot_ClassNotFound(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("GetClassByID", mock.Anything, 99).Return(nil, sql.ErrNoRows)

	_, err := svc.CreateTimeSlot(context.Background(), 99, CreateTimeSlotRequest{})
	require.ErrorIs(t, err, ErrClassNotFound)
}

func TestListTimeSlots_UnknownClassFilter(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	classID := 99
	repo.On("GetClassByID", mock.Anything, 99).Return(nil, sql.ErrNoRows)

	_, err := svc.ListTimeSlots(context.Background(), &classID)
	require.ErrorIs(t, err, ErrClassNotFound)
	repo.AssertNotCalled(t, "ListAvailableSlots", mock.Anything, mock.Anything)
}

func TestListTimeSlots_EmptyNotNil(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("ListAvailableSlots", mock.Anything, (*int)(nil)).Return(nil, nil)

	slots, err := svc.ListTimeSlots(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, slots)
	require.Empty(t, slots)
}
