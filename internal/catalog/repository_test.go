package catalog

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

var classCols = []string{
	"id", "name", "class_type", "description", "duration_minutes",
	"max_participants", "instructor", "is_active", "created_at",
}

var slotWithClassCols = []string{
	"id", "gym_class_id", "start_time", "end_time", "available_spots", "is_available",
	"class_name", "class_type", "instructor", "duration_minutes", "max_participants", "class_is_active",
}

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	return repo, mock, func() { sqlxDB.Close() }
}

func TestCreateClass(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO gym_classes (name, class_type, description, duration_minutes, max_participants, instructor)")).
		WithArgs("Yoga Basics", ClassTypeYoga, "Intro yoga", 60, 10, "Jane Smith").
		WillReturnRows(sqlmock.NewRows(classCols).
			AddRow(1, "Yoga Basics", ClassTypeYoga, "Intro yoga", 60, 10, "Jane Smith", true, now))

	class, err := repo.CreateClass(context.Background(), CreateClassRequest{
		Name:            "Yoga Basics",
		ClassType:       ClassTypeYoga,
		Description:     "Intro yoga",
		DurationMinutes: 60,
		MaxParticipants: 10,
		Instructor:      "Jane Smith",
	})
	require.NoError(t, err)
	require.Equal(t, 1, class.ID)
	require.True(t, class.IsActive)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveClasses(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE is_active = TRUE")).
		WillReturnRows(sqlmock.NewRows(classCols).
			AddRow(2, "Cardio Blast", ClassTypeCardio, "High intensity", 45, 20, "Mike", true, now).
			AddRow(1, "Yoga Basics", ClassTypeYoga, "Intro yoga", 60, 10, "Jane Smith", true, now))

	classes, err := repo.ListActiveClasses(context.Background())
	require.NoError(t, err)
	require.Len(t, classes, 2)
	require.Equal(t, "Cardio Blast", classes[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetClassByID_NotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM gym_classes")).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetClassByID(context.Background(), 99)
	require.Error(t, err)
}

func TestCreateTimeSlot(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	start := time.Now().Add(24 * time.Hour)
	end := start.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO time_slots (gym_class_id, start_time, end_time, available_spots, is_available)")).
		WithArgs(1, start, end, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "gym_class_id", "start_time", "end_time", "available_spots", "is_available"}).
			AddRow(5, 1, start, end, 10, true))

	slot, err := repo.CreateTimeSlot(context.Background(), 1, start, end, 10)
	require.NoError(t, err)
	require.Equal(t, 5, slot.ID)
	require.True(t, slot.IsAvailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTimeSlotByID(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	start := time.Now().Add(24 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("JOIN gym_classes c ON ts.gym_class_id = c.id")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(slotWithClassCols).
			AddRow(2, 1, start, start.Add(time.Hour), 3, true,
				"Yoga Basics", ClassTypeYoga, "Jane Smith", 60, 10, true))

	slot, err := repo.GetTimeSlotByID(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, 2, slot.ID)
	require.Equal(t, "Yoga Basics", slot.ClassName)
	require.True(t, slot.ClassIsActive)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListAvailableSlots(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	start := time.Now().Add(24 * time.Hour)
	rows := func() *sqlmock.Rows {
		return sqlmock.NewRows(slotWithClassCols).
			AddRow(2, 1, start, start.Add(time.Hour), 3, true,
				"Yoga Basics", ClassTypeYoga, "Jane Smith", 60, 10, true)
	}

	// Unfiltered.
	mock.ExpectQuery(regexp.QuoteMeta("WHERE ts.is_available = TRUE")).
		WillReturnRows(rows())

	slots, err := repo.ListAvailableSlots(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, slots, 1)

	// Filtered by class.
	classID := 1
	mock.ExpectQuery(regexp.QuoteMeta("AND ts.gym_class_id = $1")).
		WithArgs(1).
		WillReturnRows(rows())

	slots, err = repo.ListAvailableSlots(context.Background(), &classID)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	require.Equal(t, 1, slots[0].GymClassID)
	require.NoError(t, mock.ExpectationsWereMet())
}
