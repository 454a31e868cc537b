package catalog

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateClass(ctx context.Context, req CreateClassRequest) (*GymClass, error) {
	query := `
		INSERT INTO gym_classes (name, class_type, description, duration_minutes, max_participants, instructor)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, class_type, description, duration_minutes, max_participants, instructor, is_active, created_at
	`

	var class GymClass
	err := r.db.GetContext(ctx, &class, query,
		req.Name, req.ClassType, req.Description, req.DurationMinutes, req.MaxParticipants, req.Instructor)
	if err != nil {
		return nil, err
	}

	return &class, nil
}

func (r *repository) ListActiveClasses(ctx context.Context) ([]GymClass, error) {
	query := `
		SELECT id, name, class_type, description, duration_minutes, max_participants, instructor, is_active, created_at
		FROM gym_classes
		WHERE is_active = TRUE
		ORDER BY name
	`

	var classes []GymClass
	err := r.db.SelectContext(ctx, &classes, query)
	if err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *repository) GetClassByID(ctx context.Context, id int) (*GymClass, error) {
	query := `
		SELECT id, name, class_type, description, duration_minutes, max_participants, instructor, is_active, created_at
		FROM gym_classes
		WHERE id = $1
	`

	var class GymClass
	err := r.db.GetContext(ctx, &class, query, id)
	if err != nil {
		return nil, err
	}

	return &class, nil
}

func (r *repository) CreateTimeSlot(ctx context.Context, classID int, startTime, endTime time.Time, availableSpots int) (*TimeSlot, error) {
	query := `
		INSERT INTO time_slots (gym_class_id, start_time, end_time, available_spots, is_available)
		VALUES ($1, $2, $3, $4, $4 > 0)
		RETURNING id, gym_class_id, start_time, end_time, available_spots, is_available
	`

	var slot TimeSlot
	err := r.db.GetContext(ctx, &slot, query, classID, startTime, endTime, availableSpots)
	if err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *repository) GetTimeSlotByID(ctx context.Context, id int) (*TimeSlotWithClass, error) {
	query := `
		SELECT
			ts.id,
			ts.gym_class_id,
			ts.start_time,
			ts.end_time,
			ts.available_spots,
			ts.is_available,
			c.name AS class_name,
			c.class_type AS class_type,
			c.instructor AS instructor,
			c.duration_minutes AS duration_minutes,
			c.max_participants AS max_participants,
			c.is_active AS class_is_active
		FROM time_slots ts
		JOIN gym_classes c ON ts.gym_class_id = c.id
		WHERE ts.id = $1
	`

	var slot TimeSlotWithClass
	err := r.db.GetContext(ctx, &slot, query, id)
	if err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *repository) ListAvailableSlots(ctx context.Context, classID *int) ([]TimeSlotWithClass, error) {
	query := `
		SELECT
			ts.id,
			ts.gym_class_id,
			ts.start_time,
			ts.end_time,
			ts.available_spots,
			ts.is_available,
			c.name AS class_name,
			c.class_type AS class_type,
			c.instructor AS instructor,
			c.duration_minutes AS duration_minutes,
			c.max_participants AS max_participants,
			c.is_active AS class_is_active
		FROM time_slots ts
		JOIN gym_classes c ON ts.gym_class_id = c.id
		WHERE ts.is_available = TRUE
		  AND ts.start_time > NOW()
		  AND c.is_active = TRUE
	`
	args := []interface{}{}

	if classID != nil {
		query += " AND ts.gym_class_id = $1"
		args = append(args, *classID)
	}

	query += " ORDER BY ts.start_time ASC"

	var slots []TimeSlotWithClass
	err := r.db.SelectContext(ctx, &slots, query, args...)
	if err != nil {
		return nil, err
	}

	return slots, nil
}
