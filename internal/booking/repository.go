package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"gymbooking/internal/db"
)

var (
	ErrSlotMissing        = errors.New("time slot not found")
	ErrNoSpotsLeft        = errors.New("no spots available")
	ErrDuplicateActive    = errors.New("active booking already exists for this slot")
	ErrReferenceCollision = errors.New("booking reference collision")
	ErrBookingMissing     = errors.New("booking not found")
	ErrAlreadyCancelled   = errors.New("booking already cancelled")
)

const pqUniqueViolation = "23505"

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

// Create performs the capacity-safe booking insert. The slot row is locked
// before the authoritative re-read, so a concurrent caller blocks until this
// transaction commits and then sees the decremented count. Booking insert and
// slot decrement commit together or not at all.
func (r *repository) Create(ctx context.Context, p CreateParams) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var spots int
	err = tx.GetContext(ctx, &spots,
		`SELECT available_spots FROM time_slots WHERE id = $1 FOR UPDATE`,
		p.TimeSlotID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotMissing
		}
		return nil, err
	}

	if spots <= 0 {
		return nil, ErrNoSpotsLeft
	}

	var exists bool
	err = tx.GetContext(ctx, &exists,
		`SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE email = $1 AND time_slot_id = $2 AND status IN ('PENDING', 'CONFIRMED')
		)`,
		p.Email, p.TimeSlotID,
	)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateActive
	}

	var booking Booking
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO bookings (booking_reference, first_name, last_name, email, phone, gym_class_id, time_slot_id, status, special_requests)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, 'CONFIRMED', $8)
		 RETURNING id, booking_reference, first_name, last_name, email, phone, gym_class_id, time_slot_id, status, special_requests, created_at, updated_at`,
		p.Reference, p.FirstName, p.LastName, p.Email, p.Phone, p.GymClassID, p.TimeSlotID, p.SpecialRequests,
	).StructScan(&booking)
	if err != nil {
		return nil, mapUniqueViolation(err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE time_slots
		 SET available_spots = available_spots - 1,
		     is_available = available_spots - 1 > 0
		 WHERE id = $1`,
		p.TimeSlotID,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &booking, nil
}

// Cancel flips a booking to CANCELLED and restores one spot on its slot,
// under the same slot lock as Create. Cancellation always sets is_available
// back to true.
func (r *repository) Cancel(ctx context.Context, id int) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var slotID int
	err = tx.GetContext(ctx, &slotID, `SELECT time_slot_id FROM bookings WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingMissing
		}
		return nil, err
	}

	var lockedSlotID int
	err = tx.GetContext(ctx, &lockedSlotID, `SELECT id FROM time_slots WHERE id = $1 FOR UPDATE`, slotID)
	if err != nil {
		return nil, err
	}

	var booking Booking
	err = tx.QueryRowxContext(ctx,
		`UPDATE bookings
		 SET status = 'CANCELLED', updated_at = NOW()
		 WHERE id = $1 AND status <> 'CANCELLED'
		 RETURNING id, booking_reference, first_name, last_name, email, phone, gym_class_id, time_slot_id, status, special_requests, created_at, updated_at`,
		id,
	).StructScan(&booking)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAlreadyCancelled
		}
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE time_slots
		 SET available_spots = available_spots + 1,
		     is_available = TRUE
		 WHERE id = $1`,
		slotID,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Booking, error) {
	query := `
		SELECT id, booking_reference, first_name, last_name, email, phone, gym_class_id, time_slot_id, status, special_requests, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingMissing
		}
		return nil, err
	}

	return &booking, nil
}

func (r *repository) GetByIDWithDetails(ctx context.Context, id int) (*BookingWithDetails, error) {
	query := `
		SELECT
			b.id,
			b.booking_reference,
			b.first_name,
			b.last_name,
			b.email,
			b.phone,
			b.gym_class_id,
			b.time_slot_id,
			b.status,
			b.special_requests,
			b.created_at,
			b.updated_at,
			c.name AS class_name,
			c.instructor AS instructor,
			c.duration_minutes AS duration_minutes,
			ts.start_time AS slot_start_time,
			ts.end_time AS slot_end_time
		FROM bookings b
		JOIN gym_classes c ON b.gym_class_id = c.id
		JOIN time_slots ts ON b.time_slot_id = ts.id
		WHERE b.id = $1
	`

	var booking BookingWithDetails
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingMissing
		}
		return nil, err
	}

	return &booking, nil
}

func (r *repository) HasActiveForSlot(ctx context.Context, email string, timeSlotID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE email = $1 AND time_slot_id = $2 AND status IN ('PENDING', 'CONFIRMED')
		)
	`

	return db.Exists(ctx, r.db, query, email, timeSlotID)
}

func (r *repository) ListForEmail(ctx context.Context, email string) ([]BookingWithDetails, error) {
	query := `
		SELECT
			b.id,
			b.booking_reference,
			b.first_name,
			b.last_name,
			b.email,
			b.phone,
			b.gym_class_id,
			b.time_slot_id,
			b.status,
			b.special_requests,
			b.created_at,
			b.updated_at,
			c.name AS class_name,
			c.instructor AS instructor,
			c.duration_minutes AS duration_minutes,
			ts.start_time AS slot_start_time,
			ts.end_time AS slot_end_time
		FROM bookings b
		JOIN gym_classes c ON b.gym_class_id = c.id
		JOIN time_slots ts ON b.time_slot_id = ts.id
		WHERE b.email = $1 AND b.status <> 'CANCELLED'
		ORDER BY b.created_at DESC
	`

	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings, query, email)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		switch pqErr.Constraint {
		case "unique_active_booking":
			return ErrDuplicateActive
		case "bookings_booking_reference_key":
			return ErrReferenceCollision
		}
	}
	return err
}
