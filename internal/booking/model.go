package booking

import "time"

// Booking statuses. PENDING and CONFIRMED count as active for capacity and
// duplicate checks; CANCELLED bookings are kept, never deleted.
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
	StatusCompleted = "COMPLETED"
)

type Booking struct {
	ID               int       `db:"id" json:"id"`
	BookingReference string    `db:"booking_reference" json:"booking_reference"`
	FirstName        string    `db:"first_name" json:"first_name"`
	LastName         string    `db:"last_name" json:"last_name"`
	Email            string    `db:"email" json:"email"`
	Phone            string    `db:"phone" json:"phone"`
	GymClassID       int       `db:"gym_class_id" json:"gym_class"`
	TimeSlotID       int       `db:"time_slot_id" json:"time_slot"`
	Status           string    `db:"status" json:"status"`
	SpecialRequests  string    `db:"special_requests" json:"special_requests"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

type BookingWithDetails struct {
	Booking
	ClassName       string    `db:"class_name" json:"class_name"`
	Instructor      string    `db:"instructor" json:"instructor"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	SlotStartTime   time.Time `db:"slot_start_time" json:"slot_start_time"`
	SlotEndTime     time.Time `db:"slot_end_time" json:"slot_end_time"`
}

type CreateBookingRequest struct {
	FirstName       string `json:"first_name" binding:"required,max=100"`
	LastName        string `json:"last_name" binding:"required,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required,max=20"`
	GymClass        int    `json:"gym_class" binding:"required"`
	TimeSlot        int    `json:"time_slot" binding:"required"`
	SpecialRequests string `json:"special_requests" binding:"max=500"`
}

type CancelBookingRequest struct {
	BookingReference string `json:"booking_reference" binding:"required"`
}
