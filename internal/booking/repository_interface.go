package booking

import "context"

type CreateParams struct {
	Reference       string
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	GymClassID      int
	TimeSlotID      int
	SpecialRequests string
}

type Repository interface {
	Create(ctx context.Context, p CreateParams) (*Booking, error)
	Cancel(ctx context.Context, id int) (*Booking, error)
	GetByID(ctx context.Context, id int) (*Booking, error)
	GetByIDWithDetails(ctx context.Context, id int) (*BookingWithDetails, error)
	HasActiveForSlot(ctx context.Context, email string, timeSlotID int) (bool, error)
	ListForEmail(ctx context.Context, email string) ([]BookingWithDetails, error)
}
