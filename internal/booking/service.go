package booking

import (
	"context"
	"errors"
	"time"

	"gymbooking/internal/catalog"
	"gymbooking/internal/email"
	"gymbooking/internal/logger"
	"gymbooking/internal/metrics"
)

var (
	ErrSlotNotFound      = errors.New("time slot not found")
	ErrSlotUnavailable   = errors.New("no spots available")
	ErrPastSlot          = errors.New("cannot book a slot in the past")
	ErrDuplicateBooking  = errors.New("an active booking already exists for this slot")
	ErrClassMismatch     = errors.New("time slot does not belong to the given class")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrReferenceMismatch = errors.New("booking reference does not match")
)

type Service interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingWithDetails, error)
	CancelBooking(ctx context.Context, bookingID int, reference string) (*BookingWithDetails, error)
	ListBookingsForEmail(ctx context.Context, email string) ([]BookingWithDetails, error)
}

type service struct {
	repo        Repository
	catalogRepo catalog.Repository
	email       *email.Service
}

func NewService(repo Repository, catalogRepo catalog.Repository, emailService *email.Service) Service {
	return &service{
		repo:        repo,
		catalogRepo: catalogRepo,
		email:       emailService,
	}
}

// CreateBooking validates against a pre-lock snapshot of the slot, then hands
// off to the repository which re-validates everything under the slot row lock.
// The snapshot checks exist only to fail fast with a precise error; they are
// not authoritative.
func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingWithDetails, error) {
	slot, err := s.catalogRepo.GetTimeSlotByID(ctx, req.TimeSlot)
	if err != nil {
		return nil, ErrSlotNotFound
	}
	if !slot.ClassIsActive {
		return nil, ErrSlotNotFound
	}
	if req.GymClass != slot.GymClassID {
		return nil, ErrClassMismatch
	}

	// Checked independently of availability: a slot may still show spots but
	// have already started.
	if !slot.StartTime.After(time.Now()) {
		return nil, ErrPastSlot
	}

	if slot.AvailableSpots <= 0 {
		return nil, ErrSlotUnavailable
	}

	hasActive, err := s.repo.HasActiveForSlot(ctx, req.Email, req.TimeSlot)
	if err != nil {
		return nil, err
	}
	if hasActive {
		return nil, ErrDuplicateBooking
	}

	booking, err := s.repo.Create(ctx, CreateParams{
		Reference:       NewReference(),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		GymClassID:      slot.GymClassID,
		TimeSlotID:      req.TimeSlot,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotMissing):
			return nil, ErrSlotNotFound
		case errors.Is(err, ErrNoSpotsLeft):
			metrics.RecordBooking("slot_unavailable")
			return nil, ErrSlotUnavailable
		case errors.Is(err, ErrDuplicateActive):
			metrics.RecordBooking("duplicate")
			return nil, ErrDuplicateBooking
		}
		return nil, err
	}

	metrics.RecordBooking("confirmed")
	logger.Infof("Booking %s created for %s (slot %d)", booking.BookingReference, booking.Email, booking.TimeSlotID)

	// Best effort: a failed notification never unwinds the booking.
	if err := s.email.SendBookingConfirmation(ctx, email.BookingDetails{
		FirstName:       booking.FirstName,
		Email:           booking.Email,
		Reference:       booking.BookingReference,
		ClassName:       slot.ClassName,
		Instructor:      slot.Instructor,
		StartTime:       slot.StartTime,
		DurationMinutes: slot.DurationMinutes,
		SpecialRequests: booking.SpecialRequests,
	}); err != nil {
		logger.Errorf("Failed to queue confirmation email for %s: %v", booking.BookingReference, err)
	}

	return &BookingWithDetails{
		Booking:         *booking,
		ClassName:       slot.ClassName,
		Instructor:      slot.Instructor,
		DurationMinutes: slot.DurationMinutes,
		SlotStartTime:   slot.StartTime,
		SlotEndTime:     slot.EndTime,
	}, nil
}

// CancelBooking requires the stored reference to match exactly; that check is
// the only authorization this API has. A mismatch mutates nothing.
func (s *service) CancelBooking(ctx context.Context, bookingID int, reference string) (*BookingWithDetails, error) {
	booking, err := s.repo.GetByIDWithDetails(ctx, bookingID)
	if err != nil {
		if errors.Is(err, ErrBookingMissing) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if booking.BookingReference != reference {
		return nil, ErrReferenceMismatch
	}

	if booking.Status == StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	cancelled, err := s.repo.Cancel(ctx, bookingID)
	if err != nil {
		if errors.Is(err, ErrBookingMissing) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	metrics.RecordBookingCancellation()
	logger.Infof("Booking %s cancelled", cancelled.BookingReference)

	if err := s.email.SendBookingCancellation(ctx, email.BookingDetails{
		FirstName: cancelled.FirstName,
		Email:     cancelled.Email,
		Reference: cancelled.BookingReference,
		ClassName: booking.ClassName,
		StartTime: booking.SlotStartTime,
	}); err != nil {
		logger.Errorf("Failed to queue cancellation email for %s: %v", cancelled.BookingReference, err)
	}

	return &BookingWithDetails{
		Booking:         *cancelled,
		ClassName:       booking.ClassName,
		Instructor:      booking.Instructor,
		DurationMinutes: booking.DurationMinutes,
		SlotStartTime:   booking.SlotStartTime,
		SlotEndTime:     booking.SlotEndTime,
	}, nil
}

func (s *service) ListBookingsForEmail(ctx context.Context, emailAddr string) ([]BookingWithDetails, error) {
	bookings, err := s.repo.ListForEmail(ctx, emailAddr)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []BookingWithDetails{}
	}
	return bookings, nil
}
