package booking

import (
	"errors"
	"net/http"
	"strconv"

	"gymbooking/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      Create a booking
// @Description  Books a spot on a time slot, decrementing its capacity atomically.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request body booking.CreateBookingRequest true "Booking payload"
// @Success      201 {object} booking.BookingWithDetails
// @Failure      400 {object} api.ConflictResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondWithBindingError(c, err)
		return
	}

	ctx := c.Request.Context()
	booking, err := h.service.CreateBooking(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Time slot not found"})
		case errors.Is(err, ErrClassMismatch):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Time slot does not belong to the given class"})
		case errors.Is(err, ErrPastSlot):
			c.JSON(http.StatusBadRequest, api.ConflictResponse{Error: "Cannot book past time slots", Code: "past_slot"})
		case errors.Is(err, ErrSlotUnavailable):
			c.JSON(http.StatusBadRequest, api.ConflictResponse{Error: "This class is fully booked", Code: "slot_unavailable"})
		case errors.Is(err, ErrDuplicateBooking):
			c.JSON(http.StatusBadRequest, api.ConflictResponse{Error: "You already have a booking for this time slot", Code: "duplicate_booking"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Booking failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// @Summary      Cancel a booking
// @Description  Cancels a booking and restores one spot on its slot. Requires the booking reference.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        bookingID path int true "Booking ID"
// @Param        request body booking.CancelBookingRequest true "Booking reference"
// @Success      200 {object} booking.BookingWithDetails
// @Failure      400 {object} api.ConflictResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /bookings/{bookingID}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondWithBindingError(c, err)
		return
	}

	ctx := c.Request.Context()
	booking, err := h.service.CancelBooking(ctx, bookingID, req.BookingReference)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
		case errors.Is(err, ErrReferenceMismatch):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Booking reference does not match"})
		case errors.Is(err, ErrAlreadyCancelled):
			c.JSON(http.StatusBadRequest, api.ConflictResponse{Error: "This booking is already cancelled", Code: "already_cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel booking"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking cancelled successfully",
		"booking": booking,
	})
}

// @Summary      List bookings for an email
// @Description  Returns non-cancelled bookings for the given email, newest first.
// @Tags         bookings
// @Produce      json
// @Param        email query string true "Email address"
// @Success      200 {array} booking.BookingWithDetails
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /bookings/my_bookings [get]
func (h *Handler) MyBookings(c *gin.Context) {
	emailAddr := c.Query("email")
	if emailAddr == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Email parameter is required"})
		return
	}

	ctx := c.Request.Context()
	bookings, err := h.service.ListBookingsForEmail(ctx, emailAddr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}
