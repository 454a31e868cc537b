package catalog

import (
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

// @Summary      List active classes
// @Tags         classes
// @Produce      json
// @Success      200 {array} catalog.GymClass
// @Failure      500 {object} api.ErrorResponse
// @Router       /classes [get]
func (h *Handler) ListClasses(c *gin.Context) {
	ctx := c.Request.Context()
	classes, err := h.service.ListClasses(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch classes"})
		return
	}

	c.JSON(http.StatusOK, classes)
}

// @Summary      Get a class
// @Tags         classes
// @Produce      json
// @Param        classID path int true "Class ID"
// @Success      200 {object} catalog.GymClass
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /classes/{classID} [get]
func (h *Handler) GetClass(c *gin.Context) {
	classID, err := strconv.Atoi(c.Param("classID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class ID"})
		return
	}

	ctx := c.Request.Context()
	class, err := h.service.GetClass(ctx, classID)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found"})
		return
	}

	c.JSON(http.StatusOK, class)
}

// @Summary      Create a class
// @Accept       json
// @Tags         classes
// @Produce      json
// @Param        request body catalog.CreateClassRequest true "Class payload"
// @Success      201 {object} catalog.GymClass
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /classes [post]
func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondWithBindingError(c, err)
		return
	}

	ctx := c.Request.Context()
	class, err := h.service.CreateClass(ctx, req)
	if err != nil {
		switch err {
		case ErrInvalidClass:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class type"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create class"})
		}
		return
	}

	c.JSON(http.StatusCreated, class)
}

// @Summary      Create a time slot for a class
// @Accept       json
// @Tags         classes
// @Produce      json
// @Param        classID path int true "Class ID"
// @Param        request body catalog.CreateTimeSlotRequest true "Time slot payload"
// @Success      201 {object} catalog.TimeSlot
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /classes/{classID}/slots [post]
func (h *Handler) CreateTimeSlot(c *gin.Context) {
	classID, err := strconv.Atoi(c.Param("classID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class ID"})
		return
	}

	var req CreateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondWithBindingError(c, err)
		return
	}

	ctx := c.Request.Context()
	slot, err := h.service.CreateTimeSlot(ctx, classID, req)
	if err != nil {
		switch err {
		case ErrClassNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found"})
		case ErrTimeSlotInvalid:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid time slot data"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create time slot"})
		}
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// @Summary      List available future time slots
// @Tags         timeslots
// @Produce      json
// @Param        gym_class query int false "Filter by class ID"
// @Success      200 {array} catalog.TimeSlotWithClass
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /timeslots [get]
func (h *Handler) ListTimeSlots(c *gin.Context) {
	var classID *int
	if raw := c.Query("gym_class"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid gym_class filter"})
			return
		}
		classID = &id
	}

	ctx := c.Request.Context()
	slots, err := h.service.ListTimeSlots(ctx, classID)
	if err != nil {
		switch err {
		case ErrClassNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch time slots"})
		}
		return
	}

	c.JSON(http.StatusOK, slots)
}
