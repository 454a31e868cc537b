package contact

import (
	"net/http"

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

// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        request body contact.CreateContactRequest true "Contact payload"
// @Success      201 {object} contact.ContactMessage
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /contact [post]
func (h *Handler) SubmitMessage(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondWithBindingError(c, err)
		return
	}

	ctx := c.Request.Context()
	msg, err := h.service.SubmitMessage(ctx, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to submit message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully",
		"data":    msg,
	})
}
