package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abuelosolos/Fara/internal/availability"
	"github.com/abuelosolos/Fara/internal/pkg/response"
)

type Handler struct {
	service availability.Service
}

func NewHandler(service availability.Service) *Handler {
	return &Handler{service: service}
}

// Get returns bookable slots per service for today and the following 60 days.
func (h *Handler) Get(c *gin.Context) {
	var q AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, availability.ErrInvalidWindowInput.Message, err)
		return
	}

	days, err := h.service.Availability(c.Request.Context(), availability.Query{
		LocalDate:    q.LocalDate,
		LocalMinutes: q.LocalMinutes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewDayResponses(days))
}
