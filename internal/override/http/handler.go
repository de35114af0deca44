package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abuelosolos/Fara/internal/availability"
	"github.com/abuelosolos/Fara/internal/override"
	"github.com/abuelosolos/Fara/internal/pkg/response"
)

type Handler struct {
	service override.Service
}

func NewHandler(service override.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListOverridesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	var from *time.Time
	if req.From != nil {
		d, err := availability.ParseDate(*req.From)
		if err != nil {
			response.Error(c, override.ErrInvalidDate)
			return
		}
		from = &d
	}

	list, err := h.service.List(c.Request.Context(), from)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]OverrideResponse, len(list))
	for i, o := range list {
		items[i] = NewResponse(o)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	var uri ByDateRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	o, err := h.service.Get(c.Request.Context(), uri.Date)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewResponse(o))
}

func (h *Handler) Put(c *gin.Context) {
	var uri ByDateRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	var body PutRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	o, err := h.service.Put(c.Request.Context(), override.PutRequest{
		Date:    uri.Date,
		Blocked: body.Blocked,
		Hours:   body.Hours,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewResponse(o))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri ByDateRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.Date); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
