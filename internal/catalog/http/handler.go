package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abuelosolos/Fara/internal/catalog"
	"github.com/abuelosolos/Fara/internal/pkg/response"
)

type Handler struct {
	service catalog.Service
}

func NewHandler(service catalog.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]ServiceResponse, len(items))
	for i, it := range items {
		out[i] = NewResponse(it)
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Get(c *gin.Context) {
	var uri ByNameRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	it, err := h.service.Get(c.Request.Context(), uri.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewResponse(it))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	it, err := h.service.Create(c.Request.Context(), body.Name, body.DurationMinutes)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewResponse(it))
}

func (h *Handler) Update(c *gin.Context) {
	var uri ByNameRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	var body UpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	it, err := h.service.UpdateDuration(c.Request.Context(), uri.Name, body.DurationMinutes)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewResponse(it))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri ByNameRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.Name); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
