package http

import (
	"time"

	"github.com/abuelosolos/Fara/internal/catalog"
)

// ByNameRequest binds the service name path parameter.
type ByNameRequest struct {
	Name string `uri:"name" binding:"required,max=100"`
}

type ServiceResponse struct {
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewResponse(it *catalog.Item) ServiceResponse {
	return ServiceResponse{
		Name:            it.Name,
		DurationMinutes: it.DurationMinutes,
		UpdatedAt:       it.UpdatedAt,
	}
}

type CreateRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=100"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1,max=1440"`
}

type UpdateRequest struct {
	DurationMinutes int `json:"duration_minutes" binding:"required,min=1,max=1440"`
}
