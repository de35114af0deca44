package http

import (
	"time"

	"github.com/abuelosolos/Fara/internal/availability"
	"github.com/abuelosolos/Fara/internal/pkg/request"
	"github.com/abuelosolos/Fara/internal/reservation"
)

// ListReservationsRequest defines query parameters for listing reservations.
type ListReservationsRequest struct {
	request.ListParams
	Status   string `form:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	Service  string `form:"service"`
	DateFrom string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
}

// Filter converts the query into a repository filter.
func (r *ListReservationsRequest) Filter() (reservation.Filter, error) {
	f := reservation.Filter{
		Status:   r.Status,
		Service:  r.Service,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
	if r.DateFrom != "" {
		d, err := availability.ParseDate(r.DateFrom)
		if err != nil {
			return f, reservation.ErrInvalidInput
		}
		f.DateFrom = &d
	}
	if r.DateTo != "" {
		d, err := availability.ParseDate(r.DateTo)
		if err != nil {
			return f, reservation.ErrInvalidInput
		}
		f.DateTo = &d
	}
	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		return f, reservation.ErrInvalidInput
	}
	return f, nil
}

type ReservationResponse struct {
	ID            string    `json:"id"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	Service       string    `json:"service"`
	Duration      string    `json:"duration"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewReservationResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:            r.ID,
		Date:          r.Date.Format(availability.DateLayout),
		StartTime:     r.StartTime,
		Service:       r.Service,
		Duration:      r.Duration,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

type CreateReservationRequest struct {
	Date          string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime     string `json:"start_time" binding:"required"`
	Service       string `json:"service" binding:"required,max=100"`
	CustomerName  string `json:"customer_name" binding:"required,max=200"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone" binding:"omitempty,max=32"`
	Notes         string `json:"notes" binding:"omitempty,max=1000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}
