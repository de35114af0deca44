package reservation

import (
	"net/http"
	"time"

	"github.com/abuelosolos/Fara/internal/availability"
	"github.com/abuelosolos/Fara/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "reservation not found")
	ErrTimeConflict      = apperror.New(http.StatusConflict, "time slot already booked")
	ErrDuplicate         = apperror.New(http.StatusConflict, "reservation already submitted")
	ErrInvalidStatus     = apperror.New(http.StatusBadRequest, "invalid reservation status")
	ErrInvalidTransition = apperror.New(http.StatusConflict, "reservation status cannot change that way")
	ErrInvalidInput      = apperror.New(http.StatusBadRequest, "invalid input parameters")
	ErrDateInPast        = apperror.New(http.StatusBadRequest, "cannot book a date in the past")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a reservation in s may move to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Reservation struct {
	ID        string
	Date      time.Time
	StartTime string
	Service   string
	// Duration is recorded at booking time, e.g. "90 mins".
	Duration      string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Engine converts r into the availability engine's view of a booking.
func (r *Reservation) Engine() availability.Reservation {
	return availability.Reservation{
		Date:     r.Date.Format(availability.DateLayout),
		Start:    r.StartTime,
		Service:  r.Service,
		Duration: r.Duration,
	}
}

type Filter struct {
	Status   string
	Service  string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	PageSize int
}
