package catalog

import (
	"net/http"
	"time"

	"github.com/abuelosolos/Fara/internal/availability"
	"github.com/abuelosolos/Fara/internal/pkg/apperror"
)

var (
	ErrNotFound        = availability.ErrUnknownService
	ErrAlreadyExists   = apperror.New(http.StatusConflict, "service already exists")
	ErrNameRequired    = apperror.New(http.StatusBadRequest, "service name is required")
	ErrInvalidDuration = apperror.New(http.StatusBadRequest, "duration must be between 1 and 1440 minutes")
)

// MaxDuration caps a single service at one calendar day.
const MaxDuration = 24 * 60

// Item is a bookable service and how long it takes.
type Item struct {
	Name            string
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
