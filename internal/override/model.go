package override

import (
	"net/http"
	"time"

	"github.com/abuelosolos/Fara/internal/availability"
	"github.com/abuelosolos/Fara/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "day override not found")
	ErrInvalidDate = apperror.New(http.StatusBadRequest, "date must be YYYY-MM-DD")
	ErrHoursOrder  = apperror.New(http.StatusBadRequest, "custom hours must be strictly ascending")
)

// Override replaces the default business hours of one date.
type Override struct {
	Date    time.Time
	Blocked bool
	// Hours are boundary times; empty means default hours.
	Hours     []availability.TimeOfDay
	UpdatedAt time.Time
}

// DayOverride converts o into the engine's representation.
func (o *Override) DayOverride() availability.DayOverride {
	return availability.DayOverride{
		Date:    o.Date.Format(availability.DateLayout),
		Blocked: o.Blocked,
		Hours:   o.Hours,
	}
}
