package http

import (
	"time"

	"github.com/abuelosolos/Fara/internal/availability"
	"github.com/abuelosolos/Fara/internal/override"
)

type ByDateRequest struct {
	Date string `uri:"date" binding:"required,datetime=2006-01-02"`
}

type ListOverridesRequest struct {
	From *string `form:"from" binding:"omitempty,datetime=2006-01-02"`
}

type OverrideResponse struct {
	Date      string    `json:"date"`
	Blocked   bool      `json:"blocked"`
	Hours     []string  `json:"hours"`
	OpensAt   string    `json:"opens_at,omitempty"`
	ClosesAt  string    `json:"closes_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewResponse(o *override.Override) OverrideResponse {
	resp := OverrideResponse{
		Date:      o.Date.Format(availability.DateLayout),
		Blocked:   o.Blocked,
		Hours:     make([]string, len(o.Hours)),
		UpdatedAt: o.UpdatedAt,
	}
	for i, h := range o.Hours {
		resp.Hours[i] = h.String()
	}
	if !o.Blocked {
		interval := o.DayOverride().Nominal(availability.DefaultHours)
		resp.OpensAt = interval.Start.String()
		resp.ClosesAt = interval.End.String()
	}
	return resp
}

type PutRequest struct {
	Blocked bool     `json:"blocked"`
	Hours   []string `json:"hours" binding:"max=48"`
}
