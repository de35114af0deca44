package http

import "github.com/abuelosolos/Fara/internal/availability"

// AvailabilityQuery is the caller's optional local clock.
type AvailabilityQuery struct {
	LocalDate    *string `form:"localDate" binding:"omitempty,datetime=2006-01-02"`
	LocalMinutes *int    `form:"localMinutes" binding:"omitempty,min=0,max=1439"`
}

type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type DayResponse struct {
	Date          string                    `json:"date"`
	IntervalSlots map[string][]SlotResponse `json:"intervalSlots"`
}

func NewDayResponses(days []availability.DayAvailability) []DayResponse {
	out := make([]DayResponse, 0, len(days))
	for _, d := range days {
		slots := make(map[string][]SlotResponse, len(d.IntervalSlots))
		for service, ss := range d.IntervalSlots {
			items := make([]SlotResponse, len(ss))
			for i, s := range ss {
				items[i] = SlotResponse{Start: s.Start.String(), End: s.End.String()}
			}
			slots[service] = items
		}
		out = append(out, DayResponse{Date: d.Date, IntervalSlots: slots})
	}
	return out
}
