package availability

import "time"

const (
	// LeadTime is how far ahead of "now" the first same-day slot must start.
	LeadTime = 30
	// SlotAlignment is the granularity, in minutes, of cutoff and anchor rounding.
	SlotAlignment = 10
	// boundarySpan extends the last custom boundary time into a closing time.
	boundarySpan = 60

	DateLayout = "2006-01-02"
)

// DefaultHours is the open interval of a day without an override, 9:00 AM to 6:00 PM.
var DefaultHours = Interval{Start: Clock(9, 0), End: Clock(18, 0)}

// Interval is a half-open range of minutes [Start, End).
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

func (i Interval) Empty() bool {
	return i.Start >= i.End
}

// DayOverride replaces the default hours for a single date.
type DayOverride struct {
	Date    string
	Blocked bool
	// Hours are the boundary times of a custom day, ascending. The day opens
	// at the first and closes an hour after the last. Empty means default hours.
	Hours []TimeOfDay
}

// Nominal returns the open interval the override describes, before any
// same-day cutoff is applied.
func (o DayOverride) Nominal(fallback Interval) Interval {
	if len(o.Hours) == 0 {
		return fallback
	}
	end := o.Hours[len(o.Hours)-1] + boundarySpan
	if end > MinutesPerDay {
		end = MinutesPerDay
	}
	return Interval{Start: o.Hours[0], End: end}
}

// EffectiveInterval resolves the bookable interval of date. It reports false
// when the date is in the past, blocked, or already closed for today.
func EffectiveInterval(date, today time.Time, now TimeOfDay, override *DayOverride, defaults Interval) (Interval, bool) {
	if date.Before(today) {
		return Interval{}, false
	}

	nominal := defaults
	if override != nil {
		if override.Blocked {
			return Interval{}, false
		}
		nominal = override.Nominal(defaults)
	}

	effective := nominal
	if date.Equal(today) {
		effective.Start = max(nominal.Start, now+LeadTime).RoundUp(SlotAlignment)
	}

	if effective.Empty() {
		return Interval{}, false
	}
	return effective, true
}

// civilDate truncates t to midnight UTC of its own calendar day, which keeps
// date arithmetic free of zone transitions.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO calendar date into a civil date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return civilDate(d), nil
}
