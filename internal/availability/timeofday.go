package availability

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
//
// Its external form is a 12-hour clock string such as "9:00 AM".
type TimeOfDay int

// Clock is a convenience constructor for hour/minute pairs on a 24-hour clock.
func Clock(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay parses a 12-hour clock string ("9:00 AM", "12:30 pm", "4:05PM").
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	raw := strings.ToUpper(strings.TrimSpace(s))

	var pm bool
	switch {
	case strings.HasSuffix(raw, "AM"):
	case strings.HasSuffix(raw, "PM"):
		pm = true
	default:
		return 0, malformedTime(s)
	}
	clock := strings.TrimSpace(raw[:len(raw)-2])

	hh, mm, ok := strings.Cut(clock, ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 || !isDigits(hh) || !isDigits(mm) {
		return 0, malformedTime(s)
	}

	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	if h < 1 || h > 12 || m > 59 {
		return 0, malformedTime(s)
	}

	h %= 12
	if pm {
		h += 12
	}
	return TimeOfDay(h*60 + m), nil
}

// MustParseTimeOfDay is like ParseTimeOfDay but panics on malformed input.
func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// String renders t on a 12-hour clock. The end of day (1440) renders as
// "12:00 AM", the midnight that closes the day.
func (t TimeOfDay) String() string {
	m := int(t) % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}

	h := m / 60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m%60, suffix)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	v, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// RoundUp returns the smallest multiple of step that is >= t.
func (t TimeOfDay) RoundUp(step int) TimeOfDay {
	if step <= 0 {
		return t
	}
	r := int(t) % step
	if r == 0 {
		return t
	}
	return t + TimeOfDay(step-r)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
