package availability

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultDuration is used for a reservation whose service is no longer in the
// catalog and whose stored duration cannot be read.
const DefaultDuration = 60

// Catalog is a point-in-time view of the service catalog.
type Catalog struct {
	// Version increases with every catalog write.
	Version   int64
	Durations map[string]int
}

// Duration returns the length in minutes of service.
func (c Catalog) Duration(service string) (int, error) {
	d, ok := c.Durations[service]
	if !ok {
		return 0, ErrUnknownService
	}
	return d, nil
}

// Reservation is a confirmed booking as seen by the engine.
type Reservation struct {
	Date    string
	Start   string
	Service string
	// Duration is the free-text duration stored with the booking, e.g. "90 mins".
	Duration string
}

// BusyRange is time taken by a confirmed reservation.
type BusyRange struct {
	Date  string
	Start TimeOfDay
	End   TimeOfDay
}

// Overlaps reports whether [start, end) intersects the range.
func (b BusyRange) Overlaps(start, end TimeOfDay) bool {
	return start < b.End && end > b.Start
}

// ReservationDuration resolves how long r occupies. The live catalog wins;
// the stored duration string is only consulted for services the catalog no
// longer knows.
func ReservationDuration(r Reservation, catalog Catalog) (int, error) {
	d, err := catalog.Duration(r.Service)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, ErrUnknownService) {
		return 0, err
	}
	if legacy, ok := ParseLegacyDuration(r.Duration); ok {
		return legacy, nil
	}
	return DefaultDuration, nil
}

// BuildBusyRanges converts confirmed reservations into busy ranges.
func BuildBusyRanges(reservations []Reservation, catalog Catalog) ([]BusyRange, error) {
	ranges := make([]BusyRange, 0, len(reservations))
	for _, r := range reservations {
		start, err := ParseTimeOfDay(r.Start)
		if err != nil {
			return nil, err
		}
		d, err := ReservationDuration(r, catalog)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, BusyRange{Date: r.Date, Start: start, End: start + TimeOfDay(d)})
	}
	return ranges, nil
}

var legacyDurationPart = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(hours|hour|hrs|hr|h|minutes|minute|mins|min|m)?`)

// ParseLegacyDuration reads free-text durations such as "90 mins",
// "1 hour 30 mins", "2hrs" or "1.5 hours". Bare numbers are minutes.
func ParseLegacyDuration(s string) (int, bool) {
	matches := legacyDurationPart.FindAllStringSubmatch(strings.TrimSpace(s), -1)
	if len(matches) == 0 {
		return 0, false
	}

	var total float64
	for _, m := range matches {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		if strings.HasPrefix(strings.ToLower(m[2]), "h") {
			v *= 60
		}
		total += v
	}

	minutes := int(math.Round(total))
	if minutes <= 0 || minutes > MinutesPerDay {
		return 0, false
	}
	return minutes, true
}
