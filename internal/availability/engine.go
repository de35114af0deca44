package availability

import "time"

// WindowDays is the number of dates covered by one computation: today plus
// the following 60 days.
const WindowDays = 61

// Input is everything one availability computation reads.
type Input struct {
	// Today is the caller's local date; only its calendar day is used.
	Today time.Time
	// Now is the caller's local time of day.
	Now          TimeOfDay
	Catalog      Catalog
	Overrides    map[string]DayOverride
	Reservations []Reservation
	// Hours defaults to DefaultHours when empty.
	Hours Interval
}

// DayAvailability lists the bookable slots of every service on one date.
type DayAvailability struct {
	Date          string
	IntervalSlots map[string][]Slot
}

// Compute derives the availability for the whole window. Dates without any
// bookable slot are left out. Any malformed input aborts the computation.
func Compute(in Input) ([]DayAvailability, error) {
	if in.Now < 0 || in.Now >= MinutesPerDay {
		return nil, invalidWindow("time of day %d outside 0..%d", int(in.Now), MinutesPerDay-1)
	}
	if in.Today.IsZero() {
		return nil, invalidWindow("missing local date")
	}

	hours := in.Hours
	if hours.Empty() {
		hours = DefaultHours
	}

	ranges, err := BuildBusyRanges(in.Reservations, in.Catalog)
	if err != nil {
		return nil, err
	}
	busyByDate := make(map[string][]BusyRange)
	for _, b := range ranges {
		busyByDate[b.Date] = append(busyByDate[b.Date], b)
	}

	today := civilDate(in.Today)
	result := make([]DayAvailability, 0, WindowDays)
	for i := range WindowDays {
		date := today.AddDate(0, 0, i)
		key := date.Format(DateLayout)

		var override *DayOverride
		if o, ok := in.Overrides[key]; ok {
			override = &o
		}

		interval, ok := EffectiveInterval(date, today, in.Now, override, hours)
		if !ok {
			continue
		}

		slots := make(map[string][]Slot)
		for service, d := range in.Catalog.Durations {
			if s := GenerateSlots(interval, d, busyByDate[key]); len(s) > 0 {
				slots[service] = s
			}
		}
		if len(slots) == 0 {
			continue
		}
		result = append(result, DayAvailability{Date: key, IntervalSlots: slots})
	}
	return result, nil
}
