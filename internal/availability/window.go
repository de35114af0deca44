package availability

import "time"

// LocalNow is the caller's notion of the current date and time of day.
type LocalNow struct {
	Date    time.Time
	Minutes TimeOfDay
	// Mixed is set when only one of date and time came from the caller and
	// the other from the process clock.
	Mixed bool
}

// ResolveLocalNow combines the optional caller-supplied date and minute
// offset with the process clock read in loc.
func ResolveLocalNow(localDate *string, localMinutes *int, now time.Time, loc *time.Location) (LocalNow, error) {
	if loc == nil {
		loc = time.UTC
	}
	clock := now.In(loc)

	res := LocalNow{
		Date:    civilDate(clock),
		Minutes: Clock(clock.Hour(), clock.Minute()),
	}

	if localDate != nil {
		d, err := ParseDate(*localDate)
		if err != nil {
			return LocalNow{}, invalidWindow("local date %q is not YYYY-MM-DD", *localDate)
		}
		res.Date = d
	}
	if localMinutes != nil {
		if *localMinutes < 0 || *localMinutes >= MinutesPerDay {
			return LocalNow{}, invalidWindow("local minutes %d outside 0..%d", *localMinutes, MinutesPerDay-1)
		}
		res.Minutes = TimeOfDay(*localMinutes)
	}

	res.Mixed = (localDate == nil) != (localMinutes == nil)
	return res, nil
}
