package availability

import (
	"maps"
	"slices"
)

// Slot is a bookable appointment [Start, End).
type Slot struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// GenerateSlots enumerates the start times for a service of the given
// duration inside interval that do not intersect any busy range.
//
// Candidates come from two sources: a grid stepping by duration from the
// opening time, and chains anchored right after each busy range (rounded up to
// SlotAlignment) so a gap left by an off-grid booking can still be filled.
// Busy ranges are expected to belong to the same date, for any service.
func GenerateSlots(interval Interval, duration int, busy []BusyRange) []Slot {
	if duration <= 0 || interval.Empty() {
		return nil
	}
	d := TimeOfDay(duration)

	candidates := make(map[TimeOfDay]struct{})
	seed := func(from TimeOfDay) {
		for t := from; t+d <= interval.End; t += d {
			candidates[t] = struct{}{}
		}
	}

	seed(interval.Start)
	for _, b := range busy {
		a := b.End.RoundUp(SlotAlignment)
		if a >= interval.Start && a < interval.End {
			seed(a)
		}
	}

	var slots []Slot
	for _, start := range slices.Sorted(maps.Keys(candidates)) {
		end := start + d
		if end > interval.End || overlapsAny(busy, start, end) {
			continue
		}
		slots = append(slots, Slot{Start: start, End: end})
	}
	return slots
}

func overlapsAny(busy []BusyRange, start, end TimeOfDay) bool {
	for _, b := range busy {
		if b.Overlaps(start, end) {
			return true
		}
	}
	return false
}
