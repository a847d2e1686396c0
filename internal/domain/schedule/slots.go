package schedule

import (
	"fmt"
	"sort"
)

// DefaultSlotLength is the bookable window in minutes.
const DefaultSlotLength = 30

// Interval is the half-open range [Start, End).
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

func (iv Interval) Valid() bool {
	return iv.Start.Valid() && iv.End <= MinutesPerDay && iv.Start < iv.End
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s-%s", iv.Start, iv.End)
}

// WorkingHours is the interval a doctor accepts bookings on one weekday.
type WorkingHours Interval

func (wh WorkingHours) Contains(iv Interval) bool {
	return iv.Start >= wh.Start && iv.End <= wh.End
}

func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// SlotAt is the candidate interval of one slot starting at start.
func SlotAt(start TimeOfDay, slotLen int) Interval {
	return Interval{Start: start, End: start + TimeOfDay(slotLen)}
}

// GenerateSlots returns the start of every free slotLen-minute window inside
// hours that does not intersect a booked interval. booked is not modified.
func GenerateSlots(hours WorkingHours, booked []Interval, slotLen int) []TimeOfDay {
	slots := []TimeOfDay{}
	if slotLen <= 0 || int(hours.End-hours.Start) < slotLen {
		return slots
	}

	sorted := make([]Interval, len(booked))
	copy(sorted, booked)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})
	sorted = append(sorted, Interval{Start: hours.End, End: hours.End})

	step := TimeOfDay(slotLen)
	current := hours.Start

	for _, iv := range sorted {
		limit := iv.Start
		if limit > hours.End {
			limit = hours.End
		}
		for current+step <= limit {
			slots = append(slots, current)
			current += step
		}
		// max guards against nested or overlapping input moving the cursor back
		if iv.End > current {
			current = iv.End
		}
	}

	return slots
}
