package schedule

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func hm(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func hours(start, end string) WorkingHours {
	return WorkingHours{Start: hm(start), End: hm(end)}
}

func iv(start, end string) Interval {
	return Interval{Start: hm(start), End: hm(end)}
}

func formatAll(slots []TimeOfDay) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

func TestGenerateSlots_FullDay(t *testing.T) {
	slots := GenerateSlots(hours("09:00", "17:00"), nil, DefaultSlotLength)

	assert.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0].String())
	assert.Equal(t, "16:30", slots[len(slots)-1].String())
}

func TestGenerateSlots_SkipsBooked(t *testing.T) {
	slots := GenerateSlots(hours("09:00", "10:00"), []Interval{iv("09:00", "09:30")}, DefaultSlotLength)
	assert.Equal(t, []string{"09:30"}, formatAll(slots))
}

func TestGenerateSlots_TooShort(t *testing.T) {
	slots := GenerateSlots(hours("09:00", "09:29"), nil, DefaultSlotLength)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGenerateSlots_UnsortedAndOffGrid(t *testing.T) {
	booked := []Interval{
		iv("11:00", "11:30"),
		iv("09:15", "09:45"),
	}
	slots := GenerateSlots(hours("09:00", "12:00"), booked, DefaultSlotLength)

	assert.Equal(t, []string{"09:45", "10:15", "11:30"}, formatAll(slots))
	assert.Equal(t, "11:00", booked[0].Start.String(), "input must not be reordered")
}

func TestGenerateSlots_NestedAndOverlappingInput(t *testing.T) {
	booked := []Interval{
		iv("09:00", "11:00"),
		iv("09:30", "10:00"),
		iv("10:30", "11:30"),
	}
	slots := GenerateSlots(hours("09:00", "12:30"), booked, DefaultSlotLength)

	assert.Equal(t, []string{"11:30", "12:00"}, formatAll(slots))
}

func TestGenerateSlots_BookedOutsideHours(t *testing.T) {
	booked := []Interval{
		iv("08:00", "09:30"),
		iv("16:45", "18:00"),
	}
	slots := GenerateSlots(hours("09:00", "11:00"), booked, DefaultSlotLength)

	assert.Equal(t, []string{"09:30", "10:00", "10:30"}, formatAll(slots))
}

func TestGenerateSlots_InvalidSlotLength(t *testing.T) {
	assert.Empty(t, GenerateSlots(hours("09:00", "17:00"), nil, 0))
	assert.Empty(t, GenerateSlots(hours("09:00", "17:00"), nil, -30))
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps(iv("09:00", "09:30"), iv("09:00", "09:30")))
	assert.True(t, Overlaps(iv("09:00", "09:30"), iv("09:15", "09:45")))
	assert.True(t, Overlaps(iv("09:00", "10:00"), iv("09:15", "09:30")))
	assert.False(t, Overlaps(iv("09:00", "09:30"), iv("09:30", "10:00")))
	assert.False(t, Overlaps(iv("09:30", "10:00"), iv("09:00", "09:30")))
}

func TestWorkingHoursContains(t *testing.T) {
	wh := hours("09:00", "17:00")
	assert.True(t, wh.Contains(iv("09:00", "09:30")))
	assert.True(t, wh.Contains(iv("16:30", "17:00")))
	assert.False(t, wh.Contains(iv("16:45", "17:15")))
	assert.False(t, wh.Contains(iv("08:45", "09:15")))
}

// randomBooking produces non-overlapping intervals in random order.
func randomBooking(r *rand.Rand, wh WorkingHours) []Interval {
	var out []Interval
	cur := wh.Start - TimeOfDay(r.Intn(60))
	for cur < wh.End+60 {
		cur += TimeOfDay(r.Intn(70))
		length := TimeOfDay(1 + r.Intn(60))
		out = append(out, Interval{Start: cur, End: cur + length})
		cur += length
	}
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func TestGenerateSlots_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		start := TimeOfDay(60 + r.Intn(600))
		wh := WorkingHours{Start: start, End: start + TimeOfDay(r.Intn(600))}
		booked := randomBooking(r, wh)
		slotLen := []int{15, 30, 45}[r.Intn(3)]

		slots := GenerateSlots(wh, booked, slotLen)

		for _, s := range slots {
			cand := SlotAt(s, slotLen)
			assert.True(t, wh.Contains(cand), "slot %s outside %v", s, wh)
			for _, b := range booked {
				assert.False(t, Overlaps(cand, b), "slot %s overlaps %s", s, b)
			}
		}

		// Coverage: each gap of length L yields floor(L/slotLen) slots.
		expected := 0
		cursor := wh.Start
		sorted := append([]Interval(nil), booked...)
		sortIntervals(sorted)
		sorted = append(sorted, Interval{Start: wh.End, End: wh.End})
		for _, b := range sorted {
			limit := b.Start
			if limit > wh.End {
				limit = wh.End
			}
			if limit > cursor {
				expected += int(limit-cursor) / slotLen
			}
			if b.End > cursor {
				cursor = b.End
			}
		}
		assert.Len(t, slots, expected)

		assert.Equal(t, slots, GenerateSlots(wh, booked, slotLen), "must be idempotent")
	}
}

func sortIntervals(ivs []Interval) {
	for i := 1; i < len(ivs); i++ {
		for j := i; j > 0 && ivs[j].Start < ivs[j-1].Start; j-- {
			ivs[j], ivs[j-1] = ivs[j-1], ivs[j]
		}
	}
}
