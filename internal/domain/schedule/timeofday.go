package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

const (
	MinutesPerDay = 24 * 60
	DateLayout    = "2006-01-02"
)

// TimeOfDay is a minute offset from midnight in [0, MinutesPerDay).
type TimeOfDay int

var errInvalidTime = httperr.ErrValidation("invalid_time", "Time must be HH:MM")

// ParseTimeOfDay accepts "HH:MM" (one or two hour digits, two minute digits).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, errInvalidTime
	}

	h, ok := parseDigits(parts[0], 1, 2)
	if !ok || h >= 24 {
		return 0, errInvalidTime
	}
	m, ok := parseDigits(parts[1], 2, 2)
	if !ok || m >= 60 {
		return 0, errInvalidTime
	}

	return TimeOfDay(h*60 + m), nil
}

func parseDigits(s string, minLen, maxLen int) (int, bool) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Weekday is a lowercase English day name, the key of a doctor's visiting hours.
type Weekday string

var weekdays = [...]Weekday{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

func AllWeekdays() []Weekday {
	return weekdays[:]
}

// ParseDate reads a YYYY-MM-DD calendar date at midnight UTC.
func ParseDate(date string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), time.UTC)
	if err != nil {
		return time.Time{}, httperr.ErrValidation("invalid_date", "Date must be YYYY-MM-DD")
	}
	return d, nil
}

// WeekdayOf maps a calendar date to its weekday. The date carries no zone,
// so the result is the same on every server.
func WeekdayOf(date string) (Weekday, error) {
	d, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return weekdays[d.Weekday()], nil
}
