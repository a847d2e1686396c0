package timezone

import "time"

const (
	DefaultTimezone = "UTC"
	dateLayout      = "2006-01-02"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to UTC.
func Location(tz string) *time.Location {
	if loc, err := time.LoadLocation(tz); err == nil && tz != "" {
		return loc
	}
	return time.UTC
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today is the clinic's calendar date as YYYY-MM-DD.
func Today(tz string) string {
	return NowIn(tz).Format(dateLayout)
}

// DayStart returns midnight of date (YYYY-MM-DD) in the clinic zone.
func DayStart(date, tz string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, date, Location(tz))
}

// DayEnd returns the first instant after date in the clinic zone.
func DayEnd(date, tz string) (time.Time, error) {
	start, err := DayStart(date, tz)
	if err != nil {
		return time.Time{}, err
	}
	return start.AddDate(0, 0, 1), nil
}
