package appointment

import (
	"fmt"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// HoursFor resolves the doctor's visiting window for a weekday. A missing or
// blank entry means the doctor does not work that day.
func HoursFor(doc *models.Doctor, day schedule.Weekday) (schedule.WorkingHours, error) {
	dh, ok := doc.VisitingHours[string(day)]
	if !ok || dh.Start == "" || dh.End == "" {
		return schedule.WorkingHours{}, ErrNoWorkingHours
	}

	start, err := schedule.ParseTimeOfDay(dh.Start)
	if err != nil {
		return schedule.WorkingHours{}, fmt.Errorf("%w: doctor %s %s start %q: %w", ErrBadWorkingHours, doc.ID, day, dh.Start, err)
	}
	end, err := schedule.ParseTimeOfDay(dh.End)
	if err != nil {
		return schedule.WorkingHours{}, fmt.Errorf("%w: doctor %s %s end %q: %w", ErrBadWorkingHours, doc.ID, day, dh.End, err)
	}
	if start >= end {
		return schedule.WorkingHours{}, ErrNoWorkingHours
	}

	return schedule.WorkingHours{Start: start, End: end}, nil
}

// IntervalOf is the booked range of a stored appointment.
func IntervalOf(ap models.Appointment) schedule.Interval {
	return schedule.Interval{
		Start: schedule.TimeOfDay(ap.StartMinute),
		End:   schedule.TimeOfDay(ap.EndMinute),
	}
}
