package appointment

import "github.com/BruksfildServices01/clinic-scheduler/internal/httperr"

var (
	ErrAppointmentNotFound = httperr.ErrNotFound("appointment", "appointment_not_found", "Appointment not found")

	ErrNoWorkingHours      = httperr.ErrConflict("no_working_hours", "Doctor has no working hours on this day")
	ErrBadWorkingHours     = httperr.ErrConflict("invalid_working_hours", "Doctor's working hours for this day are malformed")
	ErrOutsideWorkingHours = httperr.ErrConflict("outside_working_hours", "Requested time is outside the doctor's working hours")
	ErrSlotUnavailable     = httperr.ErrConflict("slot_unavailable", "Requested slot is already booked")
	ErrSlotBusy            = httperr.ErrConflict("slot_busy", "Another booking for this doctor is in progress, try again")
)
