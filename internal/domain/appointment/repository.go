package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- Availability --------
	ListBookedIntervals(
		ctx context.Context,
		doctorID string,
		date string,
	) ([]schedule.Interval, error)

	// -------- Appointment (create) --------
	// InsertAppointment returns ErrSlotUnavailable when the store rejects an
	// overlapping booking.
	InsertAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	ListAppointmentsForPatient(
		ctx context.Context,
		patientID string,
		limit int,
		offset int,
	) ([]models.Appointment, int64, error)

	ListAppointmentsForDoctor(
		ctx context.Context,
		doctorID string,
		date string,
	) ([]models.Appointment, error)
}

// Locker serializes bookings that share a key. The returned release must be
// called exactly once.
type Locker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

func LockKey(doctorID, date string) string {
	return "booking:" + doctorID + ":" + date
}
