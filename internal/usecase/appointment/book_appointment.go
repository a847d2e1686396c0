package appointment

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/ids"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	DoctorID  string
	PatientID string
	Date      string
	StartTime string
	Note      string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	doctors  directory.Doctors
	patients directory.Patients
	repo     domain.Repository
	counter  directory.Counter
	locker   domain.Locker
	audit    *audit.Dispatcher
	log      *zap.Logger

	slotLen  int
	lockWait time.Duration
}

func NewBookAppointment(
	doctors directory.Doctors,
	patients directory.Patients,
	repo domain.Repository,
	counter directory.Counter,
	locker domain.Locker,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *BookAppointment {
	return &BookAppointment{
		doctors:  doctors,
		patients: patients,
		repo:     repo,
		counter:  counter,
		locker:   locker,
		audit:    audit,
		log:      log,
		slotLen:  schedule.DefaultSlotLength,
		lockWait: 5 * time.Second,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	day, err := schedule.WeekdayOf(in.Date)
	if err != nil {
		return nil, err
	}
	start, err := schedule.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return nil, err
	}
	candidate := schedule.SlotAt(start, uc.slotLen)

	// --------------------------------------------------
	// 1. References
	// --------------------------------------------------
	if _, err := uc.patients.GetPatient(ctx, in.PatientID); err != nil {
		return nil, err
	}
	doc, err := uc.doctors.GetDoctor(ctx, in.DoctorID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2-3. Working hours
	// --------------------------------------------------
	hours, err := domain.HoursFor(doc, day)
	if err != nil {
		return nil, err
	}
	if !hours.Contains(candidate) {
		return nil, domain.ErrOutsideWorkingHours
	}

	// --------------------------------------------------
	// 4. Overlap check and commit, one booking per doctor/date at a time
	// --------------------------------------------------
	lockCtx, cancel := context.WithTimeout(ctx, uc.lockWait)
	defer cancel()

	release, err := uc.locker.Lock(lockCtx, domain.LockKey(in.DoctorID, in.Date))
	if err != nil {
		if httperr.KindOf(err) == httperr.KindTransient {
			return nil, err
		}
		return nil, domain.ErrSlotBusy
	}
	defer release()

	booked, err := uc.repo.ListBookedIntervals(ctx, in.DoctorID, in.Date)
	if err != nil {
		return nil, err
	}
	for _, b := range booked {
		if schedule.Overlaps(candidate, b) {
			uc.conflict(in, candidate)
			return nil, domain.ErrSlotUnavailable
		}
	}

	n, err := uc.counter.Next(ctx, ids.CounterAppointments)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ID:          ids.Format(ids.PrefixAppointment, n),
		DoctorID:    in.DoctorID,
		PatientID:   in.PatientID,
		Date:        in.Date,
		StartTime:   candidate.Start.String(),
		EndTime:     candidate.End.String(),
		StartMinute: int(candidate.Start),
		EndMinute:   int(candidate.End),
		Note:        in.Note,
	}

	if err := uc.repo.InsertAppointment(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrSlotUnavailable) {
			uc.conflict(in, candidate)
		}
		return nil, err
	}

	// --------------------------------------------------
	// 5. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ActorID:  in.PatientID,
		Action:   audit.ActionAppointmentBooked,
		Entity:   "appointment",
		EntityID: ap.ID,
	})
	uc.log.Info("appointment booked",
		zap.String("appointment_id", ap.ID),
		zap.String("doctor_id", ap.DoctorID),
		zap.String("date", ap.Date),
		zap.String("start", ap.StartTime),
	)

	return ap, nil
}

func (uc *BookAppointment) conflict(in BookAppointmentInput, candidate schedule.Interval) {
	uc.audit.Dispatch(audit.Event{
		ActorID: in.PatientID,
		Action:  audit.ActionAppointmentConflict,
		Entity:  "appointment",
		Metadata: map[string]any{
			"doctor_id": in.DoctorID,
			"date":      in.Date,
			"slot":      candidate.String(),
		},
	})
}
