package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
)

type GetAvailability struct {
	doctors directory.Doctors
	repo    domain.Repository
	slotLen int
}

func NewGetAvailability(
	doctors directory.Doctors,
	repo domain.Repository,
) *GetAvailability {
	return &GetAvailability{
		doctors: doctors,
		repo:    repo,
		slotLen: schedule.DefaultSlotLength,
	}
}

// Execute lists the free slot starts of doctorID on date. It never writes.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	doctorID string,
	date string,
) ([]schedule.TimeOfDay, error) {

	day, err := schedule.WeekdayOf(date)
	if err != nil {
		return nil, err
	}

	doc, err := uc.doctors.GetDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	hours, err := domain.HoursFor(doc, day)
	if err != nil {
		return nil, err
	}

	booked, err := uc.repo.ListBookedIntervals(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	return schedule.GenerateSlots(hours, booked, uc.slotLen), nil
}
