package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
)

type ListPatientAppointments struct {
	repo domain.Repository
}

func NewListPatientAppointments(repo domain.Repository) *ListPatientAppointments {
	return &ListPatientAppointments{repo: repo}
}

// Execute returns one page, newest first. page starts at 1.
func (uc *ListPatientAppointments) Execute(
	ctx context.Context,
	patientID string,
	page int,
	limit int,
) ([]dto.AppointmentListDTO, int64, error) {

	apps, total, err := uc.repo.ListAppointmentsForPatient(ctx, patientID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, dto.FromAppointment(ap))
	}
	return out, total, nil
}

type GetAppointmentData struct {
	repo domain.Repository
}

func NewGetAppointmentData(repo domain.Repository) *GetAppointmentData {
	return &GetAppointmentData{repo: repo}
}

func (uc *GetAppointmentData) Execute(ctx context.Context, id string) (*dto.AppointmentListDTO, error) {
	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromAppointment(*ap)
	return &out, nil
}

// ListDoctorDay is a doctor's agenda for one date in start order.
type ListDoctorDay struct {
	repo domain.Repository
}

func NewListDoctorDay(repo domain.Repository) *ListDoctorDay {
	return &ListDoctorDay{repo: repo}
}

func (uc *ListDoctorDay) Execute(
	ctx context.Context,
	doctorID string,
	date string,
) ([]dto.AppointmentListDTO, error) {

	if _, err := schedule.ParseDate(date); err != nil {
		return nil, err
	}

	apps, err := uc.repo.ListAppointmentsForDoctor(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, dto.FromAppointment(ap))
	}
	return out, nil
}
