package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBookedIntervals(
	ctx context.Context,
	doctorID string,
	date string,
) ([]schedule.Interval, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_minute", "end_minute").
		Where("doctor_id = ? AND date = ?", doctorID, date).
		Order("start_minute ASC").
		Find(&apps).Error; err != nil {
		return nil, httperr.Transient("list booked intervals", err)
	}

	out := make([]schedule.Interval, 0, len(apps))
	for _, ap := range apps {
		out = append(out, domain.IntervalOf(ap))
	}
	return out, nil
}

// --------------------------------------------------
// Appointment (create)
// --------------------------------------------------

func (r *AppointmentGormRepository) InsertAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Omit("Doctor", "Patient").Create(ap).Error
	return insertError(err)
}

// insertError maps constraint violations to a taken slot. A duplicate id
// means another writer committed first, so the caller sees the same answer.
func insertError(err error) error {
	switch {
	case err == nil:
		return nil
	case httperr.IsExclusionConflict(err), httperr.IsUniqueViolation(err):
		return domain.ErrSlotUnavailable
	default:
		return httperr.Transient("insert appointment", err)
	}
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Doctor").
		Preload("Patient").
		Where("id = ?", id).
		First(&ap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrAppointmentNotFound
	}
	if err != nil {
		return nil, httperr.Transient("get appointment", err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPatient(
	ctx context.Context,
	patientID string,
	limit int,
	offset int,
) ([]models.Appointment, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("patient_id = ?", patientID).
		Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, httperr.Transient("count appointments", err)
	}

	var apps []models.Appointment
	if err := q.
		Preload("Doctor").
		Order("date DESC").
		Order("start_minute DESC").
		Limit(limit).
		Offset(offset).
		Find(&apps).Error; err != nil {
		return nil, 0, httperr.Transient("list appointments", err)
	}

	return apps, total, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDoctor(
	ctx context.Context,
	doctorID string,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("doctor_id = ? AND date = ?", doctorID, date).
		Order("start_minute ASC").
		Find(&apps).Error; err != nil {
		return nil, httperr.Transient("list doctor appointments", err)
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
