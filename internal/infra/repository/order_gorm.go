package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/order"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) CreateOrders(ctx context.Context, orders []models.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range orders {
			if err := tx.Omit("Patient", "Doctor", "Pharma", "Medicine").Create(&orders[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if httperr.IsForeignKeyViolation(err) {
		return httperr.ErrValidation(
			"reference_not_found",
			"Order references a record that does not exist ("+httperr.ConstraintName(err)+")",
		)
	}
	if err != nil {
		return httperr.Transient("create orders", err)
	}
	return nil
}

func (r *OrderGormRepository) ListOrders(
	ctx context.Context,
	f order.Filter,
	limit int,
	offset int,
) ([]models.Order, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Order{})

	if f.DoctorID != "" {
		q = q.Where("doctor_id = ?", f.DoctorID)
	}
	if f.PatientID != "" {
		q = q.Where("patient_id = ?", f.PatientID)
	}
	if f.PharmaID != "" {
		q = q.Where("pharma_id = ?", f.PharmaID)
	}
	if f.PatientIDs != nil {
		q = q.Where("patient_id IN ?", f.PatientIDs)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, httperr.Transient("count orders", err)
	}

	var orders []models.Order
	if err := q.
		Preload("Patient").
		Preload("Doctor").
		Preload("Pharma").
		Preload("Medicine").
		Order(clause.OrderByColumn{Column: clause.Column{Name: "time"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Limit(limit).
		Offset(offset).
		Find(&orders).Error; err != nil {
		return nil, 0, httperr.Transient("list orders", err)
	}

	return orders, total, nil
}

var _ order.Repository = (*OrderGormRepository)(nil)
