package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/medicine"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type MedicineGormRepository struct {
	db *gorm.DB
}

func NewMedicineGormRepository(db *gorm.DB) *MedicineGormRepository {
	return &MedicineGormRepository{db: db}
}

func (r *MedicineGormRepository) SearchMedicines(ctx context.Context, term string, limit int) ([]models.Medicine, error) {
	like := "%" + strings.ToLower(term) + "%"

	var meds []models.Medicine
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", like).
		Order("name ASC").
		Limit(limit).
		Find(&meds).Error; err != nil {
		return nil, httperr.Transient("search medicines", err)
	}
	return meds, nil
}

func (r *MedicineGormRepository) FindMedicinesByName(ctx context.Context, names []string) (map[string]models.Medicine, error) {
	out := make(map[string]models.Medicine, len(names))
	if len(names) == 0 {
		return out, nil
	}

	var meds []models.Medicine
	if err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&meds).Error; err != nil {
		return nil, httperr.Transient("find medicines", err)
	}
	for _, m := range meds {
		out[m.Name] = m
	}
	return out, nil
}

func (r *MedicineGormRepository) FindMedicinesByID(ctx context.Context, ids []string) (map[string]models.Medicine, error) {
	out := make(map[string]models.Medicine, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var meds []models.Medicine
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&meds).Error; err != nil {
		return nil, httperr.Transient("find medicines", err)
	}
	for _, m := range meds {
		out[m.ID] = m
	}
	return out, nil
}

// SaveMedicines inserts new rows and updates existing ids in batches.
func (r *MedicineGormRepository) SaveMedicines(ctx context.Context, meds []models.Medicine) error {
	if len(meds) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"price", "company", "salt", "prescription_required", "updated_at"}),
		}).
		CreateInBatches(meds, 200).Error
	if err != nil {
		return httperr.Transient("save medicines", err)
	}
	return nil
}

var _ medicine.Repository = (*MedicineGormRepository)(nil)
