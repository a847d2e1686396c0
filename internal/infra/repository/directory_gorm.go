package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type DirectoryGormRepository struct {
	db *gorm.DB
}

func NewDirectoryGormRepository(db *gorm.DB) *DirectoryGormRepository {
	return &DirectoryGormRepository{db: db}
}

// first loads one row by id, mapping a missing row to notFound.
func first[T any](ctx context.Context, db *gorm.DB, id string, notFound error, op string) (*T, error) {
	var out T
	err := db.WithContext(ctx).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound
	}
	if err != nil {
		return nil, httperr.Transient(op, err)
	}
	return &out, nil
}

// --------------------------------------------------
// Doctors
// --------------------------------------------------

func (r *DirectoryGormRepository) GetDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	return first[models.Doctor](ctx, r.db, id, directory.ErrDoctorNotFound, "get doctor")
}

func (r *DirectoryGormRepository) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	var docs []models.Doctor
	if err := r.db.WithContext(ctx).Order("last_name ASC, first_name ASC").Find(&docs).Error; err != nil {
		return nil, httperr.Transient("list doctors", err)
	}
	return docs, nil
}

// --------------------------------------------------
// Patients
// --------------------------------------------------

func (r *DirectoryGormRepository) GetPatient(ctx context.Context, id string) (*models.Patient, error) {
	return first[models.Patient](ctx, r.db, id, directory.ErrPatientNotFound, "get patient")
}

func (r *DirectoryGormRepository) PatientEmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Patient{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&count).Error; err != nil {
		return false, httperr.Transient("check patient email", err)
	}
	return count > 0, nil
}

func (r *DirectoryGormRepository) CreatePatient(ctx context.Context, p *models.Patient) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrForbidden("patient_exists", "Patient with the same email already exists")
		}
		return httperr.Transient("create patient", err)
	}
	return nil
}

func (r *DirectoryGormRepository) SearchPatientIDs(ctx context.Context, term string) ([]string, error) {
	like := "%" + term + "%"

	var out []string
	if err := r.db.WithContext(ctx).
		Model(&models.Patient{}).
		Where("first_name ILIKE ? OR last_name ILIKE ?", like, like).
		Pluck("id", &out).Error; err != nil {
		return nil, httperr.Transient("search patients", err)
	}
	return out, nil
}

// --------------------------------------------------
// Pharmacies
// --------------------------------------------------

func (r *DirectoryGormRepository) GetPharmacy(ctx context.Context, id string) (*models.Pharmacy, error) {
	return first[models.Pharmacy](ctx, r.db, id, directory.ErrPharmacyNotFound, "get pharmacy")
}

func (r *DirectoryGormRepository) ListPharmacies(ctx context.Context) ([]models.Pharmacy, error) {
	var out []models.Pharmacy
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, httperr.Transient("list pharmacies", err)
	}
	return out, nil
}

// UpdatePasswordHash replaces the stored hash of a doctor, patient or pharmacy.
func (r *DirectoryGormRepository) UpdatePasswordHash(ctx context.Context, model any, id, hash string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Update("password_hash", hash)
	if res.Error != nil {
		return false, httperr.Transient("update password", res.Error)
	}
	return res.RowsAffected > 0, nil
}

var (
	_ directory.Doctors    = (*DirectoryGormRepository)(nil)
	_ directory.Patients   = (*DirectoryGormRepository)(nil)
	_ directory.Pharmacies = (*DirectoryGormRepository)(nil)
)
