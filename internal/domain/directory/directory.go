// Package directory describes the people and places an appointment or an
// order refers to: doctors, patients and pharmacies.
package directory

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

var (
	ErrDoctorNotFound   = httperr.ErrNotFound("doctor", "doctor_not_found", "Doctor not found")
	ErrPatientNotFound  = httperr.ErrNotFound("patient", "patient_not_found", "Patient not found")
	ErrPharmacyNotFound = httperr.ErrNotFound("pharmacy", "pharmacy_not_found", "Pharmacy not found")
)

type Doctors interface {
	GetDoctor(ctx context.Context, id string) (*models.Doctor, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
}

type Patients interface {
	GetPatient(ctx context.Context, id string) (*models.Patient, error)
	PatientEmailExists(ctx context.Context, email string) (bool, error)
	CreatePatient(ctx context.Context, p *models.Patient) error
	// SearchPatientIDs matches first or last name containing term, case insensitive.
	SearchPatientIDs(ctx context.Context, term string) ([]string, error)
}

type Pharmacies interface {
	GetPharmacy(ctx context.Context, id string) (*models.Pharmacy, error)
	ListPharmacies(ctx context.Context) ([]models.Pharmacy, error)
}

// Counter is the atomic sequence behind every human readable id.
type Counter interface {
	Next(ctx context.Context, name string) (int64, error)
}
