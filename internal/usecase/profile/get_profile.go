package profile

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/ids"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

var ErrInvalidUserID = httperr.ErrValidation("invalid_user_id", "Invalid user ID prefix")

type GetProfile struct {
	doctors    directory.Doctors
	patients   directory.Patients
	pharmacies directory.Pharmacies
}

func NewGetProfile(
	doctors directory.Doctors,
	patients directory.Patients,
	pharmacies directory.Pharmacies,
) *GetProfile {
	return &GetProfile{doctors: doctors, patients: patients, pharmacies: pharmacies}
}

// Execute loads a doctor, patient or pharmacy by id prefix. The models never
// serialize password hashes.
func (uc *GetProfile) Execute(ctx context.Context, id string) (any, error) {
	switch ids.KindOf(id) {
	case ids.KindDoctor:
		return uc.doctors.GetDoctor(ctx, id)
	case ids.KindPatient:
		return uc.patients.GetPatient(ctx, id)
	case ids.KindPharmacy:
		return uc.pharmacies.GetPharmacy(ctx, id)
	default:
		return nil, ErrInvalidUserID
	}
}
