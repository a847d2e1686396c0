package patient

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/ids"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/password"
)

var ErrPatientExists = httperr.ErrForbidden("patient_exists", "Patient with the same email already exists")

type RegisterPatientInput struct {
	DoctorID   string
	FirstName  string
	LastName   string
	Email      string
	Password   string
	Age        int
	DOB        string
	PhoneNo    string
	BloodGroup string
	IDType     string
	IDNumber   string
}

type RegisterPatient struct {
	patients directory.Patients
	counter  directory.Counter
	audit    *audit.Dispatcher
	log      *zap.Logger
}

func NewRegisterPatient(
	patients directory.Patients,
	counter directory.Counter,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *RegisterPatient {
	return &RegisterPatient{
		patients: patients,
		counter:  counter,
		audit:    audit,
		log:      log,
	}
}

// Execute stores a patient registered by DoctorID, who becomes the GP.
func (uc *RegisterPatient) Execute(ctx context.Context, in RegisterPatientInput) (*models.Patient, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	exists, err := uc.patients.PatientEmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPatientExists
	}

	if in.BloodGroup != "" && !validBloodGroup(in.BloodGroup) {
		return nil, httperr.ErrValidation("invalid_blood_group", "Unknown blood group")
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	n, err := uc.counter.Next(ctx, ids.CounterPatients)
	if err != nil {
		return nil, err
	}

	p := &models.Patient{
		ID:           ids.Format(ids.PrefixPatient, n),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        email,
		PasswordHash: hash,
		Age:          in.Age,
		DOB:          in.DOB,
		PhoneNo:      in.PhoneNo,
		BloodGroup:   in.BloodGroup,
		IDType:       in.IDType,
		IDNumber:     in.IDNumber,
		GPID:         in.DoctorID,
	}

	if err := uc.patients.CreatePatient(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  in.DoctorID,
		Action:   audit.ActionPatientCreated,
		Entity:   "patient",
		EntityID: p.ID,
	})
	uc.log.Info("patient registered", zap.String("patient_id", p.ID), zap.String("gp_id", p.GPID))

	return p, nil
}

func validBloodGroup(g string) bool {
	for _, bg := range models.BloodGroups {
		if bg == g {
			return true
		}
	}
	return false
}
