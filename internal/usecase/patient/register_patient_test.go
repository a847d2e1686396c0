package patient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/memstore"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/password"
)

func input() RegisterPatientInput {
	return RegisterPatientInput{
		DoctorID:   "DOC-0001",
		FirstName:  " Alan ",
		LastName:   "Turing",
		Email:      "Alan@Example.com",
		Password:   "enigma1",
		Age:        41,
		BloodGroup: "O+",
		IDType:     models.IDTypePassport,
	}
}

func TestRegisterPatient(t *testing.T) {
	s := memstore.New()
	s.Counters["Patients"] = 6
	d := audit.NewDispatcher(s, zap.NewNop())

	p, err := NewRegisterPatient(s, s, d, zap.NewNop()).Execute(context.Background(), input())
	require.NoError(t, err)
	d.Close()

	assert.Equal(t, "PAT-0007", p.ID)
	assert.Equal(t, "Alan", p.FirstName)
	assert.Equal(t, "alan@example.com", p.Email)
	assert.Equal(t, "DOC-0001", p.GPID)
	assert.True(t, password.Matches(p.PasswordHash, "enigma1"))
	assert.Contains(t, s.Patients, "PAT-0007")
	assert.Equal(t, []string{audit.ActionPatientCreated}, s.Actions())
}

func TestRegisterPatient_DuplicateEmail(t *testing.T) {
	s := memstore.New()
	s.Patients["PAT-0001"] = models.Patient{ID: "PAT-0001", Email: "alan@example.com"}
	d := audit.NewDispatcher(s, zap.NewNop())
	defer d.Close()

	_, err := NewRegisterPatient(s, s, d, zap.NewNop()).Execute(context.Background(), input())
	assert.ErrorIs(t, err, ErrPatientExists)
	assert.Equal(t, httperr.KindForbidden, httperr.KindOf(err))
	assert.Len(t, s.Patients, 1)
}

func TestRegisterPatient_BloodGroup(t *testing.T) {
	s := memstore.New()
	d := audit.NewDispatcher(s, zap.NewNop())
	defer d.Close()

	in := input()
	in.BloodGroup = "C+"
	_, err := NewRegisterPatient(s, s, d, zap.NewNop()).Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_blood_group"))
}
