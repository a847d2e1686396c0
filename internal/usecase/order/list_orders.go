package order

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/directory"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/order"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

const (
	DefaultLimit        = 10
	minPatientSearchLen = 3
)

// Listing perspectives; each needs the matching id.
const (
	TypeDoctor  = "doctor"
	TypePatient = "patient"
	TypePharma  = "pharma"
)

type ListOrdersInput struct {
	DoctorID      string
	PatientID     string
	PharmaID      string
	Type          string
	PatientSearch string
	Limit         int
	Page          int
}

type ListOrdersResult struct {
	Page    int
	Limit   int
	Total   int64
	Orders  []dto.OrderDTO
	Message string
}

type ListOrders struct {
	patients directory.Patients
	repo     domain.Repository
}

func NewListOrders(patients directory.Patients, repo domain.Repository) *ListOrders {
	return &ListOrders{patients: patients, repo: repo}
}

func (uc *ListOrders) Execute(ctx context.Context, in ListOrdersInput) (*ListOrdersResult, error) {
	if in.Limit <= 0 {
		in.Limit = DefaultLimit
	}
	if in.Page <= 0 {
		in.Page = 1
	}

	switch {
	case in.Type == TypeDoctor && in.DoctorID == "":
		return nil, httperr.ErrValidation("doctor_id_required", "doctor_id is required for type=doctor")
	case in.Type == TypePatient && in.PatientID == "":
		return nil, httperr.ErrValidation("patient_id_required", "patient_id is required for type=patient")
	case in.Type == TypePharma && in.PharmaID == "":
		return nil, httperr.ErrValidation("pharma_id_required", "pharma_id is required for type=pharma")
	}

	res := &ListOrdersResult{
		Page:   in.Page,
		Limit:  in.Limit,
		Orders: []dto.OrderDTO{},
	}

	f := domain.Filter{
		DoctorID:  in.DoctorID,
		PatientID: in.PatientID,
		PharmaID:  in.PharmaID,
	}

	// shorter search terms are ignored
	if term := strings.TrimSpace(in.PatientSearch); len(term) >= minPatientSearchLen {
		patientIDs, err := uc.patients.SearchPatientIDs(ctx, term)
		if err != nil {
			return nil, err
		}
		if len(patientIDs) == 0 {
			res.Message = "No orders found for given patient name"
			return res, nil
		}
		f.PatientIDs = patientIDs
	}

	orders, total, err := uc.repo.ListOrders(ctx, f, in.Limit, (in.Page-1)*in.Limit)
	if err != nil {
		return nil, err
	}

	res.Total = total
	for _, o := range orders {
		res.Orders = append(res.Orders, dto.FromOrder(o))
	}
	res.Message = "Orders fetched"
	return res, nil
}
