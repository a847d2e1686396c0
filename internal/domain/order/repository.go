package order

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Filter narrows an order listing. Empty fields do not filter; a nil
// PatientIDs means no name search was requested.
type Filter struct {
	DoctorID   string
	PatientID  string
	PharmaID   string
	PatientIDs []string
}

type Repository interface {
	// CreateOrders stores every order or none.
	CreateOrders(ctx context.Context, orders []models.Order) error

	// ListOrders returns one page with doctor, patient, pharmacy and
	// medicine loaded, plus the total matching count.
	ListOrders(ctx context.Context, f Filter, limit, offset int) ([]models.Order, int64, error)
}
