package medicine

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Repository interface {
	SearchMedicines(ctx context.Context, term string, limit int) ([]models.Medicine, error)
	FindMedicinesByName(ctx context.Context, names []string) (map[string]models.Medicine, error)
	// FindMedicinesByID returns the medicines that exist, keyed by id.
	FindMedicinesByID(ctx context.Context, ids []string) (map[string]models.Medicine, error)
	SaveMedicines(ctx context.Context, meds []models.Medicine) error
}
