package medicine

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/medicine"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

const (
	minSearchLen = 4
	searchLimit  = 50
)

var ErrSearchTermTooShort = httperr.ErrValidation(
	"search_term_too_short",
	"Search term must be at least 4 characters",
)

type SearchMedicines struct {
	repo domain.Repository
}

func NewSearchMedicines(repo domain.Repository) *SearchMedicines {
	return &SearchMedicines{repo: repo}
}

// Execute matches names containing term, ignoring case.
func (uc *SearchMedicines) Execute(ctx context.Context, term string) ([]models.Medicine, error) {
	term = strings.TrimSpace(term)
	if len(term) < minSearchLen {
		return nil, ErrSearchTermTooShort
	}
	return uc.repo.SearchMedicines(ctx, term, searchLimit)
}
