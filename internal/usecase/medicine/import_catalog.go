package medicine

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/ids"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/medicine"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Column aliases accepted in the catalogue header.
var columns = map[string]string{
	"name":                  "name",
	"price":                 "price",
	"cost":                  "price",
	"company":               "company",
	"salt":                  "salt",
	"prescription_required": "prescription_required",
	"prescription required": "prescription_required",
}

const unknownValue = "Unknown"

type ImportResult struct {
	Created int
	Updated int
	Skipped int
}

type ImportCatalog struct {
	repo    domain.Repository
	counter directory.Counter
	log     *zap.Logger
}

func NewImportCatalog(repo domain.Repository, counter directory.Counter, log *zap.Logger) *ImportCatalog {
	return &ImportCatalog{repo: repo, counter: counter, log: log}
}

// Execute upserts every row of a catalogue CSV. A medicine already known by
// name keeps its id; new names draw one from the Medicines counter. Rows
// without a name or with an unreadable price are skipped.
func (uc *ImportCatalog) Execute(ctx context.Context, r io.Reader) (*ImportResult, error) {
	rows, skipped, err := uc.parse(r)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(rows))
	for _, m := range rows {
		names = append(names, m.Name)
	}
	existing, err := uc.repo.FindMedicinesByName(ctx, names)
	if err != nil {
		return nil, err
	}

	res := &ImportResult{Skipped: skipped}
	for i := range rows {
		if known, ok := existing[rows[i].Name]; ok {
			rows[i].ID = known.ID
			res.Updated++
			continue
		}
		n, err := uc.counter.Next(ctx, ids.CounterMedicines)
		if err != nil {
			return nil, err
		}
		rows[i].ID = ids.Format(ids.PrefixMedicine, n)
		res.Created++
	}

	if len(rows) > 0 {
		if err := uc.repo.SaveMedicines(ctx, rows); err != nil {
			return nil, err
		}
	}

	uc.log.Info("medicine catalogue imported",
		zap.Int("created", res.Created),
		zap.Int("updated", res.Updated),
		zap.Int("skipped", res.Skipped),
	)
	return res, nil
}

func (uc *ImportCatalog) parse(r io.Reader) ([]models.Medicine, int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, 0, httperr.ErrValidation("empty_catalogue", "Catalogue file is empty")
	}
	if err != nil {
		return nil, 0, httperr.ErrValidation("invalid_catalogue", err.Error())
	}

	index := map[string]int{}
	for i, h := range header {
		if col, ok := columns[strings.ToLower(strings.TrimSpace(h))]; ok {
			index[col] = i
		}
	}
	if _, ok := index["name"]; !ok {
		return nil, 0, httperr.ErrValidation("invalid_catalogue", "Catalogue header has no name column")
	}
	if _, ok := index["price"]; !ok {
		return nil, 0, httperr.ErrValidation("invalid_catalogue", "Catalogue header has no price column")
	}

	field := func(rec []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	// last row wins for a repeated name
	byName := map[string]int{}
	var out []models.Medicine
	skipped := 0

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, httperr.ErrValidation("invalid_catalogue", fmt.Sprintf("line %d: %v", line, err))
		}

		name := field(rec, "name")
		price, perr := strconv.ParseFloat(field(rec, "price"), 64)
		if name == "" || perr != nil || price < 0 {
			uc.log.Warn("skipping catalogue row", zap.Int("line", line), zap.String("name", name))
			skipped++
			continue
		}

		m := models.Medicine{
			Name:                 name,
			Price:                price,
			Company:              orUnknown(field(rec, "company")),
			Salt:                 orUnknown(field(rec, "salt")),
			PrescriptionRequired: yes(field(rec, "prescription_required")),
		}

		if i, ok := byName[name]; ok {
			out[i] = m
			continue
		}
		byName[name] = len(out)
		out = append(out, m)
	}

	return out, skipped, nil
}

func orUnknown(s string) string {
	if s == "" {
		return unknownValue
	}
	return s
}

func yes(s string) bool {
	switch strings.ToLower(s) {
	case "yes", "y", "true", "1":
		return true
	}
	return false
}
