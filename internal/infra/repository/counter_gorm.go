package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/ids"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

type CounterGormRepository struct {
	db *gorm.DB
}

func NewCounterGormRepository(db *gorm.DB) *CounterGormRepository {
	return &CounterGormRepository{db: db}
}

// Next increments and returns the counter in one statement, so concurrent
// callers never receive the same value. A missing counter starts at 0.
func (r *CounterGormRepository) Next(ctx context.Context, name string) (int64, error) {
	var v int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO counters (id, last_value) VALUES (?, 1)
		ON CONFLICT (id) DO UPDATE SET last_value = counters.last_value + 1
		RETURNING last_value`,
		name,
	).Scan(&v).Error
	if err != nil {
		return 0, httperr.Transient("next "+name, err)
	}
	return v, nil
}

// Sync sets the counter to the highest numeric id present in table.
func (r *CounterGormRepository) Sync(ctx context.Context, name, table string) (int64, error) {
	var existing []string
	if err := r.db.WithContext(ctx).Table(table).Pluck("id", &existing).Error; err != nil {
		return 0, httperr.Transient("scan "+table, err)
	}

	var max int64
	for _, id := range existing {
		if n := ids.Numeric(id); n > max {
			max = n
		}
	}

	if err := r.db.WithContext(ctx).Exec(`
		INSERT INTO counters (id, last_value) VALUES (?, ?)
		ON CONFLICT (id) DO UPDATE SET last_value = EXCLUDED.last_value`,
		name, max,
	).Error; err != nil {
		return 0, httperr.Transient("sync "+name, err)
	}
	return max, nil
}
