package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

func TestInsertError(t *testing.T) {
	assert.NoError(t, insertError(nil))

	overlap := fmt.Errorf("create: %w", &pgconn.PgError{Code: "23P01"})
	assert.ErrorIs(t, insertError(overlap), domain.ErrSlotUnavailable)

	dupID := &pgconn.PgError{Code: "23505", ConstraintName: "appointments_pkey"}
	assert.ErrorIs(t, insertError(dupID), domain.ErrSlotUnavailable)

	err := insertError(errors.New("connection reset"))
	assert.Equal(t, httperr.KindTransient, httperr.KindOf(err))
}
