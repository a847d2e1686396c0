package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(ErrNotFound("doctor", "doctor_not_found", "")))
	assert.Equal(t, KindValidation, KindOf(ErrValidation("invalid_time", "")))
	assert.Equal(t, KindConflict, KindOf(fmt.Errorf("wrapped: %w", ErrConflict("slot_unavailable", ""))))
	assert.Equal(t, KindTransient, KindOf(Transient("get doctor", errors.New("timeout"))))
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
}

func TestTransient_KeepsBusinessErrors(t *testing.T) {
	be := ErrNotFound("patient", "patient_not_found", "")
	assert.Equal(t, be, Transient("get patient", be))
	assert.Nil(t, Transient("noop", nil))
}

func TestPgClassification(t *testing.T) {
	excl := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"})
	uniq := &pgconn.PgError{Code: "23505"}

	assert.True(t, IsExclusionConflict(excl))
	assert.False(t, IsUniqueViolation(excl))
	assert.True(t, IsUniqueViolation(uniq))
	assert.False(t, IsExclusionConflict(errors.New("other")))

	fk := fmt.Errorf("create: %w", &pgconn.PgError{Code: "23503", ConstraintName: "fk_orders_medicine"})
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(uniq))
	assert.Equal(t, "fk_orders_medicine", ConstraintName(fk))
	assert.Empty(t, ConstraintName(errors.New("other")))
}

func TestFromError_Status(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", ErrNotFound("doctor", "doctor_not_found", "Doctor not found"), http.StatusNotFound, "doctor_not_found"},
		{"validation", ErrValidation("invalid_date", "Invalid date"), http.StatusBadRequest, "invalid_date"},
		{"conflict", ErrConflict("slot_unavailable", "Slot unavailable"), http.StatusBadRequest, "slot_unavailable"},
		{"forbidden", ErrForbidden("email_taken", "taken"), http.StatusForbidden, "email_taken"},
		{"transient", Transient("scan", errors.New("down")), http.StatusInternalServerError, "store_unavailable"},
		{"unknown", errors.New("x"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			FromError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			var body HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}
