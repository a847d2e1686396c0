package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func TestHoursFor(t *testing.T) {
	doc := &models.Doctor{
		ID: "DOC-0001",
		VisitingHours: map[string]models.DayHours{
			"monday":   {Start: "09:00", End: "17:00"},
			"tuesday":  {Start: "10:00", End: ""},
			"thursday": {Start: "16:00", End: "10:00"},
			"friday":   {Start: "9am", End: "17:00"},
		},
	}

	wh, err := HoursFor(doc, "monday")
	require.NoError(t, err)
	assert.Equal(t, "09:00", wh.Start.String())
	assert.Equal(t, "17:00", wh.End.String())

	_, err = HoursFor(doc, "tuesday")
	assert.ErrorIs(t, err, ErrNoWorkingHours)

	_, err = HoursFor(doc, "sunday")
	assert.ErrorIs(t, err, ErrNoWorkingHours)

	_, err = HoursFor(doc, "thursday")
	assert.ErrorIs(t, err, ErrNoWorkingHours)

	_, err = HoursFor(doc, "friday")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoWorkingHours)
	assert.ErrorIs(t, err, ErrBadWorkingHours)
	assert.Equal(t, httperr.KindConflict, httperr.KindOf(err))
	assert.True(t, httperr.IsBusiness(err, "invalid_working_hours"))
	assert.Contains(t, err.Error(), `"9am"`)
}

func TestIntervalOf(t *testing.T) {
	iv := IntervalOf(models.Appointment{StartMinute: 540, EndMinute: 570})
	assert.Equal(t, "09:00-09:30", iv.String())
}

func TestLockKey(t *testing.T) {
	assert.Equal(t, "booking:DOC-0001:2024-01-15", LockKey("DOC-0001", "2024-01-15"))
}
