package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func TestModelFor(t *testing.T) {
	m, err := modelFor("DOC-0001")
	require.NoError(t, err)
	assert.IsType(t, &models.Doctor{}, m)

	m, err = modelFor("PHAR-0002")
	require.NoError(t, err)
	assert.IsType(t, &models.Pharmacy{}, m)

	_, err = modelFor("APT-0001")
	assert.Error(t, err)
}

func TestCommandFlags(t *testing.T) {
	imp := importMedicinesCmd()
	assert.Equal(t, "import-medicines", imp.Name())
	for _, f := range []string{"file", "bucket", "key"} {
		assert.NotNil(t, imp.Flags().Lookup(f), f)
	}

	pw := changePasswordCmd()
	assert.Equal(t, "change-password", pw.Name())
	for _, f := range []string{"id", "password"} {
		assert.NotNil(t, pw.Flags().Lookup(f), f)
	}

	assert.Equal(t, "sync-counters", syncCountersCmd().Name())
}
