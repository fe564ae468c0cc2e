package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldValueRoundTrip(t *testing.T) {
	r := Record{}

	require.NoError(t, r.SetFieldValue("firstName", "Jane"))
	require.NoError(t, r.SetFieldValue("avgHoursPerWeek", "37.5"))
	require.NoError(t, r.SetFieldValue("ftPtStatus", "FT"))

	assert.Equal(t, "Jane", r.FirstName)
	assert.Equal(t, 37.5, r.AvgHoursPerWeek)
	assert.Equal(t, StatusFullTime, r.FTPTStatus)

	assert.Equal(t, "Jane", r.FieldValue("firstName"))
	assert.Equal(t, "37.5", r.FieldValue("avgHoursPerWeek"))
	assert.Equal(t, "FT", r.FieldValue("ftPtStatus"))
}

func TestSetFieldValue_Errors(t *testing.T) {
	r := Record{}
	assert.Error(t, r.SetFieldValue("hourlyRate", "not-a-number"))
	assert.Error(t, r.SetFieldValue("noSuchField", "x"))
}

func TestFieldValue_UnknownIsEmpty(t *testing.T) {
	r := Record{FirstName: "Jane"}
	assert.Equal(t, "", r.FieldValue("noSuchField"))
}
