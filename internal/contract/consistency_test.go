package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInconsistenciesEmptyForCoherentRecord(t *testing.T) {
	rec, err := New(nil).Validate(validInput())
	require.NoError(t, err)
	assert.Empty(t, Inconsistencies(rec))
}

func TestInconsistenciesReportsWithoutRejecting(t *testing.T) {
	in := validInput()
	in["InternetService"] = "No"
	in["OnlineSecurity"] = "Yes"
	in["PhoneService"] = "No"
	in["tenure"] = 0.0
	in["TenureGroup"] = "6+yr"

	rec, err := New(nil).Validate(in)
	require.NoError(t, err)

	got := Inconsistencies(rec)
	// five add-ons still say "No", OnlineSecurity says "Yes"
	assert.Len(t, got, 6+1+1)
	assert.Contains(t, got, `OnlineSecurity="Yes" with InternetService="No"`)
	assert.Contains(t, got, `MultipleLines="No" with PhoneService="No"`)
	assert.Contains(t, got, `tenure=0 outside TenureGroup="6+yr"`)
}

func TestInconsistenciesTenureGroupEdges(t *testing.T) {
	cases := []struct {
		tenure int
		group  string
		ok     bool
	}{
		{12, "0-1yr", true},
		{13, "0-1yr", false},
		{13, "1-2yr", true},
		{48, "2-4yr", true},
		{72, "4-6yr", true},
		{73, "6+yr", true},
		{100, "6+yr", true},
	}
	for _, tc := range cases {
		in := validInput()
		in["tenure"] = tc.tenure
		in["TenureGroup"] = tc.group
		rec, err := New(nil).Validate(in)
		require.NoError(t, err)
		assert.Equal(t, tc.ok, len(Inconsistencies(rec)) == 0, "tenure=%d group=%s", tc.tenure, tc.group)
	}
}

func TestCheckColumns(t *testing.T) {
	assert.NoError(t, CheckColumns(FieldNames()))
	assert.NoError(t, CheckColumns([]string{"tenure", "Contract"}))

	err := CheckColumns([]string{"tenure", "TotalCharges", "customerID"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TotalCharges, customerID")
}
