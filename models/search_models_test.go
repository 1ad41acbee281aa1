package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

func TestOptionsDefaults(t *testing.T) {
	req := DrugSearchRequest{DrugName: "aspirin"}

	opts := req.Options()

	assert.True(t, opts.IncludeDosage)
	assert.True(t, opts.IncludeSideEffects)
	assert.False(t, opts.IncludeInteractions)
}

func TestOptionsExplicitFalseOverridesDefault(t *testing.T) {
	req := DrugSearchRequest{
		DrugName:           "aspirin",
		IncludeDosage:      boolPtr(false),
		IncludeSideEffects: boolPtr(false),
	}

	opts := req.Options()

	assert.False(t, opts.IncludeDosage)
	assert.False(t, opts.IncludeSideEffects)
	assert.False(t, opts.IncludeInteractions)
}

func TestOptionsFromJSONDistinguishesOmittedAndFalse(t *testing.T) {
	var omitted DrugSearchRequest
	require.NoError(t, json.Unmarshal([]byte(`{"drug_name":"aspirin"}`), &omitted))
	assert.True(t, omitted.Options().IncludeDosage)

	var explicit DrugSearchRequest
	require.NoError(t, json.Unmarshal([]byte(`{"drug_name":"aspirin","include_dosage":false}`), &explicit))
	assert.False(t, explicit.Options().IncludeDosage)
}
