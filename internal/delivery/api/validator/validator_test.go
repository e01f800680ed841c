package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string `json:"nome" validate:"required"`
	Author string `json:"escritor" validate:"required,uuid"`
}

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sample{Author: "nope"})

	require.Error(t, err)
	assert.Equal(t, "nome: required, escritor: uuid", Describe(err))
}

func TestValidator_Valid(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Name: "ana", Author: "0190b8a4-7c52-7a2e-9d3f-5b3c2e1d0f11"}))
}

func TestDescribe_NonValidationError(t *testing.T) {
	assert.Equal(t, "boom", Describe(errors.New("boom")))
}
