package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_String(t *testing.T) {
	tests := []struct {
		code     errs.Code
		expected string
	}{
		{errs.CodeCarrierNotFound, "CARRIER_NOT_FOUND"},
		{errs.CodeAlreadyRegistered, "ALREADY_REGISTERED"},
		{errs.CodeInvalidCapacity, "INVALID_CAPACITY"},
		{errs.CodeUnauthorized, "UNAUTHORIZED"},
		{errs.CodeScheduleNotFound, "SCHEDULE_NOT_FOUND"},
		{errs.CodeInvalidPriority, "INVALID_PRIORITY"},
		{errs.CodeDivisionByZero, "DIVISION_BY_ZERO"},
		{errs.Code(999), "UNKNOWN"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, test.code.String())
		})
	}
}

func TestCode_Validate(t *testing.T) {
	t.Run("taxonomy codes are valid", func(t *testing.T) {
		for _, code := range []errs.Code{
			errs.CodeCarrierNotFound,
			errs.CodeAlreadyRegistered,
			errs.CodeInvalidCapacity,
			errs.CodeUnauthorized,
			errs.CodeScheduleNotFound,
			errs.CodeInvalidPriority,
			errs.CodeDivisionByZero,
		} {
			require.NoError(t, code.Validate())
		}
	})

	t.Run("unknown code is invalid", func(t *testing.T) {
		err := errs.Code(999).Validate()
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCode_NumericValuesAreStable(t *testing.T) {
	assert.Equal(t, 301, int(errs.CodeCarrierNotFound))
	assert.Equal(t, 302, int(errs.CodeAlreadyRegistered))
	assert.Equal(t, 303, int(errs.CodeInvalidCapacity))
	assert.Equal(t, 400, int(errs.CodeUnauthorized))
	assert.Equal(t, 401, int(errs.CodeScheduleNotFound))
	assert.Equal(t, 402, int(errs.CodeInvalidPriority))
}

func TestDomainError(t *testing.T) {
	t.Run("carries code and message", func(t *testing.T) {
		err := errs.NewDomainError(errs.CodeAlreadyRegistered, "carrier already registered")

		assert.Equal(t, errs.CodeAlreadyRegistered, err.Code())
		assert.Equal(t, "carrier already registered (code 302)", err.Error())
	})

	t.Run("errors.Is matches same code", func(t *testing.T) {
		sentinel := errs.NewDomainError(errs.CodeUnauthorized, "caller is not the coordinator")
		wrapped := fmt.Errorf("submit optimization: %w", sentinel)

		require.ErrorIs(t, wrapped, sentinel)
		require.NotErrorIs(t, wrapped, errs.NewDomainError(errs.CodeScheduleNotFound, "schedule not found"))
	})
}

func TestCodeOf(t *testing.T) {
	t.Run("extracts code from wrapped rejection", func(t *testing.T) {
		rejection := errs.NewDomainError(errs.CodeInvalidPriority, "priority out of range")
		wrapped := fmt.Errorf("update priority: %w", rejection)

		code, ok := errs.CodeOf(wrapped)
		require.True(t, ok)
		assert.Equal(t, errs.CodeInvalidPriority, code)
	})

	t.Run("reports absence for plain errors", func(t *testing.T) {
		_, ok := errs.CodeOf(errors.New("boom"))
		assert.False(t, ok)
	})
}
