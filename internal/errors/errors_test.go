package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("score out of range", 300)

	assert.Equal(t, CategoryValidation, err.Category)
	assert.Contains(t, err.Error(), "VALIDATION_ERROR")
	assert.Contains(t, err.Error(), "score out of range")
	assert.False(t, err.Timestamp.IsZero())
}

func TestNoDataError(t *testing.T) {
	err := NewNoDataError("summary undefined for empty score set")

	assert.Equal(t, CategoryNoData, err.Category)
	assert.Contains(t, err.Error(), "NO_DATA")
	assert.True(t, IsNoData(err))
}

func TestConfigurationError(t *testing.T) {
	cause := errors.New("yaml: bad indent")
	err := NewConfigurationError("registry document invalid", cause)

	assert.Equal(t, CategoryConfiguration, err.Category)
	assert.Contains(t, err.Error(), "CONFIGURATION_ERROR")
	assert.False(t, IsNoData(err))
}

func TestIsNoDataOnForeignError(t *testing.T) {
	assert.False(t, IsNoData(errors.New("plain")))
	assert.False(t, IsNoData(nil))
}
