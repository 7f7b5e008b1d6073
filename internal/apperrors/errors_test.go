package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "validation", err: fmt.Errorf("name: %w", ErrValidation), want: http.StatusBadRequest},
		{name: "validation app error", err: NewValidationError("bad input", errors.New("name required")), want: http.StatusBadRequest},
		{name: "not found", err: NewNotFoundError("asset x"), want: http.StatusNotFound},
		{name: "constraint", err: fmt.Errorf("insert: %w", ErrConstraint), want: http.StatusConflict},
		{name: "duplicate", err: ErrDuplicate, want: http.StatusConflict},
		{name: "not ready", err: ErrNotReady, want: http.StatusServiceUnavailable},
		{name: "app error code", err: NewAppError(http.StatusTeapot, "teapot", nil), want: http.StatusTeapot},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewAppError(http.StatusInternalServerError, "failed to save asset", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to save asset: disk full", err.Error())
	assert.Equal(t, "missing", NewAppError(http.StatusNotFound, "missing", nil).Error())
}
