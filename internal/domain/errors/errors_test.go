package errors

import (
	"net/http"
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsStillMatchesCatalogue(t *testing.T) {
	err := ErrValidationFailed.WithDetails("password must be at least 6 characters")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Equal(t, "password must be at least 6 characters", err.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	err := ErrCouponExpired.WrapMessage("validate coupon")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "COUPON_EXPIRED", appErr.ErrorCode())
	assert.Equal(t, "Coupon expired", appErr.Message())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create order")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to create order", err.Details())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection reset")
}
