package errors

import (
	"net/http"
	"testing"

	"travelhub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrConfiguration.WrapMessage("sign token")

	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "CONFIGURATION_ERROR", appErr.ErrorCode())
	assert.True(t, errors.Is(wrapped, ErrConfiguration))
}

func TestInvalidBookingError(t *testing.T) {
	err := errors.Wrap(NewInvalidBookingError(1, 999, 1), "book package")

	var bookingErr *InvalidBookingError
	require.True(t, errors.As(err, &bookingErr))
	assert.Equal(t, int64(999), bookingErr.FlightID)
	assert.Equal(t, http.StatusBadRequest, bookingErr.HTTPCode())
	assert.Equal(t, "INVALID_BOOKING", bookingErr.ErrorCode())
	assert.Equal(t, "packageId=1 flightId=999 roomId=1", bookingErr.Details())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert booking")

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "database execution failed")
	assert.Equal(t, "insert booking", err.Details())
}
