package errors_test

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	appErrors "github.com/aaravmahajanofficial/storefront-checkout/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	t.Run("Error message includes detail", func(t *testing.T) {
		err := appErrors.GatewayError("Order placement failed").WithDetail("card declined")

		assert.Equal(t, "Order placement failed: card declined", err.Error())
		assert.Equal(t, http.StatusBadGateway, err.StatusCode)
		assert.True(t, err.Retryable)
	})

	t.Run("Unwrap and IsAppError through wrapping", func(t *testing.T) {
		cause := stdErrors.New("connection refused")
		err := fmt.Errorf("submit: %w", appErrors.NetworkError("Backend unreachable").WithError(cause))

		appErr, ok := appErrors.IsAppError(err)

		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNetworkError, appErr.Code)
		assert.True(t, appErr.Retryable)
		assert.ErrorIs(t, err, cause)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNetworkError))
	})

	t.Run("Non app error", func(t *testing.T) {
		_, ok := appErrors.IsAppError(stdErrors.New("plain"))

		assert.False(t, ok)
		assert.False(t, appErrors.HasCode(stdErrors.New("plain"), appErrors.ErrCodeNotFound))
	})

	t.Run("Field errors", func(t *testing.T) {
		err := appErrors.ValidationError("Validation failed").WithFields(
			appErrors.FieldError{Field: "zipCode", Message: "must be a 5-digit or ZIP+4 code"},
			appErrors.FieldError{Field: "email", Message: "must be a valid email address"},
		)

		assert.Len(t, err.Fields, 2)
		assert.True(t, err.HasField("zipCode"))
		assert.False(t, err.HasField("phone"))
	})

	t.Run("Expired intent is not retryable", func(t *testing.T) {
		err := appErrors.ExpiredIntentError("Purchase intent expired")

		assert.Equal(t, http.StatusGone, err.StatusCode)
		assert.False(t, err.Retryable)
	})

	t.Run("Invalid shipping method names the field", func(t *testing.T) {
		err := appErrors.InvalidShippingMethodError("teleport")

		assert.Equal(t, appErrors.ErrCodeInvalidShippingMethod, err.Code)
		assert.True(t, err.HasField("shippingMethod"))
	})
}
