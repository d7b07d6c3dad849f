package checkout_test

import (
	"testing"

	"github.com/aaravmahajanofficial/storefront-checkout/internal/checkout"
	appErrors "github.com/aaravmahajanofficial/storefront-checkout/internal/errors"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"5551234567", true},
		{"(555) 123-4567", true},
		{"555.123.4567", true},
		{"+1 555 123 4567", true},
		{"+91 98765 43210", true},
		{"12345", false},
		{"55512345678", false},
		{"555-CALL-NOW", false},
		{"555+1234567", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.phone, func(t *testing.T) {
			assert.Equal(t, tc.valid, checkout.ValidPhone(tc.phone))
		})
	}
}

func TestValidateShipping(t *testing.T) {
	engine := newEngine(t)

	t.Run("Success - Sanitises free text", func(t *testing.T) {
		form := validUSDShipping()
		form.FullName = "  <b>Jane</b> Doe "
		form.City = "<script>alert(1)</script>Springfield"

		input, err := engine.ValidateShipping(form, "USD", models.FlowCart)

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", input.FullName)
		assert.Equal(t, "Springfield", input.Address.City)
		assert.Equal(t, models.ShippingStandard, input.Method)
		assert.True(t, input.BillingSameAsShipping)
	})

	t.Run("Success - ZIP+4", func(t *testing.T) {
		form := validUSDShipping()
		form.ZipCode = "62704-1234"

		_, err := engine.ValidateShipping(form, "USD", models.FlowCart)

		assert.NoError(t, err)
	})

	t.Run("Success - Identical billing collapses to same", func(t *testing.T) {
		form := validUSDShipping()
		same := false
		form.BillingSameAsShipping = &same
		form.Billing = &models.AddressForm{Street: form.Street, City: form.City, State: form.State, ZipCode: form.ZipCode}

		input, err := engine.ValidateShipping(form, "USD", models.FlowCart)

		require.NoError(t, err)
		assert.True(t, input.BillingSameAsShipping)
		assert.Nil(t, input.Billing)
	})

	t.Run("Success - Buy-now ignores billing", func(t *testing.T) {
		form := validINRShipping()
		same := false
		form.BillingSameAsShipping = &same

		input, err := engine.ValidateShipping(form, "INR", models.FlowBuyNow)

		require.NoError(t, err)
		assert.True(t, input.BillingSameAsShipping)
	})

	t.Run("Failure - Missing billing address", func(t *testing.T) {
		form := validUSDShipping()
		same := false
		form.BillingSameAsShipping = &same

		_, err := engine.ValidateShipping(form, "USD", models.FlowCart)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.True(t, appErr.HasField("billing"))
	})

	t.Run("Failure - Invalid billing fields", func(t *testing.T) {
		form := validUSDShipping()
		same := false
		form.BillingSameAsShipping = &same
		form.Billing = &models.AddressForm{Street: "9 Elm St", ZipCode: "6060"}

		_, err := engine.ValidateShipping(form, "USD", models.FlowCart)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.True(t, appErr.HasField("billing.city"))
		assert.True(t, appErr.HasField("billing.state"))
		assert.True(t, appErr.HasField("billing.zipCode"))
		assert.False(t, appErr.HasField("billing.street"))
	})

	t.Run("Failure - US ZIP on an INR order", func(t *testing.T) {
		form := validINRShipping()
		form.ZipCode = "62704"

		_, err := engine.ValidateShipping(form, "INR", models.FlowBuyNow)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.True(t, appErr.HasField("zipCode"))
	})

	t.Run("Failure - Markup-only name is empty", func(t *testing.T) {
		form := validUSDShipping()
		form.FullName = "<img src=x>"

		_, err := engine.ValidateShipping(form, "USD", models.FlowCart)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.True(t, appErr.HasField("fullName"))
	})
}

func TestValidatePayment(t *testing.T) {
	engine := newEngine(t)

	t.Run("Success - Card keeps token", func(t *testing.T) {
		input, err := engine.ValidatePayment(models.PaymentForm{PaymentMethod: "card", GatewayToken: " pm_123 "}, "USD")

		require.NoError(t, err)
		assert.Equal(t, models.PaymentCard, input.Method)
		assert.Equal(t, "pm_123", input.GatewayToken)
	})

	t.Run("Success - Cash on delivery drops token", func(t *testing.T) {
		input, err := engine.ValidatePayment(models.PaymentForm{PaymentMethod: "cash_on_delivery", GatewayToken: "stray"}, "INR")

		require.NoError(t, err)
		assert.Empty(t, input.GatewayToken)
	})

	t.Run("Failure - Card without token", func(t *testing.T) {
		_, err := engine.ValidatePayment(models.PaymentForm{PaymentMethod: "card"}, "USD")

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.True(t, appErr.HasField("gatewayToken"))
	})

	t.Run("Failure - Unknown method", func(t *testing.T) {
		_, err := engine.ValidatePayment(models.PaymentForm{PaymentMethod: "barter"}, "USD")

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.True(t, appErr.HasField("paymentMethod"))
	})

	t.Run("Failure - Unsupported currency", func(t *testing.T) {
		_, err := engine.ValidatePayment(models.PaymentForm{PaymentMethod: "card", GatewayToken: "tok"}, "GBP")

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeUnsupportedCurrency))
	})
}
