package checkout_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront-checkout/internal/checkout"
	appErrors "github.com/aaravmahajanofficial/storefront-checkout/internal/errors"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/models"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func newEngine(t *testing.T) *checkout.Engine {
	t.Helper()

	calc, err := pricing.NewCalculator(pricing.DefaultConfigs())
	require.NoError(t, err)

	return checkout.NewEngine(calc, checkout.WithClock(func() time.Time { return fixedNow }))
}

func usdCart(subtotal string) *models.Cart {
	return &models.Cart{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Currency:   "USD",
		Lines: []models.CartLine{{
			ID:        uuid.New(),
			ProductID: uuid.New(),
			Name:      "Ceramic Mug",
			UnitPrice: decimal.RequireFromString(subtotal),
			Quantity:  1,
		}},
	}
}

func inrIntent(expiresAt time.Time) *models.PurchaseIntent {
	return &models.PurchaseIntent{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		Name:      "Cotton Kurta",
		UnitPrice: decimal.RequireFromString("3000"),
		Quantity:  1,
		Currency:  "INR",
		ExpiresAt: expiresAt,
	}
}

func validUSDShipping() models.ShippingForm {
	return models.ShippingForm{
		FullName:       "Jane Doe",
		Email:          "jane@example.com",
		Phone:          "555-123-4567",
		Street:         "1 Main St",
		City:           "Springfield",
		State:          "IL",
		ZipCode:        "62704",
		ShippingMethod: "standard",
	}
}

func validINRShipping() models.ShippingForm {
	return models.ShippingForm{
		FullName:       "Asha Rao",
		Email:          "asha@example.in",
		Phone:          "+91 98765 43210",
		Street:         "12 MG Road",
		City:           "Bengaluru",
		State:          "KA",
		ZipCode:        "560001",
		ShippingMethod: "standard",
	}
}

func TestNewCartSession(t *testing.T) {
	engine := newEngine(t)

	t.Run("Success - Starts at shipping", func(t *testing.T) {
		cart := usdCart("40.00")

		session, err := engine.NewCartSession(cart, cart.CustomerID)

		require.NoError(t, err)
		assert.Equal(t, models.FlowCart, session.Flow)
		assert.Equal(t, models.StepShipping, session.CurrentStep)
		assert.Equal(t, "USD", session.Currency)
		assert.Equal(t, cart.ID, session.CartID)
		assert.Len(t, session.Lines, 1)
		assert.False(t, session.Submitting)
	})

	t.Run("Success - Session does not share lines with cart", func(t *testing.T) {
		cart := usdCart("40.00")

		session, err := engine.NewCartSession(cart, cart.CustomerID)
		require.NoError(t, err)

		cart.Lines[0].Quantity = 9

		assert.Equal(t, 1, session.Lines[0].Quantity)
	})

	t.Run("Failure - Empty cart", func(t *testing.T) {
		_, err := engine.NewCartSession(&models.Cart{ID: uuid.New(), Currency: "USD"}, uuid.New())

		require.Error(t, err)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeEmptyCart))
	})

	t.Run("Failure - Unsupported currency", func(t *testing.T) {
		cart := usdCart("40.00")
		cart.Currency = "EUR"

		_, err := engine.NewCartSession(cart, cart.CustomerID)

		require.Error(t, err)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeUnsupportedCurrency))
	})
}

func TestCartFlow_EndToEnd(t *testing.T) {
	engine := newEngine(t)
	cart := usdCart("40.00")

	session, err := engine.NewCartSession(cart, cart.CustomerID)
	require.NoError(t, err)

	// Shipping -> Payment
	session, effect, err := engine.Advance(session, validUSDShipping())
	require.NoError(t, err)
	assert.Equal(t, checkout.EffectNone, effect)
	assert.Equal(t, models.StepPayment, session.CurrentStep)

	// Payment -> Review
	session, effect, err = engine.Advance(session, models.PaymentForm{PaymentMethod: "card", GatewayToken: "pm_card_visa"})
	require.NoError(t, err)
	assert.Equal(t, checkout.EffectNone, effect)
	assert.Equal(t, models.StepReview, session.CurrentStep)
	assert.Equal(t, models.StepReview, session.FurthestStep)

	totals, err := engine.Totals(session)
	require.NoError(t, err)
	assert.Equal(t, "53.19", totals.Total.StringFixed(2))

	// Review -> submitting
	session, effect, err = engine.Advance(session, models.ConfirmForm{})
	require.NoError(t, err)
	assert.Equal(t, checkout.EffectPlaceOrder, effect)
	assert.True(t, effect.Submits())
	assert.True(t, session.Submitting)
	assert.Equal(t, models.StepReview, session.CurrentStep)

	// A second confirm while the first is in flight is rejected
	_, _, err = engine.Advance(session, models.ConfirmForm{})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeSubmissionInFlight))

	// Submitting -> Submitted
	session, err = engine.Complete(session, models.OrderConfirmation{OrderID: "ord_1", OrderNumber: "SO-1001"})
	require.NoError(t, err)
	assert.Equal(t, models.StepSubmitted, session.CurrentStep)
	assert.False(t, session.Submitting)
	assert.Equal(t, "SO-1001", session.OrderNumber)

	_, _, err = engine.Advance(session, models.ConfirmForm{})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeAlreadySubmitted))
}

func TestAdvance_InvalidZipKeepsStep(t *testing.T) {
	engine := newEngine(t)
	cart := usdCart("40.00")

	session, err := engine.NewCartSession(cart, cart.CustomerID)
	require.NoError(t, err)

	form := validUSDShipping()
	form.ZipCode = "abc"

	// Act
	next, effect, err := engine.Advance(session, form)

	// Assert
	require.Error(t, err)
	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
	assert.True(t, appErr.HasField("zipCode"))
	assert.Equal(t, checkout.EffectNone, effect)
	assert.Equal(t, models.StepShipping, next.CurrentStep)
	assert.Nil(t, next.Shipping)
}

func TestAdvance_ReportsEveryInvalidField(t *testing.T) {
	engine := newEngine(t)
	cart := usdCart("40.00")

	session, err := engine.NewCartSession(cart, cart.CustomerID)
	require.NoError(t, err)

	form := models.ShippingForm{
		Email:          "not-an-email",
		Phone:          "12345",
		ZipCode:        "abc",
		ShippingMethod: "teleport",
	}

	_, _, err = engine.Advance(session, form)

	require.Error(t, err)
	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)

	for _, field := range []string{"fullName", "email", "phone", "street", "city", "state", "zipCode", "shippingMethod"} {
		assert.True(t, appErr.HasField(field), "expected field %s to be reported", field)
	}
}

func TestAdvance_StepMismatch(t *testing.T) {
	engine := newEngine(t)
	cart := usdCart("40.00")

	session, err := engine.NewCartSession(cart, cart.CustomerID)
	require.NoError(t, err)

	t.Run("Failure - Payment form on shipping step", func(t *testing.T) {
		_, _, err := engine.Advance(session, models.PaymentForm{PaymentMethod: "card", GatewayToken: "tok"})

		require.Error(t, err)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeStepMismatch))
	})

	t.Run("Failure - Confirm on shipping step", func(t *testing.T) {
		_, _, err := engine.Advance(session, models.ConfirmForm{})

		require.Error(t, err)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeStepMismatch))
	})

	t.Run("Failure - Nil form", func(t *testing.T) {
		_, _, err := engine.Advance(session, nil)

		require.Error(t, err)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeBadRequest))
	})
}

func TestAdvance_DoesNotMutateInput(t *testing.T) {
	engine := newEngine(t)
	cart := usdCart("40.00")

	session, err := engine.NewCartSession(cart, cart.CustomerID)
	require.NoError(t, err)

	next, _, err := engine.Advance(session, validUSDShipping())
	require.NoError(t, err)

	assert.Equal(t, models.StepShipping, session.CurrentStep)
	assert.Nil(t, session.Shipping)
	assert.Equal(t, models.StepPayment, next.CurrentStep)
}

func TestGoTo(t *testing.T) {
	engine := newEngine(t)
	cart := usdCart("40.00")

	session, err := engine.NewCartSession(cart, cart.CustomerID)
	require.NoError(t, err)
	session, _, err = engine.Advance(session, validUSDShipping())
	require.NoError(t, err)
	session, _, err = engine.Advance(session, models.PaymentForm{PaymentMethod: "card", GatewayToken: "tok"})
	require.NoError(t, err)

	t.Run("Success - Back to shipping keeps data", func(t *testing.T) {
		back, err := engine.GoTo(session, models.StepShipping)

		require.NoError(t, err)
		assert.Equal(t, models.StepShipping, back.CurrentStep)
		assert.Equal(t, models.StepReview, back.FurthestStep)
		require.NotNil(t, back.Shipping)
		assert.Equal(t, "62704", back.Shipping.Address.ZipCode)
		require.NotNil(t, back.Payment)
	})

	t.Run("Success - Re-advancing after going back re-validates", func(t *testing.T) {
		back, err := engine.GoTo(session, models.StepShipping)
		require.NoError(t, err)

		form := validUSDShipping()
		form.ShippingMethod = "express"

		next, _, err := engine.Advance(back, form)
		require.NoError(t, err)

		totals, err := engine.Totals(next)
		require.NoError(t, err)
		assert.Equal(t, "63.19", totals.Total.StringFixed(2))
	})

	t.Run("Failure - Step not yet reached", func(t *testing.T) {
		fresh, err := engine.NewCartSession(cart, cart.CustomerID)
		require.NoError(t, err)

		_, err = engine.GoTo(fresh, models.StepReview)

		require.Error(t, err)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeStepMismatch))
	})

	t.Run("Failure - Step outside flow", func(t *testing.T) {
		_, err := engine.GoTo(session, models.StepSubmitted)

		require.Error(t, err)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
	})
}

func TestBuyNowFlow(t *testing.T) {
	engine := newEngine(t)

	t.Run("Success - Shipping then payment completes purchase", func(t *testing.T) {
		intent := inrIntent(fixedNow.Add(10 * time.Minute))

		session, err := engine.NewBuyNowSession(intent, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, models.StepShipping, session.CurrentStep)

		session, effect, err := engine.Advance(session, validINRShipping())
		require.NoError(t, err)
		assert.Equal(t, checkout.EffectSaveIntentAddress, effect)
		assert.Equal(t, models.StepPayment, session.CurrentStep)

		totals, err := engine.Totals(session)
		require.NoError(t, err)
		assert.Equal(t, "800.00", totals.Shipping.StringFixed(2))
		assert.Equal(t, "540.00", totals.Tax.StringFixed(2))
		assert.Equal(t, "4340.00", totals.Total.StringFixed(2))

		session, effect, err = engine.Advance(session, models.PaymentForm{PaymentMethod: "cash_on_delivery"})
		require.NoError(t, err)
		assert.Equal(t, checkout.EffectCompletePurchase, effect)
		assert.True(t, session.Submitting)

		session, err = engine.Complete(session, models.OrderConfirmation{OrderID: "ord_9", RedirectURL: "/orders/ord_9"})
		require.NoError(t, err)
		assert.Equal(t, models.StepSubmitted, session.CurrentStep)
		assert.Equal(t, "/orders/ord_9", session.RedirectURL)
	})

	t.Run("Success - Stored address skips shipping", func(t *testing.T) {
		intent := inrIntent(fixedNow.Add(10 * time.Minute))
		intent.ShippingAddress = &models.ShippingInput{
			FullName: "Asha Rao",
			Email:    "asha@example.in",
			Phone:    "9876543210",
			Address:  models.Address{Street: "12 MG Road", City: "Bengaluru", State: "KA", ZipCode: "560001"},
		}

		session, err := engine.NewBuyNowSession(intent, uuid.New())

		require.NoError(t, err)
		assert.Equal(t, models.StepPayment, session.CurrentStep)
		require.NotNil(t, session.Shipping)
		assert.Equal(t, models.ShippingStandard, session.Shipping.Method)
	})

	t.Run("Failure - Card is not offered for INR", func(t *testing.T) {
		intent := inrIntent(fixedNow.Add(10 * time.Minute))

		session, err := engine.NewBuyNowSession(intent, uuid.New())
		require.NoError(t, err)
		session, _, err = engine.Advance(session, validINRShipping())
		require.NoError(t, err)

		_, _, err = engine.Advance(session, models.PaymentForm{PaymentMethod: "card", GatewayToken: "tok"})

		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.True(t, appErr.HasField("paymentMethod"))
	})

	t.Run("Success - Failed submission can be retried", func(t *testing.T) {
		intent := inrIntent(fixedNow.Add(10 * time.Minute))

		session, err := engine.NewBuyNowSession(intent, uuid.New())
		require.NoError(t, err)
		session, _, err = engine.Advance(session, validINRShipping())
		require.NoError(t, err)
		session, _, err = engine.Advance(session, models.PaymentForm{PaymentMethod: "online"})
		require.NoError(t, err)

		session = engine.Fail(session)
		assert.False(t, session.Submitting)
		assert.Equal(t, models.StepPayment, session.CurrentStep)

		_, effect, err := engine.Advance(session, models.PaymentForm{PaymentMethod: "online"})
		require.NoError(t, err)
		assert.Equal(t, checkout.EffectCompletePurchase, effect)
	})
}

func TestBuyNow_ExpiredIntent(t *testing.T) {
	engine := newEngine(t)

	t.Run("Failure - Expired on load blocks every advance", func(t *testing.T) {
		intent := inrIntent(fixedNow.Add(-time.Minute))

		session, err := engine.NewBuyNowSession(intent, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, models.StepExpired, session.CurrentStep)

		forms := []models.Form{validINRShipping(), models.PaymentForm{PaymentMethod: "online"}, models.ConfirmForm{}}
		for _, form := range forms {
			next, effect, err := engine.Advance(session, form)

			require.Error(t, err)
			assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeExpiredIntent))
			assert.Equal(t, checkout.EffectNone, effect)
			assert.Equal(t, models.StepExpired, next.CurrentStep)
		}

		_, err = engine.GoTo(session, models.StepShipping)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeExpiredIntent))
	})

	t.Run("Failure - Expiry at exactly expiresAt", func(t *testing.T) {
		session, err := engine.NewBuyNowSession(inrIntent(fixedNow), uuid.New())

		require.NoError(t, err)
		assert.Equal(t, models.StepExpired, session.CurrentStep)
	})

	t.Run("Failure - Intent expires mid-checkout", func(t *testing.T) {
		now := fixedNow
		calc, err := pricing.NewCalculator(pricing.DefaultConfigs())
		require.NoError(t, err)
		clocked := checkout.NewEngine(calc, checkout.WithClock(func() time.Time { return now }))

		session, err := clocked.NewBuyNowSession(inrIntent(fixedNow.Add(5*time.Minute)), uuid.New())
		require.NoError(t, err)

		now = fixedNow.Add(6 * time.Minute)

		loaded := clocked.Load(session)
		assert.Equal(t, models.StepExpired, loaded.CurrentStep)

		_, _, err = clocked.Advance(session, validINRShipping())
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeExpiredIntent))
	})
}

func TestComplete_Failures(t *testing.T) {
	engine := newEngine(t)
	cart := usdCart("40.00")

	session, err := engine.NewCartSession(cart, cart.CustomerID)
	require.NoError(t, err)

	t.Run("Failure - Nothing in flight", func(t *testing.T) {
		_, err := engine.Complete(session, models.OrderConfirmation{OrderID: "ord_1"})

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeBadRequest))
	})

	t.Run("Failure - Empty confirmation", func(t *testing.T) {
		inFlight := session.Clone()
		inFlight.Submitting = true

		_, err := engine.Complete(inFlight, models.OrderConfirmation{})

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeGatewayError))
	})
}

func TestSession_JSONRoundTrip(t *testing.T) {
	engine := newEngine(t)
	cart := usdCart("40.00")

	session, err := engine.NewCartSession(cart, cart.CustomerID)
	require.NoError(t, err)

	form := validUSDShipping()
	same := false
	form.BillingSameAsShipping = &same
	form.Billing = &models.AddressForm{Street: "9 Elm St", City: "Chicago", State: "IL", ZipCode: "60601"}

	session, _, err = engine.Advance(session, form)
	require.NoError(t, err)

	raw, err := json.Marshal(session)
	require.NoError(t, err)

	var decoded models.CheckoutSession
	require.NoError(t, json.Unmarshal(raw, &decoded))

	before, err := engine.Totals(session)
	require.NoError(t, err)
	after, err := engine.Totals(decoded)
	require.NoError(t, err)

	assert.True(t, before.Total.Equal(after.Total))
	assert.Equal(t, session.Shipping, decoded.Shipping)
	assert.Equal(t, session.CurrentStep, decoded.CurrentStep)
}

func TestOrderRequest_RoundTrip(t *testing.T) {
	engine := newEngine(t)
	cart := usdCart("40.00")

	session, err := engine.NewCartSession(cart, cart.CustomerID)
	require.NoError(t, err)

	form := validUSDShipping()
	same := false
	form.BillingSameAsShipping = &same
	form.Billing = &models.AddressForm{Street: "9 Elm St", City: "Chicago", State: "IL", ZipCode: "60601"}

	session, _, err = engine.Advance(session, form)
	require.NoError(t, err)
	session, _, err = engine.Advance(session, models.PaymentForm{PaymentMethod: "card", GatewayToken: "tok"})
	require.NoError(t, err)

	req, err := engine.OrderRequest(session)
	require.NoError(t, err)

	assert.Equal(t, cart.ID, req.CartID)
	assert.Len(t, req.Items, 1)
	assert.Equal(t, "Chicago", req.BillingAddress.City)
	assert.Equal(t, "53.19", req.Totals.Total.StringFixed(2))
	assert.Equal(t, *session.Shipping, checkout.ShippingFromOrderRequest(req))
}
