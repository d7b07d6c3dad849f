package service_test

import (
	"errors"
	"testing"

	"github.com/aaravmahajanofficial/storefront-checkout/internal/config"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/models"
	repoMocks "github.com/aaravmahajanofficial/storefront-checkout/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/storefront-checkout/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoadCalculator(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Built-in currencies", func(t *testing.T) {
		calc, err := service.LoadCalculator(ctx, &config.Checkout{DefaultCurrency: "USD"}, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"INR", "USD"}, calc.Currencies())
	})

	t.Run("Success - Config file then database override", func(t *testing.T) {
		// Arrange
		mockRepo := repoMocks.NewMockPricingRepository(t)

		cfg := &config.Checkout{
			DefaultCurrency: "USD",
			Currencies: []config.CurrencyRules{{
				Currency:          "eur",
				TaxRate:           "0.20",
				StandardRate:      "4.99",
				ExpressRate:       "9.99",
				OvernightRate:     "14.99",
				FreeThreshold:     "40",
				PaymentMethods:    []string{"card"},
				PostalCodePattern: `^\d{5}$`,
			}},
		}

		usd := usdCheckoutConfig()
		usd.TaxRate = decimal.RequireFromString("0.05")
		mockRepo.On("ListCheckoutConfigs", mock.Anything).Return([]models.CheckoutConfig{usd}, nil).Once()

		// Act
		calc, err := service.LoadCalculator(ctx, cfg, mockRepo)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []string{"EUR", "INR", "USD"}, calc.Currencies())

		tax, err := calc.Tax(decimal.RequireFromString("100"), "USD")
		require.NoError(t, err)
		assert.Equal(t, "5.00", tax.StringFixed(2))
	})

	t.Run("Failure - Repository error", func(t *testing.T) {
		mockRepo := repoMocks.NewMockPricingRepository(t)
		mockRepo.On("ListCheckoutConfigs", mock.Anything).Return(nil, errors.New("connection refused")).Once()

		_, err := service.LoadCalculator(ctx, &config.Checkout{DefaultCurrency: "USD"}, mockRepo)

		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("Failure - Bad amount in config", func(t *testing.T) {
		cfg := &config.Checkout{
			DefaultCurrency: "USD",
			Currencies:      []config.CurrencyRules{{Currency: "GBP", TaxRate: "twenty"}},
		}

		_, err := service.LoadCalculator(ctx, cfg, nil)

		assert.ErrorContains(t, err, "invalid checkout currencies")
	})

	t.Run("Failure - Default currency not configured", func(t *testing.T) {
		_, err := service.LoadCalculator(ctx, &config.Checkout{DefaultCurrency: "JPY"}, nil)

		assert.ErrorContains(t, err, "JPY")
	})
}

func usdCheckoutConfig() models.CheckoutConfig {
	return models.CheckoutConfig{
		Currency:          "USD",
		TaxRate:           decimal.RequireFromString("0.08"),
		StandardRate:      decimal.RequireFromString("9.99"),
		ExpressRate:       decimal.RequireFromString("19.99"),
		OvernightRate:     decimal.RequireFromString("29.99"),
		FreeThreshold:     decimal.RequireFromString("50"),
		PaymentMethods:    []models.PaymentMethod{models.PaymentCard},
		PostalCodePattern: `^\d{5}(-\d{4})?$`,
	}
}
