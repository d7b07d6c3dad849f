// Package pricing turns a subtotal, a shipping method and a currency into
// order totals. Every function here is pure.
package pricing

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/aaravmahajanofficial/storefront-checkout/internal/config"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/errors"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/models"
	"github.com/shopspring/decimal"
)

// Amounts are rounded half-up to two places. decimal.Round rounds half away
// from zero, which is half-up for the non-negative amounts accepted here.
const places = 2

func DefaultConfigs() []models.CheckoutConfig {
	return []models.CheckoutConfig{
		{
			Currency:          "USD",
			TaxRate:           decimal.RequireFromString("0.08"),
			StandardRate:      decimal.RequireFromString("9.99"),
			ExpressRate:       decimal.RequireFromString("19.99"),
			OvernightRate:     decimal.RequireFromString("29.99"),
			FreeThreshold:     decimal.RequireFromString("50"),
			PaymentMethods:    []models.PaymentMethod{models.PaymentCard},
			PostalCodePattern: `^\d{5}(-\d{4})?$`,
		},
		{
			Currency:          "INR",
			TaxRate:           decimal.RequireFromString("0.18"),
			StandardRate:      decimal.RequireFromString("800"),
			ExpressRate:       decimal.RequireFromString("1200"),
			OvernightRate:     decimal.RequireFromString("2000"),
			FreeThreshold:     decimal.RequireFromString("4000"),
			PaymentMethods:    []models.PaymentMethod{models.PaymentOnline, models.PaymentCashOnDelivery},
			PostalCodePattern: `^\d{6}$`,
		},
	}
}

type Calculator struct {
	configs map[string]models.CheckoutConfig
	postal  map[string]*regexp.Regexp
}

func NewCalculator(configs []models.CheckoutConfig) (*Calculator, error) {

	if len(configs) == 0 {
		return nil, fmt.Errorf("at least one checkout config is required")
	}

	c := &Calculator{
		configs: make(map[string]models.CheckoutConfig, len(configs)),
		postal:  make(map[string]*regexp.Regexp, len(configs)),
	}

	for _, cfg := range configs {

		code := normalize(cfg.Currency)
		if len(code) != 3 {
			return nil, fmt.Errorf("invalid currency code %q", cfg.Currency)
		}

		for name, amount := range map[string]decimal.Decimal{
			"tax rate":       cfg.TaxRate,
			"standard rate":  cfg.StandardRate,
			"express rate":   cfg.ExpressRate,
			"overnight rate": cfg.OvernightRate,
			"free threshold": cfg.FreeThreshold,
		} {
			if amount.IsNegative() {
				return nil, fmt.Errorf("%s %s must not be negative", code, name)
			}
		}

		if len(cfg.PaymentMethods) == 0 {
			return nil, fmt.Errorf("%s must accept at least one payment method", code)
		}

		pattern, err := regexp.Compile(cfg.PostalCodePattern)
		if err != nil {
			return nil, fmt.Errorf("%s postal code pattern: %w", code, err)
		}

		cfg.Currency = code
		c.configs[code] = cfg
		c.postal[code] = pattern
	}

	return c, nil
}

// Merge overlays configs on top of base, keyed by currency.
func Merge(base []models.CheckoutConfig, overrides ...[]models.CheckoutConfig) []models.CheckoutConfig {

	merged := map[string]models.CheckoutConfig{}

	for _, cfg := range base {
		merged[normalize(cfg.Currency)] = cfg
	}

	for _, set := range overrides {
		for _, cfg := range set {
			merged[normalize(cfg.Currency)] = cfg
		}
	}

	out := make([]models.CheckoutConfig, 0, len(merged))
	for _, cfg := range merged {
		out = append(out, cfg)
	}

	sort.Slice(out, func(i, j int) bool { return normalize(out[i].Currency) < normalize(out[j].Currency) })

	return out
}

// FromRules parses the string-typed config section into checkout configs.
func FromRules(rules []config.CurrencyRules) ([]models.CheckoutConfig, error) {

	configs := make([]models.CheckoutConfig, 0, len(rules))

	for _, rule := range rules {

		cfg := models.CheckoutConfig{
			Currency:          normalize(rule.Currency),
			PostalCodePattern: rule.PostalCodePattern,
		}

		for _, field := range []struct {
			name  string
			raw   string
			value *decimal.Decimal
		}{
			{"tax_rate", rule.TaxRate, &cfg.TaxRate},
			{"standard_rate", rule.StandardRate, &cfg.StandardRate},
			{"express_rate", rule.ExpressRate, &cfg.ExpressRate},
			{"overnight_rate", rule.OvernightRate, &cfg.OvernightRate},
			{"free_threshold", rule.FreeThreshold, &cfg.FreeThreshold},
		} {
			d, err := decimal.NewFromString(strings.TrimSpace(field.raw))
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", cfg.Currency, field.name, err)
			}
			*field.value = d
		}

		for _, method := range rule.PaymentMethods {
			cfg.PaymentMethods = append(cfg.PaymentMethods, models.PaymentMethod(strings.TrimSpace(method)))
		}

		configs = append(configs, cfg)
	}

	return configs, nil
}

// Config returns the rules for a currency.
func (c *Calculator) Config(currency string) (models.CheckoutConfig, error) {

	cfg, ok := c.configs[normalize(currency)]
	if !ok {
		return models.CheckoutConfig{}, errors.UnsupportedCurrencyError(currency)
	}

	return cfg, nil
}

func (c *Calculator) Currencies() []string {

	out := make([]string, 0, len(c.configs))
	for code := range c.configs {
		out = append(out, code)
	}
	sort.Strings(out)

	return out
}

// ValidPostalCode checks a postal code against the currency's pattern.
func (c *Calculator) ValidPostalCode(currency, code string) bool {

	pattern, ok := c.postal[normalize(currency)]
	if !ok {
		return false
	}

	return pattern.MatchString(code)
}

func (c *Calculator) ShippingCost(subtotal decimal.Decimal, method models.ShippingMethod, currency string) (decimal.Decimal, error) {

	cfg, err := c.Config(currency)
	if err != nil {
		return decimal.Zero, err
	}

	switch method {
	case models.ShippingStandard:
		// the threshold applies to the subtotal the buyer sees
		if subtotal.Round(places).GreaterThan(cfg.FreeThreshold) {
			return decimal.Zero, nil
		}
		return cfg.StandardRate.Round(places), nil
	case models.ShippingExpress:
		return cfg.ExpressRate.Round(places), nil
	case models.ShippingOvernight:
		return cfg.OvernightRate.Round(places), nil
	default:
		return decimal.Zero, errors.InvalidShippingMethodError(string(method))
	}
}

// Tax applies to the subtotal only, never to shipping.
func (c *Calculator) Tax(subtotal decimal.Decimal, currency string) (decimal.Decimal, error) {

	cfg, err := c.Config(currency)
	if err != nil {
		return decimal.Zero, err
	}

	return subtotal.Mul(cfg.TaxRate).Round(places), nil
}

func (c *Calculator) Quote(subtotal decimal.Decimal, method models.ShippingMethod, currency string) (models.OrderTotals, error) {

	if subtotal.IsNegative() {
		return models.OrderTotals{}, errors.AddValidationError("subtotal", "must not be negative")
	}

	cfg, err := c.Config(currency)
	if err != nil {
		return models.OrderTotals{}, err
	}

	rounded := subtotal.Round(places)

	shipping, err := c.ShippingCost(rounded, method, cfg.Currency)
	if err != nil {
		return models.OrderTotals{}, err
	}

	tax, err := c.Tax(rounded, cfg.Currency)
	if err != nil {
		return models.OrderTotals{}, err
	}

	return models.OrderTotals{
		Currency: cfg.Currency,
		Subtotal: rounded,
		Shipping: shipping,
		Tax:      tax,
		Total:    rounded.Add(shipping).Add(tax),
	}, nil
}

func normalize(currency string) string {
	return strings.ToUpper(strings.TrimSpace(currency))
}
