package service

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/storefront-checkout/internal/config"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/models"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/pricing"
	repository "github.com/aaravmahajanofficial/storefront-checkout/internal/repositories"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/utils"
)

// LoadCalculator layers the built-in currency rules, the config file rules and
// the active rows of checkout_configs, later sources winning. repo may be nil.
func LoadCalculator(ctx context.Context, cfg *config.Checkout, repo repository.PricingRepository) (*pricing.Calculator, error) {

	fromFile, err := pricing.FromRules(cfg.Currencies)
	if err != nil {
		return nil, fmt.Errorf("invalid checkout currencies in config: %w", err)
	}

	var fromDB []models.CheckoutConfig

	if repo != nil {
		dbCtx, cancel := utils.WithDBTimeout(ctx)
		defer cancel()

		fromDB, err = repo.ListCheckoutConfigs(dbCtx)
		if err != nil {
			return nil, fmt.Errorf("loading checkout configs: %w", err)
		}
	}

	calc, err := pricing.NewCalculator(pricing.Merge(pricing.DefaultConfigs(), fromFile, fromDB))
	if err != nil {
		return nil, err
	}

	if _, err := calc.Config(cfg.DefaultCurrency); err != nil {
		return nil, fmt.Errorf("default currency %q has no checkout config", cfg.DefaultCurrency)
	}

	return calc, nil
}
