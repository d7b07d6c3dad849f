package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/storefront-checkout/internal/models"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/utils"
	"github.com/lib/pq"
)

// PricingRepository reads per-currency checkout rules maintained by the
// storefront's admin tooling.
type PricingRepository interface {
	ListCheckoutConfigs(ctx context.Context) ([]models.CheckoutConfig, error)
	GetCheckoutConfig(ctx context.Context, currency string) (*models.CheckoutConfig, error)
}

type pricingRepository struct {
	DB *sql.DB
}

func NewPricingRepo(db *sql.DB) PricingRepository {
	return &pricingRepository{DB: db}
}

const checkoutConfigColumns = `currency, tax_rate, standard_rate, express_rate, overnight_rate, free_threshold, payment_methods, postal_code_pattern`

func (r *pricingRepository) ListCheckoutConfigs(ctx context.Context) ([]models.CheckoutConfig, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + checkoutConfigColumns + `
		FROM checkout_configs
		WHERE active = TRUE
		ORDER BY currency
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying checkout configs: %w", err)
	}
	defer rows.Close()

	var configs []models.CheckoutConfig

	for rows.Next() {
		cfg, err := scanCheckoutConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, *cfg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating checkout configs: %w", err)
	}

	return configs, nil
}

func (r *pricingRepository) GetCheckoutConfig(ctx context.Context, currency string) (*models.CheckoutConfig, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + checkoutConfigColumns + `
		FROM checkout_configs
		WHERE currency = $1 AND active = TRUE
	`

	return scanCheckoutConfig(r.DB.QueryRowContext(dbCtx, query, currency))
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCheckoutConfig(row scanner) (*models.CheckoutConfig, error) {

	var cfg models.CheckoutConfig
	var methods []string

	err := row.Scan(
		&cfg.Currency,
		&cfg.TaxRate,
		&cfg.StandardRate,
		&cfg.ExpressRate,
		&cfg.OvernightRate,
		&cfg.FreeThreshold,
		pq.Array(&methods),
		&cfg.PostalCodePattern,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning checkout config: %w", err)
	}

	for _, m := range methods {
		cfg.PaymentMethods = append(cfg.PaymentMethods, models.PaymentMethod(m))
	}

	return &cfg, nil
}
