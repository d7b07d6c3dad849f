package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/storefront-checkout/internal/cache"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/config"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/storefront"
	"github.com/aaravmahajanofficial/storefront-checkout/pkg/stripe"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
)

const version = "1.0.0"

type Endpoints struct {
	Cache   cache.Cache
	Backend storefront.Client
	Stripe  stripe.Client
}

// NewHealthHandler reports session storage and the storefront backend as
// required. Stripe only degrades the service since cash and online payments
// keep working without it. Postgres is checked when config overrides are enabled.
func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:    "redis",
			Timeout: 2 * time.Second,
			Check: func(ctx context.Context) error {
				if err := endpoints.Cache.Ping(ctx); err != nil {
					return fmt.Errorf("redis ping failed: %w", err)
				}
				return nil
			},
		},
		{
			Name:    "storefront-backend",
			Timeout: 3 * time.Second,
			Check: func(ctx context.Context) error {
				if err := endpoints.Backend.Ping(ctx); err != nil {
					return fmt.Errorf("storefront backend unreachable: %w", err)
				}
				return nil
			},
		},
		{
			Name:      "stripe",
			Timeout:   5 * time.Second,
			SkipOnErr: true,
			Check: func(ctx context.Context) error {
				if endpoints.Stripe == nil {
					return fmt.Errorf("stripe client is not initialized")
				}
				if err := endpoints.Stripe.Ping(ctx); err != nil {
					return fmt.Errorf("failed to connect to stripe: %w", err)
				}
				return nil
			},
		},
	}

	if cfg.Database.Enabled {
		checks = append(checks, health.Config{
			Name:    "database",
			Timeout: 3 * time.Second,
			Check:   postgres.New(postgres.Config{DSN: cfg.Database.GetDSN()}),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    cfg.Otel.ServiceName,
			Version: version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
