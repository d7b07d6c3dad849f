package utils

import (
	"context"
	"time"
)

const (
	DefaultDBTimeout      = 5 * time.Second
	DefaultBackendTimeout = 10 * time.Second
)

func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}

// WithBackendTimeout bounds a storefront backend or gateway call. A zero
// timeout uses DefaultBackendTimeout.
func WithBackendTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultBackendTimeout
	}

	return context.WithTimeout(ctx, timeout)
}
