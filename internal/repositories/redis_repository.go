package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/storefront-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/config"
	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "checkout_attempts"

type RateLimitRepository interface {
	// CheckRateLimit records an attempt for key and returns whether it is
	// allowed, the attempts left and the seconds to wait when it is not.
	CheckRateLimit(ctx context.Context, key string) (bool, int, int, error)
}

type redisRepository struct {
	client *redis.Client
	cfg    *config.RateConfig
	now    func() time.Time
}

type RateLimitOption func(*redisRepository)

func WithRateLimitClock(now func() time.Time) RateLimitOption {
	return func(r *redisRepository) { r.now = now }
}

func NewRateLimitRepo(client *redis.Client, cfg *config.RateConfig, opts ...RateLimitOption) RateLimitRepository {

	r := &redisRepository{client: client, cfg: cfg, now: time.Now}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Attempts live in a sorted set scored by unix milliseconds. Entries older
// than the window are trimmed before counting.
func (r *redisRepository) CheckRateLimit(ctx context.Context, key string) (bool, int, int, error) {

	logger := middleware.LoggerFromContext(ctx)

	key = rateLimitKeyPrefix + ":" + key

	now := r.now()
	window := r.cfg.WindowSize
	windowStart := now.Add(-window).UnixMilli()

	pipe := r.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))

	// nanosecond members keep attempts within the same millisecond distinct
	member := strconv.FormatInt(now.UnixNano(), 10)
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixMilli()), Member: member})

	count := pipe.ZCard(ctx, key)

	pipe.Expire(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("Redis pipeline execution failed for rate limit", slog.String("key", key), slog.Any("error", err))
		return false, 0, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()
	remaining := r.cfg.MaxAttempts - attempts

	if attempts > r.cfg.MaxAttempts {

		// denied attempts do not count, so the window drains while a client keeps retrying
		if err := r.client.ZRem(ctx, key, member).Err(); err != nil {
			logger.Warn("Failed to drop denied attempt", slog.String("key", key), slog.Any("error", err))
		}

		// the buyer is over the limit either way; fall back to a full window
		scores, err := r.client.ZRangeArgsWithScores(ctx, redis.ZRangeArgs{Key: key, Start: 0, Stop: 0}).Result()
		if err != nil || len(scores) == 0 {
			logger.Error("Failed to get oldest attempt time for rate limit", slog.String("key", key), slog.Any("error", err))
			return false, 0, int(window.Seconds()), nil
		}

		oldest := time.UnixMilli(int64(scores[0].Score))
		wait := oldest.Add(window).Sub(now)
		retryAfter := max(int((wait+time.Second-1)/time.Second), 1)

		logger.Warn("Rate limit exceeded", slog.String("key", key), slog.Int64("attempts", attempts))
		return false, 0, retryAfter, nil
	}

	logger.Debug("Rate limit check passed", slog.String("key", key), slog.Int64("attempts", attempts), slog.Int64("remaining", remaining))
	return true, int(remaining), 0, nil
}
