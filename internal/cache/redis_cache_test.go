package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront-checkout/internal/cache"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/config"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/models"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (cache.Cache, redismock.ClientMock, *config.CacheConfig) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.CacheConfig{
		DefaultTTL: 30 * time.Minute,
	}

	return cache.NewRedisCache(client, cfg), mock, cfg
}

func sampleSession() models.CheckoutSession {
	return models.CheckoutSession{
		ID:           uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e"),
		CustomerID:   uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7"),
		Flow:         models.FlowCart,
		Currency:     "USD",
		CurrentStep:  models.StepPayment,
		FurthestStep: models.StepPayment,
		CreatedAt:    time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2025, 3, 14, 12, 5, 0, 0, time.UTC),
	}
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	session := sampleSession()
	key := cache.Key(cache.CheckoutKeyPrefix, session.ID.String())
	data, err := json.Marshal(session)
	require.NoError(t, err)

	t.Run("Success - Session found", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetVal(string(data))

		var got models.CheckoutSession

		// Act
		found, err := redisCache.Get(ctx, key, &got)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, session.ID, got.ID)
		assert.Equal(t, models.StepPayment, got.CurrentStep)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Miss", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetErr(redis.Nil)

		var got models.CheckoutSession

		// Act
		found, err := redisCache.Get(ctx, key, &got)

		// Assert
		require.NoError(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		redisErr := errors.New("connection reset")
		mock.ExpectGet(key).SetErr(redisErr)

		var got models.CheckoutSession

		// Act
		found, err := redisCache.Get(ctx, key, &got)

		// Assert
		require.Error(t, err)
		assert.False(t, found)
		assert.ErrorIs(t, err, redisErr)
		assert.Contains(t, err.Error(), "failed to get key "+key)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Corrupt payload", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetVal(`{"currentStep": 42}`)

		var got models.CheckoutSession

		// Act
		found, err := redisCache.Get(ctx, key, &got)

		// Assert
		require.Error(t, err)
		assert.False(t, found)

		var typeErr *json.UnmarshalTypeError
		assert.ErrorAs(t, err, &typeErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	session := sampleSession()
	key := cache.Key(cache.CheckoutKeyPrefix, session.ID.String())
	data, err := json.Marshal(session)
	require.NoError(t, err)

	t.Run("Success - Explicit TTL", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectSet(key, data, 10*time.Minute).SetVal("OK")

		// Act
		err := redisCache.Set(ctx, key, session, 10*time.Minute)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Non-positive TTL uses default", func(t *testing.T) {
		// Arrange
		redisCache, mock, cfg := setup(t)
		mock.ExpectSet(key, data, cfg.DefaultTTL).SetVal("OK")

		// Act
		err := redisCache.Set(ctx, key, session, 0)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unmarshallable value", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)

		// Act
		err := redisCache.Set(ctx, key, make(chan int), time.Minute)

		// Assert
		var typeErr *json.UnsupportedTypeError
		require.ErrorAs(t, err, &typeErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		redisErr := errors.New("READONLY replica")
		mock.ExpectSet(key, data, time.Minute).SetErr(redisErr)

		// Act
		err := redisCache.Set(ctx, key, session, time.Minute)

		// Assert
		require.ErrorIs(t, err, redisErr)
		assert.Contains(t, err.Error(), "failed to set key "+key)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSetNX(t *testing.T) {
	ctx := t.Context()
	key := cache.Key(cache.SubmitLockPrefix, "0f8fad5b-d9cb-469f-a165-70867728950e")
	owner := "req-1"
	data, err := json.Marshal(owner)
	require.NoError(t, err)

	t.Run("Success - Lock acquired", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectSetNX(key, data, 30*time.Second).SetVal(true)

		// Act
		ok, err := redisCache.SetNX(ctx, key, owner, 30*time.Second)

		// Assert
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Lock already held", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectSetNX(key, data, 30*time.Second).SetVal(false)

		// Act
		ok, err := redisCache.SetNX(ctx, key, owner, 30*time.Second)

		// Assert
		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		redisErr := errors.New("timeout")
		mock.ExpectSetNX(key, data, 30*time.Second).SetErr(redisErr)

		// Act
		ok, err := redisCache.SetNX(ctx, key, owner, 30*time.Second)

		// Assert
		require.ErrorIs(t, err, redisErr)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()
	key := cache.Key(cache.CheckoutKeyPrefix, "abc")

	t.Run("Success", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectDel(key).SetVal(1)

		// Act
		err := redisCache.Delete(ctx, key)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		redisErr := errors.New("redis DEL failed")
		mock.ExpectDel(key).SetErr(redisErr)

		// Act
		err := redisCache.Delete(ctx, key)

		// Assert
		require.ErrorIs(t, err, redisErr)
		assert.Contains(t, err.Error(), "failed to delete key "+key)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPing(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectPing().SetVal("PONG")

		require.NoError(t, redisCache.Ping(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unreachable", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectPing().SetErr(errors.New("dial tcp: connection refused"))

		err := redisCache.Ping(ctx)

		assert.ErrorContains(t, err, "failed to ping redis")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestKey(t *testing.T) {
	assert.Equal(t, "checkout:abc", cache.Key(cache.CheckoutKeyPrefix, "abc"))
	assert.Equal(t, "checkout_submit:abc", cache.Key(cache.SubmitLockPrefix, "abc"))
	assert.Equal(t, ":", cache.Key("", ""))
}
