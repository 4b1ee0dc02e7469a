package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
)

// RateCacheRepository caches whole rate tables in Redis, one entry per base
// currency. The cache is advisory: a miss or a Redis failure only means the
// feed is consulted again.
type RateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached tables
}

// NewRateCacheRepository creates a new repository instance with the given TTL
func NewRateCacheRepository(client *redis.Client, expiration time.Duration) *RateCacheRepository {
	return &RateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func rateCacheKey(base string) string {
	return fmt.Sprintf("fx_rates:%s", base)
}

// GetRates fetches the cached rate table for a base currency
func (r *RateCacheRepository) GetRates(ctx context.Context, base string) (models.RateTable, error) {
	key := rateCacheKey(base)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("rate table not cached for base %s", base)
		}
		return nil, err
	}

	var rates models.RateTable
	if err := json.Unmarshal([]byte(val), &rates); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", len(rates),
		"error", nil,
	)

	return rates, nil
}

// SetRates caches a rate table for a base currency with expiration. Two
// concurrent misses may both store the same table; the overwrite is harmless.
func (r *RateCacheRepository) SetRates(ctx context.Context, base string, rates models.RateTable) error {
	key := rateCacheKey(base)

	data, err := json.Marshal(rates)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"rates", len(rates),
		"result", "ok",
		"error", err,
	)

	return err
}
