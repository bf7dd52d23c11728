package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/mkurbatov/gw-exchange-front/internal/logger"
)

// RateCacheRepository keeps recently fetched exchange rates in Redis so that
// repeated quote recalculations do not hammer the external rates provider.
type RateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached rates
}

// NewRateCacheRepository creates a new repository instance with the given TTL
func NewRateCacheRepository(client *redis.Client, expiration time.Duration) *RateCacheRepository {
	return &RateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetRateForPair fetches a cached rate for a crypto/fiat pair
func (r *RateCacheRepository) GetRateForPair(ctx context.Context, base, quote string) (float64, error) {
	key := fmt.Sprintf("rate:%s:%s", base, quote)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return 0, fmt.Errorf("rate not found in cache for %s-%s", base, quote)
		}
		return 0, err
	}

	rate, err := strconv.ParseFloat(val, 64)
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"result", 0,
			"error", err,
		)
		return 0, err
	}

	logger.Log.Infow(
		"key", key,
		"value", val,
		"result", rate,
		"error", nil,
	)

	return rate, nil
}

// SetRateForPair caches a rate in Redis with expiration
func (r *RateCacheRepository) SetRateForPair(ctx context.Context, base, quote string, rate float64) error {
	key := fmt.Sprintf("rate:%s:%s", base, quote)
	err := r.client.Set(ctx, key, strconv.FormatFloat(rate, 'f', -1, 64), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"rate", rate,
		"result", "ok",
		"error", err,
	)

	return err
}
