package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRateCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewRateCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get rate", func(t *testing.T) {
		rate := float64(6500000)

		err := repo.SetRateForPair(ctx, "BTC", "RUB", rate)
		assert.NoError(t, err)

		got, err := repo.GetRateForPair(ctx, "BTC", "RUB")
		assert.NoError(t, err)
		assert.Equal(t, rate, got)
	})

	t.Run("Get missing pair returns error", func(t *testing.T) {
		_, err := repo.GetRateForPair(ctx, "XRP", "RUB")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "rate not found")
	})

	t.Run("Cached rate expires", func(t *testing.T) {
		err := repo.SetRateForPair(ctx, "ETH", "USD", 3700)
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err = repo.GetRateForPair(ctx, "ETH", "USD")
		assert.Error(t, err)
	})
}
