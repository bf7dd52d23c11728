package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticRateRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStaticRateRepository()

	t.Run("Known pair", func(t *testing.T) {
		rate, err := repo.GetRateForPair(ctx, "BTC", "RUB")
		assert.NoError(t, err)
		assert.Equal(t, float64(6500000), rate)
	})

	t.Run("USDT is pegged to USD", func(t *testing.T) {
		rate, err := repo.GetRateForPair(ctx, "USDT", "USD")
		assert.NoError(t, err)
		assert.Equal(t, float64(1), rate)
	})

	t.Run("Unknown pair", func(t *testing.T) {
		_, err := repo.GetRateForPair(ctx, "XRP", "RUB")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no fallback rate")
	})
}
