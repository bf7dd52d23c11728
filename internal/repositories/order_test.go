package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

func TestOrderStore(t *testing.T) {
	ctx := context.Background()
	store := NewOrderStore()

	t.Run("Save and Get order", func(t *testing.T) {
		order := &models.Order{
			ID:     1,
			Number: "EX100001",
			Status: models.OrderStatusCreated,
			ExchangeRequest: models.ExchangeRequest{
				Direction:    models.DirectionCryptoToFiat,
				FromCurrency: "BTC",
				FromAmount:   "1",
				ToCurrency:   "RUB",
				ToAmount:     "6500000.00",
				Rate:         6500000,
			},
		}

		err := store.Save(ctx, order)
		assert.NoError(t, err)

		got, err := store.Get(ctx, "EX100001")
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, order.Status, got.Status)
		assert.Equal(t, order.ToAmount, got.ToAmount)
	})

	t.Run("Get returns a copy", func(t *testing.T) {
		got, err := store.Get(ctx, "EX100001")
		assert.NoError(t, err)
		got.Status = models.OrderStatusCancelled

		again, err := store.Get(ctx, "EX100001")
		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatusCreated, again.Status)
	})

	t.Run("Get missing order returns nil", func(t *testing.T) {
		got, err := store.Get(ctx, "EX999999")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Save overwrites existing order", func(t *testing.T) {
		order, err := store.Get(ctx, "EX100001")
		assert.NoError(t, err)

		order.Status = models.OrderStatusConfirmed
		err = store.Save(ctx, order)
		assert.NoError(t, err)

		got, err := store.Get(ctx, "EX100001")
		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatusConfirmed, got.Status)
	})
}
