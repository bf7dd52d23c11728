package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

func validRequest() *models.ExchangeRequest {
	now := time.Now()
	return &models.ExchangeRequest{
		Direction:    models.DirectionCryptoToFiat,
		FromCurrency: "BTC",
		FromAmount:   "0.02",
		ToCurrency:   "RUB-CARD",
		ToAmount:     "130000.00",
		Rate:         6500000,
		Recipient:    map[string]string{"card_number": "2200123412341234", "name": "Ivan"},
		CreatedAt:    now,
		ExpiresAt:    now.Add(15 * time.Minute),
	}
}

func storedOrder(status models.OrderStatus) *models.Order {
	return &models.Order{
		ID:              17,
		Number:          "EX100017",
		ExchangeRequest: *validRequest(),
		Status:          status,
	}
}

func TestOrderService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("registers and stores the order", func(t *testing.T) {
		registrar := NewMockOrderRegistrar(ctrl)
		store := NewMockOrderReadWriter(ctrl)
		writer := NewMockKafkaWriter(ctrl)

		req := validRequest()
		registrar.EXPECT().CreateOrder(ctx, req).Return(int64(17), "EX100017", nil)
		store.EXPECT().Save(ctx, gomock.Any()).Return(nil)
		writer.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

		svc := NewOrderService(registrar, nil, store, writer)

		order, err := svc.Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, int64(17), order.ID)
		assert.Equal(t, "EX100017", order.Number)
		assert.Equal(t, models.OrderStatusCreated, order.Status)
	})

	t.Run("backend failure is returned as is", func(t *testing.T) {
		registrar := NewMockOrderRegistrar(ctrl)
		store := NewMockOrderReadWriter(ctrl)

		backendErr := errors.New("Сервис временно недоступен")
		registrar.EXPECT().CreateOrder(ctx, gomock.Any()).Return(int64(0), "", backendErr)

		svc := NewOrderService(registrar, nil, store, nil)

		_, err := svc.Create(ctx, validRequest())
		assert.ErrorIs(t, err, backendErr)
	})
}

func TestOrderService_Proceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("crypto payer gets deposit instructions", func(t *testing.T) {
		store := NewMockOrderReadWriter(ctrl)
		store.EXPECT().Get(ctx, "EX100017").Return(storedOrder(models.OrderStatusCreated), nil)
		store.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		svc := NewOrderService(nil, nil, store, nil)

		order, instructions, err := svc.Proceed(ctx, "EX100017")
		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatusPaymentPending, order.Status)
		assert.NotNil(t, instructions)
		assert.NotEmpty(t, instructions.Address)
		assert.Equal(t, "0.02", instructions.Amount)
	})

	t.Run("fiat payer awaits operator details", func(t *testing.T) {
		fiatOrder := storedOrder(models.OrderStatusCreated)
		fiatOrder.Direction = models.DirectionFiatToCrypto
		fiatOrder.FromCurrency, fiatOrder.ToCurrency = "RUB", "BTC"

		store := NewMockOrderReadWriter(ctrl)
		store.EXPECT().Get(ctx, "EX100017").Return(fiatOrder, nil)
		store.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		svc := NewOrderService(nil, nil, store, nil)

		order, instructions, err := svc.Proceed(ctx, "EX100017")
		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatusAwaitingPayment, order.Status)
		assert.Nil(t, instructions)
	})

	t.Run("expired quote moves the order to expired", func(t *testing.T) {
		expiredOrder := storedOrder(models.OrderStatusCreated)
		expiredOrder.ExpiresAt = time.Now().Add(-time.Minute)

		store := NewMockOrderReadWriter(ctrl)
		store.EXPECT().Get(ctx, "EX100017").Return(expiredOrder, nil)
		store.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o *models.Order) error {
			assert.Equal(t, models.OrderStatusExpired, o.Status)
			return nil
		})

		svc := NewOrderService(nil, nil, store, nil)

		_, _, err := svc.Proceed(ctx, "EX100017")
		assert.ErrorIs(t, err, ErrQuoteExpired)
	})

	t.Run("unknown order", func(t *testing.T) {
		store := NewMockOrderReadWriter(ctrl)
		store.EXPECT().Get(ctx, "EX999999").Return(nil, nil)

		svc := NewOrderService(nil, nil, store, nil)

		_, _, err := svc.Proceed(ctx, "EX999999")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("wrong status", func(t *testing.T) {
		store := NewMockOrderReadWriter(ctrl)
		store.EXPECT().Get(ctx, "EX100017").Return(storedOrder(models.OrderStatusConfirmed), nil)

		svc := NewOrderService(nil, nil, store, nil)

		_, _, err := svc.Proceed(ctx, "EX100017")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestOrderService_ClaimPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("from payment pending", func(t *testing.T) {
		store := NewMockOrderReadWriter(ctrl)
		store.EXPECT().Get(ctx, "EX100017").Return(storedOrder(models.OrderStatusPaymentPending), nil)
		store.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		svc := NewOrderService(nil, nil, store, nil)

		order, err := svc.ClaimPaid(ctx, "EX100017")
		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatusPaymentClaimed, order.Status)
	})

	t.Run("from created is invalid", func(t *testing.T) {
		store := NewMockOrderReadWriter(ctrl)
		store.EXPECT().Get(ctx, "EX100017").Return(storedOrder(models.OrderStatusCreated), nil)

		svc := NewOrderService(nil, nil, store, nil)

		_, err := svc.ClaimPaid(ctx, "EX100017")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestOrderService_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("partner order credits commission", func(t *testing.T) {
		claimed := storedOrder(models.OrderStatusPaymentClaimed)
		claimed.PartnerID = 42

		store := NewMockOrderReadWriter(ctrl)
		completer := NewMockOrderCompleter(ctrl)
		store.EXPECT().Get(ctx, "EX100017").Return(claimed, nil)
		completer.EXPECT().CompleteOrder(ctx, int64(17), float64(130000)).Return(nil)
		store.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		svc := NewOrderService(nil, completer, store, nil)

		order, err := svc.Confirm(ctx, "EX100017")
		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	})

	t.Run("orders without a partner skip the completion call", func(t *testing.T) {
		store := NewMockOrderReadWriter(ctrl)
		completer := NewMockOrderCompleter(ctrl)
		store.EXPECT().Get(ctx, "EX100017").Return(storedOrder(models.OrderStatusPaymentClaimed), nil)
		store.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		svc := NewOrderService(nil, completer, store, nil)

		order, err := svc.Confirm(ctx, "EX100017")
		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	})

	t.Run("completion failure keeps the order claimed", func(t *testing.T) {
		claimed := storedOrder(models.OrderStatusPaymentClaimed)
		claimed.PartnerID = 42

		store := NewMockOrderReadWriter(ctrl)
		completer := NewMockOrderCompleter(ctrl)
		store.EXPECT().Get(ctx, "EX100017").Return(claimed, nil)
		completer.EXPECT().CompleteOrder(ctx, int64(17), gomock.Any()).Return(errors.New("backend down"))

		svc := NewOrderService(nil, completer, store, nil)

		_, err := svc.Confirm(ctx, "EX100017")
		assert.Error(t, err)
	})
}

func TestOrderService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("cancels an in-flight order", func(t *testing.T) {
		store := NewMockOrderReadWriter(ctrl)
		writer := NewMockKafkaWriter(ctrl)
		store.EXPECT().Get(ctx, "EX100017").Return(storedOrder(models.OrderStatusAwaitingPayment), nil)
		store.EXPECT().Save(ctx, gomock.Any()).Return(nil)
		writer.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

		svc := NewOrderService(nil, nil, store, writer)

		order, err := svc.Cancel(ctx, "EX100017")
		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatusCancelled, order.Status)
	})

	t.Run("terminal orders cannot be cancelled", func(t *testing.T) {
		store := NewMockOrderReadWriter(ctrl)
		store.EXPECT().Get(ctx, "EX100017").Return(storedOrder(models.OrderStatusConfirmed), nil)

		svc := NewOrderService(nil, nil, store, nil)

		_, err := svc.Cancel(ctx, "EX100017")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}
