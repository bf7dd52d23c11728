package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/mkurbatov/gw-exchange-front/internal/logger"
	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

var (
	// ErrOrderNotFound is returned when no order exists for the given number.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidTransition is returned on an operation the current status does not allow.
	ErrInvalidTransition = errors.New("invalid order status transition")
	// ErrQuoteExpired is returned when the quoted rate is no longer valid.
	ErrQuoteExpired = errors.New("Срок действия курса истёк")
)

// OrderRegistrar registers exchange requests with the order backend.
type OrderRegistrar interface {
	CreateOrder(ctx context.Context, req *models.ExchangeRequest) (int64, string, error) // Returns backend order id and number
}

// OrderCompleter marks orders completed so partner commissions are credited.
type OrderCompleter interface {
	CompleteOrder(ctx context.Context, orderID int64, orderAmount float64) error
}

// OrderReadWriter persists in-flight orders.
type OrderReadWriter interface {
	Save(ctx context.Context, order *models.Order) error
	Get(ctx context.Context, number string) (*models.Order, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// OrderService walks orders through the payment workflow and publishes a
// lifecycle event on every transition.
type OrderService struct {
	registrar   OrderRegistrar
	completer   OrderCompleter
	store       OrderReadWriter
	kafkaWriter KafkaWriter
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	registrar OrderRegistrar,
	completer OrderCompleter,
	store OrderReadWriter,
	kafkaWriter KafkaWriter,
) *OrderService {
	return &OrderService{
		registrar:   registrar,
		completer:   completer,
		store:       store,
		kafkaWriter: kafkaWriter,
	}
}

// publishOrderEvent publishes an order lifecycle event to Kafka.
func (s *OrderService) publishOrderEvent(ctx context.Context, order *models.Order) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "order_number", order.Number)
		return
	}

	event := models.OrderEvent{
		EventID:      uuid.NewString(),
		OrderNumber:  order.Number,
		Status:       order.Status,
		Direction:    order.Direction,
		FromAmount:   order.FromAmount,
		FromCurrency: order.FromCurrency,
		ToAmount:     order.ToAmount,
		ToCurrency:   order.ToCurrency,
		Timestamp:    time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal order event for Kafka", "order_number", order.Number, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(order.Number),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish order event to Kafka", "order_number", order.Number, "error", err)
	} else {
		logger.Log.Infow("Order event published to Kafka", "order_number", order.Number, "status", order.Status)
	}
}

func expired(order *models.Order) bool {
	return !order.ExpiresAt.IsZero() && time.Now().After(order.ExpiresAt)
}

// Create registers the exchange request with the backend and stores the
// resulting order in the created state.
func (s *OrderService) Create(ctx context.Context, req *models.ExchangeRequest) (*models.Order, error) {
	id, number, err := s.registrar.CreateOrder(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to register order", "error", err)
		return nil, err
	}

	order := &models.Order{
		ID:              id,
		Number:          number,
		ExchangeRequest: *req,
		Status:          models.OrderStatusCreated,
	}

	if err := s.store.Save(ctx, order); err != nil {
		return nil, err
	}

	s.publishOrderEvent(ctx, order)
	return order, nil
}

// Get returns the order by its public number.
func (s *OrderService) Get(ctx context.Context, number string) (*models.Order, error) {
	order, err := s.store.Get(ctx, number)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) transition(ctx context.Context, order *models.Order, next models.OrderStatus) (*models.Order, error) {
	order.Status = next
	if err := s.store.Save(ctx, order); err != nil {
		return nil, err
	}
	s.publishOrderEvent(ctx, order)
	return order, nil
}

// markExpired moves an order whose quote ran out into the expired state.
func (s *OrderService) markExpired(ctx context.Context, order *models.Order) error {
	if _, err := s.transition(ctx, order, models.OrderStatusExpired); err != nil {
		return err
	}
	return ErrQuoteExpired
}

// Proceed moves a created order to the payment step. Fiat payers wait for
// operator payment details; crypto payers get deposit instructions.
func (s *OrderService) Proceed(ctx context.Context, number string) (*models.Order, *models.PaymentInstructions, error) {
	order, err := s.Get(ctx, number)
	if err != nil {
		return nil, nil, err
	}
	if order.Status != models.OrderStatusCreated {
		return nil, nil, ErrInvalidTransition
	}
	if expired(order) {
		return nil, nil, s.markExpired(ctx, order)
	}

	switch order.Direction {
	case models.DirectionFiatToCrypto:
		order, err = s.transition(ctx, order, models.OrderStatusAwaitingPayment)
		return order, nil, err
	case models.DirectionCryptoToFiat:
		order, err = s.transition(ctx, order, models.OrderStatusPaymentPending)
		if err != nil {
			return nil, nil, err
		}
		instructions := models.DepositInstructions(order.FromCurrency, order.FromAmount)
		return order, instructions, nil
	default:
		return nil, nil, ErrUnknownDirection
	}
}

// ClaimPaid records that the customer reports the payment as sent.
func (s *OrderService) ClaimPaid(ctx context.Context, number string) (*models.Order, error) {
	order, err := s.Get(ctx, number)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusAwaitingPayment && order.Status != models.OrderStatusPaymentPending {
		return nil, ErrInvalidTransition
	}
	if expired(order) {
		return nil, s.markExpired(ctx, order)
	}

	return s.transition(ctx, order, models.OrderStatusPaymentClaimed)
}

// Confirm settles the order. The backend credits the partner commission when
// the order carries a partner id.
func (s *OrderService) Confirm(ctx context.Context, number string) (*models.Order, error) {
	order, err := s.Get(ctx, number)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusPaymentClaimed {
		return nil, ErrInvalidTransition
	}

	if order.PartnerID != 0 && s.completer != nil {
		amount, _ := parseAmount(fiatAmount(order))
		if err := s.completer.CompleteOrder(ctx, order.ID, amount); err != nil {
			logger.Log.Errorw("failed to complete order", "order_number", order.Number, "error", err)
			return nil, err
		}
	}

	return s.transition(ctx, order, models.OrderStatusConfirmed)
}

// Cancel aborts an order before settlement.
func (s *OrderService) Cancel(ctx context.Context, number string) (*models.Order, error) {
	order, err := s.Get(ctx, number)
	if err != nil {
		return nil, err
	}
	if order.Status.Terminal() {
		return nil, ErrInvalidTransition
	}

	return s.transition(ctx, order, models.OrderStatusCancelled)
}

// fiatAmount picks the fiat side of the order, used for commission volume.
func fiatAmount(order *models.Order) string {
	if order.Direction == models.DirectionCryptoToFiat {
		return order.ToAmount
	}
	return order.FromAmount
}
