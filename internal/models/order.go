package models

import "time"

// ExchangeRequest is the payload produced by the quote calculator and handed
// to the order workflow. It is immutable once submitted; the quote it carries
// is valid until ExpiresAt.
// swagger:model ExchangeRequest
type ExchangeRequest struct {
	Direction    Direction         `json:"direction"`
	FromCurrency string            `json:"from_currency"`
	FromAmount   string            `json:"from_amount"`
	ToCurrency   string            `json:"to_currency"`
	ToAmount     string            `json:"to_amount"`
	Rate         float64           `json:"exchange_rate"`
	Recipient    map[string]string `json:"recipient"`
	PartnerID    int64             `json:"partner_id,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	ExpiresAt    time.Time         `json:"expires_at"`
}

// OrderStatus is a workflow state. Status only moves forward.
type OrderStatus string

const (
	OrderStatusCreated         OrderStatus = "created"
	OrderStatusAwaitingPayment OrderStatus = "awaiting_payment" // fiat rails, operator provides payment details
	OrderStatusPaymentPending  OrderStatus = "payment_pending"  // crypto deposit instructions shown
	OrderStatusPaymentClaimed  OrderStatus = "payment_claimed"
	OrderStatusConfirmed       OrderStatus = "confirmed"
	OrderStatusCancelled       OrderStatus = "cancelled"
	OrderStatusExpired         OrderStatus = "expired"
)

// Terminal reports whether no further transition is possible from s.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusConfirmed, OrderStatusCancelled, OrderStatusExpired:
		return true
	}
	return false
}

// Order is an exchange request registered with the order backend. The
// identifier pair is backend-issued; the workflow never synthesizes ids.
// swagger:model Order
type Order struct {
	ID     int64  `json:"order_id"`
	Number string `json:"order_number"`
	ExchangeRequest
	Status OrderStatus `json:"status"`
}

// OrderEvent is published on every workflow transition.
type OrderEvent struct {
	EventID      string      `json:"event_id"`
	OrderNumber  string      `json:"order_number"`
	Status       OrderStatus `json:"status"`
	Direction    Direction   `json:"direction"`
	FromAmount   string      `json:"from_amount"`
	FromCurrency string      `json:"from_currency"`
	ToAmount     string      `json:"to_amount"`
	ToCurrency   string      `json:"to_currency"`
	Timestamp    int64       `json:"timestamp"`
}
