package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mkurbatov/gw-exchange-front/internal/logger"
	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

// ExchangeRequestBuilder validates the filled form and quotes it.
type ExchangeRequestBuilder interface {
	BuildRequest(ctx context.Context, direction models.Direction, amount, fromCurrency, toCurrency string, recipient map[string]string, partnerID int64) (*models.ExchangeRequest, error)
}

// OrderCreator registers the quoted request as an order.
type OrderCreator interface {
	Create(ctx context.Context, req *models.ExchangeRequest) (*models.Order, error)
}

// CreateOrderRequest represents the JSON body for submitting an exchange form
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	// Exchange direction
	// required: true
	// default: crypto-to-fiat
	Direction models.Direction `json:"direction"`

	// Amount entered in the source field
	// required: true
	// default: 0.5
	Amount string `json:"amount"`

	// Source currency
	// required: true
	// default: BTC
	FromCurrency string `json:"from_currency"`

	// Destination currency or rail
	// required: true
	// default: RUB-CARD
	ToCurrency string `json:"to_currency"`

	// Recipient details keyed by field name
	Recipient map[string]string `json:"recipient"`

	// Referring partner id, zero when the visit is organic
	PartnerID int64 `json:"partner_id,omitempty"`
}

// NewCreateOrderHandler returns an HTTP handler submitting an exchange form.
// @Summary Create order
// @Description Validates the form, quotes it and registers the order with the exchange backend.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body handlers.CreateOrderRequest true "Exchange form"
// @Success 201 {object} models.Order "Created order"
// @Failure 400 {object} handlers.ErrorResponse "Incomplete form or backend refusal"
// @Failure 502 {object} handlers.ErrorResponse "Backend unreachable"
// @Router /orders [post]
func NewCreateOrderHandler(
	builder ExchangeRequestBuilder,
	svc OrderCreator,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req CreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create order request", "error", err)
			writeError(w, http.StatusBadRequest, "Некорректный запрос")
			return
		}

		exchangeReq, err := builder.BuildRequest(ctx, req.Direction, req.Amount, req.FromCurrency, req.ToCurrency, req.Recipient, req.PartnerID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		order, err := svc.Create(ctx, exchangeReq)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(order)
	}
}
