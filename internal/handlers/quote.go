package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mkurbatov/gw-exchange-front/internal/logger"
	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

// QuoteCalculator defines the interface that the service must implement.
type QuoteCalculator interface {
	Convert(ctx context.Context, direction models.Direction, amount, fromCurrency, toCurrency string) (string, float64, error)
}

// QuoteRequest represents the JSON body for a quote recalculation
// swagger:model QuoteRequest
type QuoteRequest struct {
	// Exchange direction
	// required: true
	// default: crypto-to-fiat
	Direction models.Direction `json:"direction"`

	// Amount entered in the source field
	// default: 0.5
	Amount string `json:"amount"`

	// Source currency
	// required: true
	// default: BTC
	FromCurrency string `json:"from_currency"`

	// Destination currency or rail
	// required: true
	// default: RUB
	ToCurrency string `json:"to_currency"`
}

// QuoteResponse represents the recalculated quote
// swagger:model QuoteResponse
type QuoteResponse struct {
	// Destination amount, empty while the source amount is not a number
	ToAmount string `json:"to_amount"`

	// Crypto price in fiat units used for the calculation
	Rate float64 `json:"exchange_rate"`
}

// NewQuoteHandler returns an HTTP handler recalculating the destination amount.
// @Summary Recalculate quote
// @Description Converts the entered amount using the current rate. An empty or malformed amount yields an empty destination.
// @Tags quote
// @Accept json
// @Produce json
// @Param request body handlers.QuoteRequest true "Quote Request"
// @Success 200 {object} handlers.QuoteResponse "Recalculated quote"
// @Failure 400 {object} handlers.ErrorResponse "Unknown direction"
// @Router /quote [post]
func NewQuoteHandler(svc QuoteCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req QuoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode quote request", "error", err)
			writeError(w, http.StatusBadRequest, "Некорректный запрос")
			return
		}

		toAmount, rate, err := svc.Convert(ctx, req.Direction, req.Amount, req.FromCurrency, req.ToCurrency)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(QuoteResponse{ToAmount: toAmount, Rate: rate})
	}
}
