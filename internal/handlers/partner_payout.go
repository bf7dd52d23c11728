package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mkurbatov/gw-exchange-front/internal/logger"
	"github.com/mkurbatov/gw-exchange-front/internal/middlewares"
)

// PayoutSubmitter validates and forwards payout requests.
type PayoutSubmitter interface {
	RequestPayout(ctx context.Context, partnerID int64, amount float64, method, details string) error
}

// PayoutRequest represents the JSON body for a payout request
// swagger:model PayoutRequest
type PayoutRequest struct {
	// Amount in rubles, at least 1000
	// required: true
	// default: 1500
	Amount float64 `json:"amount"`

	// Payout rail, e.g. RUB-SBP or RUB-CARD
	// required: true
	// default: RUB-SBP
	PaymentMethod string `json:"payment_method"`

	// Payout destination details
	// required: true
	PaymentDetails string `json:"payment_details"`
}

// PayoutResponse represents an accepted payout request
// swagger:model PayoutResponse
type PayoutResponse struct {
	// Success message
	// default: Заявка на выплату принята
	Message string `json:"message"`
}

// NewPayoutHandler returns an HTTP handler submitting a payout request.
// @Summary Request payout
// @Description Validates the minimum amount locally and forwards the request to the dashboard backend.
// @Tags partner
// @Accept json
// @Produce json
// @Param request body handlers.PayoutRequest true "Payout form"
// @Success 200 {object} handlers.PayoutResponse "Payout request accepted"
// @Failure 400 {object} handlers.ErrorResponse "Below the minimum or insufficient balance"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /partner/payouts [post]
// @Security BearerAuth
func NewPayoutHandler(svc PayoutSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		partnerID, ok := middlewares.PartnerIDFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req PayoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode payout request", "error", err)
			writeError(w, http.StatusBadRequest, "Некорректный запрос")
			return
		}

		if err := svc.RequestPayout(ctx, partnerID, req.Amount, req.PaymentMethod, req.PaymentDetails); err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PayoutResponse{Message: "Заявка на выплату принята"})
	}
}
