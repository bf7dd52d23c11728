package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

// OrderProceeder moves a created order to its payment step.
type OrderProceeder interface {
	Proceed(ctx context.Context, number string) (*models.Order, *models.PaymentInstructions, error)
}

// ProceedResponse carries the order together with crypto deposit instructions
// when the customer pays in crypto
// swagger:model ProceedResponse
type ProceedResponse struct {
	Order *models.Order `json:"order"`

	// Present only for crypto payers
	Payment *models.PaymentInstructions `json:"payment,omitempty"`
}

// NewProceedOrderHandler returns an HTTP handler advancing an order to payment.
// @Summary Proceed to payment
// @Description Moves a created order to awaiting_payment (fiat payers) or payment_pending with deposit instructions (crypto payers).
// @Tags orders
// @Produce json
// @Param number path string true "Order number"
// @Success 200 {object} handlers.ProceedResponse "Order at the payment step"
// @Failure 404 {object} handlers.ErrorResponse "Order not found"
// @Failure 409 {object} handlers.ErrorResponse "Order is not in the created state"
// @Failure 410 {object} handlers.ErrorResponse "Quote expired"
// @Router /orders/{number}/proceed [post]
func NewProceedOrderHandler(svc OrderProceeder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, payment, err := svc.Proceed(r.Context(), chi.URLParam(r, "number"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ProceedResponse{Order: order, Payment: payment})
	}
}
