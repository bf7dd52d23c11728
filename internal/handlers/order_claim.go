package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

// PaymentClaimer records that the customer reports the payment as sent.
type PaymentClaimer interface {
	ClaimPaid(ctx context.Context, number string) (*models.Order, error)
}

// NewClaimPaidHandler returns an HTTP handler recording a payment claim.
// @Summary Claim payment sent
// @Description Records that the customer pressed the "I paid" button.
// @Tags orders
// @Produce json
// @Param number path string true "Order number"
// @Success 200 {object} models.Order "Order with the claim recorded"
// @Failure 404 {object} handlers.ErrorResponse "Order not found"
// @Failure 409 {object} handlers.ErrorResponse "Order is not at the payment step"
// @Failure 410 {object} handlers.ErrorResponse "Quote expired"
// @Router /orders/{number}/claim-paid [post]
func NewClaimPaidHandler(svc PaymentClaimer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := svc.ClaimPaid(r.Context(), chi.URLParam(r, "number"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(order)
	}
}
