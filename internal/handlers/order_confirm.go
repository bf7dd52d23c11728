package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

// OrderConfirmer settles a claimed order.
type OrderConfirmer interface {
	Confirm(ctx context.Context, number string) (*models.Order, error)
}

// NewConfirmOrderHandler returns an HTTP handler settling an order.
// @Summary Confirm order
// @Description Settles a claimed order. Partner commission is credited by the backend when the order carries a referral.
// @Tags orders
// @Produce json
// @Param number path string true "Order number"
// @Success 200 {object} models.Order "Confirmed order"
// @Failure 404 {object} handlers.ErrorResponse "Order not found"
// @Failure 409 {object} handlers.ErrorResponse "Order payment was not claimed"
// @Router /orders/{number}/confirm [post]
func NewConfirmOrderHandler(svc OrderConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := svc.Confirm(r.Context(), chi.URLParam(r, "number"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(order)
	}
}
