package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

// OrderCanceller aborts an order before settlement.
type OrderCanceller interface {
	Cancel(ctx context.Context, number string) (*models.Order, error)
}

// NewCancelOrderHandler returns an HTTP handler cancelling an order.
// @Summary Cancel order
// @Description Aborts an order that has not settled yet.
// @Tags orders
// @Produce json
// @Param number path string true "Order number"
// @Success 200 {object} models.Order "Cancelled order"
// @Failure 404 {object} handlers.ErrorResponse "Order not found"
// @Failure 409 {object} handlers.ErrorResponse "Order already settled"
// @Router /orders/{number}/cancel [post]
func NewCancelOrderHandler(svc OrderCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := svc.Cancel(r.Context(), chi.URLParam(r, "number"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(order)
	}
}
