package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

// OrderReader returns an order by its public number.
type OrderReader interface {
	Get(ctx context.Context, number string) (*models.Order, error)
}

// NewGetOrderHandler returns an HTTP handler reading an order.
// @Summary Get order
// @Description Returns the current state of an order by its public number.
// @Tags orders
// @Produce json
// @Param number path string true "Order number"
// @Success 200 {object} models.Order "Order"
// @Failure 404 {object} handlers.ErrorResponse "Order not found"
// @Router /orders/{number} [get]
func NewGetOrderHandler(svc OrderReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := svc.Get(r.Context(), chi.URLParam(r, "number"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(order)
	}
}
