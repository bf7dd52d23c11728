package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

// RailFieldsResponse lists the recipient fields a destination rail requires
// swagger:model RailFieldsResponse
type RailFieldsResponse struct {
	// Destination rail
	// default: RUB-CARD
	Rail string `json:"rail"`

	// Recipient fields that must be filled
	Fields []string `json:"fields"`
}

// NewRailFieldsHandler returns an HTTP handler listing recipient fields for a rail.
// @Summary Recipient fields for a rail
// @Description Returns the recipient detail fields required by the destination rail. Unknown rails get a wallet address field.
// @Tags quote
// @Produce json
// @Param rail path string true "Destination rail"
// @Success 200 {object} handlers.RailFieldsResponse "Required fields"
// @Router /rails/{rail} [get]
func NewRailFieldsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rail := chi.URLParam(r, "rail")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(RailFieldsResponse{
			Rail:   rail,
			Fields: models.RequiredFieldsForRail(rail),
		})
	}
}
