package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mkurbatov/gw-exchange-front/internal/middlewares"
	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

// DashboardReader loads the partner dashboard sections.
type DashboardReader interface {
	Dashboard(ctx context.Context, partnerID int64) (*models.PartnerDashboard, error)
}

// NewDashboardHandler returns an HTTP handler loading the partner dashboard.
// @Summary Partner dashboard
// @Description Returns stats, earnings and payout history. Sections that fail to load come back empty.
// @Tags partner
// @Produce json
// @Success 200 {object} models.PartnerDashboard "Dashboard sections"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.ErrorResponse "No section could be loaded"
// @Router /partner/dashboard [get]
// @Security BearerAuth
func NewDashboardHandler(svc DashboardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		partnerID, ok := middlewares.PartnerIDFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		dashboard, err := svc.Dashboard(ctx, partnerID)
		if err != nil && dashboard.Stats == nil && dashboard.Earnings == nil && dashboard.Payouts == nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dashboard)
	}
}
