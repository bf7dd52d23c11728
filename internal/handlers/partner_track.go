package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mkurbatov/gw-exchange-front/internal/logger"
)

// ReferralTracker records referral visits.
type ReferralTracker interface {
	TrackClick(ctx context.Context, partnerCode, fromCurrency, toCurrency string) (int64, error)
}

// TrackClickRequest represents the JSON body for a referral visit
// swagger:model TrackClickRequest
type TrackClickRequest struct {
	// Referral code from the partner link
	// required: true
	// default: BC42
	PartnerCode string `json:"partner_code"`

	// Pre-selected source currency, optional
	FromCurrency string `json:"from_currency,omitempty"`

	// Pre-selected destination currency, optional
	ToCurrency string `json:"to_currency,omitempty"`
}

// TrackClickResponse carries the resolved partner id for later order creation
// swagger:model TrackClickResponse
type TrackClickResponse struct {
	// Resolved partner id
	PartnerID int64 `json:"partner_id"`
}

// NewTrackClickHandler returns an HTTP handler recording a referral visit.
// @Summary Track referral click
// @Description Records a visit through a partner link and resolves the partner id.
// @Tags partner
// @Accept json
// @Produce json
// @Param request body handlers.TrackClickRequest true "Referral visit"
// @Success 200 {object} handlers.TrackClickResponse "Resolved partner"
// @Failure 400 {object} handlers.ErrorResponse "Unknown partner code"
// @Router /partner/track [post]
func NewTrackClickHandler(svc ReferralTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req TrackClickRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode track click request", "error", err)
			writeError(w, http.StatusBadRequest, "Некорректный запрос")
			return
		}

		partnerID, err := svc.TrackClick(ctx, req.PartnerCode, req.FromCurrency, req.ToCurrency)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TrackClickResponse{PartnerID: partnerID})
	}
}
