package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mkurbatov/gw-exchange-front/internal/logger"
	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

// PartnerLoginer authenticates partners and opens sessions.
type PartnerLoginer interface {
	Login(ctx context.Context, email, password string) (*models.PartnerIdentity, string, error)
}

// LoginPartnerRequest represents the JSON body for partner login
// swagger:model LoginPartnerRequest
type LoginPartnerRequest struct {
	// Partner email
	// required: true
	// default: partner@example.com
	Email string `json:"email"`

	// Password
	// required: true
	Password string `json:"password"`
}

// NewLoginPartnerHandler returns an HTTP handler authenticating a partner.
// @Summary Login partner
// @Description Authenticates a partner against the backend and opens a gateway session.
// @Tags partner
// @Accept json
// @Produce json
// @Param request body handlers.LoginPartnerRequest true "Login form"
// @Success 200 {object} handlers.PartnerAuthResponse "Authenticated partner with a session token"
// @Failure 400 {object} handlers.ErrorResponse "Wrong credentials"
// @Failure 502 {object} handlers.ErrorResponse "Backend unreachable"
// @Router /partner/login [post]
func NewLoginPartnerHandler(svc PartnerLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req LoginPartnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode login request", "error", err)
			writeError(w, http.StatusBadRequest, "Некорректный запрос")
			return
		}

		identity, token, err := svc.Login(ctx, req.Email, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PartnerAuthResponse{Token: token, Partner: identity})
	}
}
