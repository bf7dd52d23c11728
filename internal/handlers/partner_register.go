package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mkurbatov/gw-exchange-front/internal/logger"
	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

// PartnerRegistrar creates partner accounts and opens sessions.
type PartnerRegistrar interface {
	Register(ctx context.Context, email, password, passwordConfirm string) (*models.PartnerIdentity, string, error)
}

// RegisterPartnerRequest represents the JSON body for partner registration
// swagger:model RegisterPartnerRequest
type RegisterPartnerRequest struct {
	// Partner email
	// required: true
	// default: partner@example.com
	Email string `json:"email"`

	// Password
	// required: true
	Password string `json:"password"`

	// Password confirmation, must match
	// required: true
	PasswordConfirm string `json:"password_confirm"`
}

// PartnerAuthResponse represents a successful registration or login
// swagger:model PartnerAuthResponse
type PartnerAuthResponse struct {
	// Gateway session token
	Token string `json:"token"`

	// Partner profile
	Partner *models.PartnerIdentity `json:"partner"`
}

// NewRegisterPartnerHandler returns an HTTP handler registering a partner.
// @Summary Register partner
// @Description Creates a partner account. The password confirmation is checked before the backend is called.
// @Tags partner
// @Accept json
// @Produce json
// @Param request body handlers.RegisterPartnerRequest true "Registration form"
// @Success 201 {object} handlers.PartnerAuthResponse "Registered partner with a session token"
// @Failure 400 {object} handlers.ErrorResponse "Password mismatch or backend refusal"
// @Failure 502 {object} handlers.ErrorResponse "Backend unreachable"
// @Router /partner/register [post]
func NewRegisterPartnerHandler(svc PartnerRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req RegisterPartnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode register request", "error", err)
			writeError(w, http.StatusBadRequest, "Некорректный запрос")
			return
		}

		identity, token, err := svc.Register(ctx, req.Email, req.Password, req.PasswordConfirm)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(PartnerAuthResponse{Token: token, Partner: identity})
	}
}
