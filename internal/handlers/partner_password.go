package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mkurbatov/gw-exchange-front/internal/logger"
	"github.com/mkurbatov/gw-exchange-front/internal/middlewares"
)

// PasswordChanger forwards password changes to the auth backend.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, partnerID int64, oldPassword, newPassword, newPasswordConfirm string) error
}

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current password
	// required: true
	OldPassword string `json:"old_password"`

	// New password
	// required: true
	NewPassword string `json:"new_password"`

	// New password confirmation, must match
	// required: true
	NewPasswordConfirm string `json:"new_password_confirm"`
}

// ChangePasswordResponse represents a successful password change
// swagger:model ChangePasswordResponse
type ChangePasswordResponse struct {
	// Success message
	// default: Пароль изменён
	Message string `json:"message"`
}

// NewChangePasswordHandler returns an HTTP handler changing the partner password.
// @Summary Change password
// @Description Checks the confirmation locally and forwards the change to the auth backend.
// @Tags partner
// @Accept json
// @Produce json
// @Param request body handlers.ChangePasswordRequest true "Password change form"
// @Success 200 {object} handlers.ChangePasswordResponse "Password changed"
// @Failure 400 {object} handlers.ErrorResponse "Password mismatch or wrong current password"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /partner/password [post]
// @Security BearerAuth
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		partnerID, ok := middlewares.PartnerIDFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode change password request", "error", err)
			writeError(w, http.StatusBadRequest, "Некорректный запрос")
			return
		}

		if err := svc.ChangePassword(ctx, partnerID, req.OldPassword, req.NewPassword, req.NewPasswordConfirm); err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ChangePasswordResponse{Message: "Пароль изменён"})
	}
}
