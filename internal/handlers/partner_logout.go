package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mkurbatov/gw-exchange-front/internal/middlewares"
)

// SessionCloser drops partner sessions.
type SessionCloser interface {
	Logout(ctx context.Context, partnerID int64) error
}

// LogoutResponse represents a closed session
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// default: Сессия завершена
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler closing the partner session.
// @Summary Logout partner
// @Description Drops the session record, invalidating outstanding tokens.
// @Tags partner
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Session closed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /partner/logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc SessionCloser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		partnerID, ok := middlewares.PartnerIDFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if err := svc.Logout(ctx, partnerID); err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(LogoutResponse{Message: "Сессия завершена"})
	}
}
