package middlewares

import (
	"context"
	"net/http"

	"github.com/mkurbatov/gw-exchange-front/internal/jwt"
	"github.com/mkurbatov/gw-exchange-front/internal/logger"
	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

// Tokener validates partner session tokens.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionReader checks that a persisted session still exists for a partner.
type SessionReader interface {
	Load(ctx context.Context, partnerID int64) (*models.PartnerSession, error)
}

type contextKey string

const partnerIDKey contextKey = "partnerID"

// WithPartnerID stores the authenticated partner id in the context.
func WithPartnerID(ctx context.Context, partnerID int64) context.Context {
	return context.WithValue(ctx, partnerIDKey, partnerID)
}

// PartnerIDFromContext returns the partner id stored by AuthMiddleware.
func PartnerIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(partnerIDKey).(int64)
	return id, ok
}

// AuthMiddleware guards the partner dashboard routes. Requests without a
// valid session token, or whose session was cleared by logout, get 401.
// This is the auth-screen redirect guard of the portal, not a security
// boundary: the external backends stay authoritative.
func AuthMiddleware(tokener Tokener, sessions SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			session, err := sessions.Load(ctx, claims.PartnerID)
			if err != nil || session == nil {
				logger.Log.Errorw("no active session", "partner_id", claims.PartnerID, "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPartnerID(ctx, claims.PartnerID)))
		})
	}
}
