package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/lmedina-dev/tastebite-backend/api/validators"
	"github.com/lmedina-dev/tastebite-backend/pkg/logger"
)

const (
	sessionIDHeader = "X-Session-Id"
	sessionIDMaxLen = 128
)

type sessionIDKey struct{}

// Session resolves the cart session id for the request. A missing header gets
// a fresh id, echoed back so the storefront can persist it.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := validators.SanitizeString(r.Header.Get(sessionIDHeader), sessionIDMaxLen)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			w.Header().Set(sessionIDHeader, sessionID)

			ctx := context.WithValue(r.Context(), sessionIDKey{}, sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionIDFromContext returns the session id resolved by Session, or "".
func SessionIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return v
	}
	return ""
}
