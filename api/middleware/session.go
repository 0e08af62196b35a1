package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/amirulhakim/spicebite-backend/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

// Session binds every request to a cart session. Clients echo the header
// back on subsequent requests; a missing or malformed id gets a fresh one,
// which is always returned in the response header.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := strings.TrimSpace(r.Header.Get(sessionIDHeader))
			if _, err := uuid.Parse(sessionID); err != nil {
				sessionID = uuid.NewString()
			}

			w.Header().Set(sessionIDHeader, sessionID)

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
