package middleware

import (
	"net/http"
	"strings"

	pkgAuth "github.com/amirulhakim/spicebite-backend/pkg/auth"
	"github.com/amirulhakim/spicebite-backend/pkg/config"
	"github.com/amirulhakim/spicebite-backend/pkg/logger"
)

// Auth seeds the request context with the user id from a bearer token.
// Authentication is optional storewide: a missing, malformed or expired
// token leaves the request anonymous instead of rejecting it. Handlers that
// need an identity enforce it themselves.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				if logg != nil {
					ctx := logg.WithField(r.Context(), "auth_error", err.Error())
					logg.Warn(ctx, "ignoring invalid access token")
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithUserID(r.Context(), claims.UserID.String())
			if logg != nil {
				ctx = logg.WithUserID(ctx, claims.UserID.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return raw
}
