package middleware

import (
	"context"
	"net/http"

	"xcelliti-backend/internal/auth"
	"xcelliti-backend/internal/transport"
)

const AccessCookieName = "xcelliti_access"

type sessionKey struct{}

// AdminAuth rejects the request with 401 before any handler logic runs unless a
// valid admin access token is present.
func AdminAuth(manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if manager == nil {
				transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
				return
			}

			cookie, err := r.Cookie(AccessCookieName)
			if err != nil || cookie.Value == "" {
				transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}

			claims, err := manager.Parse(cookie.Value)
			if err != nil || claims.Role != auth.RoleAdmin {
				transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionFromContext(ctx context.Context) *auth.Claims {
	if v := ctx.Value(sessionKey{}); v != nil {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}
