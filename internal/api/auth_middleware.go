package api

import (
	"net/http"
	"strings"

	"github.com/Mukesh-219/indian-local-guide-api/internal/auth"
	"github.com/Mukesh-219/indian-local-guide-api/internal/middleware"
)

// RequireAuth wraps a handler with Bearer-token authentication. On success
// the authenticated user id is stored in the request context for handlers
// and the request logger; on failure the request is rejected with 401.
func RequireAuth(jwt *auth.JWTService, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := authenticate(jwt, r)
		if !ok {
			WriteError(w, r.Context(), http.StatusUnauthorized, ErrCodeAuthFailed, "missing or invalid bearer token")
			return
		}
		next(w, r.WithContext(middleware.SetUserID(r.Context(), claims.Subject)))
	}
}

// OptionalAuth attaches the user id when a valid token is present but lets
// anonymous requests through. Used on read paths that only record history
// for signed-in users.
func OptionalAuth(jwt *auth.JWTService, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := authenticate(jwt, r); ok {
			r = r.WithContext(middleware.SetUserID(r.Context(), claims.Subject))
		}
		next(w, r)
	}
}

func authenticate(jwt *auth.JWTService, r *http.Request) (*auth.Claims, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return nil, false
	}
	claims, err := jwt.ValidateToken(token)
	if err != nil || claims.Type != auth.TokenTypeAccess {
		return nil, false
	}
	return claims, true
}
