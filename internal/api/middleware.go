// Package api implements the LoungeUp REST API using chi.
package api

import (
	"net/http"
	"strings"
)

// AuthMiddleware returns middleware enforcing Bearer token auth on the API
// surface. With enabled false every request passes through; with enabled
// true the "Authorization: Bearer <token>" header must match. This guards
// the API as a whole and is independent of the board's own user session.
func AuthMiddleware(enabled bool, token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled {
				next.ServeHTTP(w, r)
				return
			}
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") != token {
				writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
