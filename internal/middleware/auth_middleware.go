package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Foysalhossain/musicy-server/internal/auth"
)

type contextKey string

// ClaimsKey is the request-context key under which verified token claims are
// stored for downstream handlers.
const ClaimsKey contextKey = "claims"

// RequireToken gates a route on a valid bearer token in the Authorization
// header. Possessing any valid token is sufficient; no role is checked.
func RequireToken(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorization := r.Header.Get("Authorization")
			if authorization == "" {
				unauthorized(w)
				return
			}

			// bearer token
			parts := strings.SplitN(authorization, " ", 2)
			if len(parts) != 2 {
				unauthorized(w)
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"message": "unauthorized access",
	})
}
