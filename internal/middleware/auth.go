package middleware

import (
	"context"
	"net/http"
	"strings"

	"minisignal/internal/auth"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// RequireAuth extracts the bearer token from the Authorization header,
// validates it, and stores the authenticated user id in the request context.
// The identity always comes from the token, never from client parameters.
func RequireAuth(authn *auth.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			userID, err := authn.ValidateToken(token)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken also accepts a ?token= query parameter for websocket clients,
// which cannot set the Authorization header from a browser.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return r.URL.Query().Get("token")
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(r *http.Request) int {
	id, _ := r.Context().Value(UserIDKey).(int)
	return id
}
