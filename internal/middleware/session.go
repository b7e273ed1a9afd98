package middleware

import (
	"context"
	"net/http"
	"strings"
)

// context key
type contextKey string

const TokenKey contextKey = "session_token"

// Session gates the API behind a bearer credential and stores the raw
// token for the gateway adapter. The upstream gateway owns verification;
// the console only forwards the credential.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			http.Error(w, "missing Authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			http.Error(w, "invalid Authorization header", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), TokenKey, parts[1])
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Token extracts the session bearer token.
func Token(ctx context.Context) string {
	token, _ := ctx.Value(TokenKey).(string)
	return token
}
