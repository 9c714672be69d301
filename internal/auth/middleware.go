// internal/auth/middleware.go
package auth

import (
	"context"
	"net/http"

	"github.com/alertemeds/alertemeds-backend/internal/api"
)

type contextKey string

const (
	userIDKey    contextKey = "user_id"
	userEmailKey contextKey = "user_email"
)

// Session carries the authenticated identity through the request context.
type Session struct {
	UserID int
	Email  string
}

// RequireSession rejects requests without a valid bearer token.
func RequireSession(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractToken(r)
			if tokenStr == "" {
				api.Error(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			userID, email, err := ParseToken(tokenStr, secret)
			if err != nil {
				api.Error(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, userEmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFrom returns the session stored by RequireSession, if any.
func SessionFrom(ctx context.Context) (Session, bool) {
	userID, ok := ctx.Value(userIDKey).(int)
	if !ok {
		return Session{}, false
	}
	email, _ := ctx.Value(userEmailKey).(string)
	return Session{UserID: userID, Email: email}, true
}
