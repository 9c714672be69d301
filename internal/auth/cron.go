// internal/auth/cron.go
package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/alertemeds/alertemeds-backend/internal/api"
)

// RequireCronToken authorizes scheduler-triggered endpoints with a shared
// bearer secret.
func RequireCronToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := ExtractToken(r)
			if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				api.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
