// internal/auth/admin.go
package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/alertemeds/alertemeds-backend/internal/api"
	"github.com/alertemeds/alertemeds-backend/internal/repository"
)

// AdminGate checks whether a session may reach privileged routes. The
// allow-list is injected once at startup; when it is empty the
// earliest-registered user's email counts as admin (bootstrap fallback).
type AdminGate struct {
	allowList map[string]bool
	Users     repository.UserRepositoryInterface
	Logger    *zap.Logger
}

func NewAdminGate(adminEmails []string, users repository.UserRepositoryInterface, log *zap.Logger) *AdminGate {
	allow := make(map[string]bool, len(adminEmails))
	for _, e := range adminEmails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			allow[e] = true
		}
	}
	return &AdminGate{allowList: allow, Users: users, Logger: log}
}

// IsAdmin is the capability check itself, read-only.
func (g *AdminGate) IsAdmin(email string) (bool, error) {
	email = strings.ToLower(email)
	if len(g.allowList) > 0 {
		return g.allowList[email], nil
	}
	first, err := g.Users.EarliestUserEmail()
	if err != nil {
		return false, err
	}
	return first != "" && strings.ToLower(first) == email, nil
}

// RequireAdmin guards a route group: 401 without a session, 403 with a
// session that is not allow-listed.
func (g *AdminGate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFrom(r.Context())
		if !ok {
			api.Error(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		admin, err := g.IsAdmin(session.Email)
		if err != nil {
			g.Logger.Error("admin check failed", zap.Error(err))
			api.Error(w, http.StatusInternalServerError, "Internal error")
			return
		}
		if !admin {
			api.Error(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
