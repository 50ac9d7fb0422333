package rbac

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/okeb-ng/backoffice/internal/platform/httpx"
	"github.com/okeb-ng/backoffice/internal/shared"
)

type roleContextKey struct{}

// ContextWithRole stores the resolved role in context.
func ContextWithRole(ctx context.Context, role Role) context.Context {
	return context.WithValue(ctx, roleContextKey{}, role)
}

// RoleFromContext extracts the resolved role; defaults to viewer.
func RoleFromContext(ctx context.Context) Role {
	if role, ok := ctx.Value(roleContextKey{}).(Role); ok {
		return role
	}
	return RoleViewer
}

// Resolver looks up the role for an authenticated email.
type Resolver interface {
	RoleForEmail(ctx context.Context, email string) (Role, error)
}

// Middleware gates routes on session identity and resolved role.
type Middleware struct {
	Resolver Resolver
	Logger   *slog.Logger
}

// RequireAuthenticated rejects requests without a logged-in session and
// resolves the caller's role into the request context.
func (m Middleware) RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := shared.SessionFromContext(r.Context())
		if sess == nil || sess.User() == "" {
			httpx.RespondError(w, httpx.ErrUnauthorized)
			return
		}
		role, err := m.Resolver.RoleForEmail(r.Context(), sess.Get("email"))
		if err != nil {
			if m.Logger != nil {
				m.Logger.Warn("resolve role", slog.Any("error", err))
			}
			role = RoleViewer
		}
		next.ServeHTTP(w, r.WithContext(ContextWithRole(r.Context(), role)))
	})
}

// RequireAdmin rejects callers whose role cannot write. Mount inside
// RequireAuthenticated.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !RoleFromContext(r.Context()).CanWrite() {
			httpx.RespondError(w, httpx.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
