package rbac

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okeb-ng/backoffice/internal/shared"
)

type stubResolver struct {
	role Role
	err  error
}

func (s stubResolver) RoleForEmail(context.Context, string) (Role, error) {
	return s.role, s.err
}

func authedRequest(email string) *http.Request {
	sess := &shared.Session{}
	sess.SetUser("user-1")
	sess.Set("email", email)
	req := httptest.NewRequest(http.MethodGet, "/api/fuel/sales", nil)
	return req.WithContext(shared.ContextWithSession(req.Context(), sess))
}

func TestRequireAuthenticatedRejectsAnonymous(t *testing.T) {
	mw := Middleware{Resolver: stubResolver{role: RoleAdmin}}
	handler := mw.RequireAuthenticated(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/fuel/sales", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthenticatedResolvesRole(t *testing.T) {
	mw := Middleware{Resolver: stubResolver{role: RoleAdmin}}
	var seen Role
	handler := mw.RequireAuthenticated(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RoleFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest("boss@okeb.ng"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, RoleAdmin, seen)
}

func TestRequireAuthenticatedDefaultsToViewerOnResolverError(t *testing.T) {
	mw := Middleware{Resolver: stubResolver{err: errors.New("db down")}}
	var seen Role
	handler := mw.RequireAuthenticated(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RoleFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest("boss@okeb.ng"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, RoleViewer, seen)
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	tests := []struct {
		name string
		role Role
		want int
	}{
		{"admin may write", RoleAdmin, http.StatusCreated},
		{"viewer is rejected", RoleViewer, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/debts", nil)
			req = req.WithContext(ContextWithRole(req.Context(), tt.role))
			rec := httptest.NewRecorder()

			RequireAdmin(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequireAdminDefaultsToViewerWithoutRole(t *testing.T) {
	rec := httptest.NewRecorder()
	RequireAdmin(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/debts", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
