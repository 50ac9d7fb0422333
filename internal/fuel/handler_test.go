package fuel

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestListSalesRejectsMalformedDateFilter(t *testing.T) {
	// The date filter must carry a DD/MM/YYYY day string; anything else
	// is rejected before the store is queried.
	h := NewHandler(slog.Default(), nil)
	r := chi.NewRouter()
	r.Route("/api/fuel", h.MountRoutes)

	req := httptest.NewRequest(http.MethodGet, "/api/fuel/sales?date=2025-03-10", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
