package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/okeb-ng/backoffice/internal/auth"
	"github.com/okeb-ng/backoffice/internal/bakery"
	"github.com/okeb-ng/backoffice/internal/dashboard"
	"github.com/okeb-ng/backoffice/internal/debts"
	"github.com/okeb-ng/backoffice/internal/farm"
	"github.com/okeb-ng/backoffice/internal/fuel"
	"github.com/okeb-ng/backoffice/internal/pos"
	"github.com/okeb-ng/backoffice/internal/rbac"
	"github.com/okeb-ng/backoffice/internal/shared"
	"github.com/okeb-ng/backoffice/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager
	CSRFManager    *shared.CSRFManager
	RBACMiddleware rbac.Middleware

	AuthHandler      *auth.Handler
	DashboardHandler *dashboard.Handler
	FuelHandler      *fuel.Handler
	BakeryHandler    *bakery.Handler
	POSHandler       *pos.Handler
	FarmHandler      *farm.Handler
	DebtsHandler     *debts.Handler
	JobHandler       *jobs.Handler
}

// NewRouter constructs the chi.Router with backoffice defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		CSRFManager:    params.CSRFManager,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", params.AuthHandler.MountRoutes)

		api.Group(func(protected chi.Router) {
			protected.Use(params.RBACMiddleware.RequireAuthenticated)

			protected.Route("/dashboard", params.DashboardHandler.MountRoutes)
			protected.Route("/fuel", params.FuelHandler.MountRoutes)
			protected.Route("/bakery", params.BakeryHandler.MountRoutes)
			protected.Route("/pos", params.POSHandler.MountRoutes)
			protected.Route("/farm", params.FarmHandler.MountRoutes)
			protected.Route("/debts", params.DebtsHandler.MountRoutes)

			if params.JobHandler != nil {
				protected.Route("/jobs", params.JobHandler.MountRoutes)
			}
		})
	})

	return r
}
