package fuel

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/okeb-ng/backoffice/internal/ledger"
	"github.com/okeb-ng/backoffice/internal/platform/httpx"
	"github.com/okeb-ng/backoffice/internal/rbac"
)

// Handler exposes fuel station endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/sales", h.handleList)
	r.Get("/debts-summary", h.handleDebtBanner)
	r.With(rbac.RequireAdmin).Post("/sales", h.handleSubmit)
}

func (h *Handler) handleDebtBanner(w http.ResponseWriter, r *http.Request) {
	banner, err := h.service.DebtBanner(r.Context())
	if err != nil {
		h.logger.Error("fuel debt banner", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, banner)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	var (
		sales []Sale
		err   error
	)
	if date := r.URL.Query().Get("date"); date != "" {
		if _, perr := ledger.ParseDay(date); perr != nil {
			httpx.Problem(w, http.StatusBadRequest, "Bad Request", "date must be formatted DD/MM/YYYY")
			return
		}
		sales, err = h.service.ListForDay(r.Context(), date)
	} else {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		sales, err = h.service.List(r.Context(), limit)
	}
	if err != nil {
		h.logger.Error("list fuel sales", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if sales == nil {
		sales = []Sale{}
	}
	httpx.JSON(w, http.StatusOK, sales)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req SubmitInput
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fieldErr := range err.(validator.ValidationErrors) {
			fields[fieldErr.Field()] = fieldErr.Tag()
		}
		httpx.ValidationProblem(w, fields)
		return
	}
	res, err := h.service.Submit(r.Context(), req)
	if err != nil {
		h.logger.Error("submit fuel sale", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, res)
}
