package debts

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/okeb-ng/backoffice/internal/platform/httpx"
	"github.com/okeb-ng/backoffice/internal/rbac"
	"github.com/okeb-ng/backoffice/internal/shared"
)

// Handler exposes the debt ledger over HTTP.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers debt routes. Writes require the admin role.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleList)
	r.Group(func(r chi.Router) {
		r.Use(rbac.RequireAdmin)
		r.Post("/", h.handleCreate)
		r.Post("/{id}/pay", h.handleMarkPaid)
		r.Post("/repay", h.handleRepay)
	})
}

type createRequest struct {
	CustomerName string  `json:"customer_name" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	StaffName    string  `json:"staff_name"`
	Notes        string  `json:"notes"`
	Date         string  `json:"date"`
}

type repayRequest struct {
	CustomerName string  `json:"customer_name" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	Category     string  `json:"category"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	debts, err := h.service.ListUnpaid(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.logger.Error("list debts", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if debts == nil {
		debts = []Debt{}
	}
	if r.URL.Query().Get("page") == "" {
		httpx.JSON(w, http.StatusOK, debts)
		return
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	meta := shared.NewPagination(page, perPage, len(debts))
	start := (meta.Page - 1) * meta.PerPage
	if start > len(debts) {
		start = len(debts)
	}
	end := start + meta.PerPage
	if end > len(debts) {
		end = len(debts)
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"debts":      debts[start:end],
		"pagination": meta,
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
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
	d, err := h.service.Create(r.Context(), CreateInput{
		CustomerName: req.CustomerName,
		Amount:       req.Amount,
		StaffName:    req.StaffName,
		Notes:        req.Notes,
		Date:         req.Date,
	})
	if err != nil {
		h.logger.Error("create debt", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, d)
}

func (h *Handler) handleMarkPaid(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid debt id")
		return
	}
	d, err := h.service.MarkPaid(r.Context(), id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			httpx.RespondError(w, httpx.ErrNotFound)
			return
		}
		h.logger.Error("mark debt paid", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, d)
}

func (h *Handler) handleRepay(w http.ResponseWriter, r *http.Request) {
	var req repayRequest
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
	out, err := h.service.Repay(r.Context(), req.CustomerName, req.Amount, req.Category)
	if err != nil {
		if errors.Is(err, ErrNoOpenDebt) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "no open debt for that customer")
			return
		}
		h.logger.Error("repay debt", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}
