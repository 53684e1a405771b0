package envelope

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nlithgow/vatu/internal/category"
	"github.com/nlithgow/vatu/internal/envelope"
	"github.com/nlithgow/vatu/internal/http/userctx"
)

type Handler struct {
	svc *envelope.Service
}

func NewHandler(svc *envelope.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/summary", h.summary)
	r.Post("/rollover", h.rollover)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.updateBudget)
	r.Delete("/{id}", h.delete)
}

type createEnvelopeRequest struct {
	CategoryID     uuid.UUID       `json:"category_id"`
	BudgetedAmount decimal.Decimal `json:"budgeted_amount"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createEnvelopeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	v, err := h.svc.Create(r.Context(), userctx.FromContext(r.Context()), envelope.CreateParams{
		CategoryID: req.CategoryID,
		Budgeted:   req.BudgetedAmount,
	})
	if err != nil {
		switch {
		case errors.Is(err, envelope.ErrInvalidBudget):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, category.ErrNotFound):
			http.Error(w, "category not found", http.StatusNotFound)
		case errors.Is(err, envelope.ErrDuplicate):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(v)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.List(r.Context(), userctx.FromContext(r.Context()))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(views)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary(r.Context(), userctx.FromContext(r.Context()))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSummaryResponse(s)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	v, err := h.svc.Get(r.Context(), userctx.FromContext(r.Context()), id)
	if err != nil {
		if errors.Is(err, envelope.ErrNotFound) {
			http.Error(w, "envelope not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(v)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateBudgetRequest struct {
	BudgetedAmount decimal.Decimal `json:"budgeted_amount"`
}

func (h *Handler) updateBudget(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	v, err := h.svc.UpdateBudget(r.Context(), userctx.FromContext(r.Context()), id, req.BudgetedAmount)
	if err != nil {
		switch {
		case errors.Is(err, envelope.ErrInvalidBudget):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, envelope.ErrNotFound):
			http.Error(w, "envelope not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(v)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), userctx.FromContext(r.Context()), id); err != nil {
		if errors.Is(err, envelope.ErrNotFound) {
			http.Error(w, "envelope not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type rolloverRequest struct {
	CarryOverUnderspent bool `json:"carry_over_underspent"`
	ResetOverspent      bool `json:"reset_overspent"`
}

func (h *Handler) rollover(w http.ResponseWriter, r *http.Request) {
	var req rolloverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	changes, err := h.svc.MonthlyRollover(r.Context(), userctx.FromContext(r.Context()),
		req.CarryOverUnderspent, req.ResetOverspent)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toRolloverResponse(changes)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
