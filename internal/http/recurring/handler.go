package recurring

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nlithgow/vatu/internal/clock"
	"github.com/nlithgow/vatu/internal/http/userctx"
	"github.com/nlithgow/vatu/internal/recurring"
	"github.com/nlithgow/vatu/internal/transaction"
)

// defaultUpcomingWindowDays bounds the upcoming listing when the client
// does not pass ?days=.
const defaultUpcomingWindowDays = 7

type Handler struct {
	svc   *recurring.Service
	clock clock.Clock
}

func NewHandler(svc *recurring.Service, clk clock.Clock) *Handler {
	return &Handler{svc: svc, clock: clk}
}

// today anchors the derived is_overdue and days_until_next fields.
func (h *Handler) today() time.Time {
	return clock.Today(h.clock)
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/upcoming", h.upcoming)
	r.Get("/overdue", h.overdue)
	r.Post("/process-overdue", h.processOverdue)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/create-transaction", h.createTransaction)
	r.Post("/{id}/skip-next", h.skipNext)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, recurring.ErrNotFound):
		http.Error(w, "recurring transaction not found", http.StatusNotFound)
	case errors.Is(err, recurring.ErrNotActive),
		errors.Is(err, recurring.ErrScheduleExhausted):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, recurring.ErrInvalidName),
		errors.Is(err, recurring.ErrInvalidAmount),
		errors.Is(err, recurring.ErrInvalidType),
		errors.Is(err, recurring.ErrInvalidFrequency),
		errors.Is(err, recurring.ErrStartDatePast),
		errors.Is(err, recurring.ErrEndBeforeStart):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type createTemplateRequest struct {
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Amount         decimal.Decimal     `json:"amount"`
	Category       string              `json:"category"`
	Type           transaction.Type    `json:"type"`
	Frequency      recurring.Frequency `json:"frequency"`
	StartDate      string              `json:"start_date"`
	EndDate        *string             `json:"end_date,omitempty"`
	MaxOccurrences *int                `json:"max_occurrences,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	startDate, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		http.Error(w, "invalid start_date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	params := recurring.CreateParams{
		Name:           req.Name,
		Description:    req.Description,
		Amount:         req.Amount,
		Category:       req.Category,
		Type:           req.Type,
		Frequency:      req.Frequency,
		StartDate:      startDate,
		MaxOccurrences: req.MaxOccurrences,
	}

	if req.EndDate != nil {
		endDate, err := time.Parse(time.DateOnly, *req.EndDate)
		if err != nil {
			http.Error(w, "invalid end_date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		params.EndDate = &endDate
	}

	t, err := h.svc.Create(r.Context(), userctx.FromContext(r.Context()), params)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(t, h.today())); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	templates, err := h.svc.List(r.Context(), userctx.FromContext(r.Context()))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(templates, h.today())); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	t, err := h.svc.Get(r.Context(), userctx.FromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t, h.today())); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// updateTemplateRequest keeps end_date and max_occurrences raw so an
// explicit null, which clears the end condition, stays distinguishable
// from an absent field.
type updateTemplateRequest struct {
	Name           *string              `json:"name,omitempty"`
	Description    *string              `json:"description,omitempty"`
	Amount         *decimal.Decimal     `json:"amount,omitempty"`
	Category       *string              `json:"category,omitempty"`
	Frequency      *recurring.Frequency `json:"frequency,omitempty"`
	EndDate        json.RawMessage      `json:"end_date,omitempty"`
	MaxOccurrences json.RawMessage      `json:"max_occurrences,omitempty"`
	Status         *recurring.Status    `json:"status,omitempty"`
}

const jsonNull = "null"

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := recurring.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Frequency:   req.Frequency,
		Status:      req.Status,
	}

	if len(req.EndDate) > 0 {
		if string(req.EndDate) == jsonNull {
			params.ClearEndDate = true
		} else {
			var s string
			if err := json.Unmarshal(req.EndDate, &s); err != nil {
				http.Error(w, "invalid end_date, expected YYYY-MM-DD", http.StatusBadRequest)
				return
			}

			endDate, err := time.Parse(time.DateOnly, s)
			if err != nil {
				http.Error(w, "invalid end_date, expected YYYY-MM-DD", http.StatusBadRequest)
				return
			}

			params.EndDate = &endDate
		}
	}

	if len(req.MaxOccurrences) > 0 {
		if string(req.MaxOccurrences) == jsonNull {
			params.ClearMaxOccurrences = true
		} else {
			var n int
			if err := json.Unmarshal(req.MaxOccurrences, &n); err != nil {
				http.Error(w, "invalid max_occurrences, expected an integer", http.StatusBadRequest)
				return
			}

			params.MaxOccurrences = &n
		}
	}

	t, err := h.svc.Update(r.Context(), userctx.FromContext(r.Context()), id, params)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t, h.today())); err != nil {
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
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Materialize(r.Context(), userctx.FromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toTransactionResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) skipNext(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	t, err := h.svc.SkipNext(r.Context(), userctx.FromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t, h.today())); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) upcoming(w http.ResponseWriter, r *http.Request) {
	days := defaultUpcomingWindowDays

	if s := r.URL.Query().Get("days"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			http.Error(w, "invalid days", http.StatusBadRequest)
			return
		}

		days = n
	}

	templates, err := h.svc.ListUpcoming(r.Context(), userctx.FromContext(r.Context()), days)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(templates, h.today())); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) overdue(w http.ResponseWriter, r *http.Request) {
	templates, err := h.svc.ListOverdue(r.Context(), userctx.FromContext(r.Context()))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(templates, h.today())); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) processOverdue(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ProcessOverdue(r.Context(), userctx.FromContext(r.Context()))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toBatchResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
