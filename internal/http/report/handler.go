package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/nlithgow/vatu/internal/http/userctx"
	"github.com/nlithgow/vatu/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/balance", h.balance)
	r.Get("/monthly", h.monthly)
	r.Get("/yearly", h.yearly)
	r.Get("/comparison", h.comparison)
}

type balanceResponse struct {
	TotalIncome     decimal.Decimal `json:"total_income"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	Balance         decimal.Decimal `json:"balance"`
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Balance(r.Context(), userctx.FromContext(r.Context()))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := balanceResponse{
		TotalIncome:     b.TotalIncome,
		TotalExpenses:   b.TotalExpenses,
		Balance:         b.Balance,
		MonthlyIncome:   b.MonthlyIncome,
		MonthlyExpenses: b.MonthlyExpenses,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type categoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

type periodSummaryResponse struct {
	StartDate  string                  `json:"start_date"`
	EndDate    string                  `json:"end_date"`
	Income     decimal.Decimal         `json:"income"`
	Expenses   decimal.Decimal         `json:"expenses"`
	Net        decimal.Decimal         `json:"net"`
	ByCategory []categoryTotalResponse `json:"by_category"`
}

func toPeriodResponse(s *report.PeriodSummary) periodSummaryResponse {
	resp := periodSummaryResponse{
		StartDate:  s.Start.Format(time.DateOnly),
		EndDate:    s.End.Format(time.DateOnly),
		Income:     s.Income,
		Expenses:   s.Expenses,
		Net:        s.Net,
		ByCategory: make([]categoryTotalResponse, len(s.ByCategory)),
	}

	for i, ct := range s.ByCategory {
		resp.ByCategory[i] = categoryTotalResponse{Category: ct.Category, Total: ct.Total}
	}

	return resp
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	s, err := h.svc.Monthly(r.Context(), userctx.FromContext(r.Context()), year, time.Month(month))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPeriodResponse(s)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) yearly(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}

	s, err := h.svc.Yearly(r.Context(), userctx.FromContext(r.Context()), year)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPeriodResponse(s)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type categoryChangeResponse struct {
	Category string          `json:"category"`
	Current  decimal.Decimal `json:"current"`
	Previous decimal.Decimal `json:"previous"`
	Change   float64         `json:"change"`
}

type comparisonChangesResponse struct {
	IncomeChange   float64 `json:"income_change"`
	ExpensesChange float64 `json:"expenses_change"`
	NetChange      float64 `json:"net_change"`
}

type comparisonResponse struct {
	PeriodType         report.PeriodType         `json:"period_type"`
	CurrentPeriod      periodSummaryResponse     `json:"current_period"`
	PreviousPeriod     periodSummaryResponse     `json:"previous_period"`
	Changes            comparisonChangesResponse `json:"changes"`
	CategoryComparison []categoryChangeResponse  `json:"category_comparison"`
}

func toComparisonResponse(c *report.Comparison) comparisonResponse {
	resp := comparisonResponse{
		PeriodType:     c.PeriodType,
		CurrentPeriod:  toPeriodResponse(c.Current),
		PreviousPeriod: toPeriodResponse(c.Previous),
		Changes: comparisonChangesResponse{
			IncomeChange:   c.IncomeChange,
			ExpensesChange: c.ExpensesChange,
			NetChange:      c.NetChange,
		},
		CategoryComparison: make([]categoryChangeResponse, len(c.CategoryChanges)),
	}

	for i, cc := range c.CategoryChanges {
		resp.CategoryComparison[i] = categoryChangeResponse{
			Category: cc.Category,
			Current:  cc.Current,
			Previous: cc.Previous,
			Change:   cc.ChangePct,
		}
	}

	return resp
}

func (h *Handler) comparison(w http.ResponseWriter, r *http.Request) {
	periodType := report.PeriodMonthly

	if s := r.URL.Query().Get("type"); s != "" {
		periodType = report.PeriodType(s)
		if !periodType.Valid() {
			http.Error(w, "invalid type, expected monthly or yearly", http.StatusBadRequest)
			return
		}
	}

	c, err := h.svc.Comparison(r.Context(), userctx.FromContext(r.Context()), periodType)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toComparisonResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
