package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nlithgow/vatu/internal/clock"
	"github.com/nlithgow/vatu/internal/transaction"
)

var ErrInvalidPeriodType = errors.New("invalid period type")

// Ledger is the slice of the transaction service the reports read.
//
//go:generate mockgen -source=service.go -destination=ledger_mock.go -package=report
type Ledger interface {
	SumAmount(ctx context.Context, userID uuid.UUID, filter transaction.Filter) (decimal.Decimal, error)
	SumByCategory(ctx context.Context, userID uuid.UUID, filter transaction.Filter) ([]transaction.CategoryTotal, error)
}

type Service struct {
	ledger Ledger
	clock  clock.Clock
}

func NewService(ledger Ledger, clk clock.Clock) *Service {
	return &Service{ledger: ledger, clock: clk}
}

// Balance is the headline figure set: all-time totals plus the running
// month's activity.
type Balance struct {
	TotalIncome     decimal.Decimal
	TotalExpenses   decimal.Decimal
	Balance         decimal.Decimal
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
}

// PeriodSummary aggregates a calendar period with a per-category expense
// breakdown, largest first.
type PeriodSummary struct {
	Start      time.Time
	End        time.Time
	Income     decimal.Decimal
	Expenses   decimal.Decimal
	Net        decimal.Decimal
	ByCategory []transaction.CategoryTotal
}

func (s *Service) sumByType(ctx context.Context, userID uuid.UUID, kind transaction.Type, start, end *time.Time) (decimal.Decimal, error) {
	return s.ledger.SumAmount(ctx, userID, transaction.Filter{
		Type:      &kind,
		StartDate: start,
		EndDate:   end,
	})
}

func (s *Service) Balance(ctx context.Context, userID uuid.UUID) (*Balance, error) {
	totalIncome, err := s.sumByType(ctx, userID, transaction.TypeIncome, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("summing income: %w", err)
	}

	totalExpenses, err := s.sumByType(ctx, userID, transaction.TypeExpense, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("summing expenses: %w", err)
	}

	now := s.clock.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).AddDate(0, 0, -1)

	monthlyIncome, err := s.sumByType(ctx, userID, transaction.TypeIncome, &monthStart, &monthEnd)
	if err != nil {
		return nil, fmt.Errorf("summing monthly income: %w", err)
	}

	monthlyExpenses, err := s.sumByType(ctx, userID, transaction.TypeExpense, &monthStart, &monthEnd)
	if err != nil {
		return nil, fmt.Errorf("summing monthly expenses: %w", err)
	}

	return &Balance{
		TotalIncome:     totalIncome,
		TotalExpenses:   totalExpenses,
		Balance:         totalIncome.Sub(totalExpenses),
		MonthlyIncome:   monthlyIncome,
		MonthlyExpenses: monthlyExpenses,
	}, nil
}

func (s *Service) summarize(ctx context.Context, userID uuid.UUID, start, end time.Time) (*PeriodSummary, error) {
	income, err := s.sumByType(ctx, userID, transaction.TypeIncome, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("summing income: %w", err)
	}

	expenses, err := s.sumByType(ctx, userID, transaction.TypeExpense, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("summing expenses: %w", err)
	}

	kind := transaction.TypeExpense

	byCategory, err := s.ledger.SumByCategory(ctx, userID, transaction.Filter{
		Type:      &kind,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, fmt.Errorf("summing by category: %w", err)
	}

	return &PeriodSummary{
		Start:      start,
		End:        end,
		Income:     income,
		Expenses:   expenses,
		Net:        income.Sub(expenses),
		ByCategory: byCategory,
	}, nil
}

// Monthly summarizes one calendar month.
func (s *Service) Monthly(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*PeriodSummary, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).AddDate(0, 0, -1)

	return s.summarize(ctx, userID, start, end)
}

// Yearly summarizes one calendar year.
func (s *Service) Yearly(ctx context.Context, userID uuid.UUID, year int) (*PeriodSummary, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	return s.summarize(ctx, userID, start, end)
}

// PeriodType selects the window pair a comparison spans.
type PeriodType string

const (
	PeriodMonthly PeriodType = "monthly"
	PeriodYearly  PeriodType = "yearly"
)

func (p PeriodType) Valid() bool {
	return p == PeriodMonthly || p == PeriodYearly
}

// CategoryChange pairs one category's expense total across the two
// compared periods.
type CategoryChange struct {
	Category  string
	Current   decimal.Decimal
	Previous  decimal.Decimal
	ChangePct float64
}

// Comparison sets the running period against the one before it. Change
// figures are percentages relative to the previous period; a change
// against a zero previous value is reported as zero.
type Comparison struct {
	PeriodType      PeriodType
	Current         *PeriodSummary
	Previous        *PeriodSummary
	IncomeChange    float64
	ExpensesChange  float64
	NetChange       float64
	CategoryChanges []CategoryChange
}

func changePct(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}

	pct, _ := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Float64()

	return pct
}

// Comparison compares the period containing today against the previous
// one: this month against last month, or this year against last year.
func (s *Service) Comparison(ctx context.Context, userID uuid.UUID, periodType PeriodType) (*Comparison, error) {
	now := s.clock.Now().UTC()

	var current, previous *PeriodSummary
	var err error

	switch periodType {
	case PeriodMonthly:
		current, err = s.Monthly(ctx, userID, now.Year(), now.Month())
		if err != nil {
			return nil, err
		}

		prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)

		previous, err = s.Monthly(ctx, userID, prev.Year(), prev.Month())
	case PeriodYearly:
		current, err = s.Yearly(ctx, userID, now.Year())
		if err != nil {
			return nil, err
		}

		previous, err = s.Yearly(ctx, userID, now.Year()-1)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPeriodType, periodType)
	}

	if err != nil {
		return nil, err
	}

	return &Comparison{
		PeriodType:      periodType,
		Current:         current,
		Previous:        previous,
		IncomeChange:    changePct(current.Income, previous.Income),
		ExpensesChange:  changePct(current.Expenses, previous.Expenses),
		NetChange:       changePct(current.Net, previous.Net),
		CategoryChanges: compareCategories(current.ByCategory, previous.ByCategory),
	}, nil
}

// compareCategories joins the two breakdowns, keeping the current
// period's order and appending categories only seen previously.
func compareCategories(current, previous []transaction.CategoryTotal) []CategoryChange {
	prevTotals := make(map[string]decimal.Decimal, len(previous))
	for _, ct := range previous {
		prevTotals[ct.Category] = ct.Total
	}

	changes := make([]CategoryChange, 0, len(current)+len(previous))

	for _, ct := range current {
		prev, ok := prevTotals[ct.Category]
		if !ok {
			prev = decimal.Zero
		}

		delete(prevTotals, ct.Category)

		changes = append(changes, CategoryChange{
			Category:  ct.Category,
			Current:   ct.Total,
			Previous:  prev,
			ChangePct: changePct(ct.Total, prev),
		})
	}

	for _, ct := range previous {
		if _, ok := prevTotals[ct.Category]; !ok {
			continue
		}

		changes = append(changes, CategoryChange{
			Category:  ct.Category,
			Current:   decimal.Zero,
			Previous:  ct.Total,
			ChangePct: changePct(decimal.Zero, ct.Total),
		})
	}

	return changes
}
