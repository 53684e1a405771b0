package envelope

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=envelope
type Repository interface {
	CreateEnvelope(ctx context.Context, e *Envelope) error
	GetEnvelope(ctx context.Context, userID, id uuid.UUID) (*Envelope, error)
	ListEnvelopes(ctx context.Context, userID uuid.UUID) ([]*Envelope, error)
	UpdateBudget(ctx context.Context, userID, id uuid.UUID, budgeted decimal.Decimal) (*Envelope, error)
	DeleteEnvelope(ctx context.Context, userID, id uuid.UUID) error

	BeginRollover(ctx context.Context, userID uuid.UUID) (RolloverTx, error)
}

// RolloverTx is a storage transaction holding the per-user lock for the
// duration of a rollover, so the sums read and the budgets written cannot
// interleave with a concurrent rollover or materialization for the same
// user.
type RolloverTx interface {
	ListEnvelopes(ctx context.Context) ([]*Envelope, error)
	SumExpenses(ctx context.Context, categoryName string) (decimal.Decimal, error)
	UpdateBudget(ctx context.Context, id uuid.UUID, budgeted decimal.Decimal) error
	Commit() error
	Rollback() error
}

// Ledger is the read-only aggregation facade the envelope engine consumes.
type Ledger interface {
	SumExpenses(ctx context.Context, userID uuid.UUID, categoryName string) (decimal.Decimal, error)
}

// CategoryDirectory resolves a user's category records, used to validate
// envelope creation against an existing category.
type CategoryDirectory interface {
	CategoryName(ctx context.Context, userID, categoryID uuid.UUID) (string, error)
}

type Service struct {
	repo       Repository
	ledger     Ledger
	categories CategoryDirectory
}

func NewService(repo Repository, ledger Ledger, categories CategoryDirectory) *Service {
	return &Service{repo: repo, ledger: ledger, categories: categories}
}

type CreateParams struct {
	CategoryID uuid.UUID
	Budgeted   decimal.Decimal
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*View, error) {
	if !params.Budgeted.IsPositive() {
		return nil, ErrInvalidBudget
	}

	name, err := s.categories.CategoryName(ctx, userID, params.CategoryID)
	if err != nil {
		return nil, err
	}

	e := &Envelope{
		UserID:       userID,
		CategoryID:   params.CategoryID,
		CategoryName: name,
		Budgeted:     params.Budgeted,
	}
	if err := s.repo.CreateEnvelope(ctx, e); err != nil {
		return nil, err
	}

	return s.withStats(ctx, e)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*View, error) {
	e, err := s.repo.GetEnvelope(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	return s.withStats(ctx, e)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]View, error) {
	envelopes, err := s.repo.ListEnvelopes(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]View, 0, len(envelopes))

	for _, e := range envelopes {
		v, err := s.withStats(ctx, e)
		if err != nil {
			return nil, err
		}

		views = append(views, *v)
	}

	return views, nil
}

// Summary computes aggregate totals across all of a user's envelopes.
// Read-only: nothing is mutated or persisted.
func (s *Service) Summary(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	views, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalEnvelopes: len(views),
		TotalBudgeted:  decimal.Zero,
		TotalSpent:     decimal.Zero,
		TotalRemaining: decimal.Zero,
		Envelopes:      views,
	}

	for _, v := range views {
		summary.TotalBudgeted = summary.TotalBudgeted.Add(v.Budgeted)
		summary.TotalSpent = summary.TotalSpent.Add(v.Spent)
		summary.TotalRemaining = summary.TotalRemaining.Add(v.Remaining)

		switch {
		case v.OverBudget:
			summary.OverBudgetCount++
		case v.NearLimit:
			summary.NearLimitCount++
		}
	}

	return summary, nil
}

func (s *Service) UpdateBudget(ctx context.Context, userID, id uuid.UUID, budgeted decimal.Decimal) (*View, error) {
	if !budgeted.IsPositive() {
		return nil, ErrInvalidBudget
	}

	e, err := s.repo.UpdateBudget(ctx, userID, id, budgeted)
	if err != nil {
		return nil, err
	}

	return s.withStats(ctx, e)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteEnvelope(ctx, userID, id)
}

// MonthlyRollover adjusts every envelope's budget for a new period.
// For each envelope, exactly one case applies, in this priority order:
//
//  1. remaining > 0 and carryOverUnderspent: the new budget becomes what
//     was spent. The unspent surplus is dropped from this envelope, not
//     transferred anywhere.
//  2. remaining < 0 and resetOverspent: the new budget becomes 0.
//  3. otherwise the budget is unchanged.
//
// Only envelopes whose budget actually changed are persisted and
// reported. The whole rollover for one user commits or rolls back as a
// unit.
func (s *Service) MonthlyRollover(ctx context.Context, userID uuid.UUID, carryOverUnderspent, resetOverspent bool) ([]RolloverChange, error) {
	rtx, err := s.repo.BeginRollover(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("begin rollover: %w", err)
	}
	defer rtx.Rollback()

	envelopes, err := rtx.ListEnvelopes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list envelopes: %w", err)
	}

	var changes []RolloverChange

	for _, e := range envelopes {
		spent, err := rtx.SumExpenses(ctx, e.CategoryName)
		if err != nil {
			return nil, fmt.Errorf("sum expenses for %q: %w", e.CategoryName, err)
		}

		stats := ComputeStats(e.Budgeted, spent)

		newBudget := e.Budgeted

		switch {
		case stats.Remaining.IsPositive() && carryOverUnderspent:
			newBudget = stats.Spent
		case stats.Remaining.IsNegative() && resetOverspent:
			newBudget = decimal.Zero
		}

		if newBudget.Equal(e.Budgeted) {
			continue
		}

		if err := rtx.UpdateBudget(ctx, e.ID, newBudget); err != nil {
			return nil, fmt.Errorf("update budget for %q: %w", e.CategoryName, err)
		}

		changes = append(changes, RolloverChange{
			EnvelopeID: e.ID,
			Category:   e.CategoryName,
			OldBudget:  e.Budgeted,
			NewBudget:  newBudget,
			Remaining:  stats.Remaining,
		})
	}

	if err := rtx.Commit(); err != nil {
		return nil, fmt.Errorf("commit rollover: %w", err)
	}

	return changes, nil
}

func (s *Service) withStats(ctx context.Context, e *Envelope) (*View, error) {
	spent, err := s.ledger.SumExpenses(ctx, e.UserID, e.CategoryName)
	if err != nil {
		return nil, fmt.Errorf("sum expenses for %q: %w", e.CategoryName, err)
	}

	return &View{Envelope: *e, Stats: ComputeStats(e.Budgeted, spent)}, nil
}
