package recurring

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nlithgow/vatu/internal/clock"
	"github.com/nlithgow/vatu/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=recurring
type Repository interface {
	CreateTemplate(ctx context.Context, t *Template) error
	GetTemplate(ctx context.Context, userID, id uuid.UUID) (*Template, error)
	ListTemplates(ctx context.Context, userID uuid.UUID) ([]*Template, error)
	UpdateTemplate(ctx context.Context, t *Template) error
	DeleteTemplate(ctx context.Context, userID, id uuid.UUID) error

	// ListDue returns active templates with next_occurrence strictly
	// before the given date, oldest first.
	ListDue(ctx context.Context, userID uuid.UUID, before time.Time) ([]*Template, error)
	// ListUpcoming returns active templates with next_occurrence within
	// [from, to], soonest first.
	ListUpcoming(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*Template, error)

	BeginMaterialize(ctx context.Context, userID uuid.UUID) (MaterializeTx, error)
}

// MaterializeTx is a storage transaction holding the per-user lock while
// a template spawns a transaction. The spawned transaction insert and
// the template bookkeeping update commit or roll back as one unit: a
// template is never advanced without its transaction existing, and vice
// versa.
type MaterializeTx interface {
	GetTemplate(ctx context.Context, id uuid.UUID) (*Template, error)
	CreateTransaction(ctx context.Context, tx *transaction.Transaction) error
	UpdateTemplate(ctx context.Context, t *Template) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo  Repository
	clock clock.Clock
}

func NewService(repo Repository, clk clock.Clock) *Service {
	return &Service{repo: repo, clock: clk}
}

type CreateParams struct {
	Name           string
	Description    string
	Amount         decimal.Decimal
	Category       string
	Type           transaction.Type
	Frequency      Frequency
	StartDate      time.Time
	EndDate        *time.Time
	MaxOccurrences *int
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Template, error) {
	if params.Name == "" {
		return nil, ErrInvalidName
	}

	if !params.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if !params.Type.Valid() {
		return nil, ErrInvalidType
	}

	if !params.Frequency.Valid() {
		return nil, ErrInvalidFrequency
	}

	if params.StartDate.Before(clock.Today(s.clock)) {
		return nil, ErrStartDatePast
	}

	if params.EndDate != nil && !params.EndDate.After(params.StartDate) {
		return nil, ErrEndBeforeStart
	}

	t := &Template{
		UserID:         userID,
		Name:           params.Name,
		Description:    params.Description,
		Amount:         params.Amount,
		Category:       params.Category,
		Type:           params.Type,
		Frequency:      params.Frequency,
		StartDate:      params.StartDate,
		EndDate:        params.EndDate,
		NextOccurrence: params.StartDate,
		Status:         StatusActive,
		MaxOccurrences: params.MaxOccurrences,
	}
	if err := s.repo.CreateTemplate(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Template, error) {
	return s.repo.GetTemplate(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Template, error) {
	return s.repo.ListTemplates(ctx, userID)
}

// UpdateParams patches a template. Nil fields are left untouched. The
// Clear flags remove the end conditions, returning the template to an
// open-ended schedule; they win over the corresponding value fields.
type UpdateParams struct {
	Name                *string
	Description         *string
	Amount              *decimal.Decimal
	Category            *string
	Frequency           *Frequency
	EndDate             *time.Time
	ClearEndDate        bool
	MaxOccurrences      *int
	ClearMaxOccurrences bool
	Status              *Status
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, params UpdateParams) (*Template, error) {
	t, err := s.repo.GetTemplate(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		t.Name = *params.Name
	}

	if params.Description != nil {
		t.Description = *params.Description
	}

	if params.Amount != nil {
		t.Amount = *params.Amount
	}

	if params.Category != nil {
		t.Category = *params.Category
	}

	if params.Frequency != nil {
		t.Frequency = *params.Frequency
	}

	switch {
	case params.ClearEndDate:
		t.EndDate = nil
	case params.EndDate != nil:
		t.EndDate = params.EndDate
	}

	switch {
	case params.ClearMaxOccurrences:
		t.MaxOccurrences = nil
	case params.MaxOccurrences != nil:
		t.MaxOccurrences = params.MaxOccurrences
	}

	if params.Status != nil {
		// Completed is reached only through the schedule running out.
		if *params.Status != StatusActive && *params.Status != StatusPaused {
			return nil, fmt.Errorf("%w: status %q", ErrNotActive, *params.Status)
		}

		t.Status = *params.Status
	}

	if t.Name == "" {
		return nil, ErrInvalidName
	}

	if !t.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if !t.Frequency.Valid() {
		return nil, ErrInvalidFrequency
	}

	if t.EndDate != nil && !t.EndDate.After(t.StartDate) {
		return nil, ErrEndBeforeStart
	}

	if err := s.repo.UpdateTemplate(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteTemplate(ctx, userID, id)
}

// Materialize turns a template's pending occurrence into a concrete
// ledger transaction and advances the template's bookkeeping. Both
// writes happen in one storage transaction under the per-user lock.
// When the advanced schedule has no further occurrence the template is
// marked completed and NextOccurrence is left untouched.
func (s *Service) Materialize(ctx context.Context, userID, id uuid.UUID) (*transaction.Transaction, error) {
	mtx, err := s.repo.BeginMaterialize(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("begin materialize: %w", err)
	}
	defer mtx.Rollback()

	t, err := mtx.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	if t.Status != StatusActive {
		return nil, ErrNotActive
	}

	if exhausted(t) {
		return nil, ErrScheduleExhausted
	}

	tx := &transaction.Transaction{
		UserID:      userID,
		Date:        t.NextOccurrence,
		Description: fmt.Sprintf("%s (Recurring)", t.Name),
		Amount:      t.Amount,
		Category:    t.Category,
		Type:        t.Type,
	}
	if err := mtx.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	t.CountCreated++
	now := s.clock.Now()
	t.LastCreated = &now

	next, ok, err := NextOccurrence(t.NextOccurrence, t.Frequency, t.EndDate, t.MaxOccurrences, t.CountCreated)
	if err != nil {
		return nil, err
	}

	if ok {
		t.NextOccurrence = next
	} else {
		t.Status = StatusCompleted
	}

	if err := mtx.UpdateTemplate(ctx, t); err != nil {
		return nil, fmt.Errorf("update template: %w", err)
	}

	if err := mtx.Commit(); err != nil {
		return nil, fmt.Errorf("commit materialize: %w", err)
	}

	return tx, nil
}

// SkipNext advances the template one period without creating a
// transaction. When the schedule is already exhausted it returns
// ErrScheduleExhausted and leaves the template untouched; the caller
// decides whether to mark it completed.
func (s *Service) SkipNext(ctx context.Context, userID, id uuid.UUID) (*Template, error) {
	mtx, err := s.repo.BeginMaterialize(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("begin skip: %w", err)
	}
	defer mtx.Rollback()

	t, err := mtx.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	if t.Status != StatusActive {
		return nil, ErrNotActive
	}

	next, ok, err := NextOccurrence(t.NextOccurrence, t.Frequency, t.EndDate, t.MaxOccurrences, t.CountCreated)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, ErrScheduleExhausted
	}

	t.NextOccurrence = next

	if err := mtx.UpdateTemplate(ctx, t); err != nil {
		return nil, fmt.Errorf("update template: %w", err)
	}

	if err := mtx.Commit(); err != nil {
		return nil, fmt.Errorf("commit skip: %w", err)
	}

	return t, nil
}

// ListUpcoming returns active templates due within the next windowDays
// days, today included.
func (s *Service) ListUpcoming(ctx context.Context, userID uuid.UUID, windowDays int) ([]*Template, error) {
	today := clock.Today(s.clock)

	return s.repo.ListUpcoming(ctx, userID, today, today.AddDate(0, 0, windowDays))
}

// ListOverdue returns active templates whose next occurrence has already
// passed, most overdue first.
func (s *Service) ListOverdue(ctx context.Context, userID uuid.UUID) ([]*Template, error) {
	return s.repo.ListDue(ctx, userID, clock.Today(s.clock))
}

// BatchItem is the outcome of one template in an overdue batch.
type BatchItem struct {
	TemplateID  uuid.UUID
	Name        string
	Transaction *transaction.Transaction
	Error       string
}

// BatchResult reports an overdue batch. The batch never fails wholesale;
// failures are carried per item.
type BatchResult struct {
	Processed int
	Failed    int
	Items     []BatchItem
}

// ProcessOverdue materializes every overdue template for the user,
// oldest due date first, each in its own storage transaction. A failing
// template is recorded and skipped; the rest of the batch proceeds.
func (s *Service) ProcessOverdue(ctx context.Context, userID uuid.UUID) (*BatchResult, error) {
	due, err := s.repo.ListDue(ctx, userID, clock.Today(s.clock))
	if err != nil {
		return nil, fmt.Errorf("list overdue: %w", err)
	}

	result := &BatchResult{Items: make([]BatchItem, 0, len(due))}

	for _, t := range due {
		item := BatchItem{TemplateID: t.ID, Name: t.Name}

		tx, err := s.Materialize(ctx, userID, t.ID)
		if err != nil {
			slog.Error("failed to materialize overdue template",
				"template_id", t.ID, "name", t.Name, "error", err)

			item.Error = err.Error()
			result.Failed++
			result.Items = append(result.Items, item)

			continue
		}

		item.Transaction = tx
		result.Processed++
		result.Items = append(result.Items, item)
	}

	return result, nil
}

// exhausted reports whether a template's end condition is already met
// before any advancement, which happens when the end date or occurrence
// cap was edited below the current state.
func exhausted(t *Template) bool {
	if t.EndDate != nil && t.NextOccurrence.After(*t.EndDate) {
		return true
	}

	if t.MaxOccurrences != nil && t.CountCreated >= *t.MaxOccurrences {
		return true
	}

	return false
}
