package goal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nlithgow/vatu/internal/clock"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=goal
type Repository interface {
	CreateGoal(ctx context.Context, g *Goal) error
	GetGoal(ctx context.Context, userID, id uuid.UUID) (*Goal, error)
	ListGoals(ctx context.Context, userID uuid.UUID) ([]*Goal, error)
	UpdateGoal(ctx context.Context, g *Goal) error
	DeleteGoal(ctx context.Context, userID, id uuid.UUID) error
}

type Service struct {
	repo  Repository
	clock clock.Clock
}

func NewService(repo Repository, clk clock.Clock) *Service {
	return &Service{repo: repo, clock: clk}
}

// recomputeCompletion keeps IsCompleted consistent with the amounts.
// Every mutation path calls it, so the flag can also flip back to false
// when the target is raised above the current amount.
func recomputeCompletion(g *Goal) {
	g.IsCompleted = g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

type CreateParams struct {
	Name         string
	TargetAmount decimal.Decimal
	TargetDate   time.Time
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Goal, error) {
	if params.Name == "" {
		return nil, ErrInvalidName
	}

	if !params.TargetAmount.IsPositive() {
		return nil, ErrInvalidTarget
	}

	if !params.TargetDate.After(clock.Today(s.clock)) {
		return nil, ErrTargetDateNotFuture
	}

	g := &Goal{
		UserID:        userID,
		Name:          params.Name,
		TargetAmount:  params.TargetAmount,
		CurrentAmount: decimal.Zero,
		TargetDate:    params.TargetDate,
	}
	recomputeCompletion(g)

	if err := s.repo.CreateGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Goal, error) {
	return s.repo.GetGoal(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Goal, error) {
	return s.repo.ListGoals(ctx, userID)
}

type UpdateParams struct {
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	TargetDate    *time.Time
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, params UpdateParams) (*Goal, error) {
	g, err := s.repo.GetGoal(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		g.Name = *params.Name
	}

	if params.TargetAmount != nil {
		g.TargetAmount = *params.TargetAmount
	}

	if params.CurrentAmount != nil {
		g.CurrentAmount = *params.CurrentAmount
	}

	if params.TargetDate != nil {
		g.TargetDate = *params.TargetDate
	}

	if g.Name == "" {
		return nil, ErrInvalidName
	}

	if !g.TargetAmount.IsPositive() {
		return nil, ErrInvalidTarget
	}

	if g.CurrentAmount.IsNegative() {
		return nil, ErrInvalidContribution
	}

	recomputeCompletion(g)

	if err := s.repo.UpdateGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteGoal(ctx, userID, id)
}

// Contribute adds amount to the goal's saved total and recomputes the
// completion flag in the same mutation.
func (s *Service) Contribute(ctx context.Context, userID, id uuid.UUID, amount decimal.Decimal) (*Goal, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidContribution
	}

	g, err := s.repo.GetGoal(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	g.CurrentAmount = g.CurrentAmount.Add(amount)
	recomputeCompletion(g)

	if err := s.repo.UpdateGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}
