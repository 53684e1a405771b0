package goal

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal is a savings target the user pays into over time.
// IsCompleted is derived from the amounts and recomputed inside every
// mutation path; no code sets it independently.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	IsCompleted   bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// Progress is the percentage of the target saved so far, 0 when the
// target is 0.
func (g *Goal) Progress() float64 {
	if g.TargetAmount.IsZero() {
		return 0
	}

	pct, _ := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()

	return pct
}

func (g *Goal) Remaining() decimal.Decimal {
	return g.TargetAmount.Sub(g.CurrentAmount)
}

var (
	ErrNotFound            = errors.New("savings goal not found")
	ErrInvalidName         = errors.New("goal name is required")
	ErrInvalidTarget       = errors.New("target amount must be positive")
	ErrTargetDateNotFuture = errors.New("target date must be in the future")
	ErrInvalidContribution = errors.New("contribution must be positive")
)
