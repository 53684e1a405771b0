package envelope

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Envelope is a budget allocation for one of the user's categories.
// At most one envelope exists per (user, category).
type Envelope struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	Budgeted     decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// View is an envelope joined with its live ledger-derived stats.
type View struct {
	Envelope
	Stats
}

// Summary aggregates one user's full envelope set.
// NearLimitCount excludes envelopes that are already over budget,
// so each envelope lands in at most one of the two buckets.
type Summary struct {
	TotalEnvelopes  int
	TotalBudgeted   decimal.Decimal
	TotalSpent      decimal.Decimal
	TotalRemaining  decimal.Decimal
	OverBudgetCount int
	NearLimitCount  int
	Envelopes       []View
}

// RolloverChange records one envelope's budget adjustment from a monthly
// rollover. Remaining is the value at rollover time, so callers can see
// how much surplus was dropped or overspend was forgiven.
type RolloverChange struct {
	EnvelopeID uuid.UUID
	Category   string
	OldBudget  decimal.Decimal
	NewBudget  decimal.Decimal
	Remaining  decimal.Decimal
}

var (
	ErrNotFound      = errors.New("envelope not found")
	ErrDuplicate     = errors.New("envelope already exists for category")
	ErrInvalidBudget = errors.New("budgeted amount must be positive")
)
