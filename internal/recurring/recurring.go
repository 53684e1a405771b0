package recurring

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nlithgow/vatu/internal/transaction"
)

// Frequency is the period between spawned transactions.
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyBimonthly Frequency = "bimonthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly,
		FrequencyMonthly, FrequencyBimonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}

	return false
}

// Status is the lifecycle state of a template.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// Template periodically spawns concrete transactions. NextOccurrence is
// the anchor date of the next spawn; it starts at StartDate and only
// moves forward. Once Status is completed it is no longer advanced.
type Template struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Description    string
	Amount         decimal.Decimal
	Category       string
	Type           transaction.Type
	Frequency      Frequency
	StartDate      time.Time
	EndDate        *time.Time
	NextOccurrence time.Time
	Status         Status
	CountCreated   int
	MaxOccurrences *int
	LastCreated    *time.Time
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// DaysUntilNext is the number of days from today until the next
// occurrence, negative when overdue.
func (t *Template) DaysUntilNext(today time.Time) int {
	return int(t.NextOccurrence.Sub(today).Hours() / 24)
}

// IsOverdue reports whether the next occurrence has already passed.
// Only active templates can be overdue.
func (t *Template) IsOverdue(today time.Time) bool {
	return t.Status == StatusActive && t.NextOccurrence.Before(today)
}

var (
	ErrNotFound          = errors.New("recurring transaction not found")
	ErrScheduleExhausted = errors.New("no further occurrence")
	ErrNotActive         = errors.New("recurring transaction is not active")
	ErrInvalidName       = errors.New("name is required")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidType       = errors.New("invalid transaction type")
	ErrInvalidFrequency  = errors.New("invalid frequency")
	ErrStartDatePast     = errors.New("start date must not be in the past")
	ErrEndBeforeStart    = errors.New("end date must be after start date")
)
