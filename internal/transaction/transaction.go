package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single financial fact recorded by a user.
// Amount is always positive; the sign is implied by Type. Category is a
// free-text name, deliberately not a foreign key, so a transaction keeps
// the category it was recorded under even if the category record changes.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    string
	Type        Type
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// CategoryTotal is a per-category aggregate of transaction amounts.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

var (
	ErrNotFound           = errors.New("transaction not found")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidType        = errors.New("invalid transaction type")
	ErrInvalidDescription = errors.New("description is required")
)
