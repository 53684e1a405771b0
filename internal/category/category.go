package category

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a category as belonging to income or expense transactions.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Category is a user-owned label for grouping transactions.
// Its name is unique per (user, kind).
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Kind      Kind
	CreatedAt time.Time
}

var (
	ErrNotFound    = errors.New("category not found")
	ErrDuplicate   = errors.New("category already exists")
	ErrInvalidName = errors.New("category name is required")
	ErrInvalidKind = errors.New("invalid category kind")
)
