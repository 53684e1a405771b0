package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error

	ListTransactions(ctx context.Context, userID uuid.UUID, filter Filter) ([]*Transaction, error)
	SumAmount(ctx context.Context, userID uuid.UUID, filter Filter) (decimal.Decimal, error)
	SumByCategory(ctx context.Context, userID uuid.UUID, filter Filter) ([]CategoryTotal, error)
}

// Filter narrows transaction queries. Nil fields match everything.
type Filter struct {
	Category  *string
	Type      *Type
	StartDate *time.Time
	EndDate   *time.Time
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    string
	Type        Type
}

func validate(params CreateParams) error {
	if !params.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	if !params.Type.Valid() {
		return ErrInvalidType
	}

	if params.Description == "" {
		return ErrInvalidDescription
	}

	return nil
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Transaction, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	tx := &Transaction{
		UserID:      userID,
		Date:        params.Date,
		Description: params.Description,
		Amount:      params.Amount,
		Category:    params.Category,
		Type:        params.Type,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, userID, id)
}

type UpdateParams struct {
	Date        *time.Time
	Description *string
	Amount      *decimal.Decimal
	Category    *string
	Type        *Type
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, params UpdateParams) (*Transaction, error) {
	tx, err := s.repo.GetTransaction(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if params.Date != nil {
		tx.Date = *params.Date
	}

	if params.Description != nil {
		tx.Description = *params.Description
	}

	if params.Amount != nil {
		tx.Amount = *params.Amount
	}

	if params.Category != nil {
		tx.Category = *params.Category
	}

	if params.Type != nil {
		tx.Type = *params.Type
	}

	if err := validate(CreateParams{
		Description: tx.Description,
		Amount:      tx.Amount,
		Type:        tx.Type,
	}); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, filter Filter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, userID, filter)
}

// SumAmount returns the total of matching transaction amounts,
// zero (never an error) when nothing matches.
func (s *Service) SumAmount(ctx context.Context, userID uuid.UUID, filter Filter) (decimal.Decimal, error) {
	return s.repo.SumAmount(ctx, userID, filter)
}

func (s *Service) SumByCategory(ctx context.Context, userID uuid.UUID, filter Filter) ([]CategoryTotal, error) {
	return s.repo.SumByCategory(ctx, userID, filter)
}

// SumExpenses is the aggregate the envelope engine reads: the all-time
// total of a user's expense transactions recorded under a category name.
func (s *Service) SumExpenses(ctx context.Context, userID uuid.UUID, categoryName string) (decimal.Decimal, error) {
	kind := TypeExpense

	return s.repo.SumAmount(ctx, userID, Filter{Category: &categoryName, Type: &kind})
}
