package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nlithgow/vatu/internal/transaction"
)

func TestService_Create(t *testing.T) {
	userID := uuid.New()

	type testCase struct {
		name      string
		params    transaction.CreateParams
		setupMock func(m *transaction.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: transaction.CreateParams{
				Date:        time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC),
				Description: "Weekly shop",
				Amount:      decimal.NewFromFloat(45.50),
				Category:    "Groceries",
				Type:        transaction.TypeExpense,
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "ZeroAmount",
			params: transaction.CreateParams{
				Description: "Weekly shop",
				Amount:      decimal.Zero,
				Type:        transaction.TypeExpense,
			},
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "NegativeAmount",
			params: transaction.CreateParams{
				Description: "Weekly shop",
				Amount:      decimal.NewFromInt(-5),
				Type:        transaction.TypeExpense,
			},
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "BadType",
			params: transaction.CreateParams{
				Description: "Weekly shop",
				Amount:      decimal.NewFromInt(5),
				Type:        transaction.Type("transfer"),
			},
			wantErr: transaction.ErrInvalidType,
		},
		{
			name: "EmptyDescription",
			params: transaction.CreateParams{
				Amount: decimal.NewFromInt(5),
				Type:   transaction.TypeIncome,
			},
			wantErr: transaction.ErrInvalidDescription,
		},
		{
			name: "RepoError",
			params: transaction.CreateParams{
				Description: "Weekly shop",
				Amount:      decimal.NewFromInt(5),
				Type:        transaction.TypeExpense,
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo)
			got, err := svc.Create(context.Background(), userID, tt.params)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, userID, got.UserID)
		})
	}
}

func TestService_Update(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()

	existing := func() *transaction.Transaction {
		return &transaction.Transaction{
			ID:          id,
			UserID:      userID,
			Date:        time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
			Description: "Rent",
			Amount:      decimal.NewFromInt(900),
			Category:    "Housing",
			Type:        transaction.TypeExpense,
		}
	}

	t.Run("PatchesOnlyGivenFields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := transaction.NewMockRepository(ctrl)
		repo.EXPECT().GetTransaction(gomock.Any(), userID, id).Return(existing(), nil)
		repo.EXPECT().
			UpdateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
				assert.Equal(t, "Rent October", tx.Description)
				assert.True(t, tx.Amount.Equal(decimal.NewFromInt(900)))
				return nil
			})

		svc := transaction.NewService(repo)

		desc := "Rent October"
		got, err := svc.Update(context.Background(), userID, id, transaction.UpdateParams{Description: &desc})

		require.NoError(t, err)
		assert.Equal(t, "Rent October", got.Description)
	})

	t.Run("RejectsNonPositiveAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := transaction.NewMockRepository(ctrl)
		repo.EXPECT().GetTransaction(gomock.Any(), userID, id).Return(existing(), nil)

		svc := transaction.NewService(repo)

		bad := decimal.Zero
		_, err := svc.Update(context.Background(), userID, id, transaction.UpdateParams{Amount: &bad})

		assert.ErrorIs(t, err, transaction.ErrInvalidAmount)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := transaction.NewMockRepository(ctrl)
		repo.EXPECT().GetTransaction(gomock.Any(), userID, id).Return(nil, transaction.ErrNotFound)

		svc := transaction.NewService(repo)
		_, err := svc.Update(context.Background(), userID, id, transaction.UpdateParams{})

		assert.ErrorIs(t, err, transaction.ErrNotFound)
	})
}

func TestService_SumExpenses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		SumAmount(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, f transaction.Filter) (decimal.Decimal, error) {
			require.NotNil(t, f.Category)
			require.NotNil(t, f.Type)
			assert.Equal(t, "Groceries", *f.Category)
			assert.Equal(t, transaction.TypeExpense, *f.Type)
			return decimal.NewFromFloat(123.45), nil
		})

	svc := transaction.NewService(repo)
	got, err := svc.SumExpenses(context.Background(), userID, "Groceries")

	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromFloat(123.45)))
}
