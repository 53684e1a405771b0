package goal_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nlithgow/vatu/internal/clock"
	"github.com/nlithgow/vatu/internal/goal"
)

var today = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestService_Create(t *testing.T) {
	userID := uuid.New()

	type testCase struct {
		name      string
		params    goal.CreateParams
		setupMock func(m *goal.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: goal.CreateParams{
				Name:         "New car",
				TargetAmount: d("5000"),
				TargetDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(m *goal.MockRepository) {
				m.EXPECT().
					CreateGoal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, g *goal.Goal) error {
						g.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "TargetDateToday",
			params: goal.CreateParams{
				Name:         "New car",
				TargetAmount: d("5000"),
				TargetDate:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			},
			wantErr: goal.ErrTargetDateNotFuture,
		},
		{
			name: "TargetDatePast",
			params: goal.CreateParams{
				Name:         "New car",
				TargetAmount: d("5000"),
				TargetDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			wantErr: goal.ErrTargetDateNotFuture,
		},
		{
			name: "ZeroTarget",
			params: goal.CreateParams{
				Name:         "New car",
				TargetAmount: decimal.Zero,
				TargetDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			wantErr: goal.ErrInvalidTarget,
		},
		{
			name: "EmptyName",
			params: goal.CreateParams{
				TargetAmount: d("5000"),
				TargetDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			wantErr: goal.ErrInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := goal.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := goal.NewService(repo, clock.Fixed(today))
			got, err := svc.Create(context.Background(), userID, tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.False(t, got.IsCompleted)
			assert.True(t, got.CurrentAmount.IsZero())
		})
	}
}

func TestService_Contribute(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()

	existing := func(current string) *goal.Goal {
		return &goal.Goal{
			ID:            id,
			UserID:        userID,
			Name:          "New car",
			TargetAmount:  d("5000"),
			CurrentAmount: d(current),
			TargetDate:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("AddsToCurrentAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := goal.NewMockRepository(ctrl)
		repo.EXPECT().GetGoal(gomock.Any(), userID, id).Return(existing("1000"), nil)
		repo.EXPECT().UpdateGoal(gomock.Any(), gomock.Any()).Return(nil)

		svc := goal.NewService(repo, clock.Fixed(today))
		got, err := svc.Contribute(context.Background(), userID, id, d("250"))

		require.NoError(t, err)
		assert.True(t, got.CurrentAmount.Equal(d("1250")))
		assert.False(t, got.IsCompleted)
	})

	t.Run("ReachingTargetCompletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := goal.NewMockRepository(ctrl)
		repo.EXPECT().GetGoal(gomock.Any(), userID, id).Return(existing("4800"), nil)
		repo.EXPECT().
			UpdateGoal(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, g *goal.Goal) error {
				assert.True(t, g.IsCompleted)
				return nil
			})

		svc := goal.NewService(repo, clock.Fixed(today))
		got, err := svc.Contribute(context.Background(), userID, id, d("200"))

		require.NoError(t, err)
		assert.True(t, got.IsCompleted)
	})

	t.Run("RejectsNonPositive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := goal.NewService(goal.NewMockRepository(ctrl), clock.Fixed(today))
		_, err := svc.Contribute(context.Background(), userID, id, decimal.Zero)

		assert.ErrorIs(t, err, goal.ErrInvalidContribution)
	})
}

func TestService_Update_RecomputesCompletion(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()

	// A completed goal whose target is raised must flip back to
	// incomplete.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := goal.NewMockRepository(ctrl)
	repo.EXPECT().GetGoal(gomock.Any(), userID, id).Return(&goal.Goal{
		ID:            id,
		UserID:        userID,
		Name:          "Holiday",
		TargetAmount:  d("1000"),
		CurrentAmount: d("1000"),
		TargetDate:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		IsCompleted:   true,
	}, nil)
	repo.EXPECT().UpdateGoal(gomock.Any(), gomock.Any()).Return(nil)

	svc := goal.NewService(repo, clock.Fixed(today))

	newTarget := d("2000")
	got, err := svc.Update(context.Background(), userID, id, goal.UpdateParams{TargetAmount: &newTarget})

	require.NoError(t, err)
	assert.False(t, got.IsCompleted)
	assert.True(t, got.Remaining().Equal(d("1000")))
}
