package report_test

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
	"github.com/nlithgow/vatu/internal/report"
	"github.com/nlithgow/vatu/internal/transaction"
)

var now = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestService_Balance(t *testing.T) {
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monthStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	income := transaction.TypeIncome
	expense := transaction.TypeExpense

	ledger := report.NewMockLedger(ctrl)
	ledger.EXPECT().
		SumAmount(gomock.Any(), userID, transaction.Filter{Type: &income}).
		Return(d("5000"), nil)
	ledger.EXPECT().
		SumAmount(gomock.Any(), userID, transaction.Filter{Type: &expense}).
		Return(d("3200"), nil)
	ledger.EXPECT().
		SumAmount(gomock.Any(), userID, gomock.Cond(func(f transaction.Filter) bool {
			return f.Type != nil && *f.Type == transaction.TypeIncome &&
				f.StartDate != nil && f.StartDate.Equal(monthStart) &&
				f.EndDate != nil && f.EndDate.Equal(monthEnd)
		})).
		Return(d("2000"), nil)
	ledger.EXPECT().
		SumAmount(gomock.Any(), userID, gomock.Cond(func(f transaction.Filter) bool {
			return f.Type != nil && *f.Type == transaction.TypeExpense &&
				f.StartDate != nil && f.StartDate.Equal(monthStart) &&
				f.EndDate != nil && f.EndDate.Equal(monthEnd)
		})).
		Return(d("900"), nil)

	svc := report.NewService(ledger, clock.Fixed(now))
	got, err := svc.Balance(context.Background(), userID)

	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(d("1800")))
	assert.True(t, got.MonthlyIncome.Equal(d("2000")))
	assert.True(t, got.MonthlyExpenses.Equal(d("900")))
}

func TestService_Monthly(t *testing.T) {
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)

	periodFilter := func(kind transaction.Type) gomock.Matcher {
		return gomock.Cond(func(f transaction.Filter) bool {
			return f.Type != nil && *f.Type == kind &&
				f.StartDate != nil && f.StartDate.Equal(start) &&
				f.EndDate != nil && f.EndDate.Equal(end)
		})
	}

	ledger := report.NewMockLedger(ctrl)
	ledger.EXPECT().
		SumAmount(gomock.Any(), userID, periodFilter(transaction.TypeIncome)).
		Return(d("2500"), nil)
	ledger.EXPECT().
		SumAmount(gomock.Any(), userID, periodFilter(transaction.TypeExpense)).
		Return(d("1700"), nil)
	ledger.EXPECT().
		SumByCategory(gomock.Any(), userID, periodFilter(transaction.TypeExpense)).
		Return([]transaction.CategoryTotal{
			{Category: "Housing", Total: d("1200")},
			{Category: "Groceries", Total: d("500")},
		}, nil)

	svc := report.NewService(ledger, clock.Fixed(now))
	got, err := svc.Monthly(context.Background(), userID, 2025, time.February)

	require.NoError(t, err)
	assert.True(t, got.Start.Equal(start))
	assert.True(t, got.End.Equal(end))
	assert.True(t, got.Net.Equal(d("800")))
	require.Len(t, got.ByCategory, 2)
	assert.Equal(t, "Housing", got.ByCategory[0].Category)
}

func TestService_Comparison(t *testing.T) {
	userID := uuid.New()

	// now is 2025-06-15, so monthly compares June against May.
	juneStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mayStart := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	periodFilter := func(kind transaction.Type, start time.Time) gomock.Matcher {
		return gomock.Cond(func(f transaction.Filter) bool {
			return f.Type != nil && *f.Type == kind &&
				f.StartDate != nil && f.StartDate.Equal(start)
		})
	}

	t.Run("MonthlyComparesAgainstPreviousMonth", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ledger := report.NewMockLedger(ctrl)
		ledger.EXPECT().
			SumAmount(gomock.Any(), userID, periodFilter(transaction.TypeIncome, juneStart)).
			Return(d("3000"), nil)
		ledger.EXPECT().
			SumAmount(gomock.Any(), userID, periodFilter(transaction.TypeExpense, juneStart)).
			Return(d("1500"), nil)
		ledger.EXPECT().
			SumByCategory(gomock.Any(), userID, periodFilter(transaction.TypeExpense, juneStart)).
			Return([]transaction.CategoryTotal{
				{Category: "Housing", Total: d("1200")},
				{Category: "Dining", Total: d("300")},
			}, nil)
		ledger.EXPECT().
			SumAmount(gomock.Any(), userID, periodFilter(transaction.TypeIncome, mayStart)).
			Return(d("2000"), nil)
		ledger.EXPECT().
			SumAmount(gomock.Any(), userID, periodFilter(transaction.TypeExpense, mayStart)).
			Return(d("1600"), nil)
		ledger.EXPECT().
			SumByCategory(gomock.Any(), userID, periodFilter(transaction.TypeExpense, mayStart)).
			Return([]transaction.CategoryTotal{
				{Category: "Housing", Total: d("1200")},
				{Category: "Groceries", Total: d("400")},
			}, nil)

		svc := report.NewService(ledger, clock.Fixed(now))
		got, err := svc.Comparison(context.Background(), userID, report.PeriodMonthly)

		require.NoError(t, err)
		assert.Equal(t, report.PeriodMonthly, got.PeriodType)
		assert.True(t, got.Current.Start.Equal(juneStart))
		assert.True(t, got.Previous.Start.Equal(mayStart))
		assert.InDelta(t, 50.0, got.IncomeChange, 0.001)
		assert.InDelta(t, -6.25, got.ExpensesChange, 0.001)

		require.Len(t, got.CategoryChanges, 3)
		assert.Equal(t, "Housing", got.CategoryChanges[0].Category)
		assert.InDelta(t, 0.0, got.CategoryChanges[0].ChangePct, 0.001)
		assert.Equal(t, "Dining", got.CategoryChanges[1].Category)
		assert.True(t, got.CategoryChanges[1].Previous.IsZero())
		assert.InDelta(t, 0.0, got.CategoryChanges[1].ChangePct, 0.001)
		assert.Equal(t, "Groceries", got.CategoryChanges[2].Category)
		assert.True(t, got.CategoryChanges[2].Current.IsZero())
		assert.InDelta(t, -100.0, got.CategoryChanges[2].ChangePct, 0.001)
	})

	t.Run("YearlyComparesAgainstPreviousYear", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		thisYear := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		lastYear := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		ledger := report.NewMockLedger(ctrl)
		ledger.EXPECT().
			SumAmount(gomock.Any(), userID, periodFilter(transaction.TypeIncome, thisYear)).
			Return(d("30000"), nil)
		ledger.EXPECT().
			SumAmount(gomock.Any(), userID, periodFilter(transaction.TypeExpense, thisYear)).
			Return(d("20000"), nil)
		ledger.EXPECT().
			SumByCategory(gomock.Any(), userID, periodFilter(transaction.TypeExpense, thisYear)).
			Return(nil, nil)
		ledger.EXPECT().
			SumAmount(gomock.Any(), userID, periodFilter(transaction.TypeIncome, lastYear)).
			Return(d("25000"), nil)
		ledger.EXPECT().
			SumAmount(gomock.Any(), userID, periodFilter(transaction.TypeExpense, lastYear)).
			Return(d("25000"), nil)
		ledger.EXPECT().
			SumByCategory(gomock.Any(), userID, periodFilter(transaction.TypeExpense, lastYear)).
			Return(nil, nil)

		svc := report.NewService(ledger, clock.Fixed(now))
		got, err := svc.Comparison(context.Background(), userID, report.PeriodYearly)

		require.NoError(t, err)
		assert.Equal(t, report.PeriodYearly, got.PeriodType)
		assert.InDelta(t, 20.0, got.IncomeChange, 0.001)
		assert.InDelta(t, -20.0, got.ExpensesChange, 0.001)
		assert.Empty(t, got.CategoryChanges)
	})

	t.Run("ZeroPreviousReportsZeroChange", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ledger := report.NewMockLedger(ctrl)
		ledger.EXPECT().
			SumAmount(gomock.Any(), userID, periodFilter(transaction.TypeIncome, juneStart)).
			Return(d("3000"), nil)
		ledger.EXPECT().
			SumAmount(gomock.Any(), userID, periodFilter(transaction.TypeExpense, juneStart)).
			Return(d("1500"), nil)
		ledger.EXPECT().
			SumByCategory(gomock.Any(), userID, periodFilter(transaction.TypeExpense, juneStart)).
			Return(nil, nil)
		ledger.EXPECT().
			SumAmount(gomock.Any(), userID, periodFilter(transaction.TypeIncome, mayStart)).
			Return(decimal.Zero, nil)
		ledger.EXPECT().
			SumAmount(gomock.Any(), userID, periodFilter(transaction.TypeExpense, mayStart)).
			Return(decimal.Zero, nil)
		ledger.EXPECT().
			SumByCategory(gomock.Any(), userID, periodFilter(transaction.TypeExpense, mayStart)).
			Return(nil, nil)

		svc := report.NewService(ledger, clock.Fixed(now))
		got, err := svc.Comparison(context.Background(), userID, report.PeriodMonthly)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, got.IncomeChange, 0.001)
		assert.InDelta(t, 0.0, got.ExpensesChange, 0.001)
		assert.InDelta(t, 0.0, got.NetChange, 0.001)
	})

	t.Run("InvalidPeriodType", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := report.NewService(report.NewMockLedger(ctrl), clock.Fixed(now))
		got, err := svc.Comparison(context.Background(), userID, report.PeriodType("weekly"))

		assert.ErrorIs(t, err, report.ErrInvalidPeriodType)
		assert.Nil(t, got)
	})
}

func TestService_Yearly(t *testing.T) {
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	ledger := report.NewMockLedger(ctrl)
	ledger.EXPECT().
		SumAmount(gomock.Any(), userID, gomock.Cond(func(f transaction.Filter) bool {
			return f.StartDate != nil && f.StartDate.Equal(start) &&
				f.EndDate != nil && f.EndDate.Equal(end)
		})).
		Return(decimal.Zero, nil).
		Times(2)
	ledger.EXPECT().
		SumByCategory(gomock.Any(), userID, gomock.Any()).
		Return(nil, nil)

	svc := report.NewService(ledger, clock.Fixed(now))
	got, err := svc.Yearly(context.Background(), userID, 2024)

	require.NoError(t, err)
	assert.True(t, got.Net.IsZero())
	assert.Empty(t, got.ByCategory)
}
