package envelope

import "github.com/shopspring/decimal"

// nearLimitThreshold is the percentage of budget used at which an
// envelope is flagged as approaching its limit.
const nearLimitThreshold = 80

// Stats are the ledger-derived figures for one envelope. They are never
// stored; they are recomputed from the budgeted amount and the expense
// sum on every read.
type Stats struct {
	Spent          decimal.Decimal
	Remaining      decimal.Decimal
	PercentageUsed float64
	OverBudget     bool
	NearLimit      bool
}

// ComputeStats derives envelope stats from the budgeted amount and the
// sum of expense transactions under the envelope's category.
//
// PercentageUsed is defined as 0 when the budget is 0, whatever was
// spent. NearLimit and OverBudget are mutually exclusive: an envelope
// past its budget reports only OverBudget.
func ComputeStats(budgeted, spent decimal.Decimal) Stats {
	remaining := budgeted.Sub(spent)

	var pct float64
	if !budgeted.IsZero() {
		pct, _ = spent.Div(budgeted).Mul(decimal.NewFromInt(100)).Float64()
	}

	over := remaining.IsNegative()

	return Stats{
		Spent:          spent,
		Remaining:      remaining,
		PercentageUsed: pct,
		OverBudget:     over,
		NearLimit:      pct >= nearLimitThreshold && !over,
	}
}
