package envelope

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nlithgow/vatu/internal/envelope"
)

type envelopeResponse struct {
	ID             uuid.UUID       `json:"id"`
	CategoryID     uuid.UUID       `json:"category_id"`
	Category       string          `json:"category"`
	BudgetedAmount decimal.Decimal `json:"budgeted_amount"`
	Spent          decimal.Decimal `json:"spent"`
	Remaining      decimal.Decimal `json:"remaining"`
	PercentageUsed float64         `json:"percentage_used"`
	IsOverBudget   bool            `json:"is_over_budget"`
	IsNearLimit    bool            `json:"is_near_limit"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(v *envelope.View) envelopeResponse {
	return envelopeResponse{
		ID:             v.ID,
		CategoryID:     v.CategoryID,
		Category:       v.CategoryName,
		BudgetedAmount: v.Budgeted,
		Spent:          v.Spent,
		Remaining:      v.Remaining,
		PercentageUsed: v.PercentageUsed,
		IsOverBudget:   v.OverBudget,
		IsNearLimit:    v.NearLimit,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func toResponseList(views []envelope.View) []envelopeResponse {
	resp := make([]envelopeResponse, len(views))
	for i := range views {
		resp[i] = toResponse(&views[i])
	}

	return resp
}

type summaryResponse struct {
	TotalEnvelopes  int                `json:"total_envelopes"`
	TotalBudgeted   decimal.Decimal    `json:"total_budgeted"`
	TotalSpent      decimal.Decimal    `json:"total_spent"`
	TotalRemaining  decimal.Decimal    `json:"total_remaining"`
	OverBudgetCount int                `json:"over_budget_count"`
	NearLimitCount  int                `json:"near_limit_count"`
	Envelopes       []envelopeResponse `json:"envelopes"`
}

func toSummaryResponse(s *envelope.Summary) summaryResponse {
	return summaryResponse{
		TotalEnvelopes:  s.TotalEnvelopes,
		TotalBudgeted:   s.TotalBudgeted,
		TotalSpent:      s.TotalSpent,
		TotalRemaining:  s.TotalRemaining,
		OverBudgetCount: s.OverBudgetCount,
		NearLimitCount:  s.NearLimitCount,
		Envelopes:       toResponseList(s.Envelopes),
	}
}

type rolloverChangeResponse struct {
	EnvelopeID uuid.UUID       `json:"envelope_id"`
	Category   string          `json:"category"`
	OldBudget  decimal.Decimal `json:"old_budget"`
	NewBudget  decimal.Decimal `json:"new_budget"`
	Remaining  decimal.Decimal `json:"remaining"`
}

type rolloverResponse struct {
	ChangesMade int                      `json:"changes_made"`
	Changes     []rolloverChangeResponse `json:"changes"`
}

func toRolloverResponse(changes []envelope.RolloverChange) rolloverResponse {
	resp := rolloverResponse{
		ChangesMade: len(changes),
		Changes:     make([]rolloverChangeResponse, len(changes)),
	}

	for i, c := range changes {
		resp.Changes[i] = rolloverChangeResponse{
			EnvelopeID: c.EnvelopeID,
			Category:   c.Category,
			OldBudget:  c.OldBudget,
			NewBudget:  c.NewBudget,
			Remaining:  c.Remaining,
		}
	}

	return resp
}
