package recurring

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nlithgow/vatu/internal/recurring"
	"github.com/nlithgow/vatu/internal/transaction"
)

type templateResponse struct {
	ID             uuid.UUID           `json:"id"`
	Name           string              `json:"name"`
	Description    string              `json:"description,omitempty"`
	Amount         decimal.Decimal     `json:"amount"`
	Category       string              `json:"category"`
	Type           transaction.Type    `json:"type"`
	Frequency      recurring.Frequency `json:"frequency"`
	StartDate      string              `json:"start_date"`
	EndDate        *string             `json:"end_date,omitempty"`
	NextOccurrence string              `json:"next_occurrence"`
	DaysUntilNext  int                 `json:"days_until_next"`
	IsOverdue      bool                `json:"is_overdue"`
	Status         recurring.Status    `json:"status"`
	CountCreated   int                 `json:"count_created"`
	MaxOccurrences *int                `json:"max_occurrences,omitempty"`
	LastCreated    *time.Time          `json:"last_created,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      *time.Time          `json:"updated_at,omitempty"`
}

func toResponse(t *recurring.Template, today time.Time) templateResponse {
	resp := templateResponse{
		ID:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		Amount:         t.Amount,
		Category:       t.Category,
		Type:           t.Type,
		Frequency:      t.Frequency,
		StartDate:      t.StartDate.Format(time.DateOnly),
		NextOccurrence: t.NextOccurrence.Format(time.DateOnly),
		DaysUntilNext:  t.DaysUntilNext(today),
		IsOverdue:      t.IsOverdue(today),
		Status:         t.Status,
		CountCreated:   t.CountCreated,
		MaxOccurrences: t.MaxOccurrences,
		LastCreated:    t.LastCreated,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}

	if t.EndDate != nil {
		end := t.EndDate.Format(time.DateOnly)
		resp.EndDate = &end
	}

	return resp
}

func toResponseList(templates []*recurring.Template, today time.Time) []templateResponse {
	resp := make([]templateResponse, len(templates))
	for i, t := range templates {
		resp[i] = toResponse(t, today)
	}

	return resp
}

type transactionResponse struct {
	ID          uuid.UUID        `json:"id"`
	Date        string           `json:"date"`
	Description string           `json:"description"`
	Amount      decimal.Decimal  `json:"amount"`
	Category    string           `json:"category"`
	Type        transaction.Type `json:"type"`
}

func toTransactionResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Date:        tx.Date.Format(time.DateOnly),
		Description: tx.Description,
		Amount:      tx.Amount,
		Category:    tx.Category,
		Type:        tx.Type,
	}
}

type batchItemResponse struct {
	TemplateID  uuid.UUID            `json:"template_id"`
	Name        string               `json:"name"`
	Transaction *transactionResponse `json:"transaction,omitempty"`
	Error       string               `json:"error,omitempty"`
}

type batchResponse struct {
	Processed int                 `json:"processed"`
	Failed    int                 `json:"failed"`
	Items     []batchItemResponse `json:"items"`
}

func toBatchResponse(result *recurring.BatchResult) batchResponse {
	resp := batchResponse{
		Processed: result.Processed,
		Failed:    result.Failed,
		Items:     make([]batchItemResponse, len(result.Items)),
	}

	for i, item := range result.Items {
		resp.Items[i] = batchItemResponse{
			TemplateID: item.TemplateID,
			Name:       item.Name,
			Error:      item.Error,
		}

		if item.Transaction != nil {
			tx := toTransactionResponse(item.Transaction)
			resp.Items[i].Transaction = &tx
		}
	}

	return resp
}
