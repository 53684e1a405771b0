package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nlithgow/vatu/internal/database"
	"github.com/nlithgow/vatu/internal/recurring"
	"github.com/nlithgow/vatu/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectTemplateColumns = `
	id, user_id, name, description, amount, category, type, frequency,
	start_date, end_date, next_occurrence, status, count_created,
	max_occurrences, last_created, created_at, updated_at
`

type scanner interface {
	Scan(dest ...any) error
}

func scanTemplate(s scanner) (*recurring.Template, error) {
	var t recurring.Template

	var typeStr, freqStr, statusStr string

	var endDate sql.NullTime

	var maxOccurrences sql.NullInt64

	if err := s.Scan(
		&t.ID, &t.UserID, &t.Name, &t.Description, &t.Amount, &t.Category,
		&typeStr, &freqStr, &t.StartDate, &endDate, &t.NextOccurrence,
		&statusStr, &t.CountCreated, &maxOccurrences, &t.LastCreated,
		&t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}

	t.Type = transaction.Type(typeStr)
	t.Frequency = recurring.Frequency(freqStr)
	t.Status = recurring.Status(statusStr)

	if endDate.Valid {
		t.EndDate = &endDate.Time
	}

	if maxOccurrences.Valid {
		n := int(maxOccurrences.Int64)
		t.MaxOccurrences = &n
	}

	return &t, nil
}

func (s *Store) CreateTemplate(ctx context.Context, t *recurring.Template) error {
	query := `
		INSERT INTO recurring_transactions
			(user_id, name, description, amount, category, type, frequency,
			 start_date, end_date, next_occurrence, status, max_occurrences)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		t.UserID, t.Name, t.Description, t.Amount, t.Category, t.Type,
		t.Frequency, t.StartDate, t.EndDate, t.NextOccurrence, t.Status,
		t.MaxOccurrences,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating recurring transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTemplate(ctx context.Context, userID, id uuid.UUID) (*recurring.Template, error) {
	query := `SELECT ` + selectTemplateColumns + `
		FROM recurring_transactions
		WHERE id = $1 AND user_id = $2`

	t, err := scanTemplate(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, recurring.ErrNotFound
		}

		return nil, fmt.Errorf("getting recurring transaction: %w", err)
	}

	return t, nil
}

func (s *Store) ListTemplates(ctx context.Context, userID uuid.UUID) ([]*recurring.Template, error) {
	query := `SELECT ` + selectTemplateColumns + `
		FROM recurring_transactions
		WHERE user_id = $1
		ORDER BY next_occurrence ASC`

	return s.queryTemplates(ctx, query, userID)
}

func (s *Store) ListDue(ctx context.Context, userID uuid.UUID, before time.Time) ([]*recurring.Template, error) {
	query := `SELECT ` + selectTemplateColumns + `
		FROM recurring_transactions
		WHERE user_id = $1 AND status = 'active' AND next_occurrence < $2
		ORDER BY next_occurrence ASC`

	return s.queryTemplates(ctx, query, userID, before)
}

func (s *Store) ListUpcoming(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*recurring.Template, error) {
	query := `SELECT ` + selectTemplateColumns + `
		FROM recurring_transactions
		WHERE user_id = $1 AND status = 'active' AND next_occurrence >= $2 AND next_occurrence <= $3
		ORDER BY next_occurrence ASC`

	return s.queryTemplates(ctx, query, userID, from, to)
}

func (s *Store) queryTemplates(ctx context.Context, query string, args ...any) ([]*recurring.Template, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing recurring transactions: %w", err)
	}
	defer rows.Close()

	var templates []*recurring.Template

	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning recurring transaction: %w", err)
		}

		templates = append(templates, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recurring transaction rows: %w", err)
	}

	return templates, nil
}

const updateTemplateQuery = `
	UPDATE recurring_transactions
	SET name = $1, description = $2, amount = $3, category = $4,
		frequency = $5, end_date = $6, next_occurrence = $7, status = $8,
		count_created = $9, max_occurrences = $10, last_created = $11,
		updated_at = NOW()
	WHERE id = $12 AND user_id = $13
`

func (s *Store) UpdateTemplate(ctx context.Context, t *recurring.Template) error {
	res, err := s.db.ExecContext(ctx, updateTemplateQuery,
		t.Name, t.Description, t.Amount, t.Category, t.Frequency,
		t.EndDate, t.NextOccurrence, t.Status, t.CountCreated,
		t.MaxOccurrences, t.LastCreated, t.ID, t.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating recurring transaction: %w", err)
	}

	return checkFound(res)
}

func (s *Store) DeleteTemplate(ctx context.Context, userID, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM recurring_transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting recurring transaction: %w", err)
	}

	return checkFound(res)
}

func checkFound(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}

	if affected == 0 {
		return recurring.ErrNotFound
	}

	return nil
}

type materializeTx struct {
	tx     *sql.Tx
	userID uuid.UUID
}

// BeginMaterialize opens a transaction holding the per-user advisory
// lock shared with envelope rollover, so schedule advancement and budget
// rollover for the same user never interleave.
func (s *Store) BeginMaterialize(ctx context.Context, userID uuid.UUID) (recurring.MaterializeTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning materialize tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", database.UserLockKey(userID)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring user lock: %w", err)
	}

	return &materializeTx{tx: dbTx, userID: userID}, nil
}

func (mtx *materializeTx) Commit() error   { return mtx.tx.Commit() }
func (mtx *materializeTx) Rollback() error { return mtx.tx.Rollback() }

func (mtx *materializeTx) GetTemplate(ctx context.Context, id uuid.UUID) (*recurring.Template, error) {
	query := `SELECT ` + selectTemplateColumns + `
		FROM recurring_transactions
		WHERE id = $1 AND user_id = $2`

	t, err := scanTemplate(mtx.tx.QueryRowContext(ctx, query, id, mtx.userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, recurring.ErrNotFound
		}

		return nil, fmt.Errorf("getting recurring transaction: %w", err)
	}

	return t, nil
}

func (mtx *materializeTx) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, date, description, amount, category, type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := mtx.tx.QueryRowContext(ctx, query,
		tx.UserID, tx.Date, tx.Description, tx.Amount, tx.Category, tx.Type,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (mtx *materializeTx) UpdateTemplate(ctx context.Context, t *recurring.Template) error {
	res, err := mtx.tx.ExecContext(ctx, updateTemplateQuery,
		t.Name, t.Description, t.Amount, t.Category, t.Frequency,
		t.EndDate, t.NextOccurrence, t.Status, t.CountCreated,
		t.MaxOccurrences, t.LastCreated, t.ID, t.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating recurring transaction: %w", err)
	}

	return checkFound(res)
}
