package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/nlithgow/vatu/internal/database"
	"github.com/nlithgow/vatu/internal/envelope"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const uniqueViolation = "23505"

const selectEnvelopeColumns = `
	e.id, e.user_id, e.category_id, c.name, e.budgeted_amount, e.created_at, e.updated_at
`

type scanner interface {
	Scan(dest ...any) error
}

func scanEnvelope(s scanner) (*envelope.Envelope, error) {
	var e envelope.Envelope

	if err := s.Scan(
		&e.ID, &e.UserID, &e.CategoryID, &e.CategoryName,
		&e.Budgeted, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &e, nil
}

func (s *Store) CreateEnvelope(ctx context.Context, e *envelope.Envelope) error {
	query := `
		INSERT INTO envelopes (user_id, category_id, budgeted_amount)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, e.UserID, e.CategoryID, e.Budgeted).
		Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return envelope.ErrDuplicate
		}

		return fmt.Errorf("creating envelope: %w", err)
	}

	return nil
}

func (s *Store) GetEnvelope(ctx context.Context, userID, id uuid.UUID) (*envelope.Envelope, error) {
	query := `SELECT ` + selectEnvelopeColumns + `
		FROM envelopes e
		JOIN categories c ON e.category_id = c.id
		WHERE e.id = $1 AND e.user_id = $2`

	e, err := scanEnvelope(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, envelope.ErrNotFound
		}

		return nil, fmt.Errorf("getting envelope: %w", err)
	}

	return e, nil
}

const listEnvelopesQuery = `SELECT ` + selectEnvelopeColumns + `
	FROM envelopes e
	JOIN categories c ON e.category_id = c.id
	WHERE e.user_id = $1
	ORDER BY c.name ASC`

func (s *Store) ListEnvelopes(ctx context.Context, userID uuid.UUID) ([]*envelope.Envelope, error) {
	rows, err := s.db.QueryContext(ctx, listEnvelopesQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("listing envelopes: %w", err)
	}
	defer rows.Close()

	return collectEnvelopes(rows)
}

func collectEnvelopes(rows *sql.Rows) ([]*envelope.Envelope, error) {
	var envelopes []*envelope.Envelope

	for rows.Next() {
		e, err := scanEnvelope(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning envelope: %w", err)
		}

		envelopes = append(envelopes, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating envelope rows: %w", err)
	}

	return envelopes, nil
}

func (s *Store) UpdateBudget(ctx context.Context, userID, id uuid.UUID, budgeted decimal.Decimal) (*envelope.Envelope, error) {
	query := `
		UPDATE envelopes
		SET budgeted_amount = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
	`

	res, err := s.db.ExecContext(ctx, query, budgeted, id, userID)
	if err != nil {
		return nil, fmt.Errorf("updating envelope budget: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating envelope budget: %w", err)
	}

	if affected == 0 {
		return nil, envelope.ErrNotFound
	}

	return s.GetEnvelope(ctx, userID, id)
}

func (s *Store) DeleteEnvelope(ctx context.Context, userID, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM envelopes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting envelope: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting envelope: %w", err)
	}

	if affected == 0 {
		return envelope.ErrNotFound
	}

	return nil
}

type rolloverTx struct {
	tx     *sql.Tx
	userID uuid.UUID
}

// BeginRollover opens a transaction and takes the per-user advisory lock,
// so a concurrent rollover or recurring materialization for the same user
// waits until this one commits or rolls back.
func (s *Store) BeginRollover(ctx context.Context, userID uuid.UUID) (envelope.RolloverTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning rollover tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", database.UserLockKey(userID)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring user lock: %w", err)
	}

	return &rolloverTx{tx: dbTx, userID: userID}, nil
}

func (rtx *rolloverTx) Commit() error   { return rtx.tx.Commit() }
func (rtx *rolloverTx) Rollback() error { return rtx.tx.Rollback() }

func (rtx *rolloverTx) ListEnvelopes(ctx context.Context) ([]*envelope.Envelope, error) {
	rows, err := rtx.tx.QueryContext(ctx, listEnvelopesQuery, rtx.userID)
	if err != nil {
		return nil, fmt.Errorf("listing envelopes: %w", err)
	}
	defer rows.Close()

	return collectEnvelopes(rows)
}

func (rtx *rolloverTx) SumExpenses(ctx context.Context, categoryName string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND category = $2 AND type = 'expense'
	`

	var total decimal.Decimal
	if err := rtx.tx.QueryRowContext(ctx, query, rtx.userID, categoryName).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("summing expenses: %w", err)
	}

	return total, nil
}

func (rtx *rolloverTx) UpdateBudget(ctx context.Context, id uuid.UUID, budgeted decimal.Decimal) error {
	query := `
		UPDATE envelopes
		SET budgeted_amount = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
	`

	if _, err := rtx.tx.ExecContext(ctx, query, budgeted, id, rtx.userID); err != nil {
		return fmt.Errorf("updating envelope budget: %w", err)
	}

	return nil
}
