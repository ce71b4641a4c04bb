package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/splitcart/splitcart/internal/models"
	"github.com/splitcart/splitcart/internal/storage"
)

// CreateDebt persists a new debt record. Earlier debts for the same list
// are never modified; settlement history accumulates.
func (s *SQLiteStore) CreateDebt(ctx context.Context, debt *models.Debt) error {
	if debt.ID == "" {
		debt.ID = uuid.New().String()
	}
	if debt.CreatedAt == 0 {
		debt.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO debts (id, list_id, from_user, to_user, amount, settled, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		debt.ID, debt.ListID, debt.FromUser, debt.ToUser,
		debt.Amount.String(), debt.Settled, debt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert debt: %w", err)
	}

	return nil
}

// GetDebt retrieves a debt by ID.
func (s *SQLiteStore) GetDebt(ctx context.Context, id string) (*models.Debt, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, list_id, from_user, to_user, amount, settled, created_at FROM debts WHERE id = ?",
		id,
	)

	debt, err := scanDebt(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("debt %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get debt: %w", err)
	}

	return debt, nil
}

// SettleDebt flips a debt to settled and returns the updated record.
// The transition is one-way; settling an already-settled debt leaves the
// row unchanged and is not an error.
func (s *SQLiteStore) SettleDebt(ctx context.Context, id string) (*models.Debt, error) {
	res, err := s.db.ExecContext(ctx, "UPDATE debts SET settled = 1 WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to settle debt: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check debt update: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("debt %s: %w", id, storage.ErrNotFound)
	}

	return s.GetDebt(ctx, id)
}

// DebtsForList returns all debts recorded for a list, oldest first.
func (s *SQLiteStore) DebtsForList(ctx context.Context, listID string) ([]*models.Debt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, list_id, from_user, to_user, amount, settled, created_at
		 FROM debts WHERE list_id = ? ORDER BY created_at, rowid`,
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var debts []*models.Debt
	for rows.Next() {
		debt, err := scanDebt(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, debt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate debts: %w", err)
	}

	return debts, nil
}

func scanDebt(scan func(...interface{}) error) (*models.Debt, error) {
	debt := &models.Debt{}
	var amount string

	if err := scan(&debt.ID, &debt.ListID, &debt.FromUser, &debt.ToUser,
		&amount, &debt.Settled, &debt.CreatedAt); err != nil {
		return nil, err
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("corrupt amount %q: %w", amount, err)
	}
	debt.Amount = d

	return debt, nil
}
