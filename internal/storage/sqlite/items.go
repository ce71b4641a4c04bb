package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/splitcart/splitcart/internal/models"
	"github.com/splitcart/splitcart/internal/storage"
)

// CreateItem persists a new item to the database.
func (s *SQLiteStore) CreateItem(ctx context.Context, item *models.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO items (id, list_id, name, price, completed, paid_by) VALUES (?, ?, ?, ?, ?, ?)",
		item.ID, item.ListID, item.Name, priceArg(item.Price), item.Completed, payerArg(item.PaidBy),
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	return nil
}

// GetItem retrieves an item by ID.
func (s *SQLiteStore) GetItem(ctx context.Context, id string) (*models.Item, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, list_id, name, price, completed, paid_by FROM items WHERE id = ?",
		id,
	)

	item, err := scanItem(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("item %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

// UpdateItem replaces an existing item record in full.
func (s *SQLiteStore) UpdateItem(ctx context.Context, item *models.Item) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE items SET name = ?, price = ?, completed = ?, paid_by = ? WHERE id = ?",
		item.Name, priceArg(item.Price), item.Completed, payerArg(item.PaidBy), item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check item update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("item %s: %w", item.ID, storage.ErrNotFound)
	}

	return nil
}

// ItemsForList returns all items on a list in insertion (rowid) order.
func (s *SQLiteStore) ItemsForList(ctx context.Context, listID string) ([]*models.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, list_id, name, price, completed, paid_by FROM items WHERE list_id = ? ORDER BY rowid",
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return items, nil
}

// scanItem reads one item row, converting the nullable TEXT price column
// into an exact decimal.
func scanItem(scan func(...interface{}) error) (*models.Item, error) {
	item := &models.Item{}
	var price, paidBy sql.NullString

	if err := scan(&item.ID, &item.ListID, &item.Name, &price, &item.Completed, &paidBy); err != nil {
		return nil, err
	}

	if price.Valid {
		d, err := decimal.NewFromString(price.String)
		if err != nil {
			return nil, fmt.Errorf("corrupt price %q: %w", price.String, err)
		}
		item.Price = &d
	}
	if paidBy.Valid {
		item.PaidBy = &paidBy.String
	}

	return item, nil
}

func priceArg(price *decimal.Decimal) interface{} {
	if price == nil {
		return nil
	}
	return price.String()
}

func payerArg(paidBy *string) interface{} {
	if paidBy == nil {
		return nil
	}
	return *paidBy
}
