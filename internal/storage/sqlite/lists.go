package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/splitcart/splitcart/internal/models"
	"github.com/splitcart/splitcart/internal/storage"
)

// CreateList persists a new list and enrolls its creator as the first
// member, in one transaction.
func (s *SQLiteStore) CreateList(ctx context.Context, list *models.List) error {
	if list.ID == "" {
		list.ID = uuid.New().String()
	}
	if list.CreatedAt == 0 {
		list.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO lists (id, name, code, created_by, created_at) VALUES (?, ?, ?, ?, ?)",
		list.ID, list.Name, list.Code, list.CreatedBy, list.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert list: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO list_members (list_id, user_id) VALUES (?, ?)",
		list.ID, list.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert creator membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetList retrieves a list by ID.
func (s *SQLiteStore) GetList(ctx context.Context, id string) (*models.List, error) {
	return s.getList(ctx, "id = ?", id)
}

// GetListByCode retrieves the list with exactly the given join code.
// Join codes are compared byte for byte; "AbC123" and "abc123" are
// different codes.
func (s *SQLiteStore) GetListByCode(ctx context.Context, code string) (*models.List, error) {
	return s.getList(ctx, "code = ?", code)
}

func (s *SQLiteStore) getList(ctx context.Context, where string, arg interface{}) (*models.List, error) {
	list := &models.List{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, code, created_by, created_at FROM lists WHERE "+where,
		arg,
	).Scan(&list.ID, &list.Name, &list.Code, &list.CreatedBy, &list.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("list %v: %w", arg, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}

	return list, nil
}

// ListsForUser returns every list the user is a member of, oldest first.
func (s *SQLiteStore) ListsForUser(ctx context.Context, userID string) ([]*models.List, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT l.id, l.name, l.code, l.created_by, l.created_at
		 FROM lists l
		 JOIN list_members m ON m.list_id = l.id
		 WHERE m.user_id = ?
		 ORDER BY l.created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list lists for user: %w", err)
	}
	defer rows.Close()

	var lists []*models.List
	for rows.Next() {
		list := &models.List{}
		if err := rows.Scan(&list.ID, &list.Name, &list.Code, &list.CreatedBy, &list.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lists: %w", err)
	}

	return lists, nil
}

// AddListMember adds a user to a list's member set. Re-adding an existing
// member is a no-op thanks to the (list_id, user_id) primary key.
func (s *SQLiteStore) AddListMember(ctx context.Context, listID, userID string) error {
	if _, err := s.GetList(ctx, listID); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO list_members (list_id, user_id) VALUES (?, ?)",
		listID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to add list member: %w", err)
	}

	return nil
}

// ListMembers returns the user IDs of a list's members.
func (s *SQLiteStore) ListMembers(ctx context.Context, listID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id FROM list_members WHERE list_id = ? ORDER BY user_id",
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get list members: %w", err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}
