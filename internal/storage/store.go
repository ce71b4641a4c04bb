// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/splitcart/splitcart/internal/models"
)

// ErrNotFound is returned (wrapped) by any lookup whose target does not
// exist. Callers branch with errors.Is; it is the only typed error the
// storage layer exposes.
var ErrNotFound = errors.New("not found")

// Store defines the interface for Splitcart's persistence operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// an in-memory fake for tests) without changing the service layer.
type Store interface {
	// CreateUser persists a new user. The user's ID must already be set.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetUserByUsername retrieves a user by their unique username.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// CreateList persists a new list and adds its creator as the first
	// member. ID, code and timestamp are assigned by the store if unset.
	CreateList(ctx context.Context, list *models.List) error

	// GetList retrieves a list by ID.
	GetList(ctx context.Context, id string) (*models.List, error)

	// GetListByCode retrieves the list with exactly the given join code.
	// Matching is case-sensitive.
	GetListByCode(ctx context.Context, code string) (*models.List, error)

	// ListsForUser returns every list the user is a member of.
	ListsForUser(ctx context.Context, userID string) ([]*models.List, error)

	// AddListMember adds a user to a list's member set. Adding an existing
	// member is a no-op.
	AddListMember(ctx context.Context, listID, userID string) error

	// ListMembers returns the user IDs of a list's members.
	ListMembers(ctx context.Context, listID string) ([]string, error)

	// CreateItem persists a new item. ID is assigned by the store if unset.
	CreateItem(ctx context.Context, item *models.Item) error

	// GetItem retrieves an item by ID.
	GetItem(ctx context.Context, id string) (*models.Item, error)

	// UpdateItem replaces an existing item record in full.
	UpdateItem(ctx context.Context, item *models.Item) error

	// ItemsForList returns all items on a list in insertion order.
	ItemsForList(ctx context.Context, listID string) ([]*models.Item, error)

	// CreateDebt persists a new debt record. Prior debts for the same list
	// are never touched; settlement history accumulates.
	CreateDebt(ctx context.Context, debt *models.Debt) error

	// GetDebt retrieves a debt by ID.
	GetDebt(ctx context.Context, id string) (*models.Debt, error)

	// SettleDebt marks a debt as settled and returns the updated record.
	// Settling an already-settled debt is a no-op.
	SettleDebt(ctx context.Context, id string) (*models.Debt, error)

	// DebtsForList returns all debts recorded for a list, oldest first.
	DebtsForList(ctx context.Context, listID string) ([]*models.Debt, error)

	// Close releases any resources held by the store.
	Close() error
}
