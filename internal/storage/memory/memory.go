// Package memory provides an in-memory storage.Store used by tests.
//
// It mirrors the SQLite store's observable behavior (ErrNotFound wrapping,
// idempotent membership, insertion-ordered listings) without touching disk.
// Not safe for production use; the maps are guarded by a single mutex and
// nothing survives a restart.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/splitcart/splitcart/internal/models"
	"github.com/splitcart/splitcart/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store is an in-memory implementation of storage.Store.
type Store struct {
	mu sync.Mutex

	users   map[string]*models.User
	lists   map[string]*models.List
	items   map[string]*models.Item
	debts   map[string]*models.Debt
	members map[string][]string // listID -> userIDs, insertion order

	itemOrder []string
	debtOrder []string
	listOrder []string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users:   make(map[string]*models.User),
		lists:   make(map[string]*models.List),
		items:   make(map[string]*models.Item),
		debts:   make(map[string]*models.Debt),
		members: make(map[string][]string),
	}
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

// CreateUser stores a new user.
func (s *Store) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt == 0 {
		user.CreatedAt = time.Now().Unix()
	}
	for _, u := range s.users {
		if u.Username == user.Username {
			return fmt.Errorf("username %s already taken", user.Username)
		}
		if user.Email != "" && u.Email == user.Email {
			return fmt.Errorf("email %s already registered", user.Email)
		}
	}

	copied := *user
	s.users[user.ID] = &copied
	return nil
}

// GetUserByID retrieves a user by ID.
func (s *Store) GetUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, storage.ErrNotFound)
	}
	copied := *user
	return &copied, nil
}

// GetUserByUsername retrieves a user by username.
func (s *Store) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", username, storage.ErrNotFound)
}

// GetUserByEmail retrieves a user by email.
func (s *Store) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email != "" && user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, storage.ErrNotFound)
}

// CreateList stores a new list and enrolls the creator.
func (s *Store) CreateList(_ context.Context, list *models.List) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if list.ID == "" {
		list.ID = uuid.New().String()
	}
	if list.CreatedAt == 0 {
		list.CreatedAt = time.Now().Unix()
	}

	copied := *list
	s.lists[list.ID] = &copied
	s.listOrder = append(s.listOrder, list.ID)
	s.members[list.ID] = []string{list.CreatedBy}
	return nil
}

// GetList retrieves a list by ID.
func (s *Store) GetList(_ context.Context, id string) (*models.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getListLocked(id)
}

func (s *Store) getListLocked(id string) (*models.List, error) {
	list, ok := s.lists[id]
	if !ok {
		return nil, fmt.Errorf("list %s: %w", id, storage.ErrNotFound)
	}
	copied := *list
	return &copied, nil
}

// GetListByCode retrieves the list with exactly the given join code.
func (s *Store) GetListByCode(_ context.Context, code string) (*models.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.listOrder {
		if s.lists[id].Code == code {
			copied := *s.lists[id]
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("list with code %s: %w", code, storage.ErrNotFound)
}

// ListsForUser returns every list the user belongs to, oldest first.
func (s *Store) ListsForUser(_ context.Context, userID string) ([]*models.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lists []*models.List
	for _, id := range s.listOrder {
		for _, member := range s.members[id] {
			if member == userID {
				copied := *s.lists[id]
				lists = append(lists, &copied)
				break
			}
		}
	}
	return lists, nil
}

// AddListMember adds a user to a list's member set; re-adding is a no-op.
func (s *Store) AddListMember(_ context.Context, listID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lists[listID]; !ok {
		return fmt.Errorf("list %s: %w", listID, storage.ErrNotFound)
	}
	for _, member := range s.members[listID] {
		if member == userID {
			return nil
		}
	}
	s.members[listID] = append(s.members[listID], userID)
	return nil
}

// ListMembers returns the user IDs of a list's members.
func (s *Store) ListMembers(_ context.Context, listID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	members := make([]string, len(s.members[listID]))
	copy(members, s.members[listID])
	return members, nil
}

// CreateItem stores a new item.
func (s *Store) CreateItem(_ context.Context, item *models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	copied := *item
	s.items[item.ID] = &copied
	s.itemOrder = append(s.itemOrder, item.ID)
	return nil
}

// GetItem retrieves an item by ID.
func (s *Store) GetItem(_ context.Context, id string) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("item %s: %w", id, storage.ErrNotFound)
	}
	copied := *item
	return &copied, nil
}

// UpdateItem replaces an existing item record.
func (s *Store) UpdateItem(_ context.Context, item *models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item.ID]; !ok {
		return fmt.Errorf("item %s: %w", item.ID, storage.ErrNotFound)
	}
	copied := *item
	s.items[item.ID] = &copied
	return nil
}

// ItemsForList returns a list's items in insertion order.
func (s *Store) ItemsForList(_ context.Context, listID string) ([]*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []*models.Item
	for _, id := range s.itemOrder {
		if s.items[id].ListID == listID {
			copied := *s.items[id]
			items = append(items, &copied)
		}
	}
	return items, nil
}

// CreateDebt stores a new debt record.
func (s *Store) CreateDebt(_ context.Context, debt *models.Debt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if debt.ID == "" {
		debt.ID = uuid.New().String()
	}
	if debt.CreatedAt == 0 {
		debt.CreatedAt = time.Now().Unix()
	}

	copied := *debt
	s.debts[debt.ID] = &copied
	s.debtOrder = append(s.debtOrder, debt.ID)
	return nil
}

// GetDebt retrieves a debt by ID.
func (s *Store) GetDebt(_ context.Context, id string) (*models.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	debt, ok := s.debts[id]
	if !ok {
		return nil, fmt.Errorf("debt %s: %w", id, storage.ErrNotFound)
	}
	copied := *debt
	return &copied, nil
}

// SettleDebt flips a debt to settled; already-settled debts stay settled.
func (s *Store) SettleDebt(_ context.Context, id string) (*models.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	debt, ok := s.debts[id]
	if !ok {
		return nil, fmt.Errorf("debt %s: %w", id, storage.ErrNotFound)
	}
	debt.Settled = true
	copied := *debt
	return &copied, nil
}

// DebtsForList returns a list's debts in insertion order.
func (s *Store) DebtsForList(_ context.Context, listID string) ([]*models.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var debts []*models.Debt
	for _, id := range s.debtOrder {
		if s.debts[id].ListID == listID {
			copied := *s.debts[id]
			debts = append(debts, &copied)
		}
	}
	return debts, nil
}
