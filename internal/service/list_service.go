// Package service contains Splitcart's business logic, layered between the
// HTTP handlers and the storage.Store interface.
package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/splitcart/splitcart/internal/models"
	"github.com/splitcart/splitcart/internal/storage"
)

// Join codes are short enough to type and drawn from an unambiguous
// alphanumeric alphabet. 62^6 combinations is plenty for the expected list
// volume; the UNIQUE column constraint backstops the birthday bound.
const (
	joinCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	joinCodeLength   = 6
)

// ListServiceProvider defines the interface for list services.
type ListServiceProvider interface {
	Create(ctx context.Context, name, creatorID string) (*models.List, error)
	JoinByCode(ctx context.Context, code, userID string) (*models.List, error)
	ListsForUser(ctx context.Context, userID string) ([]*models.List, error)
	AddMember(ctx context.Context, listID, userID string) error
}

// ListService provides business logic for list management.
type ListService struct {
	store storage.Store
}

// NewListService creates a new ListService with the given storage backend.
func NewListService(store storage.Store) *ListService {
	return &ListService{store: store}
}

// Create makes a new list owned by creatorID, assigning a fresh join code.
// The creator becomes the first member.
func (s *ListService) Create(ctx context.Context, name, creatorID string) (*models.List, error) {
	code, err := generateJoinCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate join code: %w", err)
	}

	list := &models.List{
		Name:      name,
		Code:      code,
		CreatedBy: creatorID,
	}
	if err := s.store.CreateList(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}

	slog.Info("List created", "list_id", list.ID, "name", list.Name, "created_by", creatorID)
	return list, nil
}

// JoinByCode looks up the list whose join code matches exactly
// (case-sensitive) and adds userID to its member set. Joining a list you
// already belong to is a no-op, not an error.
func (s *ListService) JoinByCode(ctx context.Context, code, userID string) (*models.List, error) {
	list, err := s.store.GetListByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := s.store.AddListMember(ctx, list.ID, userID); err != nil {
		return nil, fmt.Errorf("failed to join list: %w", err)
	}

	slog.Info("User joined list", "list_id", list.ID, "user_id", userID)
	return list, nil
}

// ListsForUser returns every list the user is a member of.
func (s *ListService) ListsForUser(ctx context.Context, userID string) ([]*models.List, error) {
	return s.store.ListsForUser(ctx, userID)
}

// AddMember adds a user to a list directly (without a join code).
func (s *ListService) AddMember(ctx context.Context, listID, userID string) error {
	return s.store.AddListMember(ctx, listID, userID)
}

// generateJoinCode produces a random fixed-length alphanumeric token.
func generateJoinCode() (string, error) {
	max := big.NewInt(int64(len(joinCodeAlphabet)))
	code := make([]byte, joinCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = joinCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
