package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/splitcart/splitcart/internal/calculator"
	"github.com/splitcart/splitcart/internal/models"
	"github.com/splitcart/splitcart/internal/storage"
)

// DebtServiceProvider defines the interface for debt services.
type DebtServiceProvider interface {
	ComputeAndRecord(ctx context.Context, listID string) ([]*models.Debt, error)
	DebtsForList(ctx context.Context, listID string) ([]*models.Debt, error)
	Settle(ctx context.Context, debtID string) (*models.Debt, error)
}

// DebtService runs settlement computations and manages debt lifecycle.
type DebtService struct {
	store storage.Store
}

// NewDebtService creates a new DebtService with the given storage backend.
func NewDebtService(store storage.Store) *DebtService {
	return &DebtService{store: store}
}

// ComputeAndRecord loads a list's items, derives per-payer totals, generates
// pairwise equalization debts and persists each as a new record. Debts from
// earlier runs are left untouched; repeated invocation accumulates history.
// Callers that cannot tolerate duplicate debt sets must gate repeated or
// concurrent invocation themselves; the core does not serialize the
// read-compute-write sequence.
func (s *DebtService) ComputeAndRecord(ctx context.Context, listID string) ([]*models.Debt, error) {
	if _, err := s.store.GetList(ctx, listID); err != nil {
		return nil, err
	}

	items, err := s.store.ItemsForList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	flat := make([]models.Item, len(items))
	for i, item := range items {
		flat[i] = *item
	}

	totals := calculator.ComputeTotals(flat)
	generated := calculator.GenerateDebts(listID, totals)

	recorded := make([]*models.Debt, 0, len(generated))
	for i := range generated {
		debt := generated[i]
		if err := s.store.CreateDebt(ctx, &debt); err != nil {
			return nil, fmt.Errorf("failed to record debt: %w", err)
		}
		recorded = append(recorded, &debt)
	}

	slog.Info("Settlement computed",
		"list_id", listID,
		"payers", len(totals),
		"debts_created", len(recorded),
	)
	return recorded, nil
}

// DebtsForList returns all debts ever recorded for a list, settled or not.
func (s *DebtService) DebtsForList(ctx context.Context, listID string) ([]*models.Debt, error) {
	return s.store.DebtsForList(ctx, listID)
}

// Settle marks a debt as paid. The transition is one-way and idempotent:
// settling an already-settled debt succeeds without changing anything.
// Returns storage.ErrNotFound (wrapped) for unknown IDs.
func (s *DebtService) Settle(ctx context.Context, debtID string) (*models.Debt, error) {
	debt, err := s.store.SettleDebt(ctx, debtID)
	if err != nil {
		return nil, err
	}

	slog.Info("Debt settled", "debt_id", debt.ID, "list_id", debt.ListID)
	return debt, nil
}
