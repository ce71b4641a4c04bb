package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splitcart/splitcart/internal/models"
	"github.com/splitcart/splitcart/internal/service"
)

// DebtHandler handles HTTP requests for settlement computation and debts.
type DebtHandler struct {
	service service.DebtServiceProvider
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(service service.DebtServiceProvider) *DebtHandler {
	return &DebtHandler{service: service}
}

// GetForList returns every debt recorded for a list, settled or not.
func (h *DebtHandler) GetForList(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "id")

	debts, err := h.service.DebtsForList(r.Context(), listID)
	if err != nil {
		slog.Error("Failed to list debts", "list_id", listID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load debts")
		return
	}
	if debts == nil {
		debts = []*models.Debt{}
	}

	writeJSON(w, http.StatusOK, debts)
}

// Calculate runs a settlement computation for a list and returns the newly
// created debts. Each invocation appends a fresh debt set; earlier records
// are never replaced.
func (h *DebtHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "id")

	debts, err := h.service.ComputeAndRecord(r.Context(), listID)
	if err != nil {
		writeServiceError(w, err, "list not found")
		return
	}
	if debts == nil {
		debts = []*models.Debt{}
	}

	writeJSON(w, http.StatusCreated, debts)
}

// Settle marks a debt as paid. Settling twice is a no-op that still
// returns the (settled) debt.
func (h *DebtHandler) Settle(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "id")

	debt, err := h.service.Settle(r.Context(), debtID)
	if err != nil {
		writeServiceError(w, err, "debt not found")
		return
	}

	writeJSON(w, http.StatusOK, debt)
}
