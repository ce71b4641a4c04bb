package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/splitcart/splitcart/internal/models"
	"github.com/splitcart/splitcart/internal/service"
)

// ItemHandler handles HTTP requests for item management.
type ItemHandler struct {
	service service.ItemServiceProvider
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service service.ItemServiceProvider) *ItemHandler {
	return &ItemHandler{service: service}
}

// AddItemPayload defines the structure for item creation requests.
// Price arrives as a decimal string; float inputs are rejected by parsing.
type AddItemPayload struct {
	Name   string           `json:"name"`
	Price  *decimal.Decimal `json:"price"`
	PaidBy *string          `json:"paidBy"`
}

// UpdateItemPayload defines the structure for partial item updates.
// Absent fields are left unchanged.
type UpdateItemPayload struct {
	Name      *string          `json:"name"`
	Price     *decimal.Decimal `json:"price"`
	Completed *bool            `json:"completed"`
	PaidBy    *string          `json:"paidBy"`
}

// GetForList returns all items on a list.
func (h *ItemHandler) GetForList(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "id")

	items, err := h.service.ItemsForList(r.Context(), listID)
	if err != nil {
		slog.Error("Failed to list items", "list_id", listID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load items")
		return
	}
	if items == nil {
		items = []*models.Item{}
	}

	writeJSON(w, http.StatusOK, items)
}

// Add creates a new item on a list.
func (h *ItemHandler) Add(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "id")

	var payload AddItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if payload.Price != nil && payload.Price.IsNegative() {
		writeError(w, http.StatusBadRequest, "price must not be negative")
		return
	}

	item, err := h.service.Add(r.Context(), listID, payload.Name, payload.Price, payload.PaidBy)
	if err != nil {
		writeServiceError(w, err, "list not found")
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// Update applies a partial update to an item.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")

	var payload UpdateItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Name != nil && *payload.Name == "" {
		writeError(w, http.StatusBadRequest, "name must not be empty")
		return
	}
	if payload.Price != nil && payload.Price.IsNegative() {
		writeError(w, http.StatusBadRequest, "price must not be negative")
		return
	}

	item, err := h.service.Update(r.Context(), itemID, service.ItemUpdate{
		Name:      payload.Name,
		Price:     payload.Price,
		Completed: payload.Completed,
		PaidBy:    payload.PaidBy,
	})
	if err != nil {
		writeServiceError(w, err, "item not found")
		return
	}

	writeJSON(w, http.StatusOK, item)
}
