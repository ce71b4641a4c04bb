package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splitcart/splitcart/internal/middleware"
	"github.com/splitcart/splitcart/internal/models"
	"github.com/splitcart/splitcart/internal/service"
)

// ListHandler handles HTTP requests for list management.
type ListHandler struct {
	service service.ListServiceProvider
}

// NewListHandler creates a new ListHandler.
func NewListHandler(service service.ListServiceProvider) *ListHandler {
	return &ListHandler{service: service}
}

// CreateListPayload defines the structure for list creation requests.
type CreateListPayload struct {
	Name string `json:"name"`
}

// GetAll returns every list the authenticated user belongs to.
func (h *ListHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	lists, err := h.service.ListsForUser(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to list lists", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load lists")
		return
	}
	if lists == nil {
		lists = []*models.List{}
	}

	writeJSON(w, http.StatusOK, lists)
}

// Create makes a new list owned by the authenticated user.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload CreateListPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	userID := middleware.GetUserID(r.Context())
	list, err := h.service.Create(r.Context(), payload.Name, userID)
	if err != nil {
		slog.Error("Failed to create list", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create list")
		return
	}

	writeJSON(w, http.StatusCreated, list)
}

// Join adds the authenticated user to the list matching the join code.
func (h *ListHandler) Join(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	userID := middleware.GetUserID(r.Context())

	list, err := h.service.JoinByCode(r.Context(), code, userID)
	if err != nil {
		writeServiceError(w, err, "list not found")
		return
	}

	writeJSON(w, http.StatusOK, list)
}
