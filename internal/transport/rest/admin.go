package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/glyphdict/glyphdict-backend/internal/service/catalog"
	"github.com/glyphdict/glyphdict-backend/internal/transport/middleware"
)

// AdminHandler serves the moderation endpoints. Authorization is enforced
// twice: a fast check here and the authoritative one inside the service.
type AdminHandler struct {
	catalog catalogService
	log     *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(catalog catalogService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		catalog: catalog,
		log:     logger.With("handler", "admin"),
	}
}

type entryRequest struct {
	Semantic string `json:"semantic"`
	Icon     string `json:"icon"`
}

type deleteRequest struct {
	Semantic string `json:"semantic"`
}

type applyRequest struct {
	ID string `json:"id"`
}

// CreateEntry adds a new collection entry.
// POST /api/admin/entries
func (h *AdminHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	_, err := h.catalog.CreateEntry(r.Context(), catalog.EntryInput{
		Semantic: req.Semantic,
		Icon:     req.Icon,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// UpdateEntry replaces the icon of an existing entry.
// PUT /api/admin/entries
func (h *AdminHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	_, err := h.catalog.UpdateEntry(r.Context(), catalog.UpdateEntryInput{
		Semantic: req.Semantic,
		Icon:     req.Icon,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// DeleteEntry removes an entry from the collection.
// DELETE /api/admin/entries
func (h *AdminHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	err := h.catalog.DeleteEntry(r.Context(), catalog.DeleteEntryInput{Semantic: req.Semantic})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// Apply makes a pending proposal take effect.
// POST /api/admin/apply
func (h *AdminHandler) Apply(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	if err := h.catalog.Apply(r.Context(), id); err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(r.Context(), w, h.log, err)
		return false
	}
	return true
}
