package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/glyphdict/glyphdict-backend/internal/domain"
	"github.com/glyphdict/glyphdict-backend/internal/service/catalog"
)

type catalogService interface {
	ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error)
	ListJournal(ctx context.Context, filter domain.JournalFilter) ([]domain.JournalRecord, error)
	Propose(ctx context.Context, input catalog.EntryInput) (domain.JournalRecord, error)
	CreateEntry(ctx context.Context, input catalog.EntryInput) (domain.Entry, error)
	UpdateEntry(ctx context.Context, input catalog.UpdateEntryInput) (domain.Entry, error)
	DeleteEntry(ctx context.Context, input catalog.DeleteEntryInput) error
	Apply(ctx context.Context, journalID uuid.UUID) error
}

// CatalogHandler serves the public catalog endpoints.
type CatalogHandler struct {
	catalog catalogService
	log     *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(catalog catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		log:     logger.With("handler", "catalog"),
	}
}

type entryItem struct {
	Semantic string `json:"semantic"`
	Icon     string `json:"icon"`
}

type journalItem struct {
	ID          uuid.UUID `json:"id"`
	Semantic    string    `json:"semantic"`
	Icon        string    `json:"icon"`
	User        string    `json:"user"`
	Created     time.Time `json:"created"`
	Applied     bool      `json:"applied"`
	CurrentIcon *string   `json:"current_icon"`
}

type itemsResponse[T any] struct {
	Items []T `json:"items"`
}

// ListCollection returns collection entries.
// GET /api/collection?semantic=&icon=&sort=&order=
func (h *CatalogHandler) ListCollection(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.EntryFilter{
		Semantic:  q.Get("semantic"),
		Icon:      q.Get("icon"),
		SortBy:    q.Get("sort"),
		SortOrder: q.Get("order"),
	}

	entries, err := h.catalog.ListEntries(r.Context(), filter)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	items := make([]entryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, entryItem{Semantic: e.Semantic, Icon: e.Icon})
	}

	writeJSON(w, http.StatusOK, itemsResponse[entryItem]{Items: items})
}

// ListJournal returns journal records with the current collection icon.
// GET /api/journal?semantic=&user=&icon=&order=
func (h *CatalogHandler) ListJournal(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.JournalFilter{
		Semantic:  q.Get("semantic"),
		Login:     q.Get("user"),
		Icon:      q.Get("icon"),
		SortOrder: q.Get("order"),
	}

	records, err := h.catalog.ListJournal(r.Context(), filter)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	items := make([]journalItem, 0, len(records))
	for _, rec := range records {
		items = append(items, journalItem{
			ID:          rec.ID,
			Semantic:    rec.Semantic,
			Icon:        rec.Icon,
			User:        rec.Login,
			Created:     rec.Created,
			Applied:     rec.Applied,
			CurrentIcon: rec.CurrentIcon,
		})
	}

	writeJSON(w, http.StatusOK, itemsResponse[journalItem]{Items: items})
}

type proposeRequest struct {
	Semantic string `json:"semantic"`
	Icon     string `json:"icon"`
}

// Propose records an icon change proposal for an existing semantic.
// POST /api/propose
func (h *CatalogHandler) Propose(w http.ResponseWriter, r *http.Request) {
	var req proposeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	_, err := h.catalog.Propose(r.Context(), catalog.EntryInput{
		Semantic: req.Semantic,
		Icon:     req.Icon,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
