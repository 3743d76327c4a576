// Package catalog implements the dictionary workflow: public reads of the
// collection and journal, user proposals, and the admin operations that
// mutate the collection (direct edits and applying proposals).
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/glyphdict/glyphdict-backend/internal/domain"
)

type entryRepo interface {
	Get(ctx context.Context, semantic string) (*domain.Entry, error)
	Find(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error)
	Insert(ctx context.Context, e domain.Entry) error
	UpdateIcon(ctx context.Context, semantic, icon string) error
	Delete(ctx context.Context, semantic string) (string, error)
}

type journalRepo interface {
	Append(ctx context.Context, rec domain.JournalRecord) (domain.JournalRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.JournalRecord, error)
	Find(ctx context.Context, filter domain.JournalFilter) ([]domain.JournalRecord, error)
	MarkApplied(ctx context.Context, id uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides the dictionary catalog operations.
type Service struct {
	entries entryRepo
	journal journalRepo
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	journal journalRepo,
	tx txManager,
) *Service {
	return &Service{
		entries: entries,
		journal: journal,
		tx:      tx,
		log:     log.With("service", "catalog"),
	}
}
