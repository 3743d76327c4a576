package catalog

import (
	"context"
	"fmt"

	"github.com/glyphdict/glyphdict-backend/internal/domain"
)

// ListEntries returns collection entries matching the filter. Public.
func (s *Service) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	filter.Semantic = domain.NormalizeSemantic(filter.Semantic)
	filter.Icon = domain.NormalizeIcon(filter.Icon)

	entries, err := s.entries.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return entries, nil
}

// ListJournal returns journal records matching the filter, each annotated
// with the semantic's current icon. Public.
func (s *Service) ListJournal(ctx context.Context, filter domain.JournalFilter) ([]domain.JournalRecord, error) {
	filter.Semantic = domain.NormalizeSemantic(filter.Semantic)
	filter.Icon = domain.NormalizeIcon(filter.Icon)

	records, err := s.journal.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}

	return records, nil
}
