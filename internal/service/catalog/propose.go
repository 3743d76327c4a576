package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/glyphdict/glyphdict-backend/internal/domain"
	"github.com/glyphdict/glyphdict-backend/pkg/ctxutil"
)

// Propose records a user's suggested icon change for an existing semantic.
// The proposal is inert until an admin applies it: the collection is not
// touched here.
func (s *Service) Propose(ctx context.Context, input EntryInput) (domain.JournalRecord, error) {
	login, ok := ctxutil.LoginFromCtx(ctx)
	if !ok {
		return domain.JournalRecord{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.JournalRecord{}, err
	}
	input = input.Normalized()

	// Proposals only suggest new icons for existing keys.
	if _, err := s.entries.Get(ctx, input.Semantic); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.JournalRecord{}, domain.ErrSemanticMissing
		}
		return domain.JournalRecord{}, fmt.Errorf("check semantic: %w", err)
	}

	rec, err := s.journal.Append(ctx, domain.JournalRecord{
		ID:       uuid.New(),
		Semantic: input.Semantic,
		Icon:     input.Icon,
		Login:    login,
		Created:  time.Now().UTC(),
		Applied:  false,
	})
	if err != nil {
		return domain.JournalRecord{}, fmt.Errorf("append proposal: %w", err)
	}

	s.log.InfoContext(ctx, "proposal recorded",
		slog.String("login", login),
		slog.String("semantic", rec.Semantic),
		slog.String("journal_id", rec.ID.String()),
	)

	return rec, nil
}
