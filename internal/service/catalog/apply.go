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

// Apply makes a pending proposal take effect: the collection icon is
// replaced, an audit record is appended, and the proposal flips to applied.
// All three happen in one transaction or not at all.
//
// Concurrent Apply calls on the same id race. Inside the transaction the
// applied flip runs first: it takes the journal row lock, so the loser
// blocks until the winner commits, then re-evaluates the applied = FALSE
// guard, changes zero rows and rolls the whole transaction back. Exactly one
// caller succeeds; the loser gets ErrAlreadyApplied with no side effects.
func (s *Service) Apply(ctx context.Context, journalID uuid.UUID) error {
	login, ok := ctxutil.LoginFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	if journalID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	// Optimistic pre-checks for fast error responses. The authoritative
	// applied check is the guarded flip inside the transaction.
	rec, err := s.journal.Get(ctx, journalID)
	if err != nil {
		return fmt.Errorf("get journal record: %w", err)
	}
	if rec.Applied {
		return domain.ErrAlreadyApplied
	}
	if _, err := s.entries.Get(ctx, rec.Semantic); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrSemanticMissing
		}
		return fmt.Errorf("check semantic: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		affected, err := s.journal.MarkApplied(txCtx, journalID)
		if err != nil {
			return fmt.Errorf("mark applied: %w", err)
		}
		if affected == 0 {
			return domain.ErrAlreadyApplied
		}

		if err := s.entries.UpdateIcon(txCtx, rec.Semantic, rec.Icon); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrSemanticMissing
			}
			return fmt.Errorf("update icon: %w", err)
		}

		// Audit record of the apply action itself.
		_, err = s.journal.Append(txCtx, domain.JournalRecord{
			ID:       uuid.New(),
			Semantic: rec.Semantic,
			Icon:     rec.Icon,
			Login:    login,
			Created:  time.Now().UTC(),
			Applied:  false,
		})
		if err != nil {
			return fmt.Errorf("append audit record: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "proposal applied",
		slog.String("login", login),
		slog.String("semantic", rec.Semantic),
		slog.String("journal_id", journalID.String()),
	)

	return nil
}
