package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/glyphdict/glyphdict-backend/internal/domain"
	"github.com/glyphdict/glyphdict-backend/pkg/ctxutil"
)

// Admin mutations take effect immediately, so their journal records are
// written already applied. Each operation runs in one transaction to keep
// the collection and the journal consistent on crash.

func (s *Service) requireAdmin(ctx context.Context) (string, error) {
	login, ok := ctxutil.LoginFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return "", domain.ErrForbidden
	}
	return login, nil
}

// CreateEntry adds a new (semantic, icon) pair to the collection.
// Returns domain.ErrAlreadyExists when the semantic is taken.
func (s *Service) CreateEntry(ctx context.Context, input EntryInput) (domain.Entry, error) {
	login, err := s.requireAdmin(ctx)
	if err != nil {
		return domain.Entry{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.Entry{}, err
	}
	input = input.Normalized()

	e := domain.Entry{Semantic: input.Semantic, Icon: input.Icon}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.entries.Insert(txCtx, e); err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}
		return s.appendApplied(txCtx, e.Semantic, e.Icon, login)
	})
	if err != nil {
		return domain.Entry{}, err
	}

	s.log.InfoContext(ctx, "entry created",
		slog.String("login", login),
		slog.String("semantic", e.Semantic),
	)

	return e, nil
}

// UpdateEntry replaces the icon of an existing semantic.
// Returns domain.ErrNotFound when the semantic is absent. Concurrent updates
// to the same semantic are last-writer-wins.
func (s *Service) UpdateEntry(ctx context.Context, input UpdateEntryInput) (domain.Entry, error) {
	login, err := s.requireAdmin(ctx)
	if err != nil {
		return domain.Entry{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.Entry{}, err
	}
	semantic := domain.NormalizeSemantic(input.Semantic)
	icon := domain.NormalizeIcon(input.Icon)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.entries.UpdateIcon(txCtx, semantic, icon); err != nil {
			return fmt.Errorf("update icon: %w", err)
		}
		return s.appendApplied(txCtx, semantic, icon, login)
	})
	if err != nil {
		return domain.Entry{}, err
	}

	s.log.InfoContext(ctx, "entry updated",
		slog.String("login", login),
		slog.String("semantic", semantic),
	)

	return domain.Entry{Semantic: semantic, Icon: icon}, nil
}

// DeleteEntry removes a semantic from the collection. The journal record
// embeds the removed icon behind the deletion marker.
// Returns domain.ErrNotFound when the semantic is absent.
func (s *Service) DeleteEntry(ctx context.Context, input DeleteEntryInput) error {
	login, err := s.requireAdmin(ctx)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}
	semantic := domain.NormalizeSemantic(input.Semantic)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		previousIcon, err := s.entries.Delete(txCtx, semantic)
		if err != nil {
			return fmt.Errorf("delete entry: %w", err)
		}
		return s.appendApplied(txCtx, semantic, domain.DeletionIcon(previousIcon), login)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "entry deleted",
		slog.String("login", login),
		slog.String("semantic", semantic),
	)

	return nil
}

func (s *Service) appendApplied(ctx context.Context, semantic, icon, login string) error {
	_, err := s.journal.Append(ctx, domain.JournalRecord{
		ID:       uuid.New(),
		Semantic: semantic,
		Icon:     icon,
		Login:    login,
		Created:  time.Now().UTC(),
		Applied:  true,
	})
	if err != nil {
		return fmt.Errorf("append journal record: %w", err)
	}
	return nil
}
