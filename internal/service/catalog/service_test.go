package catalog

import (
	"context"
	"log/slog"
	"testing"

	"github.com/glyphdict/glyphdict-backend/pkg/ctxutil"
)

// newTestService creates a Service with the given mocks and an inline
// transaction manager.
func newTestService(t *testing.T, entries *entryRepoMock, journal *journalRepoMock) *Service {
	t.Helper()
	return &Service{
		entries: entries,
		journal: journal,
		tx:      &txManagerMock{},
		log:     slog.Default(),
	}
}

func userCtx(login string) context.Context {
	return ctxutil.WithLogin(context.Background(), login)
}

func adminCtx(login string) context.Context {
	return ctxutil.WithAdmin(userCtx(login), true)
}
