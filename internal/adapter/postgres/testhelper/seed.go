package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glyphdict/glyphdict-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueSemantic returns a fresh normalized semantic key so parallel tests
// sharing the container never collide.
func UniqueSemantic(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

// SeedEntry inserts a collection entry and returns it.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, semantic, icon string) domain.Entry {
	t.Helper()
	ctx := context.Background()

	e := domain.Entry{Semantic: semantic, Icon: icon}
	_, err := pool.Exec(ctx,
		`INSERT INTO collection (semantic, icon) VALUES ($1, $2)`,
		e.Semantic, e.Icon,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert: %v", err)
	}

	return e
}

// SeedJournalRecord inserts a journal record and returns it.
func SeedJournalRecord(t *testing.T, pool *pgxpool.Pool, semantic, icon, login string, applied bool) domain.JournalRecord {
	t.Helper()
	ctx := context.Background()

	rec := domain.JournalRecord{
		ID:       uuid.New(),
		Semantic: semantic,
		Icon:     icon,
		Login:    login,
		Created:  time.Now().UTC().Truncate(time.Microsecond),
		Applied:  applied,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO journal (id, semantic, icon, login, created, applied)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.Semantic, rec.Icon, rec.Login, rec.Created, rec.Applied,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedJournalRecord insert: %v", err)
	}

	return rec
}
