package journal_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/glyphdict/glyphdict-backend/internal/adapter/postgres"
	"github.com/glyphdict/glyphdict-backend/internal/adapter/postgres/journal"
	"github.com/glyphdict/glyphdict-backend/internal/adapter/postgres/testhelper"
	"github.com/glyphdict/glyphdict-backend/internal/domain"
)

func TestRepo_AppendAndGet(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := journal.New(pool)
	ctx := context.Background()

	rec := domain.JournalRecord{
		ID:       uuid.New(),
		Semantic: testhelper.UniqueSemantic("switch"),
		Icon:     "mdi:toggle-switch",
		Login:    "alice",
		Created:  time.Now().UTC().Truncate(time.Microsecond),
	}

	if _, err := repo.Append(ctx, rec); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := repo.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Semantic != rec.Semantic || got.Login != "alice" || got.Applied {
		t.Errorf("Get returned %+v, want pending record for %s by alice", got, rec.Semantic)
	}
}

func TestRepo_Get_NotFound(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := journal.New(pool)

	_, err := repo.Get(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get missing record: got %v, want ErrNotFound", err)
	}
}

func TestRepo_Find_CurrentIcon(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := journal.New(pool)
	ctx := context.Background()

	live := testhelper.UniqueSemantic("live")
	gone := testhelper.UniqueSemantic("gone")
	testhelper.SeedEntry(t, pool, live, "mdi:current")
	testhelper.SeedJournalRecord(t, pool, live, "mdi:proposed", "bob", false)
	testhelper.SeedJournalRecord(t, pool, gone, "mdi:orphan", "bob", false)

	got, err := repo.Find(ctx, domain.JournalFilter{Semantic: live})
	if err != nil {
		t.Fatalf("Find live: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Find live returned %d records, want 1", len(got))
	}
	if got[0].CurrentIcon == nil || *got[0].CurrentIcon != "mdi:current" {
		t.Errorf("CurrentIcon = %v, want mdi:current", got[0].CurrentIcon)
	}

	got, err = repo.Find(ctx, domain.JournalFilter{Semantic: gone})
	if err != nil {
		t.Fatalf("Find gone: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Find gone returned %d records, want 1", len(got))
	}
	if got[0].CurrentIcon != nil {
		t.Errorf("CurrentIcon for absent semantic = %v, want nil", *got[0].CurrentIcon)
	}
}

func TestRepo_Find_FiltersAndOrder(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := journal.New(pool)
	ctx := context.Background()

	semantic := testhelper.UniqueSemantic("fan")
	first := testhelper.SeedJournalRecord(t, pool, semantic, "mdi:fan", "alice", false)
	time.Sleep(5 * time.Millisecond)
	second := testhelper.SeedJournalRecord(t, pool, semantic, "mdi:fan-speed-2", "bob", true)

	got, err := repo.Find(ctx, domain.JournalFilter{Semantic: semantic})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Find returned %d records, want 2", len(got))
	}
	// Default order: newest first.
	if got[0].ID != second.ID || got[1].ID != first.ID {
		t.Errorf("default order wrong: got [%s %s]", got[0].ID, got[1].ID)
	}

	got, err = repo.Find(ctx, domain.JournalFilter{Semantic: semantic, SortOrder: domain.SortAsc})
	if err != nil {
		t.Fatalf("Find asc: %v", err)
	}
	if got[0].ID != first.ID {
		t.Errorf("asc order: first = %s, want %s", got[0].ID, first.ID)
	}

	got, err = repo.Find(ctx, domain.JournalFilter{Semantic: semantic, Login: "alice"})
	if err != nil {
		t.Fatalf("Find by login: %v", err)
	}
	if len(got) != 1 || got[0].Login != "alice" {
		t.Errorf("login filter returned %+v, want single alice record", got)
	}

	got, err = repo.Find(ctx, domain.JournalFilter{Semantic: semantic, Icon: "speed"})
	if err != nil {
		t.Fatalf("Find by icon: %v", err)
	}
	if len(got) != 1 || got[0].Icon != "mdi:fan-speed-2" {
		t.Errorf("icon filter returned %+v, want single mdi:fan-speed-2", got)
	}
}

func TestRepo_MarkApplied(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := journal.New(pool)
	ctx := context.Background()

	rec := testhelper.SeedJournalRecord(t, pool, testhelper.UniqueSemantic("plug"), "mdi:power-plug", "alice", false)

	affected, err := repo.MarkApplied(ctx, rec.ID)
	if err != nil {
		t.Fatalf("MarkApplied: %v", err)
	}
	if affected != 1 {
		t.Errorf("first MarkApplied affected %d rows, want 1", affected)
	}

	affected, err = repo.MarkApplied(ctx, rec.ID)
	if err != nil {
		t.Fatalf("second MarkApplied: %v", err)
	}
	if affected != 0 {
		t.Errorf("second MarkApplied affected %d rows, want 0", affected)
	}

	affected, err = repo.MarkApplied(ctx, uuid.New())
	if err != nil {
		t.Fatalf("MarkApplied missing id: %v", err)
	}
	if affected != 0 {
		t.Errorf("MarkApplied on missing id affected %d rows, want 0", affected)
	}
}

// Two transactions race to flip the same record. Exactly one must win.
func TestRepo_MarkApplied_Concurrent(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := journal.New(pool)
	tx := postgres.NewTxManager(pool)
	ctx := context.Background()

	rec := testhelper.SeedJournalRecord(t, pool, testhelper.UniqueSemantic("race"), "mdi:flash", "alice", false)

	const racers = 8
	results := make(chan int64, racers)

	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := tx.RunInTx(ctx, func(txCtx context.Context) error {
				affected, err := repo.MarkApplied(txCtx, rec.ID)
				if err != nil {
					return err
				}
				results <- affected
				return nil
			})
			if err != nil {
				t.Errorf("RunInTx: %v", err)
			}
		}()
	}
	wg.Wait()
	close(results)

	var winners int
	for affected := range results {
		if affected == 1 {
			winners++
		}
	}
	if winners != 1 {
		t.Errorf("got %d winning flips, want exactly 1", winners)
	}
}
