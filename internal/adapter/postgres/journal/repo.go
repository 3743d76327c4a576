// Package journal implements the change journal repository using PostgreSQL.
// Records are append-mostly: the only permitted mutation is the one-way
// applied flip performed by MarkApplied.
package journal

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glyphdict/glyphdict-backend/internal/adapter/postgres"
	"github.com/glyphdict/glyphdict-backend/internal/domain"
)

// Repo provides journal persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new journal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Append inserts a new journal record and returns it as persisted.
// ID and Created must be set by the caller.
func (r *Repo) Append(ctx context.Context, rec domain.JournalRecord) (domain.JournalRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO journal (id, semantic, icon, login, created, applied)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.Semantic, rec.Icon, rec.Login, rec.Created, rec.Applied,
	)
	if err != nil {
		return domain.JournalRecord{}, postgres.MapError(err, "journal_record", rec.ID.String())
	}

	return rec, nil
}

// Get returns a journal record by id.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (*domain.JournalRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rec domain.JournalRecord
	err := q.QueryRow(ctx,
		`SELECT id, semantic, icon, login, created, applied FROM journal WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Semantic, &rec.Icon, &rec.Login, &rec.Created, &rec.Applied)
	if err != nil {
		return nil, postgres.MapError(err, "journal_record", id.String())
	}

	return &rec, nil
}

// Find returns journal records matching the filter, left-joined with the
// collection so each record carries the semantic's current icon
// (nil when the semantic no longer exists). Ordered by created.
func (r *Repo) Find(ctx context.Context, filter domain.JournalFilter) ([]domain.JournalRecord, error) {
	query := builder().
		Select(
			"journal.id",
			"journal.semantic",
			"journal.icon",
			"journal.login",
			"journal.created",
			"journal.applied",
			"collection.icon AS current_icon",
		).
		From("journal").
		LeftJoin("collection ON collection.semantic = journal.semantic").
		OrderBy("journal.created " + sortDirection(filter))

	if filter.Semantic != "" {
		query = query.Where(sq.ILike{"journal.semantic": "%" + filter.Semantic + "%"})
	}
	if filter.Login != "" {
		query = query.Where(sq.ILike{"journal.login": "%" + filter.Login + "%"})
	}
	if filter.Icon != "" {
		query = query.Where(sq.ILike{"journal.icon": "%" + filter.Icon + "%"})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build journal query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find journal records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.JournalRecord, 0)
	for rows.Next() {
		var rec domain.JournalRecord
		if err := rows.Scan(&rec.ID, &rec.Semantic, &rec.Icon, &rec.Login, &rec.Created, &rec.Applied, &rec.CurrentIcon); err != nil {
			return nil, fmt.Errorf("scan journal record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal records: %w", err)
	}

	return records, nil
}

// MarkApplied flips a record's applied flag to true, guarded by
// applied = FALSE so the flip succeeds at most once. Returns the number of
// rows changed: 0 means the record was absent or already applied, a signal
// for the caller, not an error.
//
// Inside a transaction this statement is the linearization point of the
// apply workflow: it takes the row lock, and a concurrent transaction that
// lost the race re-evaluates the applied = FALSE predicate after the winner
// commits and changes nothing.
func (r *Repo) MarkApplied(ctx context.Context, id uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE journal SET applied = TRUE WHERE id = $1 AND applied = FALSE`,
		id,
	)
	if err != nil {
		return 0, postgres.MapError(err, "journal_record", id.String())
	}

	return tag.RowsAffected(), nil
}
