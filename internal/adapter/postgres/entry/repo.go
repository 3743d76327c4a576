// Package entry implements the collection (Entry Store) repository using
// PostgreSQL. The collection holds the live (semantic, icon) pairs.
package entry

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glyphdict/glyphdict-backend/internal/adapter/postgres"
	"github.com/glyphdict/glyphdict-backend/internal/domain"
)

const table = "collection"

// Repo provides collection persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new collection repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Get returns the entry for a normalized semantic key.
func (r *Repo) Get(ctx context.Context, semantic string) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var e domain.Entry
	err := q.QueryRow(ctx,
		`SELECT semantic, icon FROM collection WHERE semantic = $1`,
		semantic,
	).Scan(&e.Semantic, &e.Icon)
	if err != nil {
		return nil, postgres.MapError(err, "entry", semantic)
	}

	return &e, nil
}

// Find returns entries matching the filter, ordered by the filter's sort key.
func (r *Repo) Find(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	query := builder().
		Select("semantic", "icon").
		From(table).
		OrderBy(sortColumn(filter) + " " + sortDirection(filter))

	if filter.Semantic != "" {
		query = query.Where(sq.ILike{"semantic": "%" + filter.Semantic + "%"})
	}
	if filter.Icon != "" {
		query = query.Where(sq.ILike{"icon": "%" + filter.Icon + "%"})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build entries query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find entries: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.Entry, 0)
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.Semantic, &e.Icon); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	return entries, nil
}

// Insert creates a new entry. Returns domain.ErrAlreadyExists when the
// semantic is already present.
func (r *Repo) Insert(ctx context.Context, e domain.Entry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO collection (semantic, icon) VALUES ($1, $2)`,
		e.Semantic, e.Icon,
	)
	if err != nil {
		return postgres.MapError(err, "entry", e.Semantic)
	}

	return nil
}

// UpdateIcon sets the icon for an existing semantic.
// Returns domain.ErrNotFound when the semantic is absent.
func (r *Repo) UpdateIcon(ctx context.Context, semantic, icon string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE collection SET icon = $1 WHERE semantic = $2`,
		icon, semantic,
	)
	if err != nil {
		return postgres.MapError(err, "entry", semantic)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry %s: %w", semantic, domain.ErrNotFound)
	}

	return nil
}

// Delete removes an entry and returns the icon it held.
// Returns domain.ErrNotFound when the semantic is absent.
func (r *Repo) Delete(ctx context.Context, semantic string) (string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var previousIcon string
	err := q.QueryRow(ctx,
		`DELETE FROM collection WHERE semantic = $1 RETURNING icon`,
		semantic,
	).Scan(&previousIcon)
	if err != nil {
		return "", postgres.MapError(err, "entry", semantic)
	}

	return previousIcon, nil
}
