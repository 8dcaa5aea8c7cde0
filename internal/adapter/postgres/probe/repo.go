// Package probe implements a throwaway citext table used to verify that a
// database stores, folds and matches citext values as expected.
package probe

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/citext/internal/adapter/postgres"
	"github.com/heartmarshall/citext/internal/domain"
	"github.com/heartmarshall/citext/pkg/citext"
)

const table = "citext_probe"

// The table lives only until the surrounding transaction ends.
const createTableSQL = `
CREATE TEMP TABLE IF NOT EXISTS citext_probe (
    id    uuid PRIMARY KEY,
    value citext NOT NULL UNIQUE
) ON COMMIT DROP`

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo stores probe rows.
type Repo struct {
	db postgres.Querier
}

// New creates a probe repository. Calls made with a transaction in the
// context use that transaction instead of db.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// CreateTable creates the temporary probe table.
// Returns domain.ErrExtensionMissing if the citext type is unknown.
func (r *Repo) CreateTable(ctx context.Context) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, createTableSQL); err != nil {
		return postgres.MapError(err, table, "")
	}
	return nil
}

// Insert stores value under id. A value equal to an existing one in any
// casing yields domain.ErrAlreadyExists.
func (r *Repo) Insert(ctx context.Context, id uuid.UUID, value citext.Text) error {
	sql, args, err := psql.Insert(table).
		Columns("id", "value").
		Values(id, value).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, table, id)
	}
	return nil
}

// Get returns the probe row with the given id. The value is read twice:
// once as citext.Text and once folded into a plain string.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (*domain.Probe, error) {
	sql, args, err := psql.Select("value", "value AS folded").
		From(table).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	p := domain.Probe{ID: id}
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)
	if err := row.Scan(&p.Value, citext.ScanFolded(&p.Folded)); err != nil {
		return nil, postgres.MapError(err, table, id)
	}

	return &p, nil
}

// FindByValue returns the stored values matching value. Matching is done
// by the database, so any casing of a stored value finds it.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) FindByValue(ctx context.Context, value string) ([]citext.Text, error) {
	sql, args, err := psql.Select("value").
		From(table).
		Where(squirrel.Eq{"value": value}).
		OrderBy("value").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, table, "")
	}

	found, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (citext.Text, error) {
		var v citext.Text
		err := row.Scan(&v)
		return v, err
	})
	if err != nil {
		return nil, postgres.MapError(err, table, "")
	}
	if found == nil {
		found = []citext.Text{}
	}

	return found, nil
}
