package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool the repositories use. Every call checks a connection
// out of the pool and returns it when the statement completes.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// psql builds statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type rowScanner interface {
	Scan(dest ...any) error
}

// queryOne runs a statement that returns a single row and scans it with fn.
func queryOne(ctx context.Context, db DBTX, b sq.Sqlizer, fn func(rowScanner) error) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	return mapError(fn(db.QueryRow(ctx, query, args...)))
}

// queryAll runs a statement and scans every row with fn.
func queryAll(ctx context.Context, db DBTX, b sq.Sqlizer, fn func(rowScanner) error) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return mapError(err)
	}
	defer rows.Close()
	for rows.Next() {
		if err := fn(rows); err != nil {
			return mapError(err)
		}
	}
	return mapError(rows.Err())
}

// execAffecting runs a statement and reports ErrNotFound when it touched no row.
func execAffecting(ctx context.Context, db DBTX, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows)
	}
	return nil
}
