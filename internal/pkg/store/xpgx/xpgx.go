// Package xpgx adapts a pgx pool to the squirrel query builders the store
// uses. The generic helpers scan rows into db-tagged structs.
package xpgx

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sqlizer is satisfied by every squirrel builder.
type Sqlizer interface {
	ToSql() (string, []interface{}, error)
}

// Pool is the subset of *pgxpool.Pool the store needs.
type Pool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

var _ Pool = (*pgxpool.Pool)(nil)

func Execx(ctx context.Context, pool Pool, query Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return pool.Exec(ctx, sql, args...)
}

// Selectx ejecuta el query y escanea todas las filas en []*T por nombre de
// columna (tag `db`).
func Selectx[T any](ctx context.Context, pool Pool, query Sqlizer) ([]*T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
}

// Getx espera exactamente una fila; pgx.ErrNoRows cuando no hay ninguna.
func Getx[T any](ctx context.Context, pool Pool, query Sqlizer) (*T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
}

// GetValue escanea una sola columna de una sola fila (counts, ids).
func GetValue[T any](ctx context.Context, pool Pool, query Sqlizer) (T, error) {
	var zero T

	sql, args, err := query.ToSql()
	if err != nil {
		return zero, err
	}

	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		return zero, err
	}

	return pgx.CollectOneRow(rows, pgx.RowTo[T])
}
