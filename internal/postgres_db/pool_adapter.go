package postgresdb

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/NahiaEscalante/backend-mediagent/internal/global_db"
)

// Проверки реализации интерфейсов
var _ global_db.Pool = (*PoolAdapter)(nil)
var _ global_db.Rows = (*RowsAdapter)(nil)

// PoolAdapter адаптирует *pgxpool.Pool к интерфейсу global_db.Pool
type PoolAdapter struct {
	pool *pgxpool.Pool
}

func NewPoolAdapter(pool *pgxpool.Pool) *PoolAdapter {
	return &PoolAdapter{pool: pool}
}

func (a *PoolAdapter) Close() error {
	a.pool.Close()
	return nil
}

func (a *PoolAdapter) QueryRow(ctx context.Context, sql string, args ...any) global_db.Row {
	return a.pool.QueryRow(ctx, sql, args...)
}

func (a *PoolAdapter) Query(ctx context.Context, sql string, args ...any) (global_db.Rows, error) {
	rows, err := a.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &RowsAdapter{rows: rows}, nil
}

// RowsAdapter адаптирует pgx.Rows к интерфейсу global_db.Rows
type RowsAdapter struct {
	rows pgx.Rows
}

func (a *RowsAdapter) Next() bool {
	return a.rows.Next()
}

func (a *RowsAdapter) Scan(dest ...any) error {
	return a.rows.Scan(dest...)
}

func (a *RowsAdapter) Close() {
	a.rows.Close()
}

func (a *RowsAdapter) Err() error {
	return a.rows.Err()
}
