package postgresdb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/NahiaEscalante/backend-mediagent/internal/config"
)

type PgRepoInterface interface {
	Close()
	GetPool() *pgxpool.Pool
}

type PgRepo struct {
	closeOnce sync.Once
	pool      *pgxpool.Pool
}

// NewPgRepo создаёт пул соединений к PostgreSQL по конфигу
func NewPgRepo(ctx context.Context, conf *config.PostgresDBConfig) (*PgRepo, error) {
	poolConfig, err := pgxpool.ParseConfig(conf.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DB DSN: %w", err)
	}

	// настройки пула
	poolConfig.MaxConns = conf.MaxConns
	poolConfig.MinConns = conf.MinConns
	poolConfig.HealthCheckPeriod = conf.HealthCheckPeriod
	poolConfig.MaxConnLifetime = conf.MaxConnLifetime
	poolConfig.MaxConnIdleTime = conf.MaxConnIdleTime
	poolConfig.ConnConfig.ConnectTimeout = conf.ConnectTimeout

	pool, err := pgxpool.ConnectConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// проверяем, что база доступна
	connCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(connCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PgRepo{
		pool: pool,
	}, nil
}

// Close закрывает пул соединений (только один раз)
func (r *PgRepo) Close() {
	r.closeOnce.Do(func() {
		if r.pool != nil {
			r.pool.Close()
		}
	})
}

// GetPool возвращает пул соединений
func (r *PgRepo) GetPool() *pgxpool.Pool {
	return r.pool
}
