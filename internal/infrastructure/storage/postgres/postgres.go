package postgres

import (
	"context"
	"fmt"

	"datakeeper/internal/domain/record"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type Storage struct {
	pool    *pgxpool.Pool
	records *RecordRepository
}

func New(ctx context.Context, uri string, log *slog.Logger) (*Storage, error) {
	pool, err := pgxpool.New(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return &Storage{
		pool:    pool,
		records: NewRecordRepository(pool, log),
	}, nil
}

func (s *Storage) Records() record.Repository {
	return s.records
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}
