package postgres

import (
	"context"
	"errors"
	"fmt"

	"datakeeper/internal/domain/record"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type RecordRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewRecordRepository(pool *pgxpool.Pool, log *slog.Logger) *RecordRepository {
	return &RecordRepository{
		pool: pool,
		log:  log.With("component", "record_repository", "driver", "postgres"),
	}
}

type recordRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (row recordRow) toDomain() record.Record {
	return record.New(row.Name).WithID(row.ID)
}

func (r *RecordRepository) Save(ctx context.Context, rec record.Record) (record.Record, error) {
	if !rec.HasID() {
		return r.insert(ctx, rec)
	}

	const (
		upsert = `
			INSERT INTO records (id, name) VALUES ($1, $2)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
			RETURNING id, name`
		// Explicit ids bypass the sequence; move it past them so later inserts don't collide.
		bumpSequence = `
			SELECT setval('records_id_seq', GREATEST($1::bigint, (SELECT last_value FROM records_id_seq)))`
	)

	var saved recordRow
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, upsert, *rec.ID, rec.Name)
		if err != nil {
			return err
		}
		saved, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[recordRow])
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, bumpSequence, saved.ID)
		return err
	})
	if err != nil {
		r.log.Error("failed to upsert record", "record_id", *rec.ID, "error", err)
		return record.Record{}, fmt.Errorf("upsert record: %w", err)
	}

	return saved.toDomain(), nil
}

func (r *RecordRepository) insert(ctx context.Context, rec record.Record) (record.Record, error) {
	const query = `INSERT INTO records (name) VALUES ($1) RETURNING id`

	var id int64
	if err := r.pool.QueryRow(ctx, query, rec.Name).Scan(&id); err != nil {
		r.log.Error("failed to create record", "error", err)
		return record.Record{}, fmt.Errorf("create record: %w", err)
	}

	return rec.WithID(id), nil
}

func (r *RecordRepository) FindAll(ctx context.Context) ([]record.Record, error) {
	const query = `SELECT id, name FROM records ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list records", "error", err)
		return nil, fmt.Errorf("list records: %w", err)
	}

	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[recordRow])
	if err != nil {
		return nil, fmt.Errorf("scan records: %w", err)
	}

	records := make([]record.Record, 0, len(found))
	for _, row := range found {
		records = append(records, row.toDomain())
	}
	return records, nil
}

func (r *RecordRepository) FindByID(ctx context.Context, id int64) (record.Record, bool, error) {
	const query = `SELECT id, name FROM records WHERE id = $1`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		r.log.Error("failed to get record", "record_id", id, "error", err)
		return record.Record{}, false, fmt.Errorf("get record: %w", err)
	}

	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[recordRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return record.Record{}, false, nil
		}
		r.log.Error("failed to get record", "record_id", id, "error", err)
		return record.Record{}, false, fmt.Errorf("get record: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *RecordRepository) DeleteByID(ctx context.Context, id int64) error {
	const query = `DELETE FROM records WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		r.log.Error("failed to delete record", "record_id", id, "error", err)
		return fmt.Errorf("delete record: %w", err)
	}

	return nil
}
