package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"datakeeper/internal/domain/record"

	"golang.org/x/exp/slog"
)

type RecordRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewRecordRepository(db *sql.DB, log *slog.Logger) *RecordRepository {
	return &RecordRepository{
		db:  db,
		log: log.With("component", "record_repository", "driver", "sqlite"),
	}
}

func (r *RecordRepository) Save(ctx context.Context, rec record.Record) (record.Record, error) {
	if !rec.HasID() {
		return r.insert(ctx, rec)
	}

	const query = `
		INSERT INTO records (id, name) VALUES (?, ?)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name`

	if _, err := r.db.ExecContext(ctx, query, *rec.ID, rec.Name); err != nil {
		r.log.Error("failed to upsert record", "record_id", *rec.ID, "error", err)
		return record.Record{}, fmt.Errorf("upsert record: %w", err)
	}

	return rec, nil
}

func (r *RecordRepository) insert(ctx context.Context, rec record.Record) (record.Record, error) {
	const query = `INSERT INTO records (name) VALUES (?)`

	res, err := r.db.ExecContext(ctx, query, rec.Name)
	if err != nil {
		r.log.Error("failed to create record", "error", err)
		return record.Record{}, fmt.Errorf("create record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return record.Record{}, fmt.Errorf("read record id: %w", err)
	}

	return rec.WithID(id), nil
}

func (r *RecordRepository) FindAll(ctx context.Context) ([]record.Record, error) {
	const query = `SELECT id, name FROM records ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.log.Error("failed to list records", "error", err)
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	records := make([]record.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *RecordRepository) FindByID(ctx context.Context, id int64) (record.Record, bool, error) {
	const query = `SELECT id, name FROM records WHERE id = ?`

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return record.Record{}, false, nil
		}
		r.log.Error("failed to get record", "record_id", id, "error", err)
		return record.Record{}, false, fmt.Errorf("get record: %w", err)
	}

	return rec, true, nil
}

func (r *RecordRepository) DeleteByID(ctx context.Context, id int64) error {
	const query = `DELETE FROM records WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.log.Error("failed to delete record", "record_id", id, "error", err)
		return fmt.Errorf("delete record: %w", err)
	}

	return nil
}

func scanRecord(row interface{ Scan(dest ...any) error }) (record.Record, error) {
	var (
		id   int64
		name string
	)
	if err := row.Scan(&id, &name); err != nil {
		return record.Record{}, err
	}
	return record.New(name).WithID(id), nil
}
