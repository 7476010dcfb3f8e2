package record

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

// Servicer is the contract controllers depend on.
type Servicer interface {
	Save(ctx context.Context, r Record) (Record, error)
	FindAll(ctx context.Context) ([]Record, error)
	FindByID(ctx context.Context, id int64) (Record, bool, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Service delegates every call to the repository.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService creates a new record service
func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		log:  log.With("component", "record_service"),
	}
}

// Save creates or updates a record
func (s *Service) Save(ctx context.Context, r Record) (Record, error) {
	s.log.Info("saving record", "name", r.Name, "update", r.HasID())

	saved, err := s.repo.Save(ctx, r)
	if err != nil {
		s.log.Error("failed to save record", "name", r.Name, "error", err)
		return Record{}, fmt.Errorf("save record: %w", err)
	}

	s.log.Debug("record saved", "record_id", saved.IDValue())
	return saved, nil
}

// FindAll returns all records
func (s *Service) FindAll(ctx context.Context) ([]Record, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("failed to list records", "error", err)
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// FindByID returns a specific record by ID
func (s *Service) FindByID(ctx context.Context, id int64) (Record, bool, error) {
	rec, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("failed to find record", "record_id", id, "error", err)
		return Record{}, false, fmt.Errorf("find record: %w", err)
	}
	return rec, found, nil
}

// DeleteByID removes a record
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.log.Error("failed to delete record", "record_id", id, "error", err)
		return fmt.Errorf("delete record: %w", err)
	}

	s.log.Info("record deleted", "record_id", id)
	return nil
}
