package record

import (
	"context"
)

// Repository is the persistence boundary for records.
type Repository interface {
	// Save inserts r when it has no id and replaces the row with the same id
	// otherwise, inserting it if no such row exists. The persisted record is
	// returned with its id set.
	Save(ctx context.Context, r Record) (Record, error)
	// FindAll returns every record in ascending id order.
	FindAll(ctx context.Context) ([]Record, error)
	// FindByID reports found=false when no record has the id.
	FindByID(ctx context.Context, id int64) (Record, bool, error)
	// DeleteByID removes the record; deleting a missing id is not an error.
	DeleteByID(ctx context.Context, id int64) error
}
