package attendance

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	Update(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id string) error

	// GetOpenForDate returns the first record on the given date that has a
	// check-in but no check-out, or nil when none exists.
	GetOpenForDate(ctx context.Context, workerID string, date time.Time) (*Record, error)

	// ListByWorkerAndMonth returns all of a worker's records in the given
	// month in ascending date order.
	ListByWorkerAndMonth(ctx context.Context, workerID string, year, month int) ([]Record, error)

	List(ctx context.Context, filter Filter) ([]Record, int64, error)
}
