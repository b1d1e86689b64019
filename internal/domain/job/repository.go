package job

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id string) (Job, error)
	Update(ctx context.Context, j Job) error
	List(ctx context.Context, filter Filter) ([]Job, int64, error)

	// NextJobNumber issues the next sequential job number, e.g. "JOB-00042".
	NextJobNumber(ctx context.Context) (string, error)

	// ListDeliveredBetween returns jobs delivered in [from, to), used by
	// financial reporting and the daily summary.
	ListDeliveredBetween(ctx context.Context, from, to time.Time) ([]Job, error)
}
