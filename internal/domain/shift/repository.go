package shift

import "context"

type Repository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	Update(ctx context.Context, s Shift) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Shift, error)
	CountAssignedWorkers(ctx context.Context, id string) (int64, error)
}
