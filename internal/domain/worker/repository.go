package worker

import "context"

type Repository interface {
	Create(ctx context.Context, w Worker) (Worker, error)
	GetByID(ctx context.Context, id string) (Worker, error)
	Update(ctx context.Context, w Worker) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, filter Filter) ([]Worker, int64, error)
	ListActive(ctx context.Context) ([]Worker, error)
}
