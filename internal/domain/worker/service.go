package worker

import "context"

// WorkerService defines business logic for worker management
type WorkerService interface {
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	GetWorker(ctx context.Context, id string) (WorkerResponse, error)
	UpdateWorker(ctx context.Context, req UpdateWorkerRequest) (WorkerResponse, error)

	// DeleteWorker soft deletes; attendance history is kept
	DeleteWorker(ctx context.Context, id string) error

	ListWorkers(ctx context.Context, filter Filter) (ListWorkersResponse, error)
}
