package job

import "context"

// JobService defines business logic for repair jobs
type JobService interface {
	// CreateJob opens a repair order in status received and assigns the
	// next job number
	CreateJob(ctx context.Context, req CreateJobRequest) (JobResponse, error)

	GetJob(ctx context.Context, id string) (JobResponse, error)
	UpdateJob(ctx context.Context, req UpdateJobRequest) (JobResponse, error)

	// UpdateStatus moves the job through its lifecycle; ready and
	// delivered notify the customer over WhatsApp
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (JobResponse, error)

	// AddPart consumes inventory stock for the job inside one transaction
	AddPart(ctx context.Context, req AddPartRequest) (JobResponse, error)

	ListJobs(ctx context.Context, filter Filter) (ListJobsResponse, error)
}
