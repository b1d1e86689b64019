package job

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/customer"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/inventory"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/job"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/database"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/repository/postgresql"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/service/notification"
)

type JobServiceImpl struct {
	db *database.DB
	job.Repository
	customerRepo customer.Repository
	partRepo     inventory.Repository
	notifier     *notification.NotificationService
}

func NewJobService(
	db *database.DB,
	jobRepo job.Repository,
	customerRepo customer.Repository,
	partRepo inventory.Repository,
	notifier *notification.NotificationService,
) job.JobService {
	return &JobServiceImpl{
		db:           db,
		Repository:   jobRepo,
		customerRepo: customerRepo,
		partRepo:     partRepo,
		notifier:     notifier,
	}
}

// CreateJob implements job.JobService.
func (s *JobServiceImpl) CreateJob(ctx context.Context, req job.CreateJobRequest) (job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}

	c, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return job.JobResponse{}, err
	}

	var created job.Job
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.InjectTx(ctx, tx)

		jobNumber, err := s.Repository.NextJobNumber(txCtx)
		if err != nil {
			return err
		}

		created, err = s.Repository.Create(txCtx, job.Job{
			JobNumber:  jobNumber,
			CustomerID: c.ID,
			Device:     req.Device,
			Complaint:  req.Complaint,
			Estimate:   req.Estimate,
			Advance:    req.Advance,
			Status:     job.StatusReceived,
			Total:      decimal.Zero,
		})
		return err
	})
	if err != nil {
		return job.JobResponse{}, err
	}

	created.Customer = &customer.Summary{ID: c.ID, Name: c.Name, Phone: c.Phone}
	return toJobResponse(created), nil
}

// GetJob implements job.JobService.
func (s *JobServiceImpl) GetJob(ctx context.Context, id string) (job.JobResponse, error) {
	j, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return job.JobResponse{}, err
	}
	return toJobResponse(j), nil
}

// UpdateJob implements job.JobService.
func (s *JobServiceImpl) UpdateJob(ctx context.Context, req job.UpdateJobRequest) (job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}

	j, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return job.JobResponse{}, err
	}

	if j.Status == job.StatusDelivered || j.Status == job.StatusCancelled {
		return job.JobResponse{}, job.ErrJobNotOpen
	}

	if req.Device != nil {
		j.Device = *req.Device
	}
	if req.Complaint != nil {
		j.Complaint = *req.Complaint
	}
	if req.Estimate != nil {
		j.Estimate = *req.Estimate
	}
	if req.Advance != nil {
		j.Advance = *req.Advance
	}
	if req.Total != nil {
		j.Total = *req.Total
	}

	if err := s.Repository.Update(ctx, j); err != nil {
		return job.JobResponse{}, err
	}

	return toJobResponse(j), nil
}

// UpdateStatus implements job.JobService.
func (s *JobServiceImpl) UpdateStatus(ctx context.Context, req job.UpdateStatusRequest) (job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}

	j, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return job.JobResponse{}, err
	}

	next := job.Status(req.Status)
	if !job.CanTransition(j.Status, next) {
		return job.JobResponse{}, job.ErrInvalidTransition
	}

	j.Status = next
	if next == job.StatusDelivered {
		now := time.Now()
		j.DeliveredAt = &now
		if req.Total != nil {
			j.Total = *req.Total
		}
	}

	if err := s.Repository.Update(ctx, j); err != nil {
		return job.JobResponse{}, err
	}

	// Notify after the state change is durable; a send failure never
	// rolls the transition back.
	if next == job.StatusReady || next == job.StatusDelivered {
		if c, err := s.customerRepo.GetByID(ctx, j.CustomerID); err == nil {
			s.notifier.NotifyJobStatus(ctx, j, c)
		}
	}

	return toJobResponse(j), nil
}

// AddPart implements job.JobService. Stock decrement and job update
// commit or roll back together.
func (s *JobServiceImpl) AddPart(ctx context.Context, req job.AddPartRequest) (job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}

	var updated job.Job
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.InjectTx(ctx, tx)

		j, err := s.Repository.GetByID(txCtx, req.JobID)
		if err != nil {
			return err
		}
		if j.Status == job.StatusDelivered || j.Status == job.StatusCancelled {
			return job.ErrJobNotOpen
		}

		p, err := s.partRepo.AdjustQuantity(txCtx, req.PartID, -req.Quantity)
		if err != nil {
			return err
		}

		j.PartsUsed = append(j.PartsUsed, job.PartUsage{
			PartID:    p.ID,
			PartName:  p.Name,
			Quantity:  req.Quantity,
			UnitPrice: p.SalePrice,
			UnitCost:  p.UnitCost,
		})

		if err := s.Repository.Update(txCtx, j); err != nil {
			return err
		}

		updated = j
		return nil
	})
	if err != nil {
		return job.JobResponse{}, err
	}

	return toJobResponse(updated), nil
}

// ListJobs implements job.JobService.
func (s *JobServiceImpl) ListJobs(ctx context.Context, filter job.Filter) (job.ListJobsResponse, error) {
	if err := filter.Validate(); err != nil {
		return job.ListJobsResponse{}, err
	}

	jobs, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return job.ListJobsResponse{}, err
	}

	resp := job.ListJobsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Jobs:       make([]job.JobResponse, 0, len(jobs)),
	}
	for _, j := range jobs {
		resp.Jobs = append(resp.Jobs, toJobResponse(j))
	}
	return resp, nil
}

func toJobResponse(j job.Job) job.JobResponse {
	balance := j.Total.Sub(j.Advance)
	if balance.IsNegative() {
		balance = decimal.Zero
	}

	resp := job.JobResponse{
		ID:         j.ID,
		JobNumber:  j.JobNumber,
		CustomerID: j.CustomerID,
		Device:     j.Device,
		Complaint:  j.Complaint,
		Estimate:   j.Estimate,
		Advance:    j.Advance,
		Status:     string(j.Status),
		PartsUsed:  j.PartsUsed,
		Total:      j.Total,
		BalanceDue: balance,
		CreatedAt:  j.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  j.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if j.PartsUsed == nil {
		resp.PartsUsed = []job.PartUsage{}
	}
	if j.Customer != nil {
		resp.Customer = j.Customer
	}
	if j.DeliveredAt != nil {
		formatted := j.DeliveredAt.Format("2006-01-02 15:04:05")
		resp.DeliveredAt = &formatted
	}
	return resp
}
