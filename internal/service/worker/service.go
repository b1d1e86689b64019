package worker

import (
	"context"
	"fmt"

	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/shift"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/worker"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/database"
)

type WorkerServiceImpl struct {
	db *database.DB
	worker.Repository
	shiftRepo shift.Repository
}

func NewWorkerService(db *database.DB, workerRepo worker.Repository, shiftRepo shift.Repository) worker.WorkerService {
	return &WorkerServiceImpl{
		db:         db,
		Repository: workerRepo,
		shiftRepo:  shiftRepo,
	}
}

// CreateWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	if req.ShiftID != nil {
		if _, err := s.shiftRepo.GetByID(ctx, *req.ShiftID); err != nil {
			return worker.WorkerResponse{}, fmt.Errorf("failed to resolve shift: %w", err)
		}
	}

	created, err := s.Repository.Create(ctx, worker.Worker{
		Name:          req.Name,
		Phone:         req.Phone,
		Role:          req.Role,
		MonthlySalary: req.MonthlySalary,
		ShiftID:       req.ShiftID,
		IsActive:      true,
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return toWorkerResponse(created), nil
}

// GetWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) GetWorker(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return toWorkerResponse(w), nil
}

// UpdateWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) UpdateWorker(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	w, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	if req.Name != nil {
		w.Name = *req.Name
	}
	if req.Phone != nil {
		w.Phone = *req.Phone
	}
	if req.Role != nil {
		w.Role = *req.Role
	}
	if req.MonthlySalary != nil {
		w.MonthlySalary = req.MonthlySalary
	}
	if req.ShiftID != nil {
		if *req.ShiftID == "" {
			w.ShiftID = nil
		} else {
			if _, err := s.shiftRepo.GetByID(ctx, *req.ShiftID); err != nil {
				return worker.WorkerResponse{}, fmt.Errorf("failed to resolve shift: %w", err)
			}
			w.ShiftID = req.ShiftID
		}
	}
	if req.IsActive != nil {
		w.IsActive = *req.IsActive
	}

	if err := s.Repository.Update(ctx, w); err != nil {
		return worker.WorkerResponse{}, err
	}

	updated, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return toWorkerResponse(updated), nil
}

// DeleteWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) DeleteWorker(ctx context.Context, id string) error {
	if _, err := s.Repository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.Repository.SoftDelete(ctx, id)
}

// ListWorkers implements worker.WorkerService.
func (s *WorkerServiceImpl) ListWorkers(ctx context.Context, filter worker.Filter) (worker.ListWorkersResponse, error) {
	if err := filter.Validate(); err != nil {
		return worker.ListWorkersResponse{}, err
	}

	workers, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return worker.ListWorkersResponse{}, err
	}

	resp := worker.ListWorkersResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Workers:    make([]worker.WorkerResponse, 0, len(workers)),
	}
	for _, w := range workers {
		resp.Workers = append(resp.Workers, toWorkerResponse(w))
	}
	return resp, nil
}

func toWorkerResponse(w worker.Worker) worker.WorkerResponse {
	return worker.WorkerResponse{
		ID:            w.ID,
		Name:          w.Name,
		Phone:         w.Phone,
		Role:          w.Role,
		MonthlySalary: w.MonthlySalary,
		ShiftID:       w.ShiftID,
		ShiftName:     w.ShiftName,
		IsActive:      w.IsActive,
		CreatedAt:     w.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     w.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
