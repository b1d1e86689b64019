package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/holiday"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/worker"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/database"
)

type HolidayServiceImpl struct {
	db *database.DB
	holiday.Repository
	workerRepo worker.Repository
}

func NewHolidayService(db *database.DB, holidayRepo holiday.Repository, workerRepo worker.Repository) holiday.HolidayService {
	return &HolidayServiceImpl{
		db:         db,
		Repository: holidayRepo,
		workerRepo: workerRepo,
	}
}

// CreateHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	refs, err := s.resolveWorkers(ctx, holiday.Scope(req.AppliesTo), req.WorkerIDs)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	created, err := s.Repository.Create(ctx, holiday.Holiday{
		Name:      req.Name,
		Date:      date,
		AppliesTo: holiday.Scope(req.AppliesTo),
		Workers:   refs,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return toHolidayResponse(created), nil
}

// GetHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) GetHoliday(ctx context.Context, id string) (holiday.HolidayResponse, error) {
	h, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return toHolidayResponse(h), nil
}

// UpdateHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) UpdateHoliday(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	h, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return holiday.HolidayResponse{}, fmt.Errorf("failed to parse date: %w", err)
		}
		h.Date = date
	}
	if req.AppliesTo != nil {
		h.AppliesTo = holiday.Scope(*req.AppliesTo)
		if h.AppliesTo == holiday.ScopeAll {
			h.Workers = nil
		}
	}
	if req.WorkerIDs != nil {
		refs, err := s.resolveWorkers(ctx, h.AppliesTo, *req.WorkerIDs)
		if err != nil {
			return holiday.HolidayResponse{}, err
		}
		h.Workers = refs
	}

	if err := s.Repository.Update(ctx, h); err != nil {
		return holiday.HolidayResponse{}, err
	}

	return toHolidayResponse(h), nil
}

// DeleteHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	if _, err := s.Repository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, id)
}

// ListHolidays implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListHolidays(ctx context.Context, year, month int) ([]holiday.HolidayResponse, error) {
	var (
		holidays []holiday.Holiday
		err      error
	)
	if month == 0 {
		holidays, err = s.Repository.ListByYear(ctx, year)
	} else {
		holidays, err = s.Repository.ListByMonth(ctx, year, month)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		resp = append(resp, toHolidayResponse(h))
	}
	return resp, nil
}

// resolveWorkers verifies each referenced worker exists and stores the
// populated summary form.
func (s *HolidayServiceImpl) resolveWorkers(ctx context.Context, scope holiday.Scope, workerIDs []string) ([]holiday.WorkerRef, error) {
	if scope != holiday.ScopeSpecific {
		return nil, nil
	}

	refs := make([]holiday.WorkerRef, 0, len(workerIDs))
	for _, id := range workerIDs {
		w, err := s.workerRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve worker %s: %w", id, err)
		}
		refs = append(refs, holiday.RefFromSummary(w.ID, w.Name))
	}
	return refs, nil
}

func toHolidayResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:        h.ID,
		Name:      h.Name,
		Date:      h.Date.Format("2006-01-02"),
		AppliesTo: string(h.AppliesTo),
		Workers:   h.Workers,
		CreatedAt: h.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: h.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
