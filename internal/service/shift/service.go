package shift

import (
	"context"

	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/shift"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/database"
)

type ShiftServiceImpl struct {
	db *database.DB
	shift.Repository
}

func NewShiftService(db *database.DB, shiftRepo shift.Repository) shift.ShiftService {
	return &ShiftServiceImpl{
		db:         db,
		Repository: shiftRepo,
	}
}

// CreateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.Repository.Create(ctx, shift.Shift{
		Name:        req.Name,
		WorkingTime: req.WorkingTime,
		LunchTime:   req.LunchTime,
		BreakTime:   req.BreakTime,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(created), nil
}

// GetShift implements shift.ShiftService.
func (s *ShiftServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return toShiftResponse(sh), nil
}

// UpdateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) UpdateShift(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	sh, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.Name != nil {
		sh.Name = *req.Name
	}
	if req.WorkingTime != nil {
		sh.WorkingTime = *req.WorkingTime
	}
	if req.LunchTime != nil {
		sh.LunchTime = *req.LunchTime
	}
	if req.BreakTime != nil {
		sh.BreakTime = *req.BreakTime
	}

	if err := s.Repository.Update(ctx, sh); err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(sh), nil
}

// DeleteShift implements shift.ShiftService.
func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, id string) error {
	if _, err := s.Repository.GetByID(ctx, id); err != nil {
		return err
	}

	assigned, err := s.Repository.CountAssignedWorkers(ctx, id)
	if err != nil {
		return err
	}
	if assigned > 0 {
		return shift.ErrShiftInUse
	}

	return s.Repository.SoftDelete(ctx, id)
}

// ListShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.Repository.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		resp = append(resp, toShiftResponse(sh))
	}
	return resp, nil
}

func toShiftResponse(s shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:          s.ID,
		Name:        s.Name,
		WorkingTime: s.WorkingTime,
		LunchTime:   s.LunchTime,
		BreakTime:   s.BreakTime,
		CreatedAt:   s.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   s.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
