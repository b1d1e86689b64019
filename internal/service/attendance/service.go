package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/attendance"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/worker"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.Repository
	workerRepo worker.Repository
}

func NewAttendanceService(db *database.DB, attendanceRepo attendance.Repository, workerRepo worker.Repository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:         db,
		Repository: attendanceRepo,
		workerRepo: workerRepo,
	}
}

// resolveAt picks the punch instant: the optional override for manual
// entries, otherwise now.
func resolveAt(at *string) time.Time {
	if at != nil {
		if t, err := time.Parse(time.RFC3339, *at); err == nil {
			return t
		}
	}
	return time.Now()
}

// dateOf truncates an instant to its calendar day.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	at := resolveAt(req.At)
	date := dateOf(at)

	open, err := s.Repository.GetOpenForDate(ctx, w.ID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up open attendance: %w", err)
	}
	if open != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
	}

	created, err := s.Repository.Create(ctx, attendance.Record{
		WorkerID: w.ID,
		Date:     date,
		CheckIn:  &at,
		Method:   attendance.Method(req.Method),
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return toRecordResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID); err != nil {
		return attendance.RecordResponse{}, err
	}

	at := resolveAt(req.At)
	date := dateOf(at)

	open, err := s.Repository.GetOpenForDate(ctx, req.WorkerID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up open attendance: %w", err)
	}
	if open == nil {
		return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
	}

	open.CheckOut = &at
	if err := s.Repository.Update(ctx, *open); err != nil {
		return attendance.RecordResponse{}, err
	}

	return toRecordResponse(*open), nil
}

// Correct implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Correct(ctx context.Context, req attendance.CorrectionRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if req.CheckIn != nil {
		t, err := time.Parse(time.RFC3339, *req.CheckIn)
		if err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to parse check_in: %w", err)
		}
		rec.CheckIn = &t
		rec.Date = dateOf(t)
	}
	if req.CheckOut != nil {
		t, err := time.Parse(time.RFC3339, *req.CheckOut)
		if err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to parse check_out: %w", err)
		}
		rec.CheckOut = &t
	}

	if err := s.Repository.Update(ctx, rec); err != nil {
		return attendance.RecordResponse{}, err
	}

	return toRecordResponse(rec), nil
}

// GetRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetRecord(ctx context.Context, id string) (attendance.RecordResponse, error) {
	rec, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return toRecordResponse(rec), nil
}

// ListRecords implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.Filter) (attendance.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	records, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	resp := attendance.ListRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Records:    make([]attendance.RecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, toRecordResponse(rec))
	}
	return resp, nil
}

// DeleteRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if _, err := s.Repository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, id)
}

// timePtrToString safely converts a *time.Time to an RFC3339 string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

func toRecordResponse(rec attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:        rec.ID,
		WorkerID:  rec.WorkerID,
		Date:      rec.Date.Format("2006-01-02"),
		CheckIn:   timePtrToString(rec.CheckIn),
		CheckOut:  timePtrToString(rec.CheckOut),
		Method:    string(rec.Method),
		CreatedAt: rec.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: rec.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if rec.WorkerName != nil {
		resp.WorkerName = *rec.WorkerName
	}
	return resp
}
