package salary

import (
	"context"
	"fmt"

	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/attendance"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/holiday"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/salary"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/shift"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/worker"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/validator"
)

type SalaryServiceImpl struct {
	calc           *Calculator
	workerRepo     worker.Repository
	shiftRepo      shift.Repository
	holidayRepo    holiday.Repository
	attendanceRepo attendance.Repository
}

func NewSalaryService(
	workerRepo worker.Repository,
	shiftRepo shift.Repository,
	holidayRepo holiday.Repository,
	attendanceRepo attendance.Repository,
) salary.SalaryService {
	return &SalaryServiceImpl{
		calc:           NewCalculator(),
		workerRepo:     workerRepo,
		shiftRepo:      shiftRepo,
		holidayRepo:    holidayRepo,
		attendanceRepo: attendanceRepo,
	}
}

func validatePeriod(year, month int) error {
	var errs validator.ValidationErrors

	if year < 2000 || year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}
	if month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GetMonthlyReport implements salary.SalaryService.
func (s *SalaryServiceImpl) GetMonthlyReport(ctx context.Context, workerID string, year, month int) (salary.Report, error) {
	if err := validatePeriod(year, month); err != nil {
		return salary.Report{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return salary.Report{}, err
	}

	holidays, err := s.holidayRepo.ListByMonth(ctx, year, month)
	if err != nil {
		return salary.Report{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	records, err := s.attendanceRepo.ListByWorkerAndMonth(ctx, w.ID, year, month)
	if err != nil {
		return salary.Report{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	sh, err := s.shiftFor(ctx, w)
	if err != nil {
		return salary.Report{}, err
	}

	return s.calc.ComputeMonthlySalary(w, year, month, holidays, records, sh), nil
}

// GetMonthlyReports implements salary.SalaryService.
func (s *SalaryServiceImpl) GetMonthlyReports(ctx context.Context, year, month int) ([]salary.Report, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}

	workers, err := s.workerRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	holidays, err := s.holidayRepo.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	reports := make([]salary.Report, 0, len(workers))
	for _, w := range workers {
		records, err := s.attendanceRepo.ListByWorkerAndMonth(ctx, w.ID, year, month)
		if err != nil {
			return nil, fmt.Errorf("failed to list attendance for worker %s: %w", w.ID, err)
		}

		sh, err := s.shiftFor(ctx, w)
		if err != nil {
			return nil, err
		}

		reports = append(reports, s.calc.ComputeMonthlySalary(w, year, month, holidays, records, sh))
	}
	return reports, nil
}

// shiftFor loads the worker's assigned shift; a worker without one gets
// nil, which the calculator treats as a zero-minute day.
func (s *SalaryServiceImpl) shiftFor(ctx context.Context, w worker.Worker) (*shift.Shift, error) {
	if w.ShiftID == nil {
		return nil, nil
	}
	sh, err := s.shiftRepo.GetByID(ctx, *w.ShiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift for worker %s: %w", w.ID, err)
	}
	return &sh, nil
}
