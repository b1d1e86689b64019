package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/finance"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/job"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/salary"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/database"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/validator"
)

type FinanceServiceImpl struct {
	db *database.DB
	finance.Repository
	jobRepo       job.Repository
	salaryService salary.SalaryService
}

func NewFinanceService(
	db *database.DB,
	expenseRepo finance.Repository,
	jobRepo job.Repository,
	salaryService salary.SalaryService,
) finance.FinanceService {
	return &FinanceServiceImpl{
		db:            db,
		Repository:    expenseRepo,
		jobRepo:       jobRepo,
		salaryService: salaryService,
	}
}

// CreateExpense implements finance.FinanceService.
func (s *FinanceServiceImpl) CreateExpense(ctx context.Context, req finance.CreateExpenseRequest) (finance.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return finance.ExpenseResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return finance.ExpenseResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	created, err := s.Repository.Create(ctx, finance.Expense{
		Description: req.Description,
		Category:    finance.ExpenseCategory(req.Category),
		Amount:      req.Amount,
		Date:        date,
	})
	if err != nil {
		return finance.ExpenseResponse{}, err
	}

	return toExpenseResponse(created), nil
}

// GetExpense implements finance.FinanceService.
func (s *FinanceServiceImpl) GetExpense(ctx context.Context, id string) (finance.ExpenseResponse, error) {
	e, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return finance.ExpenseResponse{}, err
	}
	return toExpenseResponse(e), nil
}

// UpdateExpense implements finance.FinanceService.
func (s *FinanceServiceImpl) UpdateExpense(ctx context.Context, req finance.UpdateExpenseRequest) (finance.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return finance.ExpenseResponse{}, err
	}

	e, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return finance.ExpenseResponse{}, err
	}

	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Category != nil {
		e.Category = finance.ExpenseCategory(*req.Category)
	}
	if req.Amount != nil {
		e.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return finance.ExpenseResponse{}, fmt.Errorf("failed to parse date: %w", err)
		}
		e.Date = date
	}

	if err := s.Repository.Update(ctx, e); err != nil {
		return finance.ExpenseResponse{}, err
	}

	return toExpenseResponse(e), nil
}

// DeleteExpense implements finance.FinanceService.
func (s *FinanceServiceImpl) DeleteExpense(ctx context.Context, id string) error {
	if _, err := s.Repository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, id)
}

// ListExpenses implements finance.FinanceService.
func (s *FinanceServiceImpl) ListExpenses(ctx context.Context, filter finance.Filter) (finance.ListExpensesResponse, error) {
	if err := filter.Validate(); err != nil {
		return finance.ListExpensesResponse{}, err
	}

	expenses, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return finance.ListExpensesResponse{}, err
	}

	resp := finance.ListExpensesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Expenses:   make([]finance.ExpenseResponse, 0, len(expenses)),
	}
	for _, e := range expenses {
		resp.Expenses = append(resp.Expenses, toExpenseResponse(e))
	}
	return resp, nil
}

// GetMonthlySummary implements finance.FinanceService.
func (s *FinanceServiceImpl) GetMonthlySummary(ctx context.Context, year, month int) (finance.MonthlySummary, error) {
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
		return finance.MonthlySummary{}, errs
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	delivered, err := s.jobRepo.ListDeliveredBetween(ctx, from, to)
	if err != nil {
		return finance.MonthlySummary{}, fmt.Errorf("failed to list delivered jobs: %w", err)
	}

	reports, err := s.salaryService.GetMonthlyReports(ctx, year, month)
	if err != nil {
		return finance.MonthlySummary{}, fmt.Errorf("failed to compute salaries: %w", err)
	}

	expenses, err := s.Repository.ListByMonth(ctx, year, month)
	if err != nil {
		return finance.MonthlySummary{}, fmt.Errorf("failed to list expenses: %w", err)
	}

	return Summarize(year, month, delivered, reports, expenses), nil
}

func toExpenseResponse(e finance.Expense) finance.ExpenseResponse {
	return finance.ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Category:    string(e.Category),
		Amount:      e.Amount,
		Date:        e.Date.Format("2006-01-02"),
		CreatedAt:   e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
