package finance

import "context"

// FinanceService defines the expense ledger and derived reporting
type FinanceService interface {
	CreateExpense(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error)
	GetExpense(ctx context.Context, id string) (ExpenseResponse, error)
	UpdateExpense(ctx context.Context, req UpdateExpenseRequest) (ExpenseResponse, error)
	DeleteExpense(ctx context.Context, id string) error
	ListExpenses(ctx context.Context, filter Filter) (ListExpensesResponse, error)

	// GetMonthlySummary recomputes the month's profit-and-loss view from
	// delivered jobs, parts usage, salaries and the expense ledger
	GetMonthlySummary(ctx context.Context, year, month int) (MonthlySummary, error)
}
