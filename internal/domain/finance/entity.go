package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseCategory string

const (
	CategoryRent      ExpenseCategory = "rent"
	CategoryUtilities ExpenseCategory = "utilities"
	CategoryPurchase  ExpenseCategory = "purchase"
	CategoryMisc      ExpenseCategory = "misc"
)

var CategoryValues = []string{
	string(CategoryRent),
	string(CategoryUtilities),
	string(CategoryPurchase),
	string(CategoryMisc),
}

// Expense is one ledger entry outside of salaries and parts, e.g. rent
// or an electricity bill.
type Expense struct {
	ID          string
	Description string
	Category    ExpenseCategory
	Amount      decimal.Decimal
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MonthlySummary is the shop's derived profit-and-loss view for one
// month. Everything is recomputed from jobs, parts, salaries and the
// expense ledger; nothing here is persisted.
type MonthlySummary struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	JobRevenue    decimal.Decimal `json:"job_revenue"`
	DeliveredJobs int             `json:"delivered_jobs"`
	PartsCost     decimal.Decimal `json:"parts_cost"`
	SalaryOutlay  decimal.Decimal `json:"salary_outlay"`
	Expenses      decimal.Decimal `json:"expenses"`
	Net           decimal.Decimal `json:"net"`

	ExpensesByCategory map[string]decimal.Decimal `json:"expenses_by_category"`
}
