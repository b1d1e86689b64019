package finance

import (
	"github.com/shopspring/decimal"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/finance"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/job"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/salary"
)

// Summarize folds one month's delivered jobs, salary reports and expense
// ledger into the profit-and-loss view. Pure; all data is passed in.
//
// Net = job revenue − parts cost − salary outlay − expenses. Parts cost
// uses the unit cost captured when the part was consumed, so revenue and
// margin stay consistent even after price changes.
func Summarize(
	year, month int,
	delivered []job.Job,
	reports []salary.Report,
	expenses []finance.Expense,
) finance.MonthlySummary {
	summary := finance.MonthlySummary{
		Year:               year,
		Month:              month,
		JobRevenue:         decimal.Zero,
		PartsCost:          decimal.Zero,
		SalaryOutlay:       decimal.Zero,
		Expenses:           decimal.Zero,
		DeliveredJobs:      len(delivered),
		ExpensesByCategory: make(map[string]decimal.Decimal),
	}

	for _, j := range delivered {
		summary.JobRevenue = summary.JobRevenue.Add(j.Total)
		for _, usage := range j.PartsUsed {
			cost := usage.UnitCost.Mul(decimal.NewFromInt(int64(usage.Quantity)))
			summary.PartsCost = summary.PartsCost.Add(cost)
		}
	}

	for _, report := range reports {
		summary.SalaryOutlay = summary.SalaryOutlay.Add(report.FinalSalary)
	}

	for _, e := range expenses {
		summary.Expenses = summary.Expenses.Add(e.Amount)
		category := string(e.Category)
		summary.ExpensesByCategory[category] = summary.ExpensesByCategory[category].Add(e.Amount)
	}

	summary.Net = summary.JobRevenue.
		Sub(summary.PartsCost).
		Sub(summary.SalaryOutlay).
		Sub(summary.Expenses)

	return summary
}
