package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/finance"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/job"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/salary"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(2025, 9, nil, nil, nil)

	assert.Equal(t, 2025, summary.Year)
	assert.Equal(t, 9, summary.Month)
	assert.Equal(t, 0, summary.DeliveredJobs)
	assert.True(t, summary.JobRevenue.IsZero())
	assert.True(t, summary.PartsCost.IsZero())
	assert.True(t, summary.SalaryOutlay.IsZero())
	assert.True(t, summary.Expenses.IsZero())
	assert.True(t, summary.Net.IsZero())
	assert.Empty(t, summary.ExpensesByCategory)
}

func TestSummarize_NetAcrossAllSources(t *testing.T) {
	delivered := []job.Job{
		{
			Total: d("5000"),
			PartsUsed: []job.PartUsage{
				{Quantity: 1, UnitPrice: d("1500"), UnitCost: d("900")},
				{Quantity: 2, UnitPrice: d("300"), UnitCost: d("200")},
			},
		},
		{Total: d("2500")},
	}
	reports := []salary.Report{
		{FinalSalary: d("12000")},
		{FinalSalary: d("8000.50")},
	}
	expenses := []finance.Expense{
		{Category: finance.CategoryRent, Amount: d("6000")},
		{Category: finance.CategoryUtilities, Amount: d("1200")},
		{Category: finance.CategoryUtilities, Amount: d("300")},
	}

	summary := Summarize(2025, 9, delivered, reports, expenses)

	assert.Equal(t, 2, summary.DeliveredJobs)
	assert.True(t, summary.JobRevenue.Equal(d("7500")), "revenue %s", summary.JobRevenue)
	// 900 + 2*200
	assert.True(t, summary.PartsCost.Equal(d("1300")), "parts cost %s", summary.PartsCost)
	assert.True(t, summary.SalaryOutlay.Equal(d("20000.50")), "salary outlay %s", summary.SalaryOutlay)
	assert.True(t, summary.Expenses.Equal(d("7500")), "expenses %s", summary.Expenses)

	// 7500 - 1300 - 20000.50 - 7500
	assert.True(t, summary.Net.Equal(d("-21300.50")), "net %s", summary.Net)

	assert.True(t, summary.ExpensesByCategory["rent"].Equal(d("6000")))
	assert.True(t, summary.ExpensesByCategory["utilities"].Equal(d("1500")))
}

func TestSummarize_PartsCostUsesCapturedUnitCost(t *testing.T) {
	// The sale price on the usage must not leak into cost.
	delivered := []job.Job{
		{
			Total: d("3000"),
			PartsUsed: []job.PartUsage{
				{Quantity: 1, UnitPrice: d("2000"), UnitCost: d("1100")},
			},
		},
	}

	summary := Summarize(2025, 9, delivered, nil, nil)

	assert.True(t, summary.PartsCost.Equal(d("1100")))
	assert.True(t, summary.Net.Equal(d("1900")))
}
