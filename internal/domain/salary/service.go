package salary

import "context"

// SalaryService computes monthly salary reports on demand; nothing is
// persisted.
type SalaryService interface {
	// GetMonthlyReport computes one worker's report for a month
	GetMonthlyReport(ctx context.Context, workerID string, year, month int) (Report, error)

	// GetMonthlyReports computes reports for every active worker
	GetMonthlyReports(ctx context.Context, year, month int) ([]Report, error)
}
