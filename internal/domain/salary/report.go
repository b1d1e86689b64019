package salary

import "github.com/shopspring/decimal"

type DayStatus string

const (
	StatusPresent    DayStatus = "Present"
	StatusAbsent     DayStatus = "Absent"
	StatusOffSunday  DayStatus = "Off (Sunday)"
	StatusOffHoliday DayStatus = "Off (Holiday)"
)

// DayRecord is one row of the audit trail in a monthly report.
// For Absent days DeductedMinutes carries the full daily working minutes
// as information only; the absence cost is charged at the month level,
// not from this figure.
type DayRecord struct {
	Date            string          `json:"date"`
	InTime          *string         `json:"in_time,omitempty"`
	OutTime         *string         `json:"out_time,omitempty"`
	Status          DayStatus       `json:"status"`
	DeductedMinutes int             `json:"deducted_minutes"`
	SalaryEarned    decimal.Decimal `json:"salary_earned"`
}

// Report is the per-worker, per-month salary aggregate. It is entirely
// derived: recomputed on demand, never persisted or mutated in place.
type Report struct {
	WorkerID              string          `json:"worker_id"`
	WorkerName            string          `json:"worker_name,omitempty"`
	Year                  int             `json:"year"`
	Month                 int             `json:"month"`
	OriginalMonthlySalary decimal.Decimal `json:"original_monthly_salary"`
	EarnedSalary          decimal.Decimal `json:"earned_salary"`
	FinalSalary           decimal.Decimal `json:"final_salary"`
	TotalWorkingDays      int             `json:"total_working_days"`
	PresentDays           int             `json:"present_days"`
	AbsentDays            int             `json:"absent_days"`
	TotalDeductionMinutes int             `json:"total_deduction_minutes"`
	TotalDeductionAmount  decimal.Decimal `json:"total_deduction_amount"`
	AttendancePercentage  float64         `json:"attendance_percentage"`
	PerDaySalary          decimal.Decimal `json:"per_day_salary"`
	PerMinuteSalary       decimal.Decimal `json:"per_minute_salary"`
	DailyBreakdown        []DayRecord     `json:"daily_breakdown"`
}
