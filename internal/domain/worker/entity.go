package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

// Worker is a shop employee whose attendance and salary are tracked.
// MonthlySalary is nullable: workers without a configured salary still
// record attendance but produce an all-zero salary report.
type Worker struct {
	ID            string
	Name          string
	Phone         string
	Role          string
	MonthlySalary *decimal.Decimal
	ShiftID       *string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time

	// Joined fields
	ShiftName *string
}

// Summary is the reduced worker shape embedded in holiday scopes and
// report rows.
type Summary struct {
	ID   string
	Name string
}
