package salary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/attendance"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/holiday"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/salary"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/shift"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/worker"
)

// September 2025: 30 days, Sundays on the 7th, 14th, 21st and 28th.
const (
	testYear  = 2025
	testMonth = 9
)

func salaryPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func testWorker(salary *decimal.Decimal) worker.Worker {
	return worker.Worker{
		ID:            "worker-1",
		Name:          "Rahim",
		MonthlySalary: salary,
	}
}

// 09:00-18:00 with a one hour lunch and no break: 480 working minutes.
func testShift() *shift.Shift {
	return &shift.Shift{
		ID:          "shift-1",
		Name:        "Day Batch",
		WorkingTime: shift.Window{From: "09:00", To: "18:00"},
		LunchTime:   shift.ToggleWindow{From: "13:00", To: "14:00", Enabled: true},
		BreakTime:   shift.ToggleWindow{Enabled: false},
	}
}

func punch(day, hour, minute, second int) time.Time {
	return time.Date(testYear, testMonth, day, hour, minute, second, 0, time.UTC)
}

func record(workerID string, day int, checkIn, checkOut *time.Time) attendance.Record {
	return attendance.Record{
		ID:       "rec",
		WorkerID: workerID,
		Date:     time.Date(testYear, testMonth, day, 0, 0, 0, 0, time.UTC),
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Method:   attendance.MethodManual,
	}
}

// fullMonthRecords produces an on-time punch pair for every non-Sunday
// day of September 2025, except the listed days.
func fullMonthRecords(workerID string, skipDays ...int) []attendance.Record {
	skip := make(map[int]bool)
	for _, d := range skipDays {
		skip[d] = true
	}

	var records []attendance.Record
	for d := 1; d <= 30; d++ {
		date := time.Date(testYear, testMonth, d, 0, 0, 0, 0, time.UTC)
		if date.Weekday() == time.Sunday || skip[d] {
			continue
		}
		in := punch(d, 9, 0, 0)
		out := punch(d, 18, 0, 0)
		records = append(records, record(workerID, d, &in, &out))
	}
	return records
}

// ===== WORKING CALENDAR =====

func TestWorkingDays_ExcludesSundays(t *testing.T) {
	t.Parallel()
	c := NewCalculator()

	got := c.WorkingDays(testYear, testMonth, nil, "worker-1")

	assert.Equal(t, 26, got) // 30 days - 4 Sundays
}

func TestWorkingDays_HolidayScoping(t *testing.T) {
	t.Parallel()
	c := NewCalculator()

	holidays := []holiday.Holiday{
		{
			Name:      "Founders Day",
			Date:      time.Date(testYear, testMonth, 15, 0, 0, 0, 0, time.UTC),
			AppliesTo: holiday.ScopeSpecific,
			Workers:   []holiday.WorkerRef{holiday.RefFromID("worker-2")},
		},
	}

	assert.Equal(t, 26, c.WorkingDays(testYear, testMonth, holidays, "worker-1"),
		"holiday scoped to another worker must not reduce working days")
	assert.Equal(t, 25, c.WorkingDays(testYear, testMonth, holidays, "worker-2"))

	holidays[0].AppliesTo = holiday.ScopeAll
	assert.Equal(t, 25, c.WorkingDays(testYear, testMonth, holidays, "worker-1"))
	assert.Equal(t, 25, c.WorkingDays(testYear, testMonth, holidays, "worker-2"))
}

func TestWorkingDays_AcceptsBothWorkerRefForms(t *testing.T) {
	t.Parallel()
	c := NewCalculator()

	// Holiday documents imported from the old system keep raw IDs while
	// new ones store populated summaries; both must match.
	holidays := []holiday.Holiday{
		{
			Date:      time.Date(testYear, testMonth, 10, 0, 0, 0, 0, time.UTC),
			AppliesTo: holiday.ScopeSpecific,
			Workers:   []holiday.WorkerRef{holiday.RefFromID("worker-1")},
		},
		{
			Date:      time.Date(testYear, testMonth, 11, 0, 0, 0, 0, time.UTC),
			AppliesTo: holiday.ScopeSpecific,
			Workers:   []holiday.WorkerRef{holiday.RefFromSummary("worker-1", "Rahim")},
		},
	}

	assert.Equal(t, 24, c.WorkingDays(testYear, testMonth, holidays, "worker-1"))
}

func TestWorkingDays_IgnoresOtherMonths(t *testing.T) {
	t.Parallel()
	c := NewCalculator()

	holidays := []holiday.Holiday{
		{
			Date:      time.Date(testYear, 10, 2, 0, 0, 0, 0, time.UTC),
			AppliesTo: holiday.ScopeAll,
		},
	}

	assert.Equal(t, 26, c.WorkingDays(testYear, testMonth, holidays, "worker-1"))
}

func TestWorkingDays_NeverNegative(t *testing.T) {
	t.Parallel()
	c := NewCalculator()

	// February 2025 has 28 days and 4 Sundays; 28 all-scope holidays
	// push the raw count below zero.
	var holidays []holiday.Holiday
	for d := 1; d <= 28; d++ {
		holidays = append(holidays, holiday.Holiday{
			Date:      time.Date(2025, 2, d, 0, 0, 0, 0, time.UTC),
			AppliesTo: holiday.ScopeAll,
		})
	}

	assert.Equal(t, 0, c.WorkingDays(2025, 2, holidays, "worker-1"))
}

// ===== SHIFT MODEL =====

func TestShiftMinutesPerDay(t *testing.T) {
	t.Parallel()
	c := NewCalculator()

	tests := []struct {
		name  string
		shift *shift.Shift
		want  int
	}{
		{
			name:  "nil shift",
			shift: nil,
			want:  0,
		},
		{
			name:  "empty working window",
			shift: &shift.Shift{},
			want:  0,
		},
		{
			name:  "working window with lunch",
			shift: testShift(),
			want:  480,
		},
		{
			name: "lunch disabled",
			shift: &shift.Shift{
				WorkingTime: shift.Window{From: "09:00", To: "18:00"},
				LunchTime:   shift.ToggleWindow{From: "13:00", To: "14:00", Enabled: false},
			},
			want: 540,
		},
		{
			name: "lunch and break enabled",
			shift: &shift.Shift{
				WorkingTime: shift.Window{From: "09:00", To: "18:00"},
				LunchTime:   shift.ToggleWindow{From: "13:00", To: "14:00", Enabled: true},
				BreakTime:   shift.ToggleWindow{From: "16:00", To: "16:15", Enabled: true},
			},
			want: 465,
		},
		{
			// Unparseable components silently degrade to zero rather than
			// erroring; here "xx" reads as hour 0 and the window inverts.
			name: "malformed to-time degrades to zero hour",
			shift: &shift.Shift{
				WorkingTime: shift.Window{From: "09:00", To: "xx:00"},
			},
			want: -540,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, c.ShiftMinutesPerDay(tt.shift))
		})
	}
}

// ===== RATE CALCULATOR =====

func TestRates_ZeroGuards(t *testing.T) {
	t.Parallel()
	c := NewCalculator()

	assert.True(t, c.PerDaySalary(decimal.NewFromInt(30000), 0).IsZero())
	assert.True(t, c.PerDaySalary(decimal.Zero, 26).IsZero())
	assert.True(t, c.PerHourSalary(decimal.NewFromInt(1000), 0).IsZero())
	assert.True(t, c.PerHourSalary(decimal.NewFromInt(1000), -10).IsZero())
	assert.True(t, c.PerMinuteSalary(decimal.Zero).IsZero())
}

func TestRates_HourlyDecreasesWithLongerDays(t *testing.T) {
	t.Parallel()
	c := NewCalculator()

	perDay := c.PerDaySalary(decimal.NewFromInt(30000), 26)
	shorter := c.PerHourSalary(perDay, 420)
	longer := c.PerHourSalary(perDay, 480)

	assert.True(t, longer.LessThan(shorter),
		"more working minutes per day must mean a lower hourly rate")
}

// ===== MONTHLY COMPUTATION =====

func TestComputeMonthlySalary_PerfectAttendance(t *testing.T) {
	t.Parallel()
	c := NewCalculator()
	w := testWorker(salaryPtr(30000))

	report := c.ComputeMonthlySalary(w, testYear, testMonth, nil, fullMonthRecords(w.ID), testShift())

	assert.Equal(t, 26, report.TotalWorkingDays)
	assert.Equal(t, 26, report.PresentDays)
	assert.Equal(t, 0, report.AbsentDays)
	assert.Equal(t, 0, report.TotalDeductionMinutes)
	assert.True(t, report.TotalDeductionAmount.IsZero())
	assert.True(t, report.FinalSalary.Equal(decimal.NewFromInt(30000)),
		"final salary should be the full monthly salary, got %s", report.FinalSalary)
	assert.True(t, report.EarnedSalary.Round(2).Equal(decimal.NewFromInt(30000)))
	assert.InDelta(t, 100.0, report.AttendancePercentage, 0.0001)
	assert.Len(t, report.DailyBreakdown, 30)

	for _, day := range report.DailyBreakdown {
		date, err := time.Parse("2006-01-02", day.Date)
		require.NoError(t, err)
		if date.Weekday() == time.Sunday {
			assert.Equal(t, salary.StatusOffSunday, day.Status)
			assert.True(t, day.SalaryEarned.IsZero())
		} else {
			assert.Equal(t, salary.StatusPresent, day.Status)
			assert.Equal(t, 0, day.DeductedMinutes)
		}
	}
}

func TestComputeMonthlySalary_LateArrival(t *testing.T) {
	t.Parallel()
	c := NewCalculator()
	w := testWorker(salaryPtr(30000))

	records := fullMonthRecords(w.ID, 10)
	in := punch(10, 9, 15, 0)
	out := punch(10, 18, 0, 0)
	records = append(records, record(w.ID, 10, &in, &out))

	report := c.ComputeMonthlySalary(w, testYear, testMonth, nil, records, testShift())

	assert.Equal(t, 26, report.PresentDays)
	assert.Equal(t, 15, report.TotalDeductionMinutes)

	day := report.DailyBreakdown[9] // September 10th
	assert.Equal(t, salary.StatusPresent, day.Status)
	assert.Equal(t, 15, day.DeductedMinutes)

	expectedDeduction := report.PerMinuteSalary.Mul(decimal.NewFromInt(15))
	assert.True(t, report.TotalDeductionAmount.Equal(expectedDeduction))
	assert.True(t, day.SalaryEarned.Equal(report.PerDaySalary.Sub(expectedDeduction)))
}

func TestComputeMonthlySalary_SubMinuteLateRoundsUpToOne(t *testing.T) {
	t.Parallel()
	c := NewCalculator()
	w := testWorker(salaryPtr(30000))

	records := fullMonthRecords(w.ID, 10)
	in := punch(10, 9, 0, 30) // thirty seconds late
	out := punch(10, 18, 0, 0)
	records = append(records, record(w.ID, 10, &in, &out))

	report := c.ComputeMonthlySalary(w, testYear, testMonth, nil, records, testShift())

	assert.Equal(t, 1, report.TotalDeductionMinutes)
}

func TestComputeMonthlySalary_EarlyExit(t *testing.T) {
	t.Parallel()
	c := NewCalculator()
	w := testWorker(salaryPtr(30000))

	records := fullMonthRecords(w.ID, 10)
	in := punch(10, 9, 0, 0)
	out := punch(10, 17, 30, 0)
	records = append(records, record(w.ID, 10, &in, &out))

	report := c.ComputeMonthlySalary(w, testYear, testMonth, nil, records, testShift())

	assert.Equal(t, 30, report.TotalDeductionMinutes)
}

func TestComputeMonthlySalary_LunchViolationBias(t *testing.T) {
	t.Parallel()
	c := NewCalculator()
	w := testWorker(salaryPtr(30000))

	// Check-in at exactly 13:00, the lunch-window start. On top of the
	// 240 late minutes the lunch branch charges ceil(0)+1 = 1 minute:
	// the historical off-by-one bias, preserved on purpose.
	records := fullMonthRecords(w.ID, 10)
	in := punch(10, 13, 0, 0)
	out := punch(10, 18, 0, 0)
	records = append(records, record(w.ID, 10, &in, &out))

	report := c.ComputeMonthlySalary(w, testYear, testMonth, nil, records, testShift())

	assert.Equal(t, 240+1, report.TotalDeductionMinutes)
}

func TestComputeMonthlySalary_LunchViolationOnCheckOut(t *testing.T) {
	t.Parallel()
	c := NewCalculator()
	w := testWorker(salaryPtr(30000))

	// Check-out at 13:30, inside the lunch window: 270 early-exit
	// minutes plus ceil(30)+1 = 31 lunch-violation minutes.
	records := fullMonthRecords(w.ID, 10)
	in := punch(10, 9, 0, 0)
	out := punch(10, 13, 30, 0)
	records = append(records, record(w.ID, 10, &in, &out))

	report := c.ComputeMonthlySalary(w, testYear, testMonth, nil, records, testShift())

	assert.Equal(t, 270+31, report.TotalDeductionMinutes)
}

func TestComputeMonthlySalary_BreakWindowNotCharged(t *testing.T) {
	t.Parallel()
	c := NewCalculator()
	w := testWorker(salaryPtr(30000))

	s := testShift()
	s.BreakTime = shift.ToggleWindow{From: "16:00", To: "16:15", Enabled: true}

	// Check-out inside the break window: only the early-exit minutes are
	// charged, the break window itself is never checked.
	records := fullMonthRecords(w.ID, 10)
	in := punch(10, 9, 0, 0)
	out := punch(10, 16, 5, 0)
	records = append(records, record(w.ID, 10, &in, &out))

	report := c.ComputeMonthlySalary(w, testYear, testMonth, nil, records, s)

	assert.Equal(t, 115, report.TotalDeductionMinutes) // 18:00 - 16:05
}

func TestComputeMonthlySalary_Absence(t *testing.T) {
	t.Parallel()
	c := NewCalculator()
	w := testWorker(salaryPtr(30000))

	report := c.ComputeMonthlySalary(w, testYear, testMonth, nil, fullMonthRecords(w.ID, 10), testShift())

	assert.Equal(t, 25, report.PresentDays)
	assert.Equal(t, 1, report.AbsentDays)

	day := report.DailyBreakdown[9]
	assert.Equal(t, salary.StatusAbsent, day.Status)
	assert.Equal(t, 480, day.DeductedMinutes, "absent day reports the full shift minutes")
	assert.True(t, day.SalaryEarned.IsZero())

	// The absence is charged once, as one per-day salary: reported
	// deduction minutes stay at zero while the amount carries the charge.
	assert.Equal(t, 0, report.TotalDeductionMinutes)
	assert.True(t, report.TotalDeductionAmount.Equal(report.PerDaySalary))
	assert.True(t, report.FinalSalary.Equal(decimal.NewFromInt(30000).Sub(report.PerDaySalary)),
		"final salary must drop by exactly one per-day salary")
}

func TestComputeMonthlySalary_MissingCheckOutNoPenalty(t *testing.T) {
	t.Parallel()
	c := NewCalculator()
	w := testWorker(salaryPtr(30000))

	// An open session cannot be deduction-calculated: the day counts as
	// present with zero deduction.
	records := fullMonthRecords(w.ID, 10)
	in := punch(10, 11, 45, 0)
	records = append(records, record(w.ID, 10, &in, nil))

	report := c.ComputeMonthlySalary(w, testYear, testMonth, nil, records, testShift())

	assert.Equal(t, 26, report.PresentDays)
	assert.Equal(t, 0, report.TotalDeductionMinutes)

	day := report.DailyBreakdown[9]
	assert.Equal(t, salary.StatusPresent, day.Status)
	assert.NotNil(t, day.InTime)
	assert.Nil(t, day.OutTime)
	assert.True(t, day.SalaryEarned.Equal(report.PerDaySalary))
}

func TestComputeMonthlySalary_SkipsRecordWithoutCheckIn(t *testing.T) {
	t.Parallel()
	c := NewCalculator()
	w := testWorker(salaryPtr(30000))

	// The capture hardware sometimes writes a dangling record; the first
	// record carrying a check-in wins.
	out := punch(10, 18, 0, 0)
	in := punch(10, 9, 10, 0)
	records := fullMonthRecords(w.ID, 10)
	records = append(records,
		record(w.ID, 10, nil, nil),
		record(w.ID, 10, &in, &out),
	)

	report := c.ComputeMonthlySalary(w, testYear, testMonth, nil, records, testShift())

	assert.Equal(t, 26, report.PresentDays)
	assert.Equal(t, 10, report.TotalDeductionMinutes)
}

func TestComputeMonthlySalary_HolidayDay(t *testing.T) {
	t.Parallel()
	c := NewCalculator()
	w := testWorker(salaryPtr(30000))

	holidays := []holiday.Holiday{
		{
			Name:      "Pongal",
			Date:      time.Date(testYear, testMonth, 10, 0, 0, 0, 0, time.UTC),
			AppliesTo: holiday.ScopeAll,
		},
	}

	report := c.ComputeMonthlySalary(w, testYear, testMonth, holidays, fullMonthRecords(w.ID, 10), testShift())

	assert.Equal(t, 25, report.TotalWorkingDays)
	assert.Equal(t, 25, report.PresentDays)
	assert.Equal(t, 0, report.AbsentDays)
	assert.Equal(t, salary.StatusOffHoliday, report.DailyBreakdown[9].Status)
}

func TestComputeMonthlySalary_MissingSalary(t *testing.T) {
	t.Parallel()
	c := NewCalculator()

	for _, w := range []worker.Worker{testWorker(nil), testWorker(salaryPtr(0))} {
		report := c.ComputeMonthlySalary(w, testYear, testMonth, nil, fullMonthRecords(w.ID), testShift())

		assert.True(t, report.FinalSalary.IsZero())
		assert.True(t, report.EarnedSalary.IsZero())
		assert.True(t, report.PerDaySalary.IsZero())
		assert.Equal(t, 0, report.TotalWorkingDays)
		assert.Equal(t, 0, report.PresentDays)
		assert.Empty(t, report.DailyBreakdown)
	}
}

func TestComputeMonthlySalary_DailyPayNeverNegative(t *testing.T) {
	t.Parallel()
	c := NewCalculator()
	w := testWorker(salaryPtr(30000))

	// One punch pair so late that the deduction exceeds the day's pay.
	in := punch(10, 17, 55, 0)
	out := punch(10, 17, 56, 0)
	records := []attendance.Record{record(w.ID, 10, &in, &out)}

	report := c.ComputeMonthlySalary(w, testYear, testMonth, nil, records, testShift())

	day := report.DailyBreakdown[9]
	assert.Equal(t, salary.StatusPresent, day.Status)
	assert.True(t, day.SalaryEarned.IsZero())
	assert.True(t, report.EarnedSalary.IsZero(),
		"earned salary clamps at zero when deductions exceed present-day pay")
	assert.True(t, report.FinalSalary.GreaterThanOrEqual(decimal.Zero))
}

func TestComputeMonthlySalary_Idempotent(t *testing.T) {
	t.Parallel()
	c := NewCalculator()
	w := testWorker(salaryPtr(30000))
	records := fullMonthRecords(w.ID, 4, 10)

	first := c.ComputeMonthlySalary(w, testYear, testMonth, nil, records, testShift())
	second := c.ComputeMonthlySalary(w, testYear, testMonth, nil, records, testShift())

	assert.Equal(t, first, second)
}

func TestComputeMonthlySalary_RecordOnSundayStaysOff(t *testing.T) {
	t.Parallel()
	c := NewCalculator()
	w := testWorker(salaryPtr(30000))

	// September 7th is a Sunday; a stray punch pair must not turn it
	// into a present working day.
	in := punch(7, 9, 0, 0)
	out := punch(7, 18, 0, 0)
	records := append(fullMonthRecords(w.ID), record(w.ID, 7, &in, &out))

	report := c.ComputeMonthlySalary(w, testYear, testMonth, nil, records, testShift())

	assert.Equal(t, 26, report.PresentDays)
	assert.Equal(t, salary.StatusOffSunday, report.DailyBreakdown[6].Status)
}
