package salary

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/attendance"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/holiday"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/salary"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/shift"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/worker"
)

// Calculator computes monthly salary reports from attendance data.
// All methods are pure: no I/O, no shared state, deterministic for a
// given input. Malformed input degrades to zero-valued results instead
// of failing; callers that need hard validation do it before calling in
// (see service.go).
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// WorkingDays counts the working days of a month for one worker:
// days in month minus Sundays minus holidays that cover the worker.
// Never negative.
func (c *Calculator) WorkingDays(year, month int, holidays []holiday.Holiday, workerID string) int {
	days := daysInMonth(year, month)

	sundays := 0
	for d := 1; d <= days; d++ {
		if time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC).Weekday() == time.Sunday {
			sundays++
		}
	}

	applicable := 0
	for _, h := range holidays {
		if h.Date.Year() == year && int(h.Date.Month()) == month && h.Covers(workerID) {
			applicable++
		}
	}

	working := days - sundays - applicable
	if working < 0 {
		return 0
	}
	return working
}

// ShiftMinutesPerDay derives the daily working minutes of a shift:
// working window minus enabled lunch and break windows. A nil shift or
// an empty working window yields 0. The result is not clamped, so an
// inverted window produces a negative value; Shift validation rejects
// such windows before they reach storage.
func (c *Calculator) ShiftMinutesPerDay(s *shift.Shift) int {
	if s == nil || (s.WorkingTime.From == "" && s.WorkingTime.To == "") {
		return 0
	}

	minutes := windowMinutes(s.WorkingTime.From, s.WorkingTime.To)
	if s.LunchTime.Enabled {
		minutes -= windowMinutes(s.LunchTime.From, s.LunchTime.To)
	}
	if s.BreakTime.Enabled {
		minutes -= windowMinutes(s.BreakTime.From, s.BreakTime.To)
	}
	return minutes
}

// PerDaySalary apportions a monthly salary over working days.
func (c *Calculator) PerDaySalary(monthly decimal.Decimal, workingDays int) decimal.Decimal {
	if workingDays <= 0 || monthly.IsZero() {
		return decimal.Zero
	}
	return monthly.Div(decimal.NewFromInt(int64(workingDays)))
}

// PerHourSalary divides a daily salary by the shift's working hours.
func (c *Calculator) PerHourSalary(perDay decimal.Decimal, minutesPerDay int) decimal.Decimal {
	if minutesPerDay <= 0 {
		return decimal.Zero
	}
	return perDay.Mul(decimal.NewFromInt(60)).Div(decimal.NewFromInt(int64(minutesPerDay)))
}

// PerMinuteSalary divides an hourly salary into minutes.
func (c *Calculator) PerMinuteSalary(perHour decimal.Decimal) decimal.Decimal {
	if perHour.IsZero() {
		return decimal.Zero
	}
	return perHour.Div(decimal.NewFromInt(60))
}

// ComputeMonthlySalary walks every calendar day of the month, classifies
// it (Sunday, holiday, present, absent) and folds the per-day results
// into the monthly report.
//
// A worker without a configured salary short-circuits to an all-zero
// report with an empty breakdown; no error is returned.
func (c *Calculator) ComputeMonthlySalary(
	w worker.Worker,
	year, month int,
	holidays []holiday.Holiday,
	records []attendance.Record,
	s *shift.Shift,
) salary.Report {
	report := salary.Report{
		WorkerID:       w.ID,
		WorkerName:     w.Name,
		Year:           year,
		Month:          month,
		DailyBreakdown: []salary.DayRecord{},
	}

	if w.MonthlySalary == nil || w.MonthlySalary.IsZero() {
		return report
	}
	monthly := *w.MonthlySalary

	workingDays := c.WorkingDays(year, month, holidays, w.ID)
	minutesPerDay := c.ShiftMinutesPerDay(s)
	perDay := c.PerDaySalary(monthly, workingDays)
	perHour := c.PerHourSalary(perDay, minutesPerDay)
	perMinute := c.PerMinuteSalary(perHour)

	recordsByDay := make(map[int][]attendance.Record)
	for _, rec := range records {
		if rec.Date.Year() == year && int(rec.Date.Month()) == month {
			day := rec.Date.Day()
			recordsByDay[day] = append(recordsByDay[day], rec)
		}
	}

	holidaysByDay := make(map[int]bool)
	for _, h := range holidays {
		if h.Date.Year() == year && int(h.Date.Month()) == month && h.Covers(w.ID) {
			holidaysByDay[h.Date.Day()] = true
		}
	}

	presentDays := 0
	presentDeductionMinutes := 0
	presentDeductionAmount := decimal.Zero

	days := daysInMonth(year, month)
	for d := 1; d <= days; d++ {
		date := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
		day := salary.DayRecord{
			Date:         date.Format("2006-01-02"),
			SalaryEarned: decimal.Zero,
		}

		switch {
		case date.Weekday() == time.Sunday:
			day.Status = salary.StatusOffSunday

		case holidaysByDay[d]:
			day.Status = salary.StatusOffHoliday

		default:
			rec := firstWithCheckIn(recordsByDay[d])
			if rec == nil {
				// Absent: pay nothing for the day and report the full shift
				// minutes as information. The actual absence cost is one
				// perDay charged at the month level below.
				day.Status = salary.StatusAbsent
				day.DeductedMinutes = minutesPerDay
				break
			}

			day.Status = salary.StatusPresent
			day.InTime = clockString(rec.CheckIn)
			day.OutTime = clockString(rec.CheckOut)

			mins := c.deductionMinutes(rec, s)
			amount := perMinute.Mul(decimal.NewFromInt(int64(mins)))
			pay := perDay.Sub(amount)
			if pay.IsNegative() {
				pay = decimal.Zero
			}
			day.DeductedMinutes = mins
			day.SalaryEarned = pay

			presentDays++
			presentDeductionMinutes += mins
			presentDeductionAmount = presentDeductionAmount.Add(amount)
		}

		report.DailyBreakdown = append(report.DailyBreakdown, day)
	}

	absentDays := workingDays - presentDays

	earned := perDay.Mul(decimal.NewFromInt(int64(presentDays))).Sub(presentDeductionAmount)
	if earned.IsNegative() {
		earned = decimal.Zero
	}

	final := monthly.
		Sub(perDay.Mul(decimal.NewFromInt(int64(absentDays)))).
		Sub(presentDeductionAmount)
	if final.IsNegative() {
		final = decimal.Zero
	}

	attendancePct := 0.0
	if workingDays > 0 {
		attendancePct = float64(presentDays) / float64(workingDays) * 100
	}

	report.OriginalMonthlySalary = monthly
	report.EarnedSalary = earned
	report.FinalSalary = final
	report.TotalWorkingDays = workingDays
	report.PresentDays = presentDays
	report.AbsentDays = absentDays
	report.TotalDeductionMinutes = presentDeductionMinutes
	report.TotalDeductionAmount = presentDeductionAmount.Add(perDay.Mul(decimal.NewFromInt(int64(absentDays))))
	report.AttendancePercentage = attendancePct
	report.PerDaySalary = perDay
	report.PerMinuteSalary = perMinute

	return report
}

// deductionMinutes computes late-entry, early-exit and lunch-violation
// minutes for a present day. Both punches are required: a missing
// check-out yields zero deduction (the worker counts as present with no
// penalty, matching how the shop has always settled such days).
//
// The lunch branches add one extra minute on top of the rounded-up
// difference. That bias against the worker is intentional and kept for
// compatibility with historical payslips.
func (c *Calculator) deductionMinutes(rec *attendance.Record, s *shift.Shift) int {
	if rec.CheckIn == nil || rec.CheckOut == nil || s == nil {
		return 0
	}

	checkIn := *rec.CheckIn
	checkOut := *rec.CheckOut

	// Each instant is built fresh from the punch's calendar date; nothing
	// here mutates a shared time value.
	shiftStart := combineClock(checkIn, s.WorkingTime.From)
	shiftEnd := combineClock(checkIn, s.WorkingTime.To)

	minutes := 0
	if checkIn.After(shiftStart) {
		minutes += ceilMinutes(checkIn.Sub(shiftStart))
	}
	if checkOut.Before(shiftEnd) {
		minutes += ceilMinutes(shiftEnd.Sub(checkOut))
	}

	if s.LunchTime.Enabled {
		lunchStart := combineClock(checkIn, s.LunchTime.From)
		lunchEnd := combineClock(checkIn, s.LunchTime.To)

		if inWindow(checkIn, lunchStart, lunchEnd) {
			minutes += ceilMinutes(checkIn.Sub(lunchStart)) + 1
		}
		if inWindow(checkOut, lunchStart, lunchEnd) {
			minutes += ceilMinutes(lunchEnd.Sub(checkOut)) + 1
		}
	}

	// Break windows are defined on the shift but never checked here;
	// only lunch violations are charged.

	return minutes
}

func firstWithCheckIn(records []attendance.Record) *attendance.Record {
	for i := range records {
		if records[i].CheckIn != nil {
			return &records[i]
		}
	}
	return nil
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// windowMinutes returns the length of a clock window in minutes. Not
// clamped: an inverted window comes back negative.
func windowMinutes(from, to string) int {
	fromHour, fromMinute := parseClock(from)
	toHour, toMinute := parseClock(to)
	return (toHour*60 + toMinute) - (fromHour*60 + fromMinute)
}

// parseClock parses "HH:MM"; unparseable components default to 0.
func parseClock(clock string) (hour, minute int) {
	parts := strings.SplitN(clock, ":", 2)
	hour, _ = strconv.Atoi(parts[0])
	if len(parts) > 1 {
		minute, _ = strconv.Atoi(parts[1])
	}
	return hour, minute
}

// combineClock places a wall-clock time on the calendar day of ref.
func combineClock(ref time.Time, clock string) time.Time {
	hour, minute := parseClock(clock)
	return time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, ref.Location())
}

// ceilMinutes rounds a positive duration up to whole minutes, so any
// positive amount under a minute still costs one minute.
func ceilMinutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Minute - 1) / time.Minute)
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func clockString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}
