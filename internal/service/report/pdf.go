package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/finance"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/salary"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/currency"
)

// PDFService renders payslips and financial summaries for download.
// The report data is computed elsewhere; this layer only formats it.
type PDFService struct {
	shopName string
}

func NewPDFService(shopName string) *PDFService {
	return &PDFService{shopName: shopName}
}

func monthName(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// Payslip renders one worker's monthly salary report.
func (s *PDFService) Payslip(report salary.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, s.shopName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 10, fmt.Sprintf("Payslip - %s", monthName(report.Year, report.Month)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Worker: %s", report.WorkerName))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Working days: %d   Present: %d   Absent: %d",
		report.TotalWorkingDays, report.PresentDays, report.AbsentDays))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Attendance: %.1f%%", report.AttendancePercentage))
	pdf.Ln(10)

	pdf.Cell(0, 7, fmt.Sprintf("Monthly salary: %s", currency.Format(report.OriginalMonthlySalary)))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Deductions: %s (%d min late/early)",
		currency.Format(report.TotalDeductionAmount), report.TotalDeductionMinutes))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Final salary: %s", currency.Format(report.FinalSalary)))
	pdf.Ln(12)

	// Daily breakdown table.
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(25, 6, "Date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(18, 6, "In", "1", 0, "C", false, 0, "")
	pdf.CellFormat(18, 6, "Out", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, "Status", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 6, "Ded. (min)", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 6, "Earned", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, day := range report.DailyBreakdown {
		in, out := "-", "-"
		if day.InTime != nil {
			in = *day.InTime
		}
		if day.OutTime != nil {
			out = *day.OutTime
		}
		pdf.CellFormat(25, 6, day.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(18, 6, in, "1", 0, "C", false, 0, "")
		pdf.CellFormat(18, 6, out, "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, string(day.Status), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", day.DeductedMinutes), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, currency.Format(day.SalaryEarned), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}
	return buf.Bytes(), nil
}

// MonthlyFinancials renders the month's profit-and-loss summary.
func (s *PDFService) MonthlyFinancials(summary finance.MonthlySummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, s.shopName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 10, fmt.Sprintf("Financial Summary - %s", monthName(summary.Year, summary.Month)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Jobs delivered: %d", summary.DeliveredJobs))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Job revenue: %s", currency.Format(summary.JobRevenue)))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Parts cost: %s", currency.Format(summary.PartsCost)))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Salary outlay: %s", currency.Format(summary.SalaryOutlay)))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Expenses: %s", currency.Format(summary.Expenses)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %s", currency.Format(summary.Net)))
	pdf.Ln(12)

	if len(summary.ExpensesByCategory) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 8, "Expenses by category")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, category := range finance.CategoryValues {
			amount, ok := summary.ExpensesByCategory[category]
			if !ok {
				continue
			}
			pdf.Cell(0, 6, fmt.Sprintf("%s: %s", category, currency.Format(amount)))
			pdf.Ln(6)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render financial summary: %w", err)
	}
	return buf.Bytes(), nil
}
