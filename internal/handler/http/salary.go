package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/salary"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/handler/http/response"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/service/report"
)

type SalaryHandler interface {
	MonthlyReport(w http.ResponseWriter, r *http.Request)
	MonthlyReports(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
	pdfService    *report.PDFService
}

func NewSalaryHandler(salaryService salary.SalaryService, pdfService *report.PDFService) SalaryHandler {
	return &salaryHandlerImpl{
		salaryService: salaryService,
		pdfService:    pdfService,
	}
}

// MonthlyReport implements SalaryHandler.
func (h *salaryHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.GetMonthlyReport(r.Context(), chi.URLParam(r, "id"), queryInt(r, "year"), queryInt(r, "month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlyReports implements SalaryHandler.
func (h *salaryHandlerImpl) MonthlyReports(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.GetMonthlyReports(r.Context(), queryInt(r, "year"), queryInt(r, "month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Payslip implements SalaryHandler.
func (h *salaryHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	rep, err := h.salaryService.GetMonthlyReport(r.Context(), chi.URLParam(r, "id"), queryInt(r, "year"), queryInt(r, "month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	data, err := h.pdfService.Payslip(rep)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.PDF(w, fmt.Sprintf("payslip-%s-%04d-%02d.pdf", rep.WorkerID, rep.Year, rep.Month), data)
}
