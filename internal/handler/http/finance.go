package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/finance"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/handler/http/response"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/service/report"
)

type FinanceHandler interface {
	CreateExpense(w http.ResponseWriter, r *http.Request)
	GetExpense(w http.ResponseWriter, r *http.Request)
	UpdateExpense(w http.ResponseWriter, r *http.Request)
	DeleteExpense(w http.ResponseWriter, r *http.Request)
	ListExpenses(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	MonthlySummaryPDF(w http.ResponseWriter, r *http.Request)
}

type financeHandlerImpl struct {
	financeService finance.FinanceService
	pdfService     *report.PDFService
}

func NewFinanceHandler(financeService finance.FinanceService, pdfService *report.PDFService) FinanceHandler {
	return &financeHandlerImpl{
		financeService: financeService,
		pdfService:     pdfService,
	}
}

// CreateExpense implements FinanceHandler.
func (h *financeHandlerImpl) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req finance.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.financeService.CreateExpense(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense created", result)
}

// GetExpense implements FinanceHandler.
func (h *financeHandlerImpl) GetExpense(w http.ResponseWriter, r *http.Request) {
	result, err := h.financeService.GetExpense(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateExpense implements FinanceHandler.
func (h *financeHandlerImpl) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	var req finance.UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.financeService.UpdateExpense(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteExpense implements FinanceHandler.
func (h *financeHandlerImpl) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.financeService.DeleteExpense(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense deleted", nil)
}

// ListExpenses implements FinanceHandler.
func (h *financeHandlerImpl) ListExpenses(w http.ResponseWriter, r *http.Request) {
	filter := finance.Filter{
		Category:  queryStr(r, "category"),
		StartDate: queryStr(r, "start_date"),
		EndDate:   queryStr(r, "end_date"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}

	result, err := h.financeService.ListExpenses(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Expenses, response.NewMeta(result.Page, result.Limit, result.TotalCount))
}

// MonthlySummary implements FinanceHandler.
func (h *financeHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.financeService.GetMonthlySummary(r.Context(), queryInt(r, "year"), queryInt(r, "month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlySummaryPDF implements FinanceHandler.
func (h *financeHandlerImpl) MonthlySummaryPDF(w http.ResponseWriter, r *http.Request) {
	summary, err := h.financeService.GetMonthlySummary(r.Context(), queryInt(r, "year"), queryInt(r, "month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	data, err := h.pdfService.MonthlyFinancials(summary)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.PDF(w, fmt.Sprintf("financials-%04d-%02d.pdf", summary.Year, summary.Month), data)
}
