package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/customer"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/handler/http/response"
)

type CustomerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type customerHandlerImpl struct {
	customerService customer.CustomerService
}

func NewCustomerHandler(customerService customer.CustomerService) CustomerHandler {
	return &customerHandlerImpl{
		customerService: customerService,
	}
}

// Create implements CustomerHandler.
func (h *customerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req customer.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.customerService.CreateCustomer(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Customer created", result)
}

// Get implements CustomerHandler.
func (h *customerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.customerService.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements CustomerHandler.
func (h *customerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req customer.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.customerService.UpdateCustomer(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements CustomerHandler.
func (h *customerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.customerService.DeleteCustomer(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Customer deleted", nil)
}

// List implements CustomerHandler.
func (h *customerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := customer.Filter{
		Name:  queryStr(r, "name"),
		Phone: queryStr(r, "phone"),
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}

	result, err := h.customerService.ListCustomers(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Customers, response.NewMeta(result.Page, result.Limit, result.TotalCount))
}
