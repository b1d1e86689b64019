package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/worker"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/handler/http/response"
)

type WorkerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type workerHandlerImpl struct {
	workerService worker.WorkerService
}

func NewWorkerHandler(workerService worker.WorkerService) WorkerHandler {
	return &workerHandlerImpl{
		workerService: workerService,
	}
}

// Create implements WorkerHandler.
func (h *workerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req worker.CreateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.workerService.CreateWorker(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker created", result)
}

// Get implements WorkerHandler.
func (h *workerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.workerService.GetWorker(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements WorkerHandler.
func (h *workerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req worker.UpdateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.workerService.UpdateWorker(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements WorkerHandler.
func (h *workerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.workerService.DeleteWorker(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker deleted", nil)
}

// List implements WorkerHandler.
func (h *workerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := worker.Filter{
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}
	if name := r.URL.Query().Get("name"); name != "" {
		filter.Name = &name
	}
	if shiftID := r.URL.Query().Get("shift_id"); shiftID != "" {
		filter.ShiftID = &shiftID
	}
	if active := r.URL.Query().Get("is_active"); active != "" {
		isActive := active == "true"
		filter.IsActive = &isActive
	}

	result, err := h.workerService.ListWorkers(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Workers, response.NewMeta(result.Page, result.Limit, result.TotalCount))
}
