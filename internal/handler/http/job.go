package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/job"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/handler/http/response"
)

type JobHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	AddPart(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type jobHandlerImpl struct {
	jobService job.JobService
}

func NewJobHandler(jobService job.JobService) JobHandler {
	return &jobHandlerImpl{
		jobService: jobService,
	}
}

// Create implements JobHandler.
func (h *jobHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req job.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.jobService.CreateJob(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job created", result)
}

// Get implements JobHandler.
func (h *jobHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.jobService.GetJob(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements JobHandler.
func (h *jobHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req job.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.jobService.UpdateJob(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateStatus implements JobHandler.
func (h *jobHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req job.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.jobService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AddPart implements JobHandler.
func (h *jobHandlerImpl) AddPart(w http.ResponseWriter, r *http.Request) {
	var req job.AddPartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.JobID = chi.URLParam(r, "id")

	result, err := h.jobService.AddPart(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements JobHandler.
func (h *jobHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := job.Filter{
		CustomerID: queryStr(r, "customer_id"),
		Status:     queryStr(r, "status"),
		JobNumber:  queryStr(r, "job_number"),
		StartDate:  queryStr(r, "start_date"),
		EndDate:    queryStr(r, "end_date"),
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	}

	result, err := h.jobService.ListJobs(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Jobs, response.NewMeta(result.Page, result.Limit, result.TotalCount))
}
