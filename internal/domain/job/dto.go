package job

import (
	"github.com/shopspring/decimal"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/validator"
)

// ========================================
// JOB DTOs
// ========================================

type CreateJobRequest struct {
	CustomerID string          `json:"customer_id"`
	Device     Device          `json:"device"`
	Complaint  string          `json:"complaint"`
	Estimate   decimal.Decimal `json:"estimate"`
	Advance    decimal.Decimal `json:"advance"`
}

func (r *CreateJobRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CustomerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "customer_id",
			Message: "customer_id is required",
		})
	}

	if validator.IsEmpty(r.Device.Brand) {
		errs = append(errs, validator.ValidationError{
			Field:   "device.brand",
			Message: "device brand is required",
		})
	}

	if r.Device.IMEI != "" && !validator.IsValidIMEI(r.Device.IMEI) {
		errs = append(errs, validator.ValidationError{
			Field:   "device.imei",
			Message: "imei must be 15 digits",
		})
	}

	if validator.IsEmpty(r.Complaint) {
		errs = append(errs, validator.ValidationError{
			Field:   "complaint",
			Message: "complaint is required",
		})
	}

	if r.Estimate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "estimate",
			Message: "estimate must not be negative",
		})
	}

	if r.Advance.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "advance",
			Message: "advance must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateJobRequest struct {
	ID        string           `json:"-"`
	Device    *Device          `json:"device,omitempty"`
	Complaint *string          `json:"complaint,omitempty"`
	Estimate  *decimal.Decimal `json:"estimate,omitempty"`
	Advance   *decimal.Decimal `json:"advance,omitempty"`
	Total     *decimal.Decimal `json:"total,omitempty"`
}

func (r *UpdateJobRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Device != nil && r.Device.IMEI != "" && !validator.IsValidIMEI(r.Device.IMEI) {
		errs = append(errs, validator.ValidationError{
			Field:   "device.imei",
			Message: "imei must be 15 digits",
		})
	}

	if r.Estimate != nil && r.Estimate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "estimate",
			Message: "estimate must not be negative",
		})
	}

	if r.Advance != nil && r.Advance.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "advance",
			Message: "advance must not be negative",
		})
	}

	if r.Total != nil && r.Total.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "total",
			Message: "total must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateStatusRequest moves a job through its lifecycle. Total is
// required when moving to delivered so the settled amount is recorded
// with the transition.
type UpdateStatusRequest struct {
	ID     string           `json:"-"`
	Status string           `json:"status"`
	Total  *decimal.Decimal `json:"total,omitempty"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: received, in_progress, ready, delivered, cancelled",
		})
	}

	if r.Status == string(StatusDelivered) && r.Total == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "total",
			Message: "total is required when delivering a job",
		})
	}

	if r.Total != nil && r.Total.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "total",
			Message: "total must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type JobResponse struct {
	ID          string          `json:"id"`
	JobNumber   string          `json:"job_number"`
	CustomerID  string          `json:"customer_id"`
	Customer    any             `json:"customer,omitempty"`
	Device      Device          `json:"device"`
	Complaint   string          `json:"complaint"`
	Estimate    decimal.Decimal `json:"estimate"`
	Advance     decimal.Decimal `json:"advance"`
	Status      string          `json:"status"`
	PartsUsed   []PartUsage     `json:"parts_used"`
	Total       decimal.Decimal `json:"total"`
	BalanceDue  decimal.Decimal `json:"balance_due"`
	DeliveredAt *string         `json:"delivered_at,omitempty"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

type Filter struct {
	// Search & Filter
	CustomerID *string `json:"customer_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	JobNumber  *string `json:"job_number,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil && *f.Status != "" && !validator.IsInSlice(*f.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: received, in_progress, ready, delivered, cancelled",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListJobsResponse struct {
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	Jobs       []JobResponse `json:"jobs"`
}

// AddPartRequest consumes stock for a job.
type AddPartRequest struct {
	JobID    string `json:"-"`
	PartID   string `json:"part_id"`
	Quantity int    `json:"quantity"`
}

func (r *AddPartRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PartID) {
		errs = append(errs, validator.ValidationError{
			Field:   "part_id",
			Message: "part_id is required",
		})
	}

	if r.Quantity <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
