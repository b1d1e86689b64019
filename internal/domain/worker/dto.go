package worker

import (
	"github.com/shopspring/decimal"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/validator"
)

// ========================================
// WORKER DTOs
// ========================================

type CreateWorkerRequest struct {
	Name          string           `json:"name"`
	Phone         string           `json:"phone"`
	Role          string           `json:"role"`
	MonthlySalary *decimal.Decimal `json:"monthly_salary,omitempty"`
	ShiftID       *string          `json:"shift_id,omitempty"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	} else if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone number format is invalid",
		})
	}

	if r.MonthlySalary != nil && r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateWorkerRequest struct {
	ID            string           `json:"-"`
	Name          *string          `json:"name,omitempty"`
	Phone         *string          `json:"phone,omitempty"`
	Role          *string          `json:"role,omitempty"`
	MonthlySalary *decimal.Decimal `json:"monthly_salary,omitempty"`
	ShiftID       *string          `json:"shift_id,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone number format is invalid",
		})
	}

	if r.MonthlySalary != nil && r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkerResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Phone         string           `json:"phone"`
	Role          string           `json:"role,omitempty"`
	MonthlySalary *decimal.Decimal `json:"monthly_salary,omitempty"`
	ShiftID       *string          `json:"shift_id,omitempty"`
	ShiftName     *string          `json:"shift_name,omitempty"`
	IsActive      bool             `json:"is_active"`
	CreatedAt     string           `json:"created_at"`
	UpdatedAt     string           `json:"updated_at"`
}

type Filter struct {
	// Search & Filter
	Name     *string `json:"name,omitempty"`
	ShiftID  *string `json:"shift_id,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`

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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListWorkersResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Workers    []WorkerResponse `json:"workers"`
}
