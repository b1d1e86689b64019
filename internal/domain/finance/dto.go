package finance

import (
	"github.com/shopspring/decimal"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/validator"
)

// ========================================
// FINANCE DTOs
// ========================================

type CreateExpenseRequest struct {
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"` // YYYY-MM-DD
}

func (r *CreateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if r.Category == "" {
		r.Category = string(CategoryMisc)
	} else if !validator.IsInSlice(r.Category, CategoryValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of: rent, utilities, purchase, misc",
		})
	}

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateExpenseRequest struct {
	ID          string           `json:"-"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *string          `json:"date,omitempty"` // YYYY-MM-DD
}

func (r *UpdateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Description != nil && validator.IsEmpty(*r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not be empty",
		})
	}

	if r.Category != nil && !validator.IsInSlice(*r.Category, CategoryValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of: rent, utilities, purchase, misc",
		})
	}

	if r.Amount != nil && !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if r.Date != nil {
		if _, valid := validator.IsValidDate(*r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

type Filter struct {
	// Search & Filter
	Category  *string `json:"category,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD

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

	if f.Category != nil && *f.Category != "" && !validator.IsInSlice(*f.Category, CategoryValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of: rent, utilities, purchase, misc",
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

type ListExpensesResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Expenses   []ExpenseResponse `json:"expenses"`
}
