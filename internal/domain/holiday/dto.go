package holiday

import (
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/validator"
)

// ========================================
// HOLIDAY DTOs
// ========================================

type CreateHolidayRequest struct {
	Name      string   `json:"name"`
	Date      string   `json:"date"` // YYYY-MM-DD
	AppliesTo string   `json:"applies_to"`
	WorkerIDs []string `json:"worker_ids,omitempty"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.AppliesTo, ScopeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "applies_to",
			Message: "applies_to must be one of: all, specific",
		})
	}

	if r.AppliesTo == string(ScopeSpecific) && len(r.WorkerIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_ids",
			Message: "worker_ids is required when applies_to is specific",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateHolidayRequest struct {
	ID        string    `json:"-"`
	Name      *string   `json:"name,omitempty"`
	Date      *string   `json:"date,omitempty"`
	AppliesTo *string   `json:"applies_to,omitempty"`
	WorkerIDs *[]string `json:"worker_ids,omitempty"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
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

	if r.AppliesTo != nil && !validator.IsInSlice(*r.AppliesTo, ScopeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "applies_to",
			Message: "applies_to must be one of: all, specific",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Date      string      `json:"date"`
	AppliesTo string      `json:"applies_to"`
	Workers   []WorkerRef `json:"workers,omitempty"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}
