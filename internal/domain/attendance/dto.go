package attendance

import (
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	WorkerID string `json:"worker_id"`
	Method   string `json:"method"`
	// At overrides the capture timestamp for manual entries; defaults to now.
	At *string `json:"at,omitempty"` // RFC3339
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if r.Method == "" {
		r.Method = string(MethodManual)
	} else if !validator.IsInSlice(r.Method, MethodValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "method",
			Message: "method must be one of: rfid, face, manual",
		})
	}

	if r.At != nil {
		if _, valid := validator.IsValidDateTime(*r.At); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "at",
				Message: "at must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	WorkerID string  `json:"worker_id"`
	At       *string `json:"at,omitempty"` // RFC3339
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if r.At != nil {
		if _, valid := validator.IsValidDateTime(*r.At); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "at",
				Message: "at must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID         string  `json:"id"`
	WorkerID   string  `json:"worker_id"`
	WorkerName string  `json:"worker_name,omitempty"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
	Method     string  `json:"method"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type Filter struct {
	WorkerID  *string `json:"worker_id,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD

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

type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Records    []RecordResponse `json:"records"`
}

// CorrectionRequest lets an admin fix a wrong or missing punch.
type CorrectionRequest struct {
	ID       string  `json:"-"`
	CheckIn  *string `json:"check_in,omitempty"`  // RFC3339
	CheckOut *string `json:"check_out,omitempty"` // RFC3339
}

func (r *CorrectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CheckIn != nil {
		if _, valid := validator.IsValidDateTime(*r.CheckIn); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be an RFC3339 timestamp",
			})
		}
	}

	if r.CheckOut != nil {
		if _, valid := validator.IsValidDateTime(*r.CheckOut); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
