package shift

import (
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/validator"
)

// ========================================
// SHIFT DTOs
// ========================================

type CreateShiftRequest struct {
	Name        string       `json:"name"`
	WorkingTime Window       `json:"working_time"`
	LunchTime   ToggleWindow `json:"lunch_time"`
	BreakTime   ToggleWindow `json:"break_time"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	errs = append(errs, validateWindow("working_time", r.WorkingTime.From, r.WorkingTime.To, true)...)
	if r.LunchTime.Enabled {
		errs = append(errs, validateWindow("lunch_time", r.LunchTime.From, r.LunchTime.To, true)...)
	}
	if r.BreakTime.Enabled {
		errs = append(errs, validateWindow("break_time", r.BreakTime.From, r.BreakTime.To, true)...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	ID          string        `json:"-"`
	Name        *string       `json:"name,omitempty"`
	WorkingTime *Window       `json:"working_time,omitempty"`
	LunchTime   *ToggleWindow `json:"lunch_time,omitempty"`
	BreakTime   *ToggleWindow `json:"break_time,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.WorkingTime != nil {
		errs = append(errs, validateWindow("working_time", r.WorkingTime.From, r.WorkingTime.To, true)...)
	}
	if r.LunchTime != nil && r.LunchTime.Enabled {
		errs = append(errs, validateWindow("lunch_time", r.LunchTime.From, r.LunchTime.To, true)...)
	}
	if r.BreakTime != nil && r.BreakTime.Enabled {
		errs = append(errs, validateWindow("break_time", r.BreakTime.From, r.BreakTime.To, true)...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// validateWindow checks HH:MM format and, when required, that the window
// does not cross midnight. Overnight shifts are not supported by the
// salary calculation, so they are rejected here instead of producing a
// negative working-minutes value downstream.
func validateWindow(field, from, to string, rejectInverted bool) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !validator.IsValidTimeOfDay(from) {
		errs = append(errs, validator.ValidationError{
			Field:   field + ".from",
			Message: "must be in HH:MM format",
		})
	}
	if !validator.IsValidTimeOfDay(to) {
		errs = append(errs, validator.ValidationError{
			Field:   field + ".to",
			Message: "must be in HH:MM format",
		})
	}

	if len(errs) == 0 && rejectInverted && to < from {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: "window must not cross midnight",
		})
	}

	return errs
}

type ShiftResponse struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	WorkingTime Window       `json:"working_time"`
	LunchTime   ToggleWindow `json:"lunch_time"`
	BreakTime   ToggleWindow `json:"break_time"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
}
