package response

import (
	"errors"
	"net/http"

	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/attendance"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/customer"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/finance"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/holiday"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/inventory"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/job"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/shift"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/user"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/worker"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrPhoneExists):
		Conflict(w, "Worker phone number already registered")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftInUse):
		Conflict(w, "Shift still has workers assigned")
	case errors.Is(err, shift.ErrNameExists):
		Conflict(w, "Shift name already exists")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Worker has already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "Worker has not checked in yet")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Worker has already checked out")

	// Customer domain errors
	case errors.Is(err, customer.ErrCustomerNotFound):
		NotFound(w, "Customer not found")
	case errors.Is(err, customer.ErrPhoneExists):
		Conflict(w, "Customer phone number already registered")

	// Job domain errors
	case errors.Is(err, job.ErrJobNotFound):
		NotFound(w, "Job not found")
	case errors.Is(err, job.ErrInvalidTransition):
		BadRequest(w, "Invalid job status transition", nil)
	case errors.Is(err, job.ErrJobNotOpen):
		Conflict(w, "Job is already delivered or cancelled")

	// Inventory domain errors
	case errors.Is(err, inventory.ErrPartNotFound):
		NotFound(w, "Part not found")
	case errors.Is(err, inventory.ErrSKUExists):
		Conflict(w, "Part SKU already exists")
	case errors.Is(err, inventory.ErrInsufficientStock):
		Conflict(w, "Insufficient stock")

	// Finance domain errors
	case errors.Is(err, finance.ErrExpenseNotFound):
		NotFound(w, "Expense not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
