package attendance

import "errors"

var (
	ErrAlreadyCheckedIn  = errors.New("worker has already checked in today")
	ErrNotCheckedIn      = errors.New("worker has not checked in yet")
	ErrAlreadyCheckedOut = errors.New("worker has already checked out")
	ErrRecordNotFound    = errors.New("attendance record not found")
)
