package attendance

import "context"

// AttendanceService defines business logic for attendance capture
type AttendanceService interface {
	// CheckIn opens a record for the worker's day; a worker can have at
	// most one open record per day
	CheckIn(ctx context.Context, req CheckInRequest) (RecordResponse, error)

	// CheckOut closes the day's open record
	CheckOut(ctx context.Context, req CheckOutRequest) (RecordResponse, error)

	// Correct lets an admin fix wrong or missing punches
	Correct(ctx context.Context, req CorrectionRequest) (RecordResponse, error)

	GetRecord(ctx context.Context, id string) (RecordResponse, error)
	ListRecords(ctx context.Context, filter Filter) (ListRecordsResponse, error)
	DeleteRecord(ctx context.Context, id string) error
}
