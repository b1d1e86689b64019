package shift

import "context"

// ShiftService defines business logic for shift (batch) management
type ShiftService interface {
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	GetShift(ctx context.Context, id string) (ShiftResponse, error)
	UpdateShift(ctx context.Context, req UpdateShiftRequest) (ShiftResponse, error)

	// DeleteShift fails with ErrShiftInUse while workers are assigned
	DeleteShift(ctx context.Context, id string) error

	ListShifts(ctx context.Context) ([]ShiftResponse, error)
}
