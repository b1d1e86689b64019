package holiday

import "context"

// HolidayService defines business logic for holiday management
type HolidayService interface {
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	GetHoliday(ctx context.Context, id string) (HolidayResponse, error)
	UpdateHoliday(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error

	// ListHolidays returns the holidays of one month, or of the whole
	// year when month is 0
	ListHolidays(ctx context.Context, year, month int) ([]HolidayResponse, error)
}
