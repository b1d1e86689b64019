package holiday

import "context"

type Repository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	Update(ctx context.Context, h Holiday) error
	Delete(ctx context.Context, id string) error
	ListByMonth(ctx context.Context, year, month int) ([]Holiday, error)
	ListByYear(ctx context.Context, year int) ([]Holiday, error)
}
