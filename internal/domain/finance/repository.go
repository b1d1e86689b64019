package finance

import "context"

type Repository interface {
	Create(ctx context.Context, e Expense) (Expense, error)
	GetByID(ctx context.Context, id string) (Expense, error)
	Update(ctx context.Context, e Expense) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter Filter) ([]Expense, int64, error)
	ListByMonth(ctx context.Context, year, month int) ([]Expense, error)
}
