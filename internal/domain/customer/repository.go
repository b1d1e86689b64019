package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c Customer) (Customer, error)
	GetByID(ctx context.Context, id string) (Customer, error)
	GetByPhone(ctx context.Context, phone string) (Customer, error)
	Update(ctx context.Context, c Customer) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, filter Filter) ([]Customer, int64, error)
}
