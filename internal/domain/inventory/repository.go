package inventory

import "context"

type Repository interface {
	Create(ctx context.Context, p Part) (Part, error)
	GetByID(ctx context.Context, id string) (Part, error)
	GetBySKU(ctx context.Context, sku string) (Part, error)
	Update(ctx context.Context, p Part) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, filter Filter) ([]Part, int64, error)

	// AdjustQuantity changes a part's stock by delta (positive or
	// negative) and fails with ErrInsufficientStock when the result would
	// go below zero. Runs inside the caller's transaction when one is on
	// the context.
	AdjustQuantity(ctx context.Context, id string, delta int) (Part, error)
}
