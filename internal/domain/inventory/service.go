package inventory

import "context"

// InventoryService defines business logic for spare-part stock
type InventoryService interface {
	CreatePart(ctx context.Context, req CreatePartRequest) (PartResponse, error)
	GetPart(ctx context.Context, id string) (PartResponse, error)
	UpdatePart(ctx context.Context, req UpdatePartRequest) (PartResponse, error)
	DeletePart(ctx context.Context, id string) error

	// AdjustStock restocks or writes off stock; never below zero
	AdjustStock(ctx context.Context, req AdjustStockRequest) (PartResponse, error)

	ListParts(ctx context.Context, filter Filter) (ListPartsResponse, error)
}
