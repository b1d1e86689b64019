package inventory

import (
	"context"
	"errors"

	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/inventory"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/database"
)

type InventoryServiceImpl struct {
	db *database.DB
	inventory.Repository
}

func NewInventoryService(db *database.DB, partRepo inventory.Repository) inventory.InventoryService {
	return &InventoryServiceImpl{
		db:         db,
		Repository: partRepo,
	}
}

// CreatePart implements inventory.InventoryService.
func (s *InventoryServiceImpl) CreatePart(ctx context.Context, req inventory.CreatePartRequest) (inventory.PartResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.PartResponse{}, err
	}

	if _, err := s.Repository.GetBySKU(ctx, req.SKU); err == nil {
		return inventory.PartResponse{}, inventory.ErrSKUExists
	} else if !errors.Is(err, inventory.ErrPartNotFound) {
		return inventory.PartResponse{}, err
	}

	created, err := s.Repository.Create(ctx, inventory.Part{
		Name:      req.Name,
		SKU:       req.SKU,
		Quantity:  req.Quantity,
		UnitCost:  req.UnitCost,
		SalePrice: req.SalePrice,
	})
	if err != nil {
		return inventory.PartResponse{}, err
	}

	return toPartResponse(created), nil
}

// GetPart implements inventory.InventoryService.
func (s *InventoryServiceImpl) GetPart(ctx context.Context, id string) (inventory.PartResponse, error) {
	p, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return inventory.PartResponse{}, err
	}
	return toPartResponse(p), nil
}

// UpdatePart implements inventory.InventoryService.
func (s *InventoryServiceImpl) UpdatePart(ctx context.Context, req inventory.UpdatePartRequest) (inventory.PartResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.PartResponse{}, err
	}

	p, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return inventory.PartResponse{}, err
	}

	if req.SKU != nil && *req.SKU != p.SKU {
		if existing, err := s.Repository.GetBySKU(ctx, *req.SKU); err == nil && existing.ID != p.ID {
			return inventory.PartResponse{}, inventory.ErrSKUExists
		} else if err != nil && !errors.Is(err, inventory.ErrPartNotFound) {
			return inventory.PartResponse{}, err
		}
		p.SKU = *req.SKU
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.UnitCost != nil {
		p.UnitCost = *req.UnitCost
	}
	if req.SalePrice != nil {
		p.SalePrice = *req.SalePrice
	}

	if err := s.Repository.Update(ctx, p); err != nil {
		return inventory.PartResponse{}, err
	}

	return toPartResponse(p), nil
}

// DeletePart implements inventory.InventoryService.
func (s *InventoryServiceImpl) DeletePart(ctx context.Context, id string) error {
	if _, err := s.Repository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.Repository.SoftDelete(ctx, id)
}

// AdjustStock implements inventory.InventoryService.
func (s *InventoryServiceImpl) AdjustStock(ctx context.Context, req inventory.AdjustStockRequest) (inventory.PartResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.PartResponse{}, err
	}

	p, err := s.Repository.AdjustQuantity(ctx, req.ID, req.Delta)
	if err != nil {
		return inventory.PartResponse{}, err
	}
	return toPartResponse(p), nil
}

// ListParts implements inventory.InventoryService.
func (s *InventoryServiceImpl) ListParts(ctx context.Context, filter inventory.Filter) (inventory.ListPartsResponse, error) {
	if err := filter.Validate(); err != nil {
		return inventory.ListPartsResponse{}, err
	}

	parts, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return inventory.ListPartsResponse{}, err
	}

	resp := inventory.ListPartsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Parts:      make([]inventory.PartResponse, 0, len(parts)),
	}
	for _, p := range parts {
		resp.Parts = append(resp.Parts, toPartResponse(p))
	}
	return resp, nil
}

func toPartResponse(p inventory.Part) inventory.PartResponse {
	return inventory.PartResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Quantity:  p.Quantity,
		UnitCost:  p.UnitCost,
		SalePrice: p.SalePrice,
		CreatedAt: p.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: p.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
