package inventory

import (
	"github.com/shopspring/decimal"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/validator"
)

// ========================================
// INVENTORY DTOs
// ========================================

type CreatePartRequest struct {
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	SalePrice decimal.Decimal `json:"sale_price"`
}

func (r *CreatePartRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.SKU) {
		errs = append(errs, validator.ValidationError{
			Field:   "sku",
			Message: "sku is required",
		})
	}

	if r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity must not be negative",
		})
	}

	if r.UnitCost.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "unit_cost",
			Message: "unit_cost must not be negative",
		})
	}

	if r.SalePrice.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "sale_price",
			Message: "sale_price must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePartRequest struct {
	ID        string           `json:"-"`
	Name      *string          `json:"name,omitempty"`
	SKU       *string          `json:"sku,omitempty"`
	UnitCost  *decimal.Decimal `json:"unit_cost,omitempty"`
	SalePrice *decimal.Decimal `json:"sale_price,omitempty"`
}

func (r *UpdatePartRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.SKU != nil && validator.IsEmpty(*r.SKU) {
		errs = append(errs, validator.ValidationError{
			Field:   "sku",
			Message: "sku must not be empty",
		})
	}

	if r.UnitCost != nil && r.UnitCost.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "unit_cost",
			Message: "unit_cost must not be negative",
		})
	}

	if r.SalePrice != nil && r.SalePrice.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "sale_price",
			Message: "sale_price must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AdjustStockRequest restocks (positive delta) or writes off stock
// (negative delta).
type AdjustStockRequest struct {
	ID    string `json:"-"`
	Delta int    `json:"delta"`
}

func (r *AdjustStockRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Delta == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "delta",
			Message: "delta must not be zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PartResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	SalePrice decimal.Decimal `json:"sale_price"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

type Filter struct {
	// Search & Filter
	Name *string `json:"name,omitempty"`
	SKU  *string `json:"sku,omitempty"`

	// LowStock keeps only parts at or below the given quantity.
	LowStock *int `json:"low_stock,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.LowStock != nil && *f.LowStock < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "low_stock",
			Message: "low_stock must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListPartsResponse struct {
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	Parts      []PartResponse `json:"parts"`
}
