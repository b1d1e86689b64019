package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part is one stocked spare part. UnitCost is what the shop paid,
// SalePrice is what a job is charged per unit.
type Part struct {
	ID        string
	Name      string
	SKU       string
	Quantity  int
	UnitCost  decimal.Decimal
	SalePrice decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
