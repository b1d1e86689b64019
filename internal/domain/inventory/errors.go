package inventory

import "errors"

var (
	ErrPartNotFound      = errors.New("part not found")
	ErrSKUExists         = errors.New("part with this sku already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
)
