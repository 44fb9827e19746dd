package repositories

import "errors"

var (
	// ErrProductNotFound is returned when the referenced product id does
	// not exist in the store.
	ErrProductNotFound = errors.New("product not found")

	// ErrDuplicateSKU is returned when a create or update collides with an
	// existing product's SKU.
	ErrDuplicateSKU = errors.New("a product with this SKU already exists")

	// ErrInsufficientStock is returned when an order requests more stock
	// than is available. The store is left unchanged.
	ErrInsufficientStock = errors.New("insufficient stock")
)
