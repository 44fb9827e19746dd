package models

// OrderRequest is a one-shot request to purchase a quantity of a product.
// Orders are not persisted; a request either decrements stock and succeeds
// or fails with no state change.
type OrderRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}
