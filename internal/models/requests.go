package models

import "github.com/shopspring/decimal"

// CreateProductRequest is the payload accepted when creating a product.
// Stock is optional; when omitted the product starts with the default of 100.
type CreateProductRequest struct {
	SKU         string           `json:"sku" validate:"required,min=4,max=10"`
	Name        string           `json:"name" validate:"required,min=5,max=50"`
	Description *string          `json:"description" validate:"omitempty,max=100"`
	Stock       *decimal.Decimal `json:"stock"`
}

// UpdateProductRequest is the payload accepted when updating a product.
// Only non-nil fields are applied.
type UpdateProductRequest struct {
	SKU         *string          `json:"sku" validate:"omitempty,min=4,max=10"`
	Name        *string          `json:"name" validate:"omitempty,min=5,max=50"`
	Description *string          `json:"description" validate:"omitempty,max=100"`
	Stock       *decimal.Decimal `json:"stock"`
}

// StockTopUpRequest is the payload accepted when restocking a product.
type StockTopUpRequest struct {
	Stock decimal.Decimal `json:"stock"`
}
