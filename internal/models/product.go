package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product tracked in the warehouse.
type Product struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	SKU         string          `json:"sku" gorm:"type:varchar(10);uniqueIndex" validate:"required,min=4,max=10"`
	Name        string          `json:"name" gorm:"type:varchar(50)" validate:"required,min=5,max=50"`
	Description *string         `json:"description" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	Stock       decimal.Decimal `json:"-" gorm:"type:decimal(10,2)"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

// ProductResponse is the representation of a product returned by the API.
// Stock is deliberately absent; it is only surfaced through the responses
// of the stock-mutating endpoints.
type ProductResponse struct {
	ID          string  `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// ToResponse converts a product into its API representation.
func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
	}
}
