package services

import (
	"github.com/shopspring/decimal"

	"warehouse/internal/repositories"
	"warehouse/internal/validation"
)

// InventoryService handles restocking of products.
type InventoryService struct {
	repo repositories.ProductRepository
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(repo repositories.ProductRepository) *InventoryService {
	return &InventoryService{
		repo: repo,
	}
}

// AddStock validates the top-up amount and atomically increments the
// product's stock, returning the post-update value. The amount is bounded
// per call; the resulting total stock is not.
func (s *InventoryService) AddStock(productID string, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := validation.ValidateStockTopUp(amount); err != nil {
		return decimal.Zero, err
	}
	return s.repo.AddStock(productID, amount)
}
