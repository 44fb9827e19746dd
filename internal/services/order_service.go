package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"warehouse/internal/models"
	"warehouse/internal/repositories"
	"warehouse/internal/validation"
)

// OrderService handles order placement. An order is not persisted: it is a
// one-shot check-and-decrement against the product's stock that either
// succeeds or leaves the store unchanged.
type OrderService struct {
	repo repositories.ProductRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo repositories.ProductRepository) *OrderService {
	return &OrderService{
		repo: repo,
	}
}

// PlaceOrder validates the request and atomically deducts the ordered
// quantity from the product's stock, returning the remaining stock.
//
// A request naming an unknown product fails validation. The product may
// still be deleted between that check and the deduction, so DeductStock
// re-checks existence; that late failure surfaces as ErrProductNotFound.
func (s *OrderService) PlaceOrder(req *models.OrderRequest) (decimal.Decimal, error) {
	if err := validation.ValidateOrder(req); err != nil {
		return decimal.Zero, err
	}

	if _, err := s.repo.GetByID(req.ProductID); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return decimal.Zero, validation.NewValidationError(
				"product_id",
				fmt.Sprintf("product with ID %s does not exist", req.ProductID),
			)
		}
		return decimal.Zero, err
	}

	return s.repo.DeductStock(req.ProductID, decimal.NewFromInt(int64(req.Quantity)))
}
