package repositories

import (
	"github.com/shopspring/decimal"

	"warehouse/internal/models"
)

// PostCommitHook is invoked with the new product state after a mutation has
// been committed. It must not block the calling operation.
type PostCommitHook func(product *models.Product)

// ProductRepository defines the interface for product data access.
//
// AddStock and DeductStock are atomic with respect to concurrent calls on
// the same product: the final stock reflects every committed operation
// exactly once, and DeductStock never drives stock below zero.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error

	// AddStock increments the product's stock by amount and returns the
	// post-update value.
	AddStock(id string, amount decimal.Decimal) (decimal.Decimal, error)

	// DeductStock decrements the product's stock by quantity only if the
	// current stock covers it, returning the remaining stock. It returns
	// ErrInsufficientStock, with no mutation, when it does not.
	DeductStock(id string, quantity decimal.Decimal) (decimal.Decimal, error)

	// SetPostCommitHook registers a hook called after every successful
	// mutation with the resulting product state.
	SetPostCommitHook(hook PostCommitHook)
}
