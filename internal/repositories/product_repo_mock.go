package repositories

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"warehouse/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// A single mutex serializes every mutation, which gives the same
// per-product atomicity guarantees as the conditional updates in the GORM
// implementation.
type MockProductRepository struct {
	products map[string]models.Product
	hook     PostCommitHook
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// SetPostCommitHook registers the hook invoked after successful mutations.
func (r *MockProductRepository) SetPostCommitHook(hook PostCommitHook) {
	r.hook = hook
}

// notify runs the hook outside the lock so a hook may read the repository.
func (r *MockProductRepository) notify(product models.Product) {
	if r.hook != nil {
		r.hook(&product)
	}
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// Create adds a new product, rejecting SKU collisions.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	for _, p := range r.products {
		if p.SKU == product.SKU {
			r.mu.Unlock()
			return ErrDuplicateSKU
		}
	}
	r.products[product.ID] = *product
	created := *product
	r.mu.Unlock()

	r.notify(created)
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	if _, ok := r.products[product.ID]; !ok {
		r.mu.Unlock()
		return ErrProductNotFound
	}
	for id, p := range r.products {
		if id != product.ID && p.SKU == product.SKU {
			r.mu.Unlock()
			return ErrDuplicateSKU
		}
	}
	r.products[product.ID] = *product
	updated := *product
	r.mu.Unlock()

	r.notify(updated)
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

// AddStock increments the product's stock under the lock.
func (r *MockProductRepository) AddStock(id string, amount decimal.Decimal) (decimal.Decimal, error) {
	r.mu.Lock()
	product, ok := r.products[id]
	if !ok {
		r.mu.Unlock()
		return decimal.Zero, ErrProductNotFound
	}
	product.Stock = product.Stock.Add(amount)
	r.products[id] = product
	r.mu.Unlock()

	r.notify(product)
	return product.Stock, nil
}

// DeductStock performs the check-and-decrement under the lock, so two
// concurrent orders cannot both pass the sufficiency check.
func (r *MockProductRepository) DeductStock(id string, quantity decimal.Decimal) (decimal.Decimal, error) {
	r.mu.Lock()
	product, ok := r.products[id]
	if !ok {
		r.mu.Unlock()
		return decimal.Zero, ErrProductNotFound
	}
	if product.Stock.LessThan(quantity) {
		r.mu.Unlock()
		return decimal.Zero, ErrInsufficientStock
	}
	product.Stock = product.Stock.Sub(quantity)
	r.products[id] = product
	r.mu.Unlock()

	r.notify(product)
	return product.Stock, nil
}
