package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"warehouse/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
//
// Stock mutations are issued as single conditional UPDATE statements inside
// a transaction, so the read-compare-write race between concurrent orders on
// the same product row cannot produce lost updates or negative stock.
type GORMProductRepository struct {
	db   *gorm.DB
	hook PostCommitHook
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// SetPostCommitHook registers the hook invoked after successful mutations.
func (r *GORMProductRepository) SetPostCommitHook(hook PostCommitHook) {
	r.hook = hook
}

func (r *GORMProductRepository) notify(product *models.Product) {
	if r.hook != nil {
		r.hook(product)
	}
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database. The ID is generated here
// when not provided.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateSKU
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	r.notify(product)
	return nil
}

// Update updates an existing product in the database. The update is issued
// against the id explicitly rather than via Save, which falls back to an
// insert when the row is gone and would resurrect deleted products.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Model(&models.Product{}).
		Where("id = ?", product.ID).
		Select("sku", "name", "description", "stock").
		Updates(product)
	if res.Error != nil {
		if isDuplicateKey(res.Error) {
			return ErrDuplicateSKU
		}
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// An update hitting no rows does not return ErrRecordNotFound,
		// so we check RowsAffected.
		return ErrProductNotFound
	}
	r.notify(product)
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// AddStock atomically increments the product's stock and returns the new
// value read back within the same transaction.
func (r *GORMProductRepository) AddStock(id string, amount decimal.Decimal) (decimal.Decimal, error) {
	var updated models.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).
			Where("id = ?", id).
			Update("stock", gorm.Expr("stock + ?", amount))
		if res.Error != nil {
			return fmt.Errorf("failed to add stock for product %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrProductNotFound
		}
		return tx.First(&updated, "id = ?", id).Error
	})
	if err != nil {
		return decimal.Zero, err
	}
	r.notify(&updated)
	return updated.Stock, nil
}

// DeductStock atomically decrements the product's stock when, and only
// when, the current stock covers the requested quantity. The sufficiency
// check happens in the UPDATE's WHERE clause, so two concurrent orders can
// never both pass it against the same stock value.
func (r *GORMProductRepository) DeductStock(id string, quantity decimal.Decimal) (decimal.Decimal, error) {
	var updated models.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", id, quantity).
			Update("stock", gorm.Expr("stock - ?", quantity))
		if res.Error != nil {
			return fmt.Errorf("failed to deduct stock for product %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			// Zero rows means either the product is gone or the stock
			// does not cover the quantity; a read in the same transaction
			// tells the two apart.
			if err := tx.First(&models.Product{}, "id = ?", id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductNotFound
				}
				return fmt.Errorf("failed to deduct stock for product %s: %w", id, err)
			}
			return ErrInsufficientStock
		}
		return tx.First(&updated, "id = ?", id).Error
	})
	if err != nil {
		return decimal.Zero, err
	}
	r.notify(&updated)
	return updated.Stock, nil
}

// isDuplicateKey reports whether err is a unique-constraint violation. GORM
// translates these to ErrDuplicatedKey when TranslateError is enabled; the
// substring checks cover connections opened without it.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
