package repositories_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"warehouse/internal/models"
	"warehouse/internal/repositories"
)

// setupGormRepo opens a fresh in-memory SQLite database for the test.
func setupGormRepo(t *testing.T) repositories.ProductRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return repositories.NewGORMProductRepository(db)
}

// eachRepo runs the test body against both repository implementations.
func eachRepo(t *testing.T, body func(t *testing.T, repo repositories.ProductRepository)) {
	t.Run("gorm", func(t *testing.T) {
		body(t, setupGormRepo(t))
	})
	t.Run("mock", func(t *testing.T) {
		body(t, repositories.NewMockProductRepository())
	})
}

func assertStockEqual(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.NewFromInt(want).Equal(got), "expected stock %d, got %s", want, got)
}

func newProduct(sku, name string, stock int64) *models.Product {
	return &models.Product{SKU: sku, Name: name, Stock: decimal.NewFromInt(stock)}
}

func TestProductRepository_CreateAndGet(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		product := newProduct("1234567890", "Test Product", 100)
		assert.NoError(t, repo.Create(product))
		assert.NotEmpty(t, product.ID)

		fetched, err := repo.GetByID(product.ID)
		assert.NoError(t, err)
		assert.Equal(t, product.SKU, fetched.SKU)
		assert.Equal(t, product.Name, fetched.Name)
		assertStockEqual(t, 100, fetched.Stock)

		all, err := repo.GetAll()
		assert.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestProductRepository_GetByIDNotFound(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		_, err := repo.GetByID("3f1d9ad0-9f5c-4a35-a373-2cbb2b60f6d5")
		assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	})
}

func TestProductRepository_DuplicateSKU(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		assert.NoError(t, repo.Create(newProduct("1234567890", "Test Product", 100)))

		err := repo.Create(newProduct("1234567890", "Other Product", 100))
		assert.ErrorIs(t, err, repositories.ErrDuplicateSKU)

		all, err := repo.GetAll()
		assert.NoError(t, err)
		assert.Len(t, all, 1, "failed creation must not add a product")
	})
}

func TestProductRepository_UpdateToDuplicateSKU(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		first := newProduct("1234567890", "First Product", 100)
		second := newProduct("0987654321", "Second Product", 100)
		assert.NoError(t, repo.Create(first))
		assert.NoError(t, repo.Create(second))

		second.SKU = first.SKU
		assert.ErrorIs(t, repo.Update(second), repositories.ErrDuplicateSKU)
	})
}

func TestProductRepository_UpdateMissingProduct(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		ghost := newProduct("1234567890", "Ghost Product", 100)
		ghost.ID = "3f1d9ad0-9f5c-4a35-a373-2cbb2b60f6d5"

		assert.ErrorIs(t, repo.Update(ghost), repositories.ErrProductNotFound)

		// The failed update must not insert the product.
		all, err := repo.GetAll()
		assert.NoError(t, err)
		assert.Len(t, all, 0, "a failed update must not insert a product")
	})
}

func TestProductRepository_UpdateAndDelete(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		product := newProduct("1234567890", "Test Product", 100)
		assert.NoError(t, repo.Create(product))

		product.Name = "Updated Product"
		assert.NoError(t, repo.Update(product))

		fetched, err := repo.GetByID(product.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Updated Product", fetched.Name)

		assert.NoError(t, repo.Delete(product.ID))
		_, err = repo.GetByID(product.ID)
		assert.ErrorIs(t, err, repositories.ErrProductNotFound)

		assert.ErrorIs(t, repo.Delete(product.ID), repositories.ErrProductNotFound)
	})
}

func TestProductRepository_AddStock(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		product := newProduct("1234567890", "Test Product", 10)
		assert.NoError(t, repo.Create(product))

		newStock, err := repo.AddStock(product.ID, decimal.NewFromInt(20))
		assert.NoError(t, err)
		assertStockEqual(t, 30, newStock)

		fetched, err := repo.GetByID(product.ID)
		assert.NoError(t, err)
		assertStockEqual(t, 30, fetched.Stock)

		_, err = repo.AddStock("3f1d9ad0-9f5c-4a35-a373-2cbb2b60f6d5", decimal.NewFromInt(5))
		assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	})
}

func TestProductRepository_DeductStock(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		product := newProduct("1234567890", "Test Product", 20)
		assert.NoError(t, repo.Create(product))

		remaining, err := repo.DeductStock(product.ID, decimal.NewFromInt(5))
		assert.NoError(t, err)
		assertStockEqual(t, 15, remaining)

		// Deducting exactly the remaining stock drains it to zero.
		remaining, err = repo.DeductStock(product.ID, decimal.NewFromInt(15))
		assert.NoError(t, err)
		assertStockEqual(t, 0, remaining)

		// Any further deduction fails and leaves stock untouched.
		_, err = repo.DeductStock(product.ID, decimal.NewFromInt(1))
		assert.ErrorIs(t, err, repositories.ErrInsufficientStock)

		fetched, err := repo.GetByID(product.ID)
		assert.NoError(t, err)
		assertStockEqual(t, 0, fetched.Stock)

		_, err = repo.DeductStock("3f1d9ad0-9f5c-4a35-a373-2cbb2b60f6d5", decimal.NewFromInt(1))
		assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	})
}

func TestProductRepository_PostCommitHook(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		var seen []decimal.Decimal
		repo.SetPostCommitHook(func(p *models.Product) {
			seen = append(seen, p.Stock)
		})

		product := newProduct("1234567890", "Test Product", 8)
		assert.NoError(t, repo.Create(product))

		_, err := repo.AddStock(product.ID, decimal.NewFromInt(4))
		assert.NoError(t, err)

		_, err = repo.DeductStock(product.ID, decimal.NewFromInt(3))
		assert.NoError(t, err)

		// A failed mutation must not invoke the hook.
		_, err = repo.DeductStock(product.ID, decimal.NewFromInt(100))
		assert.ErrorIs(t, err, repositories.ErrInsufficientStock)

		if assert.Len(t, seen, 3) {
			assertStockEqual(t, 8, seen[0])
			assertStockEqual(t, 12, seen[1])
			assertStockEqual(t, 9, seen[2])
		}
	})
}

// Two overlapping orders that together exceed the stock: only the first
// may succeed, and the final stock must never go negative. Driving the two
// deductions back to back pins the conditional-update mechanics in both
// implementations; true goroutine-level interleaving is covered separately
// against the in-memory store.
func TestProductRepository_OverlappingOrders(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		product := newProduct("1234567890", "Test Product", 30)
		assert.NoError(t, repo.Create(product))

		quantity := decimal.NewFromInt(20)

		remaining, err := repo.DeductStock(product.ID, quantity)
		assert.NoError(t, err)
		assertStockEqual(t, 10, remaining)

		_, err = repo.DeductStock(product.ID, quantity)
		assert.ErrorIs(t, err, repositories.ErrInsufficientStock)

		fetched, err := repo.GetByID(product.ID)
		assert.NoError(t, err)
		assertStockEqual(t, 10, fetched.Stock)
	})
}

// Two concurrent orders that together exceed the stock: exactly one may
// succeed, and the final stock must never go negative.
func TestMockProductRepository_ConcurrentOrders(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	product := newProduct("1234567890", "Test Product", 30)
	assert.NoError(t, repo.Create(product))

	quantity := decimal.NewFromInt(20)
	results := make(chan error, 2)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.DeductStock(product.ID, quantity)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, insufficient int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, repositories.ErrInsufficientStock):
			insufficient++
		}
	}
	assert.Equal(t, 1, successes, "exactly one of the concurrent orders must succeed")
	assert.Equal(t, 1, insufficient)

	fetched, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assertStockEqual(t, 10, fetched.Stock)
}
