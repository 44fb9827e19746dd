package services

import (
	"github.com/shopspring/decimal"

	"warehouse/internal/models"
	"warehouse/internal/repositories"
	"warehouse/internal/validation"
)

// defaultStock is the stock a product starts with when none is provided.
var defaultStock = decimal.NewFromInt(100)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct validates the request and creates a new product. Stock
// defaults to 100 when the request omits it.
func (s *ProductService) CreateProduct(req *models.CreateProductRequest) (*models.Product, error) {
	if err := validation.ValidateCreateProduct(req); err != nil {
		return nil, err
	}

	stock := defaultStock
	if req.Stock != nil {
		stock = *req.Stock
	}

	product := &models.Product{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Stock:       stock,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct validates the request and applies the provided fields to an
// existing product. Fields left out of the request are unchanged.
func (s *ProductService) UpdateProduct(id string, req *models.UpdateProductRequest) (*models.Product, error) {
	if err := validation.ValidateUpdateProduct(req); err != nil {
		return nil, err
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.SKU != nil {
		product.SKU = *req.SKU
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
