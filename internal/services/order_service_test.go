package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"warehouse/internal/models"
	"warehouse/internal/repositories"
	"warehouse/internal/services"
	"warehouse/internal/validation"
)

const orderProductID = "3f1d9ad0-9f5c-4a35-a373-2cbb2b60f6d5"

func TestOrderService_PlaceOrder(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewOrderService(mockRepo)

	product := &models.Product{ID: orderProductID, SKU: "1234567890", Name: "Test Product", Stock: decimal.NewFromInt(20)}
	mockRepo.On("GetByID", orderProductID).Return(product, nil).Once()
	mockRepo.On("DeductStock", orderProductID, decimal.NewFromInt(5)).Return(decimal.NewFromInt(15), nil).Once()

	remaining, err := service.PlaceOrder(&models.OrderRequest{ProductID: orderProductID, Quantity: 5})
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(15).Equal(remaining))
	mockRepo.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_InsufficientStock(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewOrderService(mockRepo)

	product := &models.Product{ID: orderProductID, SKU: "1234567890", Name: "Test Product", Stock: decimal.NewFromInt(3)}
	mockRepo.On("GetByID", orderProductID).Return(product, nil).Once()
	mockRepo.On("DeductStock", orderProductID, decimal.NewFromInt(5)).Return(decimal.Zero, repositories.ErrInsufficientStock).Once()

	_, err := service.PlaceOrder(&models.OrderRequest{ProductID: orderProductID, Quantity: 5})
	assert.ErrorIs(t, err, repositories.ErrInsufficientStock)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_UnknownProductFailsValidation(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewOrderService(mockRepo)

	mockRepo.On("GetByID", orderProductID).Return(nil, repositories.ErrProductNotFound).Once()

	_, err := service.PlaceOrder(&models.OrderRequest{ProductID: orderProductID, Quantity: 1})

	var vErr *validation.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "product_id", vErr.Errors[0].Field)
	mockRepo.AssertNotCalled(t, "DeductStock", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_QuantityBelowOne(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewOrderService(mockRepo)

	_, err := service.PlaceOrder(&models.OrderRequest{ProductID: orderProductID, Quantity: 0})

	var vErr *validation.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "quantity", vErr.Errors[0].Field)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	mockRepo.AssertNotCalled(t, "DeductStock", mock.Anything, mock.Anything)
}

// The product may be deleted between the validation check and the
// deduction; the late failure surfaces as a not-found error.
func TestOrderService_PlaceOrder_ProductDeletedBeforeDeduction(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewOrderService(mockRepo)

	product := &models.Product{ID: orderProductID, SKU: "1234567890", Name: "Test Product", Stock: decimal.NewFromInt(20)}
	mockRepo.On("GetByID", orderProductID).Return(product, nil).Once()
	mockRepo.On("DeductStock", orderProductID, decimal.NewFromInt(1)).Return(decimal.Zero, repositories.ErrProductNotFound).Once()

	_, err := service.PlaceOrder(&models.OrderRequest{ProductID: orderProductID, Quantity: 1})
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}
