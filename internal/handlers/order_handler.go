package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"warehouse/internal/models"
	"warehouse/internal/services"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandlePlaceOrder)
}

// HandlePlaceOrder places an order, decrementing the product's stock when
// enough is available.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req models.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	remaining, err := h.service.PlaceOrder(&req)
	if err != nil {
		log.Printf("Error placing order for product %s: %v", req.ProductID, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":         "Purchase completed successfully",
		"remaining_stock": remaining,
	})
}
