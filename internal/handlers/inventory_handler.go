package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"warehouse/internal/models"
	"warehouse/internal/services"
)

// InventoryHandler handles HTTP requests for stock top-ups.
type InventoryHandler struct {
	service *services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		service: service,
	}
}

// RegisterRoutes registers the inventory routes with the Fiber app.
func (h *InventoryHandler) RegisterRoutes(router fiber.Router) {
	inventoryRoutes := router.Group("/inventories")
	inventoryRoutes.Patch("/product/:id", h.HandleAddStock)
}

// HandleAddStock adds the requested amount to a product's stock and returns
// the new total.
func (h *InventoryHandler) HandleAddStock(c *fiber.Ctx) error {
	productID := c.Params("id")
	var req models.StockTopUpRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing stock top-up request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	newStock, err := h.service.AddStock(productID, req.Stock)
	if err != nil {
		log.Printf("Error adding stock to product %s: %v", productID, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":   "Stock updated successfully",
		"new_stock": newStock,
	})
}
