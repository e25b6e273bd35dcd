package handlers

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"catalog/internal/models"
	"catalog/internal/services"
)

const defaultLowStockThreshold = 10

// InventoryHandler handles HTTP requests for stock levels.
type InventoryHandler struct {
	service  *services.InventoryService
	validate *validator.Validate
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the inventory routes with the Fiber app.
func (h *InventoryHandler) RegisterRoutes(router fiber.Router) {
	inventoryRoutes := router.Group("/inventory")
	inventoryRoutes.Get("/low-stock", h.HandleLowStockReport)
	inventoryRoutes.Get("/product/:id", h.HandleGetProductInventory)
	inventoryRoutes.Put("/product/:id", h.HandleSetProductStock)
	inventoryRoutes.Put("/product/:productId/variant/:variantId", h.HandleSetVariantStock)
}

// HandleGetProductInventory returns the stock view of one product.
func (h *InventoryHandler) HandleGetProductInventory(c *fiber.Ctx) error {
	status, err := h.service.GetProductInventory(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(status)
}

// HandleSetProductStock overwrites a product's own stock counter.
func (h *InventoryHandler) HandleSetProductStock(c *fiber.Ctx) error {
	quantity, ok := h.parseQuantity(c)
	if !ok {
		return nil
	}

	status, err := h.service.SetProductStock(c.Params("id"), quantity)
	if err != nil {
		log.Printf("Error setting stock for product %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(status)
}

// HandleSetVariantStock overwrites one variant's stock counter.
func (h *InventoryHandler) HandleSetVariantStock(c *fiber.Ctx) error {
	quantity, ok := h.parseQuantity(c)
	if !ok {
		return nil
	}

	status, err := h.service.SetVariantStock(c.Params("productId"), c.Params("variantId"), quantity)
	if err != nil {
		log.Printf("Error setting stock for variant %s of product %s: %v",
			c.Params("variantId"), c.Params("productId"), err)
		return respondError(c, err)
	}
	return c.JSON(status)
}

// HandleLowStockReport returns every product and variant under the
// threshold (default 10).
func (h *InventoryHandler) HandleLowStockReport(c *fiber.Ctx) error {
	threshold := defaultLowStockThreshold
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "threshold must be an integer",
			})
		}
		threshold = parsed
	}

	report, err := h.service.LowStockReport(threshold)
	if err != nil {
		log.Printf("Error building low-stock report: %v", err)
		return respondError(c, err)
	}
	return c.JSON(report)
}

// parseQuantity reads and validates the quantity payload. On failure
// it writes the 400 response itself and returns ok=false.
func (h *InventoryHandler) parseQuantity(c *fiber.Ctx) (int, bool) {
	var req models.StockUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing stock update request body: %v", err)
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return 0, false
	}
	if err := h.validate.Struct(req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Valid quantity is required",
		})
		return 0, false
	}
	return *req.Quantity, true
}
