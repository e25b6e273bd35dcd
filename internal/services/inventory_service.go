package services

import (
	"encoding/json"
	"log"
	"time"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/rabbitmq"
)

// InventoryService mutates stock counters independently of the full
// product update path and produces the low-stock report.
type InventoryService struct {
	productRepo repositories.ProductRepository
	mqClient    *rabbitmq.Client
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(productRepo repositories.ProductRepository, mqClient *rabbitmq.Client) *InventoryService {
	return &InventoryService{
		productRepo: productRepo,
		mqClient:    mqClient,
	}
}

// GetProductInventory returns the stock view of one product.
func (s *InventoryService) GetProductInventory(productID string) (*models.InventoryStatus, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, models.NewNotFoundError("product", productID)
	}

	status := &models.InventoryStatus{
		ProductID: product.ID,
		Name:      product.Name,
		Variants:  product.Variants,
	}
	if product.StockQuantity != nil {
		status.StockLevel = *product.StockQuantity
	}
	if status.Variants == nil {
		status.Variants = []models.Variant{}
	}
	return status, nil
}

// SetProductStock overwrites the product's own stock counter, leaving
// variant stock untouched.
func (s *InventoryService) SetProductStock(productID string, quantity int) (*models.InventoryStatus, error) {
	if quantity < 0 {
		return nil, models.NewValidationError("quantity must be a non-negative integer")
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, models.NewNotFoundError("product", productID)
	}

	product.StockQuantity = &quantity
	product.UpdatedAt = time.Now()
	if err := s.productRepo.Put(product); err != nil {
		return nil, err
	}

	s.publishStockEvent(product.ID, "", quantity)

	return &models.InventoryStatus{
		ProductID:  product.ID,
		Name:       product.Name,
		StockLevel: quantity,
		Variants:   product.Variants,
	}, nil
}

// SetVariantStock overwrites one variant's stock counter inside the
// product's variant list and re-persists the whole product record.
func (s *InventoryService) SetVariantStock(productID, variantID string, quantity int) (*models.VariantStockStatus, error) {
	if quantity < 0 {
		return nil, models.NewValidationError("quantity must be a non-negative integer")
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, models.NewNotFoundError("product", productID)
	}

	if !replaceVariantStock(product.Variants, variantID, quantity) {
		return nil, models.NewNotFoundError("variant", variantID)
	}
	product.UpdatedAt = time.Now()
	if err := s.productRepo.Put(product); err != nil {
		return nil, err
	}

	s.publishStockEvent(product.ID, variantID, quantity)

	i := findVariantIndex(product.Variants, variantID)
	return &models.VariantStockStatus{
		ProductID:   product.ID,
		VariantID:   variantID,
		Name:        product.Name,
		VariantName: product.Variants[i].Name,
		StockLevel:  quantity,
		UpdatedAt:   product.UpdatedAt,
	}, nil
}

// LowStockReport scans every product and emits a line item for each
// stock-bearing unit strictly under the threshold: one "product" item
// when the product carries its own counter, and one "variant" item per
// variant. A product can contribute several items.
func (s *InventoryService) LowStockReport(threshold int) (*models.LowStockReport, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}

	items := make([]models.LowStockItem, 0)
	for _, p := range products {
		if p.StockQuantity != nil && *p.StockQuantity < threshold {
			items = append(items, models.LowStockItem{
				Type:       models.LowStockProduct,
				ProductID:  p.ID,
				Name:       p.Name,
				StockLevel: *p.StockQuantity,
			})
		}
		for _, v := range p.Variants {
			if v.StockQuantity < threshold {
				items = append(items, models.LowStockItem{
					Type:        models.LowStockVariant,
					ProductID:   p.ID,
					VariantID:   v.ID,
					Name:        p.Name,
					VariantName: v.Name,
					StockLevel:  v.StockQuantity,
				})
			}
		}
	}

	return &models.LowStockReport{
		Threshold:  threshold,
		TotalItems: len(items),
		Items:      items,
	}, nil
}

// publishStockEvent publishes a stock.updated event best-effort.
func (s *InventoryService) publishStockEvent(productID, variantID string, quantity int) {
	if s.mqClient == nil {
		return
	}
	payload := map[string]interface{}{
		"productId": productID,
		"quantity":  quantity,
	}
	if variantID != "" {
		payload["variantId"] = variantID
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal stock.updated event: %v", err)
		return
	}
	if err := s.mqClient.Publish("catalog", "stock.updated", body); err != nil {
		log.Printf("Warning: failed to publish stock.updated event for product %s: %v", productID, err)
	}
}
