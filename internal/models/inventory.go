package models

import "time"

// Line item kinds in the low-stock report.
const (
	LowStockProduct = "product"
	LowStockVariant = "variant"
)

// InventoryStatus is the stock view of a single product.
type InventoryStatus struct {
	ProductID  string    `json:"productId"`
	Name       string    `json:"name"`
	StockLevel int       `json:"stockLevel"`
	Variants   []Variant `json:"variants"`
}

// VariantStockStatus is returned after a variant stock mutation.
type VariantStockStatus struct {
	ProductID   string    `json:"productId"`
	VariantID   string    `json:"variantId"`
	Name        string    `json:"name"`
	VariantName string    `json:"variantName"`
	StockLevel  int       `json:"stockLevel"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LowStockItem is one stock-bearing unit under the report threshold.
// Type is either "product" or "variant"; variant items carry the
// variant id and name next to the owning product's.
type LowStockItem struct {
	Type        string `json:"type"`
	ProductID   string `json:"productId"`
	VariantID   string `json:"variantId,omitempty"`
	Name        string `json:"name"`
	VariantName string `json:"variantName,omitempty"`
	StockLevel  int    `json:"stockLevel"`
}

// LowStockReport is the full report for a threshold.
type LowStockReport struct {
	Threshold  int            `json:"threshold"`
	TotalItems int            `json:"totalItems"`
	Items      []LowStockItem `json:"items"`
}
