package models

import "time"

// Product represents a catalog product together with its variant list.
// Variants are owned by the product: they are written and deleted as part
// of the product aggregate, never on their own.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(100)" validate:"required"`
	Description string    `json:"description" gorm:"type:varchar(500)"`
	Price       float64   `json:"price" validate:"gte=0"`
	Discount    float64   `json:"discount" validate:"gte=0,lte=100"`
	CategoryID  string    `json:"categoryId" gorm:"type:varchar(100);index"`
	Tags        []string  `json:"tags" gorm:"serializer:json"`
	Variants    []Variant `json:"variants" gorm:"foreignKey:ProductID"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// StockQuantity is the product's own stock counter. It is only
	// meaningful for products without variants; a product created with
	// variants and no explicit counter carries none at all, so the
	// low-stock report can tell "stock of 0" apart from "no counter".
	StockQuantity *int `json:"stockQuantity,omitempty" validate:"omitempty,gte=0"`
}

// Variant is one sellable variation of a product (a size/color
// combination or any free-form attribute set).
type Variant struct {
	ID            string            `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID     string            `json:"-" gorm:"type:varchar(36);index"`
	Name          string            `json:"name" gorm:"type:varchar(100)"`
	Attributes    map[string]string `json:"attributes" gorm:"serializer:json"`
	Price         float64           `json:"price"`
	StockQuantity int               `json:"stockQuantity"`
}

// EffectivePrice is the price after applying the percentage discount.
// It is always derived, never persisted.
func (p *Product) EffectivePrice() float64 {
	if p.Discount <= 0 {
		return p.Price
	}
	return p.Price * (1 - p.Discount/100)
}
