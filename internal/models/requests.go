package models

// VariantInput is a caller-supplied variant payload, before
// normalization assigns an id and fills price/stock defaults.
type VariantInput struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Attributes    map[string]string `json:"attributes"`
	Price         *float64          `json:"price" validate:"omitempty,gte=0"`
	StockQuantity *int              `json:"stockQuantity" validate:"omitempty,gte=0"`
}

// CreateProductRequest is the payload for creating a product.
type CreateProductRequest struct {
	Name          string         `json:"name" validate:"required"`
	Description   string         `json:"description" validate:"required"`
	Price         *float64       `json:"price" validate:"required,gte=0"`
	Discount      float64        `json:"discount" validate:"gte=0,lte=100"`
	CategoryID    string         `json:"categoryId"`
	StockQuantity *int           `json:"stockQuantity" validate:"omitempty,gte=0"`
	Tags          []string       `json:"tags"`
	Variants      []VariantInput `json:"variants" validate:"dive"`
}

// UpdateProductRequest is a partial-merge payload: nil fields keep the
// stored value. A non-nil Variants slice replaces the stored variant
// list wholesale.
type UpdateProductRequest struct {
	Name          *string        `json:"name"`
	Description   *string        `json:"description"`
	Price         *float64       `json:"price" validate:"omitempty,gte=0"`
	Discount      *float64       `json:"discount" validate:"omitempty,gte=0,lte=100"`
	CategoryID    *string        `json:"categoryId"`
	StockQuantity *int           `json:"stockQuantity" validate:"omitempty,gte=0"`
	Tags          []string       `json:"tags"`
	Variants      []VariantInput `json:"variants" validate:"omitempty,dive"`
}

// CreateCategoryRequest is the payload for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ParentID    string `json:"parentId"`
}

// UpdateCategoryRequest is a partial-merge payload for categories.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ParentID    *string `json:"parentId"`
}

// ProductFilter is the composable search criteria: free-text query,
// category equality, and an inclusive range over the effective
// (discounted) price. At least one criterion must be present.
type ProductFilter struct {
	Query    string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// Empty reports whether no criterion was supplied.
func (f ProductFilter) Empty() bool {
	return f.Query == "" && f.Category == "" && f.MinPrice == nil && f.MaxPrice == nil
}

// StockUpdateRequest carries the new quantity for a stock mutation.
type StockUpdateRequest struct {
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}
