package services

import (
	"github.com/google/uuid"

	"catalog/internal/models"
)

// normalizeVariant turns a caller-supplied variant payload into a
// well-formed Variant: an id is assigned when absent, price defaults
// to the parent product's price and stock defaults to zero.
func normalizeVariant(input models.VariantInput, parent *models.Product) models.Variant {
	variant := models.Variant{
		ID:         input.ID,
		ProductID:  parent.ID,
		Name:       input.Name,
		Attributes: input.Attributes,
		Price:      parent.Price,
	}
	if variant.ID == "" {
		variant.ID = uuid.New().String()
	}
	if input.Price != nil {
		variant.Price = *input.Price
	}
	if input.StockQuantity != nil {
		variant.StockQuantity = *input.StockQuantity
	}
	return variant
}

// normalizeVariants normalizes a whole payload list against one parent.
func normalizeVariants(inputs []models.VariantInput, parent *models.Product) []models.Variant {
	variants := make([]models.Variant, 0, len(inputs))
	for _, input := range inputs {
		variants = append(variants, normalizeVariant(input, parent))
	}
	return variants
}

// findVariantIndex returns the index of the variant with the given id
// within the list, or -1 when absent.
func findVariantIndex(variants []models.Variant, variantID string) int {
	for i := range variants {
		if variants[i].ID == variantID {
			return i
		}
	}
	return -1
}

// replaceVariantStock sets the stock counter of one variant in place,
// reporting whether the variant id was found. No other variant field
// is touched.
func replaceVariantStock(variants []models.Variant, variantID string, quantity int) bool {
	i := findVariantIndex(variants, variantID)
	if i == -1 {
		return false
	}
	variants[i].StockQuantity = quantity
	return true
}
