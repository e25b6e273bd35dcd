package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"catalog/internal/models"
	"catalog/internal/services"
)

func TestInventoryService_SetProductStock(t *testing.T) {
	mockProducts := new(MockProductRepository)
	service := services.NewInventoryService(mockProducts, nil)

	existing := &models.Product{ID: "1", Name: "Runner", Price: 100}
	mockProducts.On("GetByID", "1").Return(existing, nil).Once()
	mockProducts.On("Put", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	status, err := service.SetProductStock("1", 42)

	assert.NoError(t, err)
	assert.Equal(t, 42, status.StockLevel)
	if assert.NotNil(t, existing.StockQuantity) {
		assert.Equal(t, 42, *existing.StockQuantity)
	}
	assert.False(t, existing.UpdatedAt.IsZero())
	mockProducts.AssertExpectations(t)
}

func TestInventoryService_SetProductStock_Validation(t *testing.T) {
	mockProducts := new(MockProductRepository)
	service := services.NewInventoryService(mockProducts, nil)

	_, err := service.SetProductStock("1", -1)
	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	mockProducts.AssertNotCalled(t, "GetByID", mock.Anything)

	mockProducts.On("GetByID", "99").Return(nil, nil).Once()
	_, err = service.SetProductStock("99", 5)
	var notFoundErr *models.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestInventoryService_SetVariantStock(t *testing.T) {
	mockProducts := new(MockProductRepository)
	service := services.NewInventoryService(mockProducts, nil)

	existing := &models.Product{
		ID:   "1",
		Name: "Runner",
		Variants: []models.Variant{
			{ID: "v1", Name: "M", Price: 100, StockQuantity: 3},
			{ID: "v2", Name: "L", Price: 100, StockQuantity: 5},
		},
	}
	mockProducts.On("GetByID", "1").Return(existing, nil).Once()
	mockProducts.On("Put", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	status, err := service.SetVariantStock("1", "v1", 9)

	assert.NoError(t, err)
	assert.Equal(t, "v1", status.VariantID)
	assert.Equal(t, "M", status.VariantName)
	assert.Equal(t, 9, status.StockLevel)

	// Only the targeted variant changes.
	assert.Equal(t, 9, existing.Variants[0].StockQuantity)
	assert.Equal(t, 5, existing.Variants[1].StockQuantity)
	assert.Equal(t, "M", existing.Variants[0].Name)
	mockProducts.AssertExpectations(t)
}

func TestInventoryService_SetVariantStock_NotFound(t *testing.T) {
	mockProducts := new(MockProductRepository)
	service := services.NewInventoryService(mockProducts, nil)

	mockProducts.On("GetByID", "99").Return(nil, nil).Once()
	_, err := service.SetVariantStock("99", "v1", 5)
	var notFoundErr *models.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)

	existing := &models.Product{ID: "1", Variants: []models.Variant{{ID: "v1"}}}
	mockProducts.On("GetByID", "1").Return(existing, nil).Once()
	_, err = service.SetVariantStock("1", "missing", 5)
	assert.ErrorAs(t, err, &notFoundErr)
	mockProducts.AssertNotCalled(t, "Put", mock.Anything)
}

func TestInventoryService_GetProductInventory(t *testing.T) {
	mockProducts := new(MockProductRepository)
	service := services.NewInventoryService(mockProducts, nil)

	stock := 7
	mockProducts.On("GetByID", "1").Return(&models.Product{
		ID:            "1",
		Name:          "Runner",
		StockQuantity: &stock,
	}, nil).Once()

	status, err := service.GetProductInventory("1")
	assert.NoError(t, err)
	assert.Equal(t, 7, status.StockLevel)
	assert.NotNil(t, status.Variants)

	mockProducts.On("GetByID", "99").Return(nil, nil).Once()
	_, err = service.GetProductInventory("99")
	var notFoundErr *models.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestInventoryService_LowStockReport(t *testing.T) {
	mockProducts := new(MockProductRepository)
	service := services.NewInventoryService(mockProducts, nil)

	five := 5
	twenty := 20
	mockProducts.On("GetAll").Return([]models.Product{
		// Own counter under threshold plus a healthy variant: one
		// product line item, no variant line item.
		{ID: "1", Name: "Laptop", StockQuantity: &five, Variants: []models.Variant{
			{ID: "v1", Name: "16GB", StockQuantity: 12},
		}},
		// No counter of its own, one variant under threshold.
		{ID: "2", Name: "Runner", Variants: []models.Variant{
			{ID: "v2", Name: "M", StockQuantity: 3},
			{ID: "v3", Name: "L", StockQuantity: 10}, // not strictly below
		}},
		// Healthy on all counts.
		{ID: "3", Name: "Mug", StockQuantity: &twenty},
	}, nil).Once()

	report, err := service.LowStockReport(10)

	assert.NoError(t, err)
	assert.Equal(t, 10, report.Threshold)
	assert.Equal(t, 2, report.TotalItems)

	kinds := map[string]models.LowStockItem{}
	for _, item := range report.Items {
		kinds[item.Type+"/"+item.ProductID] = item
	}
	productItem, ok := kinds["product/1"]
	if assert.True(t, ok) {
		assert.Equal(t, 5, productItem.StockLevel)
		assert.Empty(t, productItem.VariantID)
	}
	variantItem, ok := kinds["variant/2"]
	if assert.True(t, ok) {
		assert.Equal(t, "v2", variantItem.VariantID)
		assert.Equal(t, "M", variantItem.VariantName)
		assert.Equal(t, 3, variantItem.StockLevel)
	}
}

func TestInventoryService_LowStockReport_NoBareCounter(t *testing.T) {
	mockProducts := new(MockProductRepository)
	service := services.NewInventoryService(mockProducts, nil)

	// A product created with variants and no explicit counter carries
	// none, so only its low variant shows up.
	mockProducts.On("GetAll").Return([]models.Product{
		{ID: "1", Name: "Runner", Variants: []models.Variant{
			{ID: "v1", Name: "M", StockQuantity: 3},
		}},
	}, nil).Once()

	report, err := service.LowStockReport(5)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.TotalItems)
	assert.Equal(t, models.LowStockVariant, report.Items[0].Type)
}
