package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

func TestFileProductRepository_RoundTrip(t *testing.T) {
	repo := repositories.NewFileProductRepository(t.TempDir())

	// Listing before any write succeeds with an empty collection.
	products, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, products)

	product := &models.Product{
		ID:    "prod-1",
		Name:  "Runner",
		Price: 100,
		Variants: []models.Variant{
			{ID: "v1", Name: "M", Price: 100, StockQuantity: 3},
		},
		Tags: []string{"sport"},
	}
	assert.NoError(t, repo.Put(product))

	loaded, err := repo.GetByID("prod-1")
	assert.NoError(t, err)
	if assert.NotNil(t, loaded) {
		assert.Equal(t, "Runner", loaded.Name)
		assert.Len(t, loaded.Variants, 1)
		assert.Equal(t, []string{"sport"}, loaded.Tags)
	}

	// Put replaces by id.
	product.Name = "Runner v2"
	assert.NoError(t, repo.Put(product))
	products, err = repo.GetAll()
	assert.NoError(t, err)
	if assert.Len(t, products, 1) {
		assert.Equal(t, "Runner v2", products[0].Name)
	}
}

func TestFileProductRepository_GetByIDAbsent(t *testing.T) {
	repo := repositories.NewFileProductRepository(t.TempDir())

	product, err := repo.GetByID("missing")
	assert.NoError(t, err)
	assert.Nil(t, product)
}

func TestFileProductRepository_Delete(t *testing.T) {
	repo := repositories.NewFileProductRepository(t.TempDir())

	assert.NoError(t, repo.Put(&models.Product{ID: "prod-1", Name: "Runner"}))

	existed, err := repo.Delete("prod-1")
	assert.NoError(t, err)
	assert.True(t, existed)

	existed, err = repo.Delete("prod-1")
	assert.NoError(t, err)
	assert.False(t, existed)

	products, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, products)
}

func TestFileCategoryRepository_RoundTrip(t *testing.T) {
	repo := repositories.NewFileCategoryRepository(t.TempDir())

	category := &models.Category{ID: "cat-1", Name: "Shoes", Description: "Footwear"}
	assert.NoError(t, repo.Put(category))

	loaded, err := repo.GetByID("cat-1")
	assert.NoError(t, err)
	if assert.NotNil(t, loaded) {
		assert.Equal(t, "Shoes", loaded.Name)
	}

	existed, err := repo.Delete("cat-1")
	assert.NoError(t, err)
	assert.True(t, existed)

	loaded, err = repo.GetByID("cat-1")
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

// The two backends must be interchangeable behind the repository
// interfaces; the file implementations are checked against them here.
var (
	_ repositories.ProductRepository  = (*repositories.FileProductRepository)(nil)
	_ repositories.CategoryRepository = (*repositories.FileCategoryRepository)(nil)
	_ repositories.ProductRepository  = (*repositories.GORMProductRepository)(nil)
	_ repositories.CategoryRepository = (*repositories.GORMCategoryRepository)(nil)
)
