package repositories

import (
	"path/filepath"

	"catalog/internal/models"
	"catalog/pkg/jsonstore"
)

// FileProductRepository is a document-style implementation of
// ProductRepository: the whole product collection, variants embedded,
// lives in one JSON file that is rewritten on every mutation.
type FileProductRepository struct {
	col *jsonstore.Collection[models.Product]
}

// NewFileProductRepository creates a repository backed by
// products.json under dataDir.
func NewFileProductRepository(dataDir string) *FileProductRepository {
	return &FileProductRepository{
		col: jsonstore.NewCollection[models.Product](filepath.Join(dataDir, "products.json")),
	}
}

// GetAll retrieves all products from the collection file.
func (r *FileProductRepository) GetAll() ([]models.Product, error) {
	products, err := r.col.List()
	if err != nil {
		return nil, models.NewStorageError("list products", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID, or (nil, nil) if absent.
func (r *FileProductRepository) GetByID(id string) (*models.Product, error) {
	products, err := r.col.List()
	if err != nil {
		return nil, models.NewStorageError("get product", err)
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}

// Put inserts the product or replaces the stored record with the same ID.
func (r *FileProductRepository) Put(product *models.Product) error {
	err := r.col.Update(func(items []models.Product) ([]models.Product, error) {
		for i := range items {
			if items[i].ID == product.ID {
				items[i] = *product
				return items, nil
			}
		}
		return append(items, *product), nil
	})
	if err != nil {
		return models.NewStorageError("put product", err)
	}
	return nil
}

// Delete removes a product by its ID, reporting whether it existed.
// Embedded variants go with it.
func (r *FileProductRepository) Delete(id string) (bool, error) {
	existed := false
	err := r.col.Update(func(items []models.Product) ([]models.Product, error) {
		kept := items[:0]
		for _, p := range items {
			if p.ID == id {
				existed = true
				continue
			}
			kept = append(kept, p)
		}
		return kept, nil
	})
	if err != nil {
		return false, models.NewStorageError("delete product", err)
	}
	return existed, nil
}
