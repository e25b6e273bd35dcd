package repositories

import (
	"path/filepath"

	"catalog/internal/models"
	"catalog/pkg/jsonstore"
)

// FileCategoryRepository is the document-style implementation of
// CategoryRepository, backed by categories.json.
type FileCategoryRepository struct {
	col *jsonstore.Collection[models.Category]
}

// NewFileCategoryRepository creates a repository backed by
// categories.json under dataDir.
func NewFileCategoryRepository(dataDir string) *FileCategoryRepository {
	return &FileCategoryRepository{
		col: jsonstore.NewCollection[models.Category](filepath.Join(dataDir, "categories.json")),
	}
}

// GetAll retrieves all categories from the collection file.
func (r *FileCategoryRepository) GetAll() ([]models.Category, error) {
	categories, err := r.col.List()
	if err != nil {
		return nil, models.NewStorageError("list categories", err)
	}
	return categories, nil
}

// GetByID retrieves a single category by its ID, or (nil, nil) if absent.
func (r *FileCategoryRepository) GetByID(id string) (*models.Category, error) {
	categories, err := r.col.List()
	if err != nil {
		return nil, models.NewStorageError("get category", err)
	}
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i], nil
		}
	}
	return nil, nil
}

// Put inserts the category or replaces the stored record with the same ID.
func (r *FileCategoryRepository) Put(category *models.Category) error {
	err := r.col.Update(func(items []models.Category) ([]models.Category, error) {
		for i := range items {
			if items[i].ID == category.ID {
				items[i] = *category
				return items, nil
			}
		}
		return append(items, *category), nil
	})
	if err != nil {
		return models.NewStorageError("put category", err)
	}
	return nil
}

// Delete removes a category by its ID, reporting whether it existed.
func (r *FileCategoryRepository) Delete(id string) (bool, error) {
	existed := false
	err := r.col.Update(func(items []models.Category) ([]models.Category, error) {
		kept := items[:0]
		for _, c := range items {
			if c.ID == id {
				existed = true
				continue
			}
			kept = append(kept, c)
		}
		return kept, nil
	})
	if err != nil {
		return false, models.NewStorageError("delete category", err)
	}
	return existed, nil
}
