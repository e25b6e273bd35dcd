package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"catalog/internal/models"
)

// GORMCategoryRepository is the relational implementation of
// CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// GetAll retrieves all categories.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Find(&categories).Error; err != nil {
		return nil, models.NewStorageError("list categories", err)
	}
	return categories, nil
}

// GetByID retrieves a single category by its ID, or (nil, nil) if absent.
func (r *GORMCategoryRepository) GetByID(id string) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, models.NewStorageError("get category", err)
	}
	return &category, nil
}

// Put upserts the category row by ID.
func (r *GORMCategoryRepository) Put(category *models.Category) error {
	err := r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(category).Error
	if err != nil {
		return models.NewStorageError("put category", err)
	}
	return nil
}

// Delete removes a category by its ID, reporting whether it existed.
func (r *GORMCategoryRepository) Delete(id string) (bool, error) {
	res := r.db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return false, models.NewStorageError("delete category", res.Error)
	}
	return res.RowsAffected > 0, nil
}
