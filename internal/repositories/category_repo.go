package repositories

import (
	"catalog/internal/models"
)

// CategoryRepository defines the interface for category data access.
// Contract mirrors ProductRepository: GetByID returns (nil, nil) for
// absent records, Put is insert-or-replace, Delete reports existence.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Put(category *models.Category) error
	Delete(id string) (bool, error)
}
