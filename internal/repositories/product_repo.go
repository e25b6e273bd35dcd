package repositories

import (
	"catalog/internal/models"
)

// ProductRepository defines the interface for product data access.
// GetByID returns (nil, nil) when no product has the given id; callers
// decide whether absence is an error. Put inserts or replaces the full
// aggregate by id. Delete reports whether a record existed.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Put(product *models.Product) error
	Delete(id string) (bool, error)
}
