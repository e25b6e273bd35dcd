package services

import (
	"time"

	"github.com/google/uuid"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

// CategoryService handles category CRUD. It needs the product
// repository as well: deleting a category is blocked while products
// still reference it.
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repositories.CategoryRepository, productRepo repositories.ProductRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

// GetCategoryByID retrieves a single category by its ID.
func (s *CategoryService) GetCategoryByID(id string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, models.NewNotFoundError("category", id)
	}
	return category, nil
}

// CreateCategory creates a new category. Names are a natural key, so a
// duplicate name is rejected.
func (s *CategoryService) CreateCategory(req models.CreateCategoryRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, models.NewValidationError("category name is required")
	}

	existing, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].Name == req.Name {
			return nil, &models.ConflictError{Message: "category already exists"}
		}
	}

	now := time.Now()
	category := &models.Category{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.categoryRepo.Put(category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory merges the supplied fields over the stored record and
// refreshes its UpdatedAt.
func (s *CategoryService) UpdateCategory(id string, req models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, models.NewNotFoundError("category", id)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, models.NewValidationError("category name must not be empty")
		}
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.ParentID != nil {
		category.ParentID = *req.ParentID
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.Put(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category. The scan for referencing products
// runs first: any hit rejects the deletion with the blocking count.
// Products may reference a category by id or by name, so both are
// counted.
func (s *CategoryService) DeleteCategory(id string) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}

	products, err := s.productRepo.GetAll()
	if err != nil {
		return err
	}
	blocking := 0
	for _, p := range products {
		if p.CategoryID == id || (category != nil && p.CategoryID == category.Name) {
			blocking++
		}
	}
	if blocking > 0 {
		return &models.ConflictError{
			Message:          "cannot delete category that has products assigned to it",
			BlockingProducts: blocking,
		}
	}
	if category == nil {
		return models.NewNotFoundError("category", id)
	}

	existed, err := s.categoryRepo.Delete(id)
	if err != nil {
		return err
	}
	if !existed {
		return models.NewNotFoundError("category", id)
	}
	return nil
}
