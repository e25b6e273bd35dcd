package services

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/rabbitmq"
)

// ProductService owns the product write pipeline (create, update,
// delete, add-variant) and the read/query engine (search and filter).
type ProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	mqClient     *rabbitmq.Client
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		mqClient:     mqClient,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, models.NewNotFoundError("product", id)
	}
	return product, nil
}

// CreateProduct creates a new product. Supplied variants are
// normalized first, then the aggregate is persisted, and finally the
// referenced category is registered best-effort: a failure there is
// logged but never fails the creation.
func (s *ProductService) CreateProduct(req models.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" || req.Description == "" {
		return nil, models.NewValidationError("name, description and price are required")
	}
	if req.Price == nil || *req.Price < 0 {
		return nil, models.NewValidationError("price must be a non-negative number")
	}
	if req.Discount < 0 || req.Discount > 100 {
		return nil, models.NewValidationError("discount must be between 0 and 100")
	}
	if req.StockQuantity != nil && *req.StockQuantity < 0 {
		return nil, models.NewValidationError("stockQuantity must be a non-negative integer")
	}

	now := time.Now()
	product := &models.Product{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Description:   req.Description,
		Price:         *req.Price,
		Discount:      req.Discount,
		CategoryID:    req.CategoryID,
		StockQuantity: req.StockQuantity,
		Tags:          req.Tags,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if product.Tags == nil {
		product.Tags = []string{}
	}
	product.Variants = normalizeVariants(req.Variants, product)

	// A bare stock counter only makes sense without variants; products
	// with variants track stock per variant unless a counter was
	// supplied explicitly.
	if product.StockQuantity == nil && len(product.Variants) == 0 {
		zero := 0
		product.StockQuantity = &zero
	}

	if err := s.productRepo.Put(product); err != nil {
		return nil, err
	}

	if product.CategoryID != "" {
		if err := s.registerCategory(product.CategoryID); err != nil {
			log.Printf("Warning: failed to auto-register category %q for product %s: %v", product.CategoryID, product.ID, err)
		}
	}

	s.publishEvent("product.created", map[string]interface{}{
		"productId": product.ID,
		"name":      product.Name,
		"category":  product.CategoryID,
	})

	return product, nil
}

// UpdateProduct merges the supplied fields over the stored record and
// re-persists it. A non-nil variant list replaces the stored one
// wholesale; nil leaves it untouched.
func (s *ProductService) UpdateProduct(id string, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, models.NewNotFoundError("product", id)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, models.NewValidationError("name must not be empty")
		}
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, models.NewValidationError("price must be a non-negative number")
		}
		product.Price = *req.Price
	}
	if req.Discount != nil {
		if *req.Discount < 0 || *req.Discount > 100 {
			return nil, models.NewValidationError("discount must be between 0 and 100")
		}
		product.Discount = *req.Discount
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.StockQuantity != nil {
		if *req.StockQuantity < 0 {
			return nil, models.NewValidationError("stockQuantity must be a non-negative integer")
		}
		product.StockQuantity = req.StockQuantity
	}
	if req.Tags != nil {
		product.Tags = req.Tags
	}
	if req.Variants != nil {
		product.Variants = normalizeVariants(req.Variants, product)
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Put(product); err != nil {
		return nil, err
	}

	if req.CategoryID != nil && *req.CategoryID != "" {
		if err := s.registerCategory(*req.CategoryID); err != nil {
			log.Printf("Warning: failed to auto-register category %q for product %s: %v", *req.CategoryID, product.ID, err)
		}
	}

	return product, nil
}

// DeleteProduct removes a product and, with it, every variant it owns.
func (s *ProductService) DeleteProduct(id string) error {
	existed, err := s.productRepo.Delete(id)
	if err != nil {
		return err
	}
	if !existed {
		return models.NewNotFoundError("product", id)
	}

	s.publishEvent("product.deleted", map[string]interface{}{
		"productId": id,
	})

	return nil
}

// AddVariant normalizes the new variant and appends it to the
// product's existing list.
func (s *ProductService) AddVariant(productID string, input models.VariantInput) (*models.Variant, *models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, models.NewNotFoundError("product", productID)
	}

	if input.Name == "" || len(input.Attributes) == 0 {
		return nil, nil, models.NewValidationError("variant name and attributes are required")
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, nil, models.NewValidationError("variant price must be a non-negative number")
	}
	if input.StockQuantity != nil && *input.StockQuantity < 0 {
		return nil, nil, models.NewValidationError("variant stockQuantity must be a non-negative integer")
	}

	variant := normalizeVariant(input, product)
	product.Variants = append(product.Variants, variant)
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Put(product); err != nil {
		return nil, nil, err
	}
	return &variant, product, nil
}

// SearchProducts runs the composable full-scan filters: case-insensitive
// text match over name, description and tags, category equality, and an
// inclusive range over the effective (discounted) price. At least one
// criterion is required.
func (s *ProductService) SearchProducts(filter models.ProductFilter) ([]models.Product, error) {
	if filter.Empty() {
		return nil, models.NewValidationError("at least one search parameter is required")
	}

	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}

	results := make([]models.Product, 0, len(products))
	for _, p := range products {
		if filter.Query != "" && !matchesQuery(&p, filter.Query) {
			continue
		}
		if filter.Category != "" && p.CategoryID != filter.Category {
			continue
		}
		if filter.MinPrice != nil && p.EffectivePrice() < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.EffectivePrice() > *filter.MaxPrice {
			continue
		}
		results = append(results, p)
	}
	return results, nil
}

// GetProductsByCategory resolves the category and returns it together
// with every product referencing it.
func (s *ProductService) GetProductsByCategory(categoryID string) (*models.Category, []models.Product, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, nil, err
	}
	if category == nil {
		return nil, nil, models.NewNotFoundError("category", categoryID)
	}

	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, nil, err
	}
	inCategory := make([]models.Product, 0)
	for _, p := range products {
		if p.CategoryID == categoryID || p.CategoryID == category.Name {
			inCategory = append(inCategory, p)
		}
	}
	return category, inCategory, nil
}

// registerCategory idempotently upserts a category referenced by id or
// name, so category listings include it even when it was never created
// explicitly.
func (s *ProductService) registerCategory(ref string) error {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return err
	}
	for i := range categories {
		if categories[i].Matches(ref) {
			return nil
		}
	}

	now := time.Now()
	return s.categoryRepo.Put(&models.Category{
		ID:        uuid.New().String(),
		Name:      ref,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// matchesQuery reports a case-insensitive substring match against the
// product's name, description or any tag.
func matchesQuery(p *models.Product, query string) bool {
	term := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// publishEvent publishes a catalog event best-effort: a missing client
// or a broker failure is logged and otherwise ignored.
func (s *ProductService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish("catalog", routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
