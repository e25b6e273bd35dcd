package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"catalog/internal/models"
)

// GORMProductRepository is the relational implementation of
// ProductRepository. Products and variants live in separate tables;
// Put and Delete reassemble and tear down the aggregate so callers
// only ever see whole products.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products with their variant lists.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Preload("Variants").Find(&products).Error; err != nil {
		return nil, models.NewStorageError("list products", err)
	}
	return products, nil
}

// GetByID retrieves a single product with its variants, or (nil, nil)
// if no row has the given id.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Variants").First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, models.NewStorageError("get product", err)
	}
	return &product, nil
}

// Put upserts the product row and replaces its variant rows wholesale
// inside one transaction, so the stored aggregate always matches the
// in-memory one.
func (r *GORMProductRepository) Put(product *models.Product) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(product).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.Variant{}).Error; err != nil {
			return err
		}
		if len(product.Variants) == 0 {
			return nil
		}
		for i := range product.Variants {
			product.Variants[i].ProductID = product.ID
		}
		return tx.Create(&product.Variants).Error
	})
	if err != nil {
		return models.NewStorageError("put product", err)
	}
	return nil
}

// Delete removes the product row and, only after confirming it
// existed, its variant rows.
func (r *GORMProductRepository) Delete(id string) (bool, error) {
	existed := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		existed = true
		return tx.Where("product_id = ?", id).Delete(&models.Variant{}).Error
	})
	if err != nil {
		return false, models.NewStorageError("delete product", err)
	}
	return existed, nil
}
