package repositories

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"catalog/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves every persisted product in store-native order.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its id. An absent id yields a
// models.NotFoundError, not a store error.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to get product by id %d: %w", id, err)
	}
	return &product, nil
}

// GetByName retrieves all products with an exact, case-sensitive name match.
func (r *GORMProductRepository) GetByName(name string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products, "name = ?", name).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by name %q: %w", name, err)
	}
	return products, nil
}

// GetByCategory retrieves all products with an exact category match.
func (r *GORMProductRepository) GetByCategory(category models.Category) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products, "category = ?", category).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by category %s: %w", category, err)
	}
	return products, nil
}

// GetByAvailability retrieves all products with the given availability.
func (r *GORMProductRepository) GetByAvailability(available bool) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products, "available = ?", available).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by availability %t: %w", available, err)
	}
	return products, nil
}

// GetByPrice retrieves all products whose price equals the given decimal.
// Comparison happens on the numeric column, never on binary floats.
func (r *GORMProductRepository) GetByPrice(price decimal.Decimal) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products, "price = ?", price).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by price %s: %w", price, err)
	}
	return products, nil
}

// Create inserts a new product; the store assigns the id.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists the in-memory field values over the row with the matching
// id. A row that no longer exists yields a models.NotFoundError.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Model(&models.Product{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"available":   product.Available,
		"category":    product.Category,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM does not report ErrRecordNotFound for updates that match
		// nothing, so check RowsAffected.
		return &models.NotFoundError{ID: product.ID}
	}
	return nil
}

// Delete removes the row with the matching id. Deleting an id that is not
// present (or was already deleted) is a no-op, not an error.
func (r *GORMProductRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
