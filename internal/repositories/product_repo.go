package repositories

import (
	"github.com/shopspring/decimal"

	"catalog/internal/models"
)

// ProductRepository defines the interface for product data access.
// All finders are exact-match; Delete is idempotent.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	GetByName(name string) ([]models.Product, error)
	GetByCategory(category models.Category) ([]models.Product, error)
	GetByAvailability(available bool) ([]models.Product, error)
	GetByPrice(price decimal.Decimal) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
}
