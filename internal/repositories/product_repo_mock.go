package repositories

import (
	"sync"

	"github.com/shopspring/decimal"

	"catalog/internal/models"
)

// MemoryProductRepository is an in-memory implementation of
// ProductRepository. It assigns monotonically increasing ids the way the
// relational store would, which makes it a drop-in stand-in for local runs
// and tests that do not need a database.
type MemoryProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// GetAll returns all products.
func (r *MemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its id.
func (r *MemoryProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, &models.NotFoundError{ID: id}
	}
	return &product, nil
}

// GetByName returns all products with an exact name match.
func (r *MemoryProductRepository) GetByName(name string) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool { return p.Name == name })
}

// GetByCategory returns all products with an exact category match.
func (r *MemoryProductRepository) GetByCategory(category models.Category) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool { return p.Category == category })
}

// GetByAvailability returns all products with the given availability.
func (r *MemoryProductRepository) GetByAvailability(available bool) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool { return p.Available == available })
}

// GetByPrice returns all products whose price decimal-equals the given value.
func (r *MemoryProductRepository) GetByPrice(price decimal.Decimal) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool { return p.Price.Equal(price) })
}

func (r *MemoryProductRepository) filter(keep func(models.Product) bool) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]models.Product, 0)
	for _, p := range r.products {
		if keep(p) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// Create adds a new product and assigns the next id.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MemoryProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return &models.NotFoundError{ID: product.ID}
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its id. Absent ids are a no-op.
func (r *MemoryProductRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, id)
	return nil
}
