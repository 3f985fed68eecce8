package services

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/events"
)

// EventPublisher emits product lifecycle events. A nil publisher disables
// event emission entirely.
type EventPublisher interface {
	PublishCatalogEvent(event string, product map[string]interface{}) error
}

// ProductFilter carries the optional exact-match query filters for listing
// products. Nil fields are unset.
type ProductFilter struct {
	Name      *string
	Category  *models.Category
	Available *bool
	Price     *decimal.Decimal
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
	validate  *validator.Validate
}

// NewProductService creates a new ProductService. publisher may be nil when
// no broker is configured.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
		validate:  validator.New(),
	}
}

// ListProducts retrieves products matching the filter. Multiple filters
// combine as a conjunction (AND): the most selective repository finder runs
// first and the remaining predicates are applied to its result. An empty
// filter returns the full list.
func (s *ProductService) ListProducts(filter ProductFilter) ([]models.Product, error) {
	products, err := s.fetchCandidates(filter)
	if err != nil {
		return nil, err
	}

	matches := make([]models.Product, 0, len(products))
	for _, p := range products {
		if filter.Name != nil && p.Name != *filter.Name {
			continue
		}
		if filter.Category != nil && p.Category != *filter.Category {
			continue
		}
		if filter.Available != nil && p.Available != *filter.Available {
			continue
		}
		if filter.Price != nil && !p.Price.Equal(*filter.Price) {
			continue
		}
		matches = append(matches, p)
	}
	return matches, nil
}

func (s *ProductService) fetchCandidates(filter ProductFilter) ([]models.Product, error) {
	switch {
	case filter.Name != nil:
		return s.repo.GetByName(*filter.Name)
	case filter.Category != nil:
		return s.repo.GetByCategory(*filter.Category)
	case filter.Available != nil:
		return s.repo.GetByAvailability(*filter.Available)
	case filter.Price != nil:
		return s.repo.GetByPrice(*filter.Price)
	default:
		return s.repo.GetAll()
	}
}

// GetProduct retrieves a single product by its id.
func (s *ProductService) GetProduct(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct validates and persists a new product; the store assigns the
// id. A product.created event is emitted on success.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.checkEntity(product); err != nil {
		return err
	}
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.publish(events.ProductCreated, product)
	return nil
}

// UpdateProduct persists the product's in-memory field values over the
// existing row. Calling it on a product that was never persisted fails
// before any store round-trip.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if product.ID == 0 {
		return models.NewDataValidationError("Update called with empty ID field")
	}
	if err := s.checkEntity(product); err != nil {
		return err
	}
	if err := s.repo.Update(product); err != nil {
		return err
	}
	s.publish(events.ProductUpdated, product)
	return nil
}

// DeleteProduct removes a product by its id. Deleting an absent id is a
// no-op, so the operation is idempotent.
func (s *ProductService) DeleteProduct(id uint) error {
	if id == 0 {
		return nil
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish(events.ProductDeleted, &models.Product{ID: id})
	return nil
}

// checkEntity runs the struct-tag validation as the persistence
// precondition. Deserialize has already type-checked the wire payload; this
// guards products constructed directly in code.
func (s *ProductService) checkEntity(product *models.Product) error {
	if err := s.validate.Struct(product); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return models.NewDataValidationError(err.Error())
		}
		first := validationErrors[0]
		return models.NewDataValidationError(
			fmt.Sprintf("Invalid product: field '%s' failed on the '%s' tag", first.Field(), first.Tag()))
	}
	return nil
}

// publish emits a lifecycle event when a publisher is configured. A broker
// failure is logged but never surfaced to the caller; the store is the
// source of truth and the mutation has already committed.
func (s *ProductService) publish(event string, product *models.Product) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishCatalogEvent(event, product.Serialize()); err != nil {
		log.Printf("Failed to publish %s event for product %d: %v", event, product.ID, err)
	}
}
