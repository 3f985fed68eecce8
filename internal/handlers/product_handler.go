package handlers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"catalog/internal/models"
	"catalog/internal/services"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// RegisterSystemRoutes wires the service index and liveness endpoints.
func RegisterSystemRoutes(router fiber.Router) {
	router.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":    "Product Catalog Administration",
			"version": "1.0",
			"paths": fiber.Map{
				"list":   "GET /products",
				"create": "POST /products",
				"read":   "GET /products/{id}",
				"update": "PUT /products/{id}",
				"delete": "DELETE /products/{id}",
			},
		})
	})
	router.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "OK"})
	})
}

// HandleListProducts lists products, optionally filtered by the name,
// category, available and price query parameters. Filters combine as AND.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	filter := services.ProductFilter{}

	if name := c.Query("name"); name != "" {
		filter.Name = &name
	}
	if categoryName := c.Query("category"); categoryName != "" {
		category, err := models.CategoryFromName(categoryName)
		if err != nil {
			return err
		}
		filter.Category = &category
	}
	if rawAvailable := c.Query("available"); rawAvailable != "" {
		available, err := strconv.ParseBool(rawAvailable)
		if err != nil {
			return models.NewDataValidationError(
				fmt.Sprintf("Invalid value for boolean [available]: %s", rawAvailable))
		}
		filter.Available = &available
	}
	if rawPrice := c.Query("price"); rawPrice != "" {
		price, err := decimal.NewFromString(rawPrice)
		if err != nil {
			return models.NewDataValidationError(
				fmt.Sprintf("Invalid value for decimal [price]: %s", rawPrice))
		}
		filter.Price = &price
	}

	products, err := h.service.ListProducts(filter)
	if err != nil {
		return err
	}

	serialized := make([]map[string]interface{}, 0, len(products))
	for i := range products {
		serialized = append(serialized, products[i].Serialize())
	}
	return c.JSON(serialized)
}

// HandleGetProduct fetches a single product by id.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}
	product, err := h.service.GetProduct(id)
	if err != nil {
		return err
	}
	return c.JSON(product.Serialize())
}

// HandleCreateProduct creates a new product from a JSON payload and answers
// 201 with a Location header pointing at the new resource.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	if err := checkContentType(c); err != nil {
		return err
	}
	payload, err := parseBody(c)
	if err != nil {
		return err
	}

	product := &models.Product{}
	if err := product.Deserialize(payload); err != nil {
		return err
	}
	if err := h.service.CreateProduct(product); err != nil {
		return err
	}

	c.Set(fiber.HeaderLocation, fmt.Sprintf("/products/%d", product.ID))
	return c.Status(fiber.StatusCreated).JSON(product.Serialize())
}

// HandleUpdateProduct overwrites an existing product with the payload's
// field values.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	if err := checkContentType(c); err != nil {
		return err
	}
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	product, err := h.service.GetProduct(id)
	if err != nil {
		return err
	}

	payload, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := product.Deserialize(payload); err != nil {
		return err
	}
	if err := h.service.UpdateProduct(product); err != nil {
		return err
	}
	return c.JSON(product.Serialize())
}

// HandleDeleteProduct removes a product. Deleting an id that does not exist
// still answers 204; the operation is idempotent.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteProduct(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseProductID extracts the {id} path parameter. Anything non-numeric
// cannot name an existing product, so it maps to 404 rather than 400.
func parseProductID(c *fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusNotFound,
			fmt.Sprintf("Product with id '%s' was not found.", raw))
	}
	return uint(id), nil
}

// checkContentType rejects write requests that do not declare a JSON body,
// before any deserialization is attempted.
func checkContentType(c *fiber.Ctx) error {
	contentType := c.Get(fiber.HeaderContentType)
	if !strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) {
		return fiber.NewError(fiber.StatusUnsupportedMediaType,
			fmt.Sprintf("Content-Type must be %s", fiber.MIMEApplicationJSON))
	}
	return nil
}

// parseBody decodes the raw request body into a wire mapping. Decoding into
// a map (rather than straight into the struct) keeps the field-level type
// checks in Product.Deserialize in charge, so a string "yes" in a boolean
// field is rejected instead of coerced.
func parseBody(c *fiber.Ctx) (map[string]interface{}, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal(c.Body(), &payload); err != nil || payload == nil {
		return nil, models.NewDataValidationError(
			"Invalid product: body of request contained bad or no data")
	}
	return payload, nil
}
