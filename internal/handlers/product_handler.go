package handlers

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/", h.HandleListProducts)
}

// CreateProductRequest represents the request body for product creation.
// Scalar fields are pointers so that a missing field is told apart from a
// present zero value: validation enforces presence and type only, and
// empty names, negative prices and zero quantities are stored as-is.
type CreateProductRequest struct {
	Name  *string                 `json:"name" validate:"required"`
	Price *float64                `json:"price" validate:"required"`
	Sizes []CreateSizeVariantItem `json:"sizes" validate:"required,dive"`
}

// CreateSizeVariantItem is one sizes entry of a product creation request.
type CreateSizeVariantItem struct {
	Size     *string `json:"size" validate:"required"`
	Quantity *int    `json:"quantity" validate:"required"`
}

func (r CreateProductRequest) toModel() models.Product {
	sizes := make([]models.SizeVariant, 0, len(r.Sizes))
	for _, s := range r.Sizes {
		sizes = append(sizes, models.SizeVariant{Size: *s.Size, Quantity: *s.Quantity})
	}
	return models.Product{Name: *r.Name, Price: *r.Price, Sizes: sizes}
}

// HandleCreateProduct creates a new product and responds with its id.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	product := req.toModel()
	id, err := h.service.CreateProduct(c.Context(), &product)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id": id,
	})
}

// HandleListProducts lists products filtered by name substring and/or
// variant size, wrapped in the pagination envelope.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{
		Name: c.Query("name"),
		Size: c.Query("size"),
	}
	limit := int64(c.QueryInt("limit", 10))
	offset := int64(c.QueryInt("offset", 0))

	products, page, err := h.service.ListProducts(c.Context(), filter, limit, offset)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data": products,
		"page": page,
	})
}
