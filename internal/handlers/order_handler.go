package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/:userId", h.HandleListOrders)
}

// CreateOrderRequest represents the request body for order creation.
// Scalar fields are pointers so that a missing field is told apart from a
// present zero value: empty user ids and non-positive quantities are
// stored as-is.
type CreateOrderRequest struct {
	UserID *string                `json:"userId" validate:"required"`
	Items  []CreateOrderItemEntry `json:"items" validate:"required,dive"`
}

// CreateOrderItemEntry is one items entry of an order creation request.
type CreateOrderItemEntry struct {
	ProductID *string `json:"productId" validate:"required"`
	Qty       *int    `json:"qty" validate:"required"`
}

func (r CreateOrderRequest) toModel() models.Order {
	items := make([]models.OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, models.OrderItem{ProductID: *item.ProductID, Qty: *item.Qty})
	}
	return models.Order{UserID: *r.UserID, Items: items}
}

// HandleCreateOrder creates a new order and responds with its id. Product
// references in the items are stored verbatim; they are not checked against
// the catalog here.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create order request body: %v", err)
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

	order := req.toModel()
	id, err := h.service.CreateOrder(c.Context(), &order)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create order",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id": id,
	})
}

// HandleListOrders lists a user's orders with enriched line items and the
// computed total, wrapped in the pagination envelope. A stored item whose
// product id cannot be parsed fails the whole listing with a client error;
// an id that parses but matches no product is silently skipped.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	userID := c.Params("userId")
	limit := int64(c.QueryInt("limit", 10))
	offset := int64(c.QueryInt("offset", 0))

	orders, page, err := h.service.ListOrdersByUser(c.Context(), userID, limit, offset)
	if err != nil {
		log.Printf("Error listing orders for user %s: %v", userID, err)
		if errors.Is(err, repositories.ErrInvalidProductID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Order contains a malformed product id",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data": orders,
		"page": page,
	})
}
