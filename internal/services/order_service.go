package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// EventPublisher publishes order lifecycle events to a message broker. A
// nil publisher disables publishing entirely.
type EventPublisher interface {
	PublishOrderCreated(event map[string]interface{}) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	publisher   EventPublisher
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// CreateOrder inserts the order verbatim and returns its assigned id. The
// referenced product ids are not checked against the catalog here; dangling
// references surface only when the order is listed. After a successful
// insert an order.created event is published best-effort: a broker failure
// is logged and never fails the request.
func (s *OrderService) CreateOrder(ctx context.Context, order *models.Order) (string, error) {
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"orderId": order.ID,
			"userId":  order.UserID,
			"items":   len(order.Items),
		}
		if err := s.publisher.PublishOrderCreated(event); err != nil {
			log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
		}
	}

	return order.ID, nil
}

// ListOrdersByUser returns the page of the user's orders with each line
// item enriched from the catalog, plus the pagination envelope.
//
// For every stored item the referenced product is looked up at read time.
// A missing product is skipped: it contributes nothing to the total and no
// enriched item, and the listing as a whole still succeeds. A malformed
// product id, by contrast, fails the whole call, since identifier parsing
// happens before the existence check.
func (s *OrderService) ListOrdersByUser(ctx context.Context, userID string, limit, offset int64) ([]models.EnrichedOrder, models.Page, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, models.Page{}, err
	}

	enriched := make([]models.EnrichedOrder, 0, len(orders))
	for _, order := range orders {
		var total float64
		items := make([]models.EnrichedOrderItem, 0, len(order.Items))

		for _, item := range order.Items {
			product, err := s.productRepo.GetByID(ctx, item.ProductID)
			if errors.Is(err, repositories.ErrProductNotFound) {
				continue
			}
			if err != nil {
				return nil, models.Page{}, fmt.Errorf("order %s: %w", order.ID, err)
			}

			total += float64(item.Qty) * product.Price
			items = append(items, models.EnrichedOrderItem{
				ProductDetails: models.ProductDetails{
					ID:   product.ID,
					Name: product.Name,
				},
				Qty: item.Qty,
			})
		}

		enriched = append(enriched, models.EnrichedOrder{
			ID:    order.ID,
			Items: items,
			Total: total,
		})
	}

	return enriched, models.NewPage(offset, limit, len(enriched)), nil
}
