package repositories

import (
	"context"

	"storefront/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Create inserts the order verbatim and sets its store-assigned ID.
	Create(ctx context.Context, order *models.Order) error
	// FindByUser returns the user's orders in store-native order, skipping
	// the first offset and returning at most limit.
	FindByUser(ctx context.Context, userID string, limit, offset int64) ([]models.Order, error)
}
