package repositories

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// Orders are kept in insertion order for deterministic pagination.
type MockOrderRepository struct {
	orders []models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{}
}

// Create adds a new order, assigning a fresh object-id-shaped identifier
// when none is set. Item product ids are stored as given, valid or not.
func (r *MockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = primitive.NewObjectID().Hex()
	}
	r.orders = append(r.orders, *order)
	return nil
}

// FindByUser returns the page of orders owned by userID.
func (r *MockOrderRepository) FindByUser(ctx context.Context, userID string, limit, offset int64) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if o.UserID == userID {
			matches = append(matches, o)
		}
	}

	return paginate(matches, limit, offset), nil
}
