package repositories

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// Products are kept in insertion order so paginated listings are
// deterministic, matching what the document store does for an unindexed
// collection.
type MockProductRepository struct {
	products []models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{}
}

// Create adds a new product, assigning a fresh object-id-shaped identifier
// when none is set.
func (r *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = primitive.NewObjectID().Hex()
	}
	r.products = append(r.products, *product)
	return nil
}

// Find applies the same filter semantics as the Mongo implementation:
// case-insensitive substring on name, exact match against any size variant,
// conjunctive when both are set.
func (r *MockProductRepository) Find(ctx context.Context, filter ProductFilter, limit, offset int64) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Size != "" && !hasSize(p, filter.Size) {
			continue
		}
		matches = append(matches, p)
	}

	return paginate(matches, limit, offset), nil
}

// GetByID returns a product by its hex object id.
func (r *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProductID, id)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

func hasSize(p models.Product, size string) bool {
	for _, v := range p.Sizes {
		if v.Size == size {
			return true
		}
	}
	return false
}

// paginate applies skip/limit the way the store does: offset past the end
// yields an empty page, a non-positive limit means no cap.
func paginate[T any](items []T, limit, offset int64) []T {
	if offset >= int64(len(items)) {
		return []T{}
	}
	if offset < 0 {
		offset = 0
	}
	end := int64(len(items))
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
