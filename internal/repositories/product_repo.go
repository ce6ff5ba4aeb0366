package repositories

import (
	"context"

	"storefront/internal/models"
)

// ProductFilter narrows a product listing. Zero-valued fields impose no
// constraint; both set means both must match.
type ProductFilter struct {
	// Name is matched as a case-insensitive substring of the product name.
	Name string
	// Size is matched exactly against any element of the product's sizes.
	Size string
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// Create inserts the product and sets its store-assigned ID.
	Create(ctx context.Context, product *models.Product) error
	// Find returns the products matching filter in store-native order,
	// skipping the first offset matches and returning at most limit.
	Find(ctx context.Context, filter ProductFilter, limit, offset int64) ([]models.Product, error)
	// GetByID returns ErrProductNotFound when no product has the given id,
	// and ErrInvalidProductID when id is not a well-formed identifier.
	GetByID(ctx context.Context, id string) (*models.Product, error)
}
