package services

import (
	"context"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ProductService handles business logic related to the product catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// CreateProduct inserts a new product and returns its assigned id.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) (string, error) {
	if err := s.repo.Create(ctx, product); err != nil {
		return "", err
	}
	return product.ID, nil
}

// ListProducts returns the page of products matching filter along with the
// pagination envelope. The envelope's Limit field reports the number of
// items returned, and Previous is offset-limit without clamping; both
// follow the published listing contract.
func (s *ProductService) ListProducts(ctx context.Context, filter repositories.ProductFilter, limit, offset int64) ([]models.Product, models.Page, error) {
	products, err := s.repo.Find(ctx, filter, limit, offset)
	if err != nil {
		return nil, models.Page{}, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, models.NewPage(offset, limit, len(products)), nil
}
