package services_test

import (
	"context"
	"fmt"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Find(ctx context.Context, filter repositories.ProductFilter, limit, offset int64) ([]models.Product, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	newProduct := &models.Product{
		Name:  "Blue Shirt",
		Price: 19.99,
		Sizes: []models.SizeVariant{{Size: "M", Quantity: 5}},
	}

	// Test successful creation: the repository assigns the id.
	mockRepo.On("Create", mock.Anything, newProduct).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Product).ID = "507f1f77bcf86cd799439011"
	}).Return(nil).Once()

	id, err := service.CreateProduct(context.Background(), newProduct)
	assert.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", id)
	mockRepo.AssertExpectations(t)

	// Test creation failure (e.g., database error)
	mockRepo.On("Create", mock.Anything, newProduct).Return(fmt.Errorf("database error")).Once()
	id, err = service.CreateProduct(context.Background(), newProduct)
	assert.Error(t, err)
	assert.Empty(t, id)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	filter := repositories.ProductFilter{Name: "shirt"}
	expected := []models.Product{
		{ID: "507f1f77bcf86cd799439011", Name: "Blue Shirt", Price: 19.99},
		{ID: "507f191e810c19729de860ea", Name: "Red Shirt", Price: 24.99},
	}

	mockRepo.On("Find", mock.Anything, filter, int64(2), int64(3)).Return(expected, nil).Once()

	products, page, err := service.ListProducts(context.Background(), filter, 2, 3)
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	// next = offset+limit, limit = returned count, previous = offset-limit.
	assert.Equal(t, int64(5), page.Next)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, int64(1), page.Previous)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListProducts_EmptyCatalog(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("Find", mock.Anything, repositories.ProductFilter{}, int64(5), int64(0)).
		Return([]models.Product{}, nil).Once()

	products, page, err := service.ListProducts(context.Background(), repositories.ProductFilter{}, 5, 0)
	assert.NoError(t, err)
	assert.NotNil(t, products)
	assert.Len(t, products, 0)
	assert.Equal(t, int64(5), page.Next)
	assert.Equal(t, 0, page.Limit)
	// previous is not clamped: the first page reports a negative offset.
	assert.Equal(t, int64(-5), page.Previous)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListProducts_RepositoryError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("Find", mock.Anything, repositories.ProductFilter{}, int64(10), int64(0)).
		Return(nil, fmt.Errorf("database error")).Once()

	products, _, err := service.ListProducts(context.Background(), repositories.ProductFilter{}, 10, 0)
	assert.Error(t, err)
	assert.Nil(t, products)
	mockRepo.AssertExpectations(t)
}
