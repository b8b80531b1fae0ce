package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	appErrors "github.com/styleloom/clothing-store/internal/errors"
	"github.com/styleloom/clothing-store/internal/models"
	service "github.com/styleloom/clothing-store/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo := new(mockProductRepo)
		catalog := service.NewCatalogService(mockRepo)

		stored := []models.Product{{Name: "Shirt", Price: 20}, {Name: "Hat", Price: 5}}
		mockRepo.On("ListProducts", ctx).Return(stored, nil).Once()

		// Act
		products, err := catalog.ListProducts(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, stored, products)
	})

	t.Run("Failure", func(t *testing.T) {
		// Arrange
		mockRepo := new(mockProductRepo)
		catalog := service.NewCatalogService(mockRepo)
		mockRepo.On("ListProducts", ctx).Return(nil, errors.New("cursor timeout")).Once()

		// Act
		products, err := catalog.ListProducts(ctx)

		// Assert
		assert.Nil(t, products)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
	})
}

func TestGetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockRepo := new(mockProductRepo)
		catalog := service.NewCatalogService(mockRepo)
		mockRepo.On("GetProductByID", ctx, "missing").Return(nil, mongo.ErrNoDocuments).Once()

		// Act
		product, err := catalog.GetProduct(ctx, "missing")

		// Assert
		assert.Nil(t, product)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo := new(mockProductRepo)
		catalog := service.NewCatalogService(mockRepo)
		shirt := newTestProduct("Shirt", 20)
		mockRepo.On("GetProductByID", ctx, shirt.ID.Hex()).Return(shirt, nil).Once()

		// Act
		product, err := catalog.GetProduct(ctx, shirt.ID.Hex())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, shirt, product)
	})
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Sanitizes Rendered Fields", func(t *testing.T) {
		// Arrange
		mockRepo := new(mockProductRepo)
		catalog := service.NewCatalogService(mockRepo)
		mockRepo.On("CreateProduct", ctx, mock.AnythingOfType("*models.Product")).Return(nil).Once()

		req := &models.CreateProductRequest{
			Name:        `Shirt<script>alert("x")</script>`,
			Price:       20,
			Description: "<b>Soft</b> cotton",
			ImageURL:    "/images/1.png",
		}

		// Act
		product, err := catalog.CreateProduct(ctx, req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Shirt", product.Name)
		assert.Equal(t, "Soft cotton", product.Description)
		assert.Equal(t, float64(20), product.Price)
		assert.Equal(t, "/images/1.png", product.ImageURL)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Store Error", func(t *testing.T) {
		// Arrange
		mockRepo := new(mockProductRepo)
		catalog := service.NewCatalogService(mockRepo)
		mockRepo.On("CreateProduct", ctx, mock.AnythingOfType("*models.Product")).Return(errors.New("write failed")).Once()

		// Act
		product, err := catalog.CreateProduct(ctx, &models.CreateProductRequest{Name: "Shirt", Price: 1})

		// Assert
		assert.Nil(t, product)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
	})
}
