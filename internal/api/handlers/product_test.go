package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/styleloom/clothing-store/internal/api/handlers"
	"github.com/styleloom/clothing-store/internal/errors"
	"github.com/styleloom/clothing-store/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// newUploadRequest builds the multipart form the admin page posts, with an
// optional image payload.
func newUploadRequest(t *testing.T, fields map[string]string, imageName string, image []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer

	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if imageName != "" {
		part, err := writer.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload-product", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func TestProductHandler_Pages(t *testing.T) {
	products := []models.Product{
		{ID: primitive.NewObjectID(), Name: "Shirt", Price: 20, ImageURL: "/images/1.png"},
		{ID: primitive.NewObjectID(), Name: "Hat", Price: 5},
	}

	t.Run("Success - Home Lists Catalog", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mockCatalogService)
		productHandler := handlers.NewProductHandler(mockCatalog, newTestRenderer(t), t.TempDir())
		mockCatalog.On("ListProducts", mock.Anything).Return(products, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/home", nil)
		w := httptest.NewRecorder()

		// Act
		handler := productHandler.Home()
		handler(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Shirt")
		assert.Contains(t, w.Body.String(), "$20.00")
	})

	t.Run("Success - Products Page", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mockCatalogService)
		productHandler := handlers.NewProductHandler(mockCatalog, newTestRenderer(t), t.TempDir())
		mockCatalog.On("ListProducts", mock.Anything).Return(products, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		w := httptest.NewRecorder()

		// Act
		handler := productHandler.Products()
		handler(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Hat")
	})

	t.Run("Failure - Store Error", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mockCatalogService)
		productHandler := handlers.NewProductHandler(mockCatalog, newTestRenderer(t), t.TempDir())
		mockCatalog.On("ListProducts", mock.Anything).
			Return(nil, errors.DatabaseError("Failed to fetch products")).Once()

		req := httptest.NewRequest(http.MethodGet, "/home", nil)
		w := httptest.NewRecorder()

		// Act
		handler := productHandler.Home()
		handler(w, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to fetch products")
	})
}

func TestProductHandler_Upload(t *testing.T) {
	validFields := map[string]string{
		"name":        "Shirt",
		"price":       "20",
		"description": "Soft cotton",
	}

	t.Run("Success - Product With Image", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mockCatalogService)
		uploadsDir := t.TempDir()
		productHandler := handlers.NewProductHandler(mockCatalog, newTestRenderer(t), uploadsDir)

		created := &models.Product{ID: primitive.NewObjectID(), Name: "Shirt", Price: 20}
		mockCatalog.On("CreateProduct", mock.Anything, mock.MatchedBy(func(r *models.CreateProductRequest) bool {
			return r.Name == "Shirt" && r.Price == 20 && r.ImageURL != ""
		})).Return(created, nil).Once()

		req := newUploadRequest(t, validFields, "shirt.png", []byte("fake image bytes"))
		w := httptest.NewRecorder()

		// Act
		handler := productHandler.Upload()
		handler(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Uploaded Successfully")

		stored, err := os.ReadDir(uploadsDir)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, ".png", filepath.Ext(stored[0].Name()))
		mockCatalog.AssertExpectations(t)
	})

	t.Run("Success - Product Without Image", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mockCatalogService)
		productHandler := handlers.NewProductHandler(mockCatalog, newTestRenderer(t), t.TempDir())

		created := &models.Product{ID: primitive.NewObjectID(), Name: "Shirt", Price: 20}
		mockCatalog.On("CreateProduct", mock.Anything, mock.MatchedBy(func(r *models.CreateProductRequest) bool {
			return r.ImageURL == ""
		})).Return(created, nil).Once()

		req := newUploadRequest(t, validFields, "", nil)
		w := httptest.NewRecorder()

		// Act
		handler := productHandler.Upload()
		handler(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		mockCatalog.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Price", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mockCatalogService)
		productHandler := handlers.NewProductHandler(mockCatalog, newTestRenderer(t), t.TempDir())

		fields := map[string]string{"name": "Shirt", "price": "free", "description": "Soft"}
		req := newUploadRequest(t, fields, "", nil)
		w := httptest.NewRecorder()

		// Act
		handler := productHandler.Upload()
		handler(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockCatalog.AssertNotCalled(t, "CreateProduct")
	})

	t.Run("Failure - Missing Name", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mockCatalogService)
		productHandler := handlers.NewProductHandler(mockCatalog, newTestRenderer(t), t.TempDir())

		fields := map[string]string{"price": "20", "description": "Soft"}
		req := newUploadRequest(t, fields, "", nil)
		w := httptest.NewRecorder()

		// Act
		handler := productHandler.Upload()
		handler(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockCatalog.AssertNotCalled(t, "CreateProduct")
	})

	t.Run("Failure - Store Error", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mockCatalogService)
		productHandler := handlers.NewProductHandler(mockCatalog, newTestRenderer(t), t.TempDir())

		mockCatalog.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.CreateProductRequest")).
			Return(nil, errors.DatabaseError("Failed to save product")).Once()

		req := newUploadRequest(t, validFields, "", nil)
		w := httptest.NewRecorder()

		// Act
		handler := productHandler.Upload()
		handler(w, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to save product")
	})
}
