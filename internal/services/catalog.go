package service

import (
	"context"

	"github.com/microcosm-cc/bluemonday"
	"github.com/styleloom/clothing-store/internal/errors"
	"github.com/styleloom/clothing-store/internal/models"
	repository "github.com/styleloom/clothing-store/internal/repositories"
)

type CatalogService struct {
	repo      repository.ProductRepository
	sanitizer *bluemonday.Policy
}

func NewCatalogService(repo repository.ProductRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
		// Product name and description end up in rendered pages.
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	return product, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	product := &models.Product{
		Name:        s.sanitizer.Sanitize(req.Name),
		Price:       req.Price,
		Description: s.sanitizer.Sanitize(req.Description),
		ImageURL:    req.ImageURL,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to save product").WithError(err)
	}

	return product, nil
}
