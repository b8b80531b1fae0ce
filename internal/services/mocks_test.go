package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/styleloom/clothing-store/internal/models"
)

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *mockProductRepo) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)

	if p := args.Get(0); p != nil {
		return p.(*models.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)

	if p := args.Get(0); p != nil {
		return p.([]models.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *mockOrderRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)

	if o := args.Get(0); o != nil {
		return o.([]models.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)

	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockRateLimiter struct {
	mock.Mock
}

func (m *mockRateLimiter) CheckLoginRateLimit(ctx context.Context, username string) (bool, int, int, error) {
	args := m.Called(ctx, username)

	return args.Bool(0), args.Int(1), args.Int(2), args.Error(3)
}
