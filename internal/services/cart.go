package service

import (
	"context"
	"sync"

	"github.com/styleloom/clothing-store/internal/errors"
	"github.com/styleloom/clothing-store/internal/models"
	repository "github.com/styleloom/clothing-store/internal/repositories"
)

// CartService holds the single process-wide cart. There is deliberately no
// per-session isolation: every client shares one cart for the lifetime of the
// process. All mutations run under the mutex so interleaved requests cannot
// corrupt the item list or race checkout.
type CartService struct {
	products repository.ProductRepository

	mu    sync.Mutex
	items []models.CartItem
}

func NewCartService(products repository.ProductRepository) *CartService {
	return &CartService{products: products}
}

// AddItem resolves the product and appends a new line item with a snapshot of
// it. Adding the same product twice yields two line items.
func (s *CartService) AddItem(ctx context.Context, productID string, quantity int) (*models.CartItem, error) {

	if quantity < 1 {
		return nil, errors.ValidationError("Quantity must be a positive number")
	}

	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	item := models.CartItem{
		Product:  *product,
		Quantity: quantity,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, item)

	return &item, nil
}

// RemoveItem drops the first line item whose product id matches. Removing an
// id that is not in the cart is a no-op, not an error.
func (s *CartService) RemoveItem(productID string) {

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.Product.ID.Hex() == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the line items in insertion order.
func (s *CartService) Items() []models.CartItem {

	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)

	return items
}

// Total is recomputed from the current items on every call, never cached.
func (s *CartService) Total() float64 {

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.totalLocked()
}

func (s *CartService) totalLocked() float64 {

	var total float64

	for _, item := range s.items {
		total += item.LineTotal()
	}

	return total
}

func (s *CartService) Clear() {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
}

// Commit runs snapshot -> persist -> clear as one critical section. The cart
// is cleared only when persist returns nil; on failure it keeps its items so
// the client can retry. A concurrent AddItem blocks until the commit finishes
// instead of landing between the total computation and the clear.
func (s *CartService) Commit(persist func(items []models.CartItem, total float64) error) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return errors.EmptyCartError()
	}

	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)

	if err := persist(items, s.totalLocked()); err != nil {
		return err
	}

	s.items = nil

	return nil
}
