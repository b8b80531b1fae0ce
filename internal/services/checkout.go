package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/styleloom/clothing-store/internal/errors"
	"github.com/styleloom/clothing-store/internal/models"
	repository "github.com/styleloom/clothing-store/internal/repositories"
	"github.com/styleloom/clothing-store/pkg/sendgrid"
)

// CheckoutService turns the current cart into a persisted order.
type CheckoutService struct {
	cart       *CartService
	orders     repository.OrderRepository
	notifier   sendgrid.EmailService
	ownerEmail string
}

func NewCheckoutService(cart *CartService, orders repository.OrderRepository) *CheckoutService {
	return &CheckoutService{cart: cart, orders: orders}
}

// WithOrderAlerts enables best-effort "new order" emails to the shop owner.
func (s *CheckoutService) WithOrderAlerts(notifier sendgrid.EmailService, ownerEmail string) *CheckoutService {
	s.notifier = notifier
	s.ownerEmail = ownerEmail

	return s
}

// Checkout persists the cart as a Paid order and clears the cart. On an empty
// cart it fails without touching the store; on a store failure the cart keeps
// its items so the client can retry.
//
// The order records the name of the first cart item only. A multi-item cart
// therefore loses the remaining product names; that is the documented behavior
// of this flow, kept as is.
func (s *CheckoutService) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.Order, error) {

	var order *models.Order

	err := s.cart.Commit(func(items []models.CartItem, total float64) error {

		o := &models.Order{
			Name:         req.Name,
			MobileNumber: req.MobileNumber,
			Address:      req.Address,
			ProductName:  items[0].Product.Name,
			TotalAmount:  total,
			Status:       models.OrderStatusPaid,
			CreatedAt:    time.Now(),
		}

		if err := s.orders.CreateOrder(ctx, o); err != nil {
			return errors.DatabaseError("Failed to save order").WithError(err)
		}

		order = o

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.notifyOwner(order)

	return order, nil
}

func (s *CheckoutService) ListOrders(ctx context.Context) ([]models.Order, error) {

	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, nil
}

// notifyOwner never affects the order: failures are logged and dropped.
func (s *CheckoutService) notifyOwner(order *models.Order) {

	if s.notifier == nil || s.ownerEmail == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		msg := &sendgrid.Message{
			To:      s.ownerEmail,
			Subject: "New order received",
			Content: fmt.Sprintf("Order for %s (%s), product %q, total %.2f.",
				order.Name, order.MobileNumber, order.ProductName, order.TotalAmount),
			HTMLContent: fmt.Sprintf("<p>Order for <b>%s</b> (%s), product %q, total %.2f.</p>",
				order.Name, order.MobileNumber, order.ProductName, order.TotalAmount),
		}

		if err := s.notifier.Send(ctx, msg); err != nil {
			slog.Error("Order alert email failed", slog.String("error", err.Error()))
		}
	}()
}
