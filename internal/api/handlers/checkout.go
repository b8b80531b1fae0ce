package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/styleloom/clothing-store/internal/api/middleware"
	"github.com/styleloom/clothing-store/internal/errors"
	"github.com/styleloom/clothing-store/internal/models"
	"github.com/styleloom/clothing-store/internal/utils"
	"github.com/styleloom/clothing-store/internal/web"
)

type CheckoutService interface {
	Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
}

type CheckoutHandler struct {
	checkout  CheckoutService
	cart      CartService
	renderer  *web.Renderer
	validator *validator.Validate
}

func NewCheckoutHandler(checkout CheckoutService, cart CartService, renderer *web.Renderer) *CheckoutHandler {
	return &CheckoutHandler{
		checkout:  checkout,
		cart:      cart,
		renderer:  renderer,
		validator: validator.New(),
	}
}

// CheckoutPage renders the simulated payment gateway with the amount due.
func (h *CheckoutHandler) CheckoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderer.Render(w, http.StatusOK, "payment.html", map[string]any{
			"TotalAmount": h.cart.Total(),
		})
	}
}

func (h *CheckoutHandler) ProcessPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := r.ParseForm(); err != nil {
			h.renderer.Render(w, http.StatusBadRequest, "payment.html", map[string]any{
				"Message":     "Invalid form submission",
				"TotalAmount": h.cart.Total(),
			})

			return
		}

		req := &models.CheckoutRequest{
			Name:         r.PostFormValue("name"),
			MobileNumber: r.PostFormValue("mobileNumber"),
			Address:      r.PostFormValue("address"),
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			h.renderer.Render(w, http.StatusBadRequest, "payment.html", map[string]any{
				"Message":     err.Error(),
				"TotalAmount": h.cart.Total(),
			})

			return
		}

		order, err := h.checkout.Checkout(r.Context(), req)
		if err != nil {
			if appErr, ok := errors.IsAppError(err); ok && appErr.Code == errors.ErrCodeEmptyCart {
				logger.Warn("Checkout on empty cart")
				h.renderer.Render(w, http.StatusBadRequest, "payment.html", map[string]any{
					"Message":     appErr.Message,
					"TotalAmount": 0.0,
				})

				return
			}

			logger.Error("Checkout failed", slog.String("error", err.Error()))
			h.renderer.RenderError(w, err)

			return
		}

		logger.Info("Order placed",
			slog.String("order_id", order.ID.Hex()),
			slog.Float64("total", order.TotalAmount))

		h.renderer.Render(w, http.StatusOK, "confirmation.html", map[string]any{"Order": order})
	}
}

// Admin renders all orders, oldest first.
func (h *CheckoutHandler) Admin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		orders, err := h.checkout.ListOrders(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list orders", slog.String("error", err.Error()))
			h.renderer.RenderError(w, err)

			return
		}

		h.renderer.Render(w, http.StatusOK, "admin.html", map[string]any{"Orders": orders})
	}
}
