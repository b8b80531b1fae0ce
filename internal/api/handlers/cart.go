package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/styleloom/clothing-store/internal/api/middleware"
	"github.com/styleloom/clothing-store/internal/errors"
	"github.com/styleloom/clothing-store/internal/models"
	"github.com/styleloom/clothing-store/internal/utils"
	"github.com/styleloom/clothing-store/internal/web"
)

type CartService interface {
	AddItem(ctx context.Context, productID string, quantity int) (*models.CartItem, error)
	RemoveItem(productID string)
	Items() []models.CartItem
	Total() float64
}

type CartHandler struct {
	cart     CartService
	renderer *web.Renderer
}

func NewCartHandler(cart CartService, renderer *web.Renderer) *CartHandler {
	return &CartHandler{cart: cart, renderer: renderer}
}

func (h *CartHandler) AddToCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := r.ParseForm(); err != nil {
			h.renderer.RenderError(w, errors.ValidationError("Invalid form submission").WithError(err))
			return
		}

		productID := r.PostFormValue("productId")
		if productID == "" {
			h.renderer.RenderError(w, errors.AddValidationError("productId", "is required"))
			return
		}

		quantity, err := utils.ParsePositiveInt(r.PostFormValue("quantity"))
		if err != nil {
			h.renderer.RenderError(w, errors.AddValidationError("quantity", err.Error()))
			return
		}

		item, err := h.cart.AddItem(r.Context(), productID, quantity)
		if err != nil {
			logger.Warn("Add to cart failed", slog.String("product_id", productID), slog.String("error", err.Error()))
			h.renderer.RenderError(w, err)

			return
		}

		logger.Info("Item added to cart",
			slog.String("product_id", productID),
			slog.String("product", item.Product.Name),
			slog.Int("quantity", item.Quantity))

		http.Redirect(w, r, "/cart", http.StatusFound)
	}
}

func (h *CartHandler) ViewCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderCart(w)
	}
}

func (h *CartHandler) RemoveFromCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := r.ParseForm(); err != nil {
			h.renderer.RenderError(w, errors.ValidationError("Invalid form submission").WithError(err))
			return
		}

		// Removing an id that is not in the cart is a no-op.
		h.cart.RemoveItem(r.PostFormValue("productId"))

		h.renderCart(w)
	}
}

func (h *CartHandler) renderCart(w http.ResponseWriter) {
	h.renderer.Render(w, http.StatusOK, "cart.html", map[string]any{
		"Cart":        h.cart.Items(),
		"TotalAmount": h.cart.Total(),
	})
}
