package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/styleloom/clothing-store/internal/api/middleware"
	"github.com/styleloom/clothing-store/internal/errors"
	"github.com/styleloom/clothing-store/internal/models"
	"github.com/styleloom/clothing-store/internal/utils"
	"github.com/styleloom/clothing-store/internal/web"
)

const maxUploadSize = 10 << 20 // 10 MiB

type CatalogService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
}

type ProductHandler struct {
	catalog    CatalogService
	renderer   *web.Renderer
	validator  *validator.Validate
	uploadsDir string
}

func NewProductHandler(catalog CatalogService, renderer *web.Renderer, uploadsDir string) *ProductHandler {
	return &ProductHandler{
		catalog:    catalog,
		renderer:   renderer,
		validator:  validator.New(),
		uploadsDir: uploadsDir,
	}
}

// Home renders the storefront with the full catalog.
func (h *ProductHandler) Home() http.HandlerFunc {
	return h.productPage("index.html")
}

// Products renders the catalog listing page.
func (h *ProductHandler) Products() http.HandlerFunc {
	return h.productPage("products.html")
}

func (h *ProductHandler) productPage(template string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products, err := h.catalog.ListProducts(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list products", slog.String("error", err.Error()))
			h.renderer.RenderError(w, err)

			return
		}

		h.renderer.Render(w, http.StatusOK, template, map[string]any{"Products": products})
	}
}

// Upload accepts the admin multipart form, stores the image on disk and the
// product in the catalog.
func (h *ProductHandler) Upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.renderer.RenderError(w, errors.ValidationError("Invalid upload form").WithError(err))
			return
		}

		price, err := utils.ParsePrice(r.PostFormValue("price"))
		if err != nil {
			h.renderer.RenderError(w, errors.AddValidationError("price", err.Error()))
			return
		}

		req := &models.CreateProductRequest{
			Name:        r.PostFormValue("name"),
			Price:       price,
			Description: r.PostFormValue("description"),
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			h.renderer.RenderError(w, errors.ValidationError(err.Error()))
			return
		}

		imageURL, err := h.saveImage(r)
		if err != nil {
			logger.Error("Image upload failed", slog.String("error", err.Error()))
			h.renderer.RenderError(w, errors.InternalError("Failed to store product image").WithError(err))

			return
		}

		req.ImageURL = imageURL

		product, err := h.catalog.CreateProduct(r.Context(), req)
		if err != nil {
			logger.Error("Product upload failed", slog.String("error", err.Error()))
			h.renderer.RenderError(w, err)

			return
		}

		logger.Info("Product uploaded", slog.String("product_id", product.ID.Hex()), slog.String("name", product.Name))
		h.renderer.Render(w, http.StatusOK, "admin.html", map[string]any{"Respond": "Uploaded Successfully"})
	}
}

// saveImage stores the uploaded file under the uploads dir and returns the
// URL it will be served from. Missing file is not an error: the product is
// simply saved without an image.
func (h *ProductHandler) saveImage(r *http.Request) (string, error) {

	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return "", nil
	}

	if err != nil {
		return "", err
	}

	defer file.Close()

	if err := os.MkdirAll(h.uploadsDir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(header.Filename))

	dst, err := os.Create(filepath.Join(h.uploadsDir, filename))
	if err != nil {
		return "", err
	}

	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return "/images/" + filename, nil
}
