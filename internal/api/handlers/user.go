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

type UserService interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error)
}

type UserHandler struct {
	users     UserService
	renderer  *web.Renderer
	validator *validator.Validate
}

func NewUserHandler(users UserService, renderer *web.Renderer) *UserHandler {
	return &UserHandler{users: users, renderer: renderer, validator: validator.New()}
}

func (h *UserHandler) SignupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderer.Render(w, http.StatusOK, "signup.html", map[string]any{})
	}
}

func (h *UserHandler) Signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := r.ParseForm(); err != nil {
			h.renderer.Render(w, http.StatusBadRequest, "signup.html", map[string]any{"Message": "Invalid form submission"})
			return
		}

		req := &models.SignupRequest{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			h.renderer.Render(w, http.StatusBadRequest, "signup.html", map[string]any{"Message": "Username and password are required"})
			return
		}

		user, err := h.users.Signup(r.Context(), req)
		if err != nil {
			if appErr, ok := errors.IsAppError(err); ok && appErr.Code == errors.ErrCodeDuplicateEntry {
				logger.Warn("Signup rejected", slog.String("username", req.Username), slog.String("reason", "duplicate username"))
				h.renderer.Render(w, http.StatusBadRequest, "signup.html", map[string]any{"Message": appErr.Message})
				return
			}

			logger.Error("Signup failed", slog.String("username", req.Username), slog.String("error", err.Error()))
			h.renderer.RenderError(w, err)

			return
		}

		logger.Info("User created", slog.String("username", user.Username))
		h.renderer.Render(w, http.StatusCreated, "signup.html", map[string]any{"Message": "User created successfully"})
	}
}

func (h *UserHandler) LoginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderer.Render(w, http.StatusOK, "login.html", map[string]any{})
	}
}

func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := r.ParseForm(); err != nil {
			h.renderer.Render(w, http.StatusBadRequest, "login.html", map[string]any{"Message": "Invalid form submission"})
			return
		}

		req := &models.LoginRequest{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			h.renderer.Render(w, http.StatusBadRequest, "login.html", map[string]any{"Message": "Username and password are required"})
			return
		}

		result, err := h.users.Login(r.Context(), req)
		if err != nil {
			if appErr, ok := errors.IsAppError(err); ok && appErr.Code == errors.ErrCodeAuthentication {
				logger.Warn("Login rejected", slog.String("username", req.Username))
				h.renderer.Render(w, http.StatusBadRequest, "login.html", map[string]any{"Message": appErr.Message})
				return
			}

			logger.Error("Login failed", slog.String("username", req.Username), slog.String("error", err.Error()))
			h.renderer.RenderError(w, err)

			return
		}

		if !result.Success {
			logger.Warn("Login throttled", slog.String("username", req.Username), slog.Int("retry_after", result.RetryAfter))
			h.renderer.Render(w, http.StatusTooManyRequests, "login.html", map[string]any{"Message": result.Message})

			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    result.Token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		logger.Info("User logged in", slog.String("username", req.Username))
		h.renderer.Render(w, http.StatusOK, "index.html", map[string]any{})
	}
}
