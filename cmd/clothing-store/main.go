package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/styleloom/clothing-store/internal/api/handlers"
	"github.com/styleloom/clothing-store/internal/api/middleware"
	"github.com/styleloom/clothing-store/internal/config"
	"github.com/styleloom/clothing-store/internal/health"
	"github.com/styleloom/clothing-store/internal/metrics"
	repository "github.com/styleloom/clothing-store/internal/repositories"
	service "github.com/styleloom/clothing-store/internal/services"
	"github.com/styleloom/clothing-store/internal/web"
	"github.com/styleloom/clothing-store/pkg/sendgrid"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Database setup; a store connection failure aborts startup.
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("Database connection closed")
		}
	}()

	// Redis setup (login rate limiting)
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateLimiter := repository.NewRateLimitRepo(redisClient, cfg)

	renderer, err := web.NewRenderer()
	if err != nil {
		slog.Error("Error loading templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sessionKey := []byte(cfg.Security.SessionKey)

	userService := service.NewUserService(repos.User, rateLimiter, sessionKey)
	catalogService := service.NewCatalogService(repos.Product)
	cartService := service.NewCartService(repos.Product)
	checkoutService := service.NewCheckoutService(cartService, repos.Order)

	if cfg.SendGrid.APIKey != "" && cfg.SendGrid.OwnerEmail != "" {
		emailService := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
		checkoutService = checkoutService.WithOrderAlerts(emailService, cfg.SendGrid.OwnerEmail)
		slog.Info("Order alert emails enabled", slog.String("owner", cfg.SendGrid.OwnerEmail))
	}

	userHandler := handlers.NewUserHandler(userService, renderer)
	productHandler := handlers.NewProductHandler(catalogService, renderer, cfg.Uploads.Dir)
	cartHandler := handlers.NewCartHandler(cartService, renderer)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, cartService, renderer)
	sessionMiddleware := middleware.NewSessionMiddleware(sessionKey)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Error creating health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("Storage initialized", slog.String("env", cfg.Env), slog.String("database", cfg.Mongo.Database))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /signup", userHandler.SignupPage())
	routerMux.HandleFunc("POST /signup", userHandler.Signup())
	routerMux.HandleFunc("GET /{$}", userHandler.LoginPage())
	routerMux.HandleFunc("POST /login", userHandler.Login())
	routerMux.HandleFunc("GET /home", productHandler.Home())
	routerMux.HandleFunc("POST /upload-product", productHandler.Upload())
	routerMux.HandleFunc("GET /products", productHandler.Products())
	routerMux.HandleFunc("POST /add-to-cart", cartHandler.AddToCart())
	routerMux.HandleFunc("GET /cart", cartHandler.ViewCart())
	routerMux.HandleFunc("POST /remove-from-cart", cartHandler.RemoveFromCart())
	routerMux.HandleFunc("GET /checkout", checkoutHandler.CheckoutPage())
	routerMux.HandleFunc("POST /process-payment", checkoutHandler.ProcessPayment())
	routerMux.HandleFunc("GET /admin", checkoutHandler.Admin())
	routerMux.Handle("GET /images/", http.StripPrefix("/images/", http.FileServer(http.Dir(cfg.Uploads.Dir))))
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /healthz", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = sessionMiddleware.Attach(handler)
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed")
	}
}
