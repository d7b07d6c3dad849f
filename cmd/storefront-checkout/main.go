package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/storefront-checkout/docs"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/api/handlers"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/cache"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/checkout"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/config"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/health"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/metrics"
	repository "github.com/aaravmahajanofficial/storefront-checkout/internal/repositories"
	service "github.com/aaravmahajanofficial/storefront-checkout/internal/services"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/storefront"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/tracing"
	"github.com/aaravmahajanofficial/storefront-checkout/pkg/sendgrid"
	"github.com/aaravmahajanofficial/storefront-checkout/pkg/stripe"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title						Storefront Checkout API
//	@version					1.0
//	@description				Checkout pricing and step orchestration for the storefront.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the buyer's JWT.

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	// Tracing setup
	shutdownTracing, err := tracing.Setup(ctx, &cfg.Otel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := shutdownTracing(shutdownCtx); err != nil {
			slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sessionCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	defer func() {
		if err := sessionCache.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	// Database setup, only needed for per-currency overrides
	var pricingRepo repository.PricingRepository

	if cfg.Database.Enabled {
		repos, repo, err := repository.New(ctx, cfg)
		if err != nil {
			slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
			os.Exit(1)
		}

		pricingRepo = repo

		defer func() {
			if err := repos.Close(); err != nil {
				slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
			} else {
				slog.Info("✅ Database connection closed")
			}
		}()
	}

	calc, err := service.LoadCalculator(ctx, &cfg.Checkout, pricingRepo)
	if err != nil {
		slog.Error("❌ Error loading checkout configs", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("Checkout configs loaded", slog.Any("currencies", calc.Currencies()))

	backend, err := storefront.NewClient(&cfg.Backend, nil)
	if err != nil {
		slog.Error("❌ Error configuring the storefront backend", slog.String("error", err.Error()))
		os.Exit(1)
	}

	engine := checkout.NewEngine(calc, checkout.WithDefaultCurrency(cfg.Checkout.DefaultCurrency))
	stripeClient := stripe.NewStripeClient(cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret)
	sendGridClient := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	paymentService := service.NewPaymentService(stripeClient)
	notificationService := service.NewNotificationService(sendGridClient)
	checkoutService := service.NewCheckoutService(engine, backend, sessionCache, paymentService, notificationService, &cfg.Checkout)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	paymentHandler := handlers.NewPaymentHandler(checkoutService)
	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))
	rateLimiter := middleware.NewRateLimitMiddleware(repository.NewRateLimitRepo(redisClient, &cfg.RateConfig))

	healthChecker, err := health.NewHealthHandler(cfg, &health.Endpoints{
		Cache:   sessionCache,
		Backend: backend,
		Stripe:  stripeClient,
	})
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/checkout/quote", checkoutHandler.Quote())
	routerMux.HandleFunc("POST /api/v1/checkout/sessions", authMiddleware.Authenticate(rateLimiter.Limit(checkoutHandler.StartSession())))
	routerMux.HandleFunc("GET /api/v1/checkout/sessions/{id}", authMiddleware.Authenticate(checkoutHandler.GetSession()))
	routerMux.HandleFunc("DELETE /api/v1/checkout/sessions/{id}", authMiddleware.Authenticate(checkoutHandler.CancelSession()))
	routerMux.HandleFunc("POST /api/v1/checkout/sessions/{id}/advance", authMiddleware.Authenticate(rateLimiter.Limit(checkoutHandler.Advance())))
	routerMux.HandleFunc("PUT /api/v1/checkout/sessions/{id}/step", authMiddleware.Authenticate(checkoutHandler.GoTo()))
	routerMux.HandleFunc("POST /api/v1/payments/webhook", paymentHandler.HandleStripeWebhook())
	routerMux.Handle("GET /health", healthChecker.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Middleware chaining, outermost last. Metrics must see the request the
	// mux routes so the matched pattern is visible.
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, cfg.Otel.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr), slog.String("env", cfg.Env))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// In-flight submissions get the lock TTL to finish before connections are cut
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Checkout.SubmitLockTTL)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}
