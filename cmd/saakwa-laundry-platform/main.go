package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oparantho/saakwa-laundry-platform/internal/api/handlers"
	"github.com/oparantho/saakwa-laundry-platform/internal/api/middleware"
	"github.com/oparantho/saakwa-laundry-platform/internal/catalog"
	"github.com/oparantho/saakwa-laundry-platform/internal/config"
	"github.com/oparantho/saakwa-laundry-platform/internal/health"
	"github.com/oparantho/saakwa-laundry-platform/internal/metrics"
	repository "github.com/oparantho/saakwa-laundry-platform/internal/repositories"
	"github.com/oparantho/saakwa-laundry-platform/internal/scheduling"
	service "github.com/oparantho/saakwa-laundry-platform/internal/services"
	"github.com/oparantho/saakwa-laundry-platform/internal/telemetry"
	"github.com/oparantho/saakwa-laundry-platform/pkg/sendgrid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(context.Background(), cfg)
	if err != nil {
		slog.Error("❌ Error setting up tracing", "error", err.Error())
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	// Price list
	priceList, err := catalog.Load()
	if err != nil {
		slog.Error("❌ Error loading catalog", "error", err.Error())
		os.Exit(1)
	}

	// Booking policies
	schedulePolicy, err := cfg.Schedule.SchedulePolicy()
	if err != nil {
		slog.Error("❌ Invalid schedule configuration", "error", err.Error())
		os.Exit(1)
	}

	pricingPolicy := cfg.Pricing.PricingPolicy()
	engine := scheduling.NewEngine(schedulePolicy)

	receiptStore, err := repository.NewReceiptStore(cfg.StoragePath)
	if err != nil {
		slog.Error("❌ Error preparing receipt storage", "error", err.Error())
		os.Exit(1)
	}

	jwtKey := []byte(cfg.Security.JWTKey)
	sessionStore := repository.NewSessionStore(redisClient, cfg.Session.TTL)
	rateLimiter := repository.NewRateLimitRepo(redisClient, cfg)
	resetTokens := repository.NewPasswordResetRepo(redisClient, time.Hour)
	emailService := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	userService := service.NewUserService(repos.User, rateLimiter, resetTokens, emailService, jwtKey)
	userHandler := handlers.NewUserHandler(userService)
	catalogHandler := handlers.NewCatalogHandler(priceList)
	cartService := service.NewCartService(priceList, sessionStore, pricingPolicy)
	cartHandler := handlers.NewCartHandler(cartService)
	scheduleService := service.NewScheduleService(engine, sessionStore)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	notificationService := service.NewNotificationService(repos.Notification, emailService, cfg.SendGrid.OrderNotifyEmail)
	bookingService := service.NewBookingService(sessionStore, repos.Booking, receiptStore, notificationService, pricingPolicy)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{DB: repos.DB, RedisClient: redisClient})
	if err != nil {
		slog.Error("❌ Error setting up health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	routerMux.HandleFunc("POST /api/v1/users/password-reset", userHandler.RequestPasswordReset())
	routerMux.HandleFunc("GET /api/v1/users/profile", authMiddleware.Authenticate(userHandler.Profile()))
	routerMux.HandleFunc("GET /api/v1/catalog", catalogHandler.ListItems())
	routerMux.HandleFunc("GET /api/v1/catalog/categories", catalogHandler.Categories())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items/{itemID}", cartHandler.AddItem())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{itemID}", cartHandler.DecrementItem())
	routerMux.HandleFunc("GET /api/v1/schedule", scheduleHandler.GetSchedule())
	routerMux.HandleFunc("PUT /api/v1/schedule/pickup-date", scheduleHandler.SetPickupDate())
	routerMux.HandleFunc("PUT /api/v1/schedule/pickup-slot", scheduleHandler.SetPickupTimeSlot())
	routerMux.HandleFunc("PUT /api/v1/schedule/delivery-date", scheduleHandler.SetDeliveryDate())
	routerMux.HandleFunc("PUT /api/v1/schedule/delivery-slot", scheduleHandler.SetDeliveryTimeSlot())
	routerMux.HandleFunc("POST /api/v1/bookings", authMiddleware.Authenticate(bookingHandler.Submit()))
	routerMux.HandleFunc("POST /api/v1/bookings/receipt", authMiddleware.Authenticate(bookingHandler.UploadReceipt()))
	routerMux.HandleFunc("GET /api/v1/bookings", authMiddleware.Authenticate(bookingHandler.ListBookings()))
	routerMux.HandleFunc("GET /api/v1/bookings/{id}", authMiddleware.Authenticate(bookingHandler.GetBooking()))
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining. Metrics wraps the mux directly so it sees the
	// matched route pattern; Session and Logging clone the request and
	// would hide it.
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Session(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "http.server")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracing shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
