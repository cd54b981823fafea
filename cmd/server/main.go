package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/pickleworks/backend/internal/application/catalog"
	engagementapp "github.com/pickleworks/backend/internal/application/engagement"
	identityapp "github.com/pickleworks/backend/internal/application/identity"
	shoppingapp "github.com/pickleworks/backend/internal/application/shopping"
	"github.com/pickleworks/backend/internal/domain/shopping"
	"github.com/pickleworks/backend/internal/infrastructure/auth"
	"github.com/pickleworks/backend/internal/infrastructure/cache"
	"github.com/pickleworks/backend/internal/infrastructure/config"
	"github.com/pickleworks/backend/internal/infrastructure/event"
	"github.com/pickleworks/backend/internal/infrastructure/logger"
	"github.com/pickleworks/backend/internal/infrastructure/notification"
	"github.com/pickleworks/backend/internal/infrastructure/persistence"
	"github.com/pickleworks/backend/internal/infrastructure/storage"
	"github.com/pickleworks/backend/internal/infrastructure/telemetry"
	"github.com/pickleworks/backend/internal/interfaces/http/handler"
	"github.com/pickleworks/backend/internal/interfaces/http/middleware"
	"github.com/pickleworks/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Pickleworks Shop Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx := context.Background()

	// Account database with a zap-backed GORM logger
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate database schema", zap.Error(err))
	}
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	// Session store: Redis in real deployments, in-memory fallback for
	// local development where no Redis is running
	var sessionStore shopping.SessionStore
	redisStore, err := cache.NewRedisSessionStore(cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, cfg.Session.TTL)
	if err != nil {
		if cfg.App.Env == "production" {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		log.Warn("Redis unavailable, using in-memory session store", zap.Error(err))
		sessionStore = cache.NewInMemorySessionStore()
	} else {
		sessionStore = redisStore
		log.Info("Redis session store connected",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port))
	}

	// DynamoDB stores for orders, reviews and contact messages
	dynamoClient, err := storage.NewDynamoClient(ctx, &cfg.AWS)
	if err != nil {
		log.Fatal("Failed to create DynamoDB client", zap.Error(err))
	}
	orderStore := storage.NewDynamoOrderStore(dynamoClient, cfg.Shop.OrdersTable)
	reviewStore := storage.NewDynamoReviewStore(dynamoClient, cfg.Shop.ReviewsTable)
	contactStore := storage.NewDynamoContactStore(dynamoClient, cfg.Shop.ContactsTable)

	// Order confirmation email and SMS notification senders
	var mailer shoppingapp.Mailer = notification.NewNopMailer(log)
	if cfg.Mail.Enabled {
		sesMailer, err := notification.NewSESMailer(ctx, cfg.AWS.Region, cfg.Mail.Sender)
		if err != nil {
			log.Fatal("Failed to create SES mailer", zap.Error(err))
		}
		mailer = sesMailer
	}

	var notifier shoppingapp.Notifier = notification.NewNopNotifier(log)
	if cfg.SMS.Enabled {
		snsNotifier, err := notification.NewSNSNotifier(ctx, cfg.AWS.Region, cfg.SMS.TopicARN)
		if err != nil {
			log.Fatal("Failed to create SNS notifier", zap.Error(err))
		}
		notifier = snsNotifier
	}

	// Event bus: order placement fans out to persistence and
	// notifications through the OrderPlacedHandler
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(shoppingapp.NewOrderPlacedHandler(orderStore, mailer, notifier, log))
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := eventBus.Stop(stopCtx); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Telemetry (no-op when disabled)
	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Application services
	shippingFee := cfg.Shop.ShippingFeeAmount()
	accountService := identityapp.NewAccountService(persistence.NewGormAccountRepository(db.DB), eventBus, log)
	productService := catalogapp.NewProductService(persistence.NewDefaultProductRepository())
	cartService := shoppingapp.NewCartService(sessionStore, productService, shippingFee, log)
	checkoutService := shoppingapp.NewCheckoutService(sessionStore, productService, eventBus, shippingFee, log)
	engagementService := engagementapp.NewEngagementService(reviewStore, contactStore, log)

	tokenService := auth.NewSessionTokenService(cfg.Session, cfg.App.Name)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order matters: request id and recovery first, the
	// session last so everything before it applies to every request
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow))
	}

	if cfg.Telemetry.Enabled {
		engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
		}))
	}

	engine.Use(middleware.Session(middleware.SessionMiddlewareConfig{
		Tokens: tokenService,
		Cookie: cfg.Session,
		Logger: log,
	}))

	engine.GET("/health", healthHandler(db, log))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	authHandler := handler.NewAuthHandler(accountService, sessionStore)
	catalogHandler := handler.NewCatalogHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	engagementHandler := handler.NewEngagementHandler(engagementService)
	systemHandler := handler.NewSystemHandler()

	requireIdentity := middleware.RequireIdentity(sessionStore)

	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.Me)

	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.GET("/products", catalogHandler.List)
	catalogRoutes.GET("/products/:id", catalogHandler.GetByID)

	cartRoutes := router.NewDomainGroup("cart", "/cart")
	cartRoutes.Use(requireIdentity)
	cartRoutes.GET("", cartHandler.Get)
	cartRoutes.POST("/items", cartHandler.AddItem)
	cartRoutes.PATCH("/items/:id", cartHandler.ChangeQuantity)
	cartRoutes.DELETE("/items/:id", cartHandler.RemoveItem)

	checkoutRoutes := router.NewDomainGroup("checkout", "/checkout")
	checkoutRoutes.Use(requireIdentity)
	checkoutRoutes.GET("", checkoutHandler.Review)

	orderRoutes := router.NewDomainGroup("orders", "/orders")
	orderRoutes.Use(requireIdentity)
	orderRoutes.POST("", checkoutHandler.PlaceOrder)

	reviewRoutes := router.NewDomainGroup("reviews", "/reviews")
	reviewRoutes.GET("", engagementHandler.ListReviews)
	reviewRoutes.POST("", engagementHandler.SubmitReview)

	contactRoutes := router.NewDomainGroup("contacts", "/contacts")
	contactRoutes.GET("", engagementHandler.ListContacts)
	contactRoutes.POST("", engagementHandler.SubmitContact)

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(authRoutes).
		Register(catalogRoutes).
		Register(cartRoutes).
		Register(checkoutRoutes).
		Register(orderRoutes).
		Register(reviewRoutes).
		Register(contactRoutes).
		Register(systemRoutes)

	r.Setup()

	// Simple ping at root API level for basic liveness checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports liveness plus account database reachability
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
