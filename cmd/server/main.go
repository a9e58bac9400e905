package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	_ "github.com/shopledger/backend/docs"
	catalogapp "github.com/shopledger/backend/internal/application/catalog"
	financeapp "github.com/shopledger/backend/internal/application/finance"
	inventoryapp "github.com/shopledger/backend/internal/application/inventory"
	notificationapp "github.com/shopledger/backend/internal/application/notification"
	partnerapp "github.com/shopledger/backend/internal/application/partner"
	printingapp "github.com/shopledger/backend/internal/application/printing"
	tradeapp "github.com/shopledger/backend/internal/application/trade"
	"github.com/shopledger/backend/internal/infrastructure/auth"
	"github.com/shopledger/backend/internal/infrastructure/cache"
	"github.com/shopledger/backend/internal/infrastructure/config"
	"github.com/shopledger/backend/internal/infrastructure/event"
	"github.com/shopledger/backend/internal/infrastructure/jobs"
	"github.com/shopledger/backend/internal/infrastructure/logger"
	"github.com/shopledger/backend/internal/infrastructure/persistence"
	"github.com/shopledger/backend/internal/infrastructure/printing"
	"github.com/shopledger/backend/internal/infrastructure/storage"
	"github.com/shopledger/backend/internal/infrastructure/telemetry"
	"github.com/shopledger/backend/internal/interfaces/http/handler"
	"github.com/shopledger/backend/internal/interfaces/http/middleware"
	"github.com/shopledger/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

const version = "1.0.0"

//	@title			ShopLedger API
//	@version		1.0
//	@description	Multi-tenant retail and wholesale back office: catalog, stock ledger, sales and purchase orders.

//	@contact.name	API Support
//	@contact.url	https://github.com/shopledger/backend

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	ctx := context.Background()

	// The OTLP log pipeline is created first so its core can be teed into zap
	logProvider, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry)
	if err != nil {
		panic("Failed to initialize log exporter: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}, logProvider.Core(logger.ParseLevel(cfg.Log.Level)))
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()
	defer func() {
		if err := logProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down log exporter", zap.Error(err))
		}
	}()

	log.Info("Starting ShopLedger backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Telemetry
	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()
	meterProvider, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer func() {
		if err := meterProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
	}()
	profiler, err := telemetry.NewProfiler(cfg.Profiling, cfg.App.Name, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	defer func() {
		if err := profiler.Stop(); err != nil {
			log.Error("Error stopping profiler", zap.Error(err))
		}
	}()
	if profiler.IsEnabled() {
		tracerProvider.EnableSpanProfiles()
	}
	meter := meterProvider.Meter("github.com/shopledger/backend")

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), 200*time.Millisecond)
	db, err := persistence.NewDatabase(&cfg.Database, persistence.WithLogger(gormLog))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled: cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		FullSQL: cfg.Telemetry.DBLogFullSQL,
		DBName:  cfg.Database.DBName,
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		if err := telemetry.RegisterDBPoolMetrics(meter, sqlDB); err != nil {
			log.Warn("Failed to register database pool metrics", zap.Error(err))
		}
	}
	ledgerMetrics, err := telemetry.NewLedgerMetrics(meter)
	if err != nil {
		log.Fatal("Failed to create ledger metrics", zap.Error(err))
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	quantityStore := persistence.NewGormQuantityStore(db.DB)
	stockLedger := persistence.NewGormStockLedger(db.DB)
	salesOrderRepo := persistence.NewGormSalesOrderRepository(db.DB)
	purchaseOrderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)

	// Application services
	productService := catalogapp.NewProductService(productRepo, categoryRepo, stockLedger)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	paymentService := financeapp.NewPaymentService(paymentRepo, customerService, supplierService)
	notificationService := notificationapp.NewService(notificationRepo)

	inventoryService := inventoryapp.NewService(quantityStore, stockLedger)
	inventoryService.SetMetrics(ledgerMetrics)
	salesOrderService := tradeapp.NewSalesOrderService(salesOrderRepo, quantityStore, stockLedger)
	salesOrderService.SetMetrics(ledgerMetrics)
	purchaseOrderService := tradeapp.NewPurchaseOrderService(purchaseOrderRepo, quantityStore, stockLedger)
	purchaseOrderService.SetMetrics(ledgerMetrics)

	// Event bus: workflows return events, handlers publish them here and
	// the notification subscriber persists the requested notifications
	eventBus := event.NewInMemoryEventBus(log)
	notificationHandler := notificationapp.NewRequestedHandler(notificationService)
	eventBus.Subscribe(notificationHandler)
	log.Info("Event handlers registered",
		zap.Strings("notification_events", notificationHandler.EventTypes()))
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Invoice rendering, with optional S3 archive through the job queue
	templates, err := printing.NewTemplateEngine(
		printing.WithLocale(cfg.Printing.Locale),
		printing.WithCurrency(cfg.Printing.CurrencyCode),
	)
	if err != nil {
		log.Fatal("Failed to load document templates", zap.Error(err))
	}
	pdfRenderer := printing.NewChromedpRenderer(&printing.ChromedpConfig{
		DefaultTimeout: cfg.Printing.RenderTimeout,
		ExecPath:       cfg.Printing.ChromePath,
		NoSandbox:      !cfg.IsProduction(),
		Logger:         log.Named("chromedp"),
	})
	defer func() {
		if err := pdfRenderer.Close(); err != nil {
			log.Error("Error closing PDF renderer", zap.Error(err))
		}
	}()

	invoiceOpts := []printingapp.InvoiceServiceOption{
		printingapp.WithShopName(cfg.Printing.ShopName),
		printingapp.WithLogger(log),
	}
	var archiveStore storage.ObjectStore
	if cfg.Storage.Enabled {
		s3Store, err := storage.NewS3ObjectStore(ctx, &cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		if err := s3Store.EnsureBucket(ctx); err != nil {
			log.Warn("Invoice bucket is not ready", zap.String("bucket", s3Store.Bucket()), zap.Error(err))
		}
		archiveStore = s3Store
	}

	var (
		jobClient *jobs.Client
		redisOpt  asynq.RedisClientOpt
	)
	if archiveStore != nil {
		var queue printingapp.ArchiveQueue
		if cfg.Jobs.Enabled {
			redisOpt = asynq.RedisClientOpt{
				Addr:     cfg.Redis.Addr(),
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			}
			jobClient = jobs.NewClient(redisOpt, cfg.Jobs.Queue)
			defer func() {
				if err := jobClient.Close(); err != nil {
					log.Error("Error closing job client", zap.Error(err))
				}
			}()
			queue = jobClient
		}
		invoiceOpts = append(invoiceOpts, printingapp.WithArchive(archiveStore, queue))
	}
	invoiceService := printingapp.NewInvoiceService(salesOrderRepo, quantityStore, customerService, templates, pdfRenderer, invoiceOpts...)

	if jobClient != nil {
		worker, err := jobs.NewWorker(jobs.WorkerConfig{
			Redis:       redisOpt,
			Concurrency: cfg.Jobs.Concurrency,
			Queue:       cfg.Jobs.Queue,
			Logger:      log,
			Archiver:    invoiceService,
		})
		if err != nil {
			log.Fatal("Failed to create background worker", zap.Error(err))
		}
		if err := worker.Start(); err != nil {
			log.Fatal("Failed to start background worker", zap.Error(err))
		}
		defer worker.Shutdown()
	}

	// HTTP handlers
	handlers := router.Handlers{
		SalesOrders:    handler.NewSalesOrderHandler(salesOrderService, eventBus),
		PurchaseOrders: handler.NewPurchaseOrderHandler(purchaseOrderService, eventBus),
		Print:          handler.NewPrintHandler(invoiceService),
		Products:       handler.NewProductHandler(productService),
		Categories:     handler.NewCategoryHandler(categoryService),
		Inventory:      handler.NewInventoryHandler(inventoryService),
		Notifications:  handler.NewNotificationHandler(notificationService),
		Customers:      handler.NewCustomerHandler(customerService),
		Suppliers:      handler.NewSupplierHandler(supplierService),
		Payments:       handler.NewPaymentHandler(paymentService, eventBus),
	}
	systemHandler := handler.NewSystemHandler(version, db)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order:
	// 1. RequestID  2. Recovery  3. Tracing  4. Logger  5. Metrics
	// 6. Security headers  7. CORS  8. BodyLimit  9. RateLimit
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	tracingCfg := middleware.DefaultTracingConfig()
	tracingCfg.ServiceName = cfg.Telemetry.ServiceName
	tracingCfg.Enabled = tracerProvider.IsEnabled()
	engine.Use(middleware.Tracing(tracingCfg), middleware.SpanEnricher())
	engine.Use(logger.GinMiddleware(log))
	httpMetrics, err := middleware.HTTPMetrics(meter)
	if err != nil {
		log.Fatal("Failed to create HTTP metrics", zap.Error(err))
	}
	engine.Use(httpMetrics)

	securityCfg := middleware.DefaultSecurityConfig()
	securityCfg.HSTSEnabled = cfg.IsProduction()
	securityCfg.IsDevelopment = cfg.App.Env == "development"
	engine.Use(middleware.SecureHeaders(securityCfg))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsCfg))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		defer rateLimiter.Close()
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	router.RegisterOps(engine, systemHandler, middleware.SwaggerConfig{
		Enabled:    cfg.Swagger.Enabled,
		AllowedIPs: cfg.Swagger.AllowedIPs,
	})

	var idempotency gin.HandlerFunc
	if cfg.Idempotency.Enabled {
		store := cache.NewIdempotencyStore(ctx, cfg.Redis, log)
		idempotency = middleware.Idempotency(store, cfg.Idempotency.TTL)
	}

	jwtService := auth.NewJWTService(cfg.JWT)
	profilingCfg := middleware.DefaultProfilingConfig()
	profilingCfg.Enabled = profiler.IsEnabled()
	r := router.NewRouter(engine,
		router.WithAPIVersion("v1"),
		router.WithMiddleware(
			middleware.JWTAuth(jwtService, log),
			middleware.Profiling(profilingCfg),
		),
	)
	r.Register(router.Groups(handlers, idempotency)...)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}
