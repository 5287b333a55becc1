// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/maraval/boutique-be/internal/adapters/db"
	redis_a "github.com/maraval/boutique-be/internal/adapters/redis_adapter"
	"github.com/maraval/boutique-be/internal/adapters/storage"
	"github.com/maraval/boutique-be/internal/core/ports"
	"github.com/maraval/boutique-be/internal/core/services"
	"github.com/maraval/boutique-be/internal/handlers"
	"github.com/maraval/boutique-be/internal/handlers/middleware"
	"github.com/maraval/boutique-be/internal/pkg/config"
	"github.com/maraval/boutique-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	appLogger := logger.SetupLogger("debug", "json")
	slogger := appLogger.Logger

	slogger.Info("starting boutique point of sale API",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	// Load configuration
	slogger.Info("loading configuration")
	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	appLogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger = appLogger.Logger
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	// Run database migrations outside production
	if cfg.App.Environment != "production" {
		if err := runMigrations(ctx, cfg, slogger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
		}
	}

	server := setupHTTPServer(cfg, deps, appLogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
			slog.Bool("tls", cfg.Server.TLSEnabled),
		)

		if cfg.Server.TLSEnabled {
			serverErrors <- server.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			serverErrors <- server.ListenAndServe()
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		if deps.asynqClient != nil {
			if err := deps.asynqClient.Close(); err != nil {
				slogger.Error("failed to close Asynq client", slog.String("error", err.Error()))
			}
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       *db.Database
	redisClient    *redis.Client
	redisCache     ports.CacheRepository
	cartStore      ports.CartStore
	objectStore    ports.ObjectStore
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector

	saleHandler     *handlers.SaleHandler
	stockHandler    *handlers.StockHandler
	workflowHandler *handlers.WorkflowHandler
	catalogHandler  *handlers.CatalogHandler
	labelHandler    *handlers.LabelHandler
	reportHandler   *handlers.ReportHandler
	healthHandler   *handlers.HealthHandler
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, slogger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	slogger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, slogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	slogger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:            fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		ConnMaxLifetime: cfg.Redis.MaxConnAge,
		PoolTimeout:     cfg.Redis.PoolTimeout,
		ConnMaxIdleTime: cfg.Redis.IdleTimeout,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient

	deps.redisCache = redis_a.NewCache(redisClient, cfg.Redis.TTL, slogger)
	deps.cartStore = redis_a.NewCartStore(redisClient, cfg.Retail.CartTTL, slogger)

	objectStore, err := storage.NewS3Storage(ctx, &storage.S3Config{
		Region:          cfg.AWS.Region,
		Bucket:          cfg.AWS.S3Bucket,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.AWS.S3Endpoint,
		UsePathStyle:    cfg.AWS.UsePathStyle,
	}, slogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}
	deps.objectStore = objectStore

	slogger.Info("initializing Asynq client")

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}

	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.asynqInspector = asynq.NewInspector(asynqRedisOpt)

	// Repositories
	catalogRepo := db.NewCatalogRepository(database, slogger)
	stockRepo := db.NewStockRepository(database, slogger)
	movementRepo := db.NewMovementRepository(database, slogger)
	saleModeRepo := db.NewSaleModeRepository(database, slogger)
	reservationRepo := db.NewReservationRepository(database, slogger)
	transferRepo := db.NewTransferRepository(database, slogger)
	labelRepo := db.NewLabelStateRepository(database, slogger)

	// Services
	catalogService := services.NewCatalogService(catalogRepo, slogger)
	saleService := services.NewSaleService(deps.cartStore, catalogRepo, stockRepo, movementRepo, saleModeRepo, database, slogger)
	stockService := services.NewStockService(stockRepo, movementRepo, transferRepo, catalogRepo, database, slogger)
	workflowService := services.NewWorkflowService(reservationRepo, transferRepo, stockRepo, movementRepo, database, slogger)
	reportService := services.NewReportService(movementRepo, catalogRepo, stockRepo, reservationRepo, transferRepo, deps.redisCache, slogger)
	labelService := services.NewLabelService(labelRepo, catalogRepo, database, deps.asynqClient, slogger)

	// Handlers
	deps.saleHandler = handlers.NewSaleHandler(saleService, slogger)
	deps.stockHandler = handlers.NewStockHandler(stockService, slogger)
	deps.workflowHandler = handlers.NewWorkflowHandler(workflowService, slogger)
	deps.catalogHandler = handlers.NewCatalogHandler(catalogService, slogger)
	deps.labelHandler = handlers.NewLabelHandler(labelService, slogger)
	deps.reportHandler = handlers.NewReportHandler(reportService, slogger)
	deps.healthHandler = handlers.NewHealthHandler(
		database,
		redisClient,
		deps.asynqInspector,
		cfg,
		slogger,
	)

	slogger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, appLogger *logger.Logger) *http.Server {
	mux := http.NewServeMux()

	// Apply middleware in reverse order (innermost first)
	var handler http.Handler = mux

	if cfg.App.Environment != "test" {
		handler = middleware.RequestID(handler)
		handler = middleware.Logger(appLogger)(handler)
		handler = middleware.Recovery(appLogger.Logger)(handler)
	}

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}

	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

	registerRoutes(mux, deps, cfg)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(appLogger.Handler(), slog.LevelError),
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies, cfg *config.Config) {
	apiV1 := "/api/v1"

	// Health and readiness endpoints
	if cfg.Server.EnableHealthCheck {
		mux.HandleFunc("GET /health", deps.healthHandler.Health)
		mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
		mux.HandleFunc("GET "+apiV1+"/health", deps.healthHandler.Health)
	}

	// Register cart and checkout
	mux.HandleFunc("GET "+apiV1+"/cart", deps.saleHandler.GetCart)
	mux.HandleFunc("DELETE "+apiV1+"/cart", deps.saleHandler.ClearCart)
	mux.HandleFunc("POST "+apiV1+"/cart/lines", deps.saleHandler.AddToCart)
	mux.HandleFunc("DELETE "+apiV1+"/cart/lines/{productId}/{sizeId}", deps.saleHandler.RemoveFromCart)
	mux.HandleFunc("POST "+apiV1+"/cart/line-discount", deps.saleHandler.SetLineDiscount)
	mux.HandleFunc("POST "+apiV1+"/cart/basket-discount", deps.saleHandler.SetBasketDiscount)
	mux.HandleFunc("POST "+apiV1+"/cart/voucher", deps.saleHandler.SetVoucher)
	mux.HandleFunc("POST "+apiV1+"/checkout", deps.saleHandler.Checkout)

	// Discount gate
	mux.HandleFunc("GET "+apiV1+"/sale-mode", deps.saleHandler.GetSaleMode)
	mux.HandleFunc("PUT "+apiV1+"/sale-mode", deps.saleHandler.UpdateSaleMode)

	// Stock mutations and lookups
	mux.HandleFunc("POST "+apiV1+"/stock/add", deps.stockHandler.AddStock)
	mux.HandleFunc("POST "+apiV1+"/stock/return", deps.stockHandler.ReturnStock)
	mux.HandleFunc("POST "+apiV1+"/stock/reassort", deps.stockHandler.Reassort)
	mux.HandleFunc("POST "+apiV1+"/stock/decrement", deps.stockHandler.Decrement)
	mux.HandleFunc("GET "+apiV1+"/stock/product/{id}", deps.stockHandler.CheckStock)
	mux.HandleFunc("GET "+apiV1+"/stock/location/{id}", deps.stockHandler.LocationStock)

	// Reservations
	mux.HandleFunc("POST "+apiV1+"/reservations", deps.workflowHandler.CreateReservation)
	mux.HandleFunc("GET "+apiV1+"/reservations", deps.workflowHandler.ListReservations)
	mux.HandleFunc("POST "+apiV1+"/reservations/{id}/confirm", deps.workflowHandler.ConfirmReservation)
	mux.HandleFunc("POST "+apiV1+"/reservations/{id}/complete", deps.workflowHandler.CompleteReservation)
	mux.HandleFunc("POST "+apiV1+"/reservations/{id}/cancel", deps.workflowHandler.CancelReservation)

	// Transfers
	mux.HandleFunc("POST "+apiV1+"/transfers", deps.workflowHandler.CreateTransfer)
	mux.HandleFunc("GET "+apiV1+"/transfers", deps.workflowHandler.ListTransfers)
	mux.HandleFunc("POST "+apiV1+"/transfers/{id}/prepare", deps.workflowHandler.PrepareTransfer)
	mux.HandleFunc("POST "+apiV1+"/transfers/{id}/cancel", deps.workflowHandler.CancelTransfer)

	// Catalog
	mux.HandleFunc("POST "+apiV1+"/products", deps.catalogHandler.CreateProduct)
	mux.HandleFunc("GET "+apiV1+"/products", deps.catalogHandler.ListProducts)
	mux.HandleFunc("GET "+apiV1+"/products/{id}", deps.catalogHandler.GetProduct)
	mux.HandleFunc("PUT "+apiV1+"/products/{id}", deps.catalogHandler.UpdateProduct)
	mux.HandleFunc("POST "+apiV1+"/products/{id}/archive", deps.catalogHandler.ArchiveProduct)

	mux.HandleFunc("POST "+apiV1+"/suppliers", deps.catalogHandler.CreateSupplier)
	mux.HandleFunc("GET "+apiV1+"/suppliers", deps.catalogHandler.ListSuppliers)
	mux.HandleFunc("POST "+apiV1+"/seasons", deps.catalogHandler.CreateSeason)
	mux.HandleFunc("GET "+apiV1+"/seasons", deps.catalogHandler.ListSeasons)
	mux.HandleFunc("POST "+apiV1+"/categories", deps.catalogHandler.CreateCategory)
	mux.HandleFunc("GET "+apiV1+"/categories", deps.catalogHandler.ListCategories)
	mux.HandleFunc("POST "+apiV1+"/colors", deps.catalogHandler.CreateColor)
	mux.HandleFunc("GET "+apiV1+"/colors", deps.catalogHandler.ListColors)
	mux.HandleFunc("POST "+apiV1+"/sizes", deps.catalogHandler.CreateSize)
	mux.HandleFunc("GET "+apiV1+"/sizes", deps.catalogHandler.ListSizes)
	mux.HandleFunc("POST "+apiV1+"/locations", deps.catalogHandler.CreateLocation)
	mux.HandleFunc("GET "+apiV1+"/locations", deps.catalogHandler.ListLocations)

	// Labels
	mux.HandleFunc("POST "+apiV1+"/labels/print", deps.labelHandler.EnqueuePrint)
	mux.HandleFunc("GET "+apiV1+"/labels/jobs/{id}", deps.labelHandler.GetJob)
	mux.HandleFunc("GET "+apiV1+"/labels/state", deps.labelHandler.State)

	// Reports
	mux.HandleFunc("GET "+apiV1+"/dashboard", deps.reportHandler.Dashboard)
	mux.HandleFunc("GET "+apiV1+"/reports/sales", deps.reportHandler.SalesReport)
	mux.HandleFunc("GET "+apiV1+"/reports/sales/xlsx", deps.reportHandler.SalesReportXLSX)

	// pprof endpoints (development only)
	if cfg.Server.EnablePprof && cfg.IsDevelopment() {
		mux.HandleFunc("GET /debug/pprof/", http.HandlerFunc(http.DefaultServeMux.ServeHTTP))
	}
}

func runMigrations(ctx context.Context, cfg *config.Config, slogger *slog.Logger) error {
	slogger.Info("running database migrations")

	migrationConfig := &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}

	return db.RunMigrationsWithRetry(ctx, migrationConfig, slogger, 3)
}
