package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	loyaltyapp "github.com/erp/mobileapi/internal/application/loyalty"
	stockapp "github.com/erp/mobileapi/internal/application/stock"
	tradeapp "github.com/erp/mobileapi/internal/application/trade"
	"github.com/erp/mobileapi/internal/domain/shared"
	"github.com/erp/mobileapi/internal/infrastructure/config"
	"github.com/erp/mobileapi/internal/infrastructure/logger"
	"github.com/erp/mobileapi/internal/infrastructure/persistence"
	"github.com/erp/mobileapi/internal/interfaces/http/handler"
	"github.com/erp/mobileapi/internal/interfaces/http/middleware"
	"github.com/erp/mobileapi/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
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

	log.Info("Starting mobile read API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Connect to the ERP record store (read-only usage)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	itemRepo := persistence.NewGormItemRepository(db.DB)
	rateRepo := persistence.NewGormPriceListRateRepository(db.DB)
	warehouseRepo := persistence.NewGormWarehouseRepository(db.DB)
	binRepo := persistence.NewGormBinRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	loyaltyRepo := persistence.NewGormLoyaltyEntryRepository(db.DB)
	salesOrderRepo := persistence.NewGormSalesOrderRepository(db.DB)

	// Initialize application services. Visibility enforcement is delegated
	// to the upstream permission system; the gate stays wide open here.
	gate := shared.AllowAll
	priceResolver := stockapp.NewPriceResolver(rateRepo, cfg.Pricing.DefaultPriceList)
	stockService := stockapp.NewService(itemRepo, warehouseRepo, binRepo, priceResolver, gate)
	balanceService := loyaltyapp.NewBalanceService(customerRepo, loyaltyRepo, gate)
	ledgerService := loyaltyapp.NewLedgerService(loyaltyRepo, gate)
	orderService := tradeapp.NewOrderService(salesOrderRepo, gate)

	// Initialize HTTP handlers
	stockHandler := handler.NewStockHandler(stockService)
	customerHandler := handler.NewCustomerHandler(balanceService)
	loyaltyHandler := handler.NewLoyaltyHandler(ledgerService)
	salesOrderHandler := handler.NewSalesOrderHandler(orderService)
	systemHandler := handler.NewSystemHandler(db)

	// Set up Gin
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	systemHandler.RegisterHealthRoute(engine)

	router.NewRouter(engine).
		Register(stockHandler).
		Register(customerHandler).
		Register(loyaltyHandler).
		Register(salesOrderHandler).
		Setup()

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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal and shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
