package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	allocationapp "github.com/muhammadheryan/warehouse/application/allocation"
	binapp "github.com/muhammadheryan/warehouse/application/bin"
	ledgerapp "github.com/muhammadheryan/warehouse/application/ledger"
	reportapp "github.com/muhammadheryan/warehouse/application/report"
	structureapp "github.com/muhammadheryan/warehouse/application/structure"
	"github.com/muhammadheryan/warehouse/cmd/config"
	redisclient "github.com/muhammadheryan/warehouse/cmd/redis"
	_ "github.com/muhammadheryan/warehouse/docs"
	binRepo "github.com/muhammadheryan/warehouse/repository/bin"
	inventoryRepo "github.com/muhammadheryan/warehouse/repository/inventory"
	locationRepo "github.com/muhammadheryan/warehouse/repository/location"
	redisRepo "github.com/muhammadheryan/warehouse/repository/redis"
	txRepo "github.com/muhammadheryan/warehouse/repository/tx"
	"github.com/muhammadheryan/warehouse/thirdparty/rabbitmq"
	"github.com/muhammadheryan/warehouse/transport"
	"github.com/muhammadheryan/warehouse/utils/logger"
	"go.uber.org/zap"
)

// @title WAREHOUSE ALLOCATION API
// @version 1.0
// @description Warehouse location and bin allocation engine
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize movement event publisher
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	// Start movement consumer driving the reorder check
	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.Auth.InternalAPIURL, cfg.Auth.InternalAPIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()
	if err := consumer.Start(context.Background()); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	LocationRepo := locationRepo.NewLocationRepository(db)
	BinRepo := binRepo.NewBinRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	StructureApp := structureapp.NewStructureApp(cfg, TxRepo, LocationRepo)
	BinApp := binapp.NewBinApp(TxRepo, BinRepo)
	AllocationApp := allocationapp.NewAllocationApp(cfg, TxRepo, BinRepo, InventoryRepo, RedisRepo, publisher)
	LedgerApp := ledgerapp.NewLedgerApp(InventoryRepo)
	ReportApp := reportapp.NewReportApp(cfg, BinRepo, LocationRepo, InventoryRepo, RedisRepo)

	httpTransport := transport.NewTransport(StructureApp, BinApp, AllocationApp, LedgerApp, ReportApp, cfg.Auth.JWTSecret, cfg.Auth.InternalAPIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
