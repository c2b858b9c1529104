package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"usdc-credits.backend/internal/config"
	"usdc-credits.backend/internal/infrastructure/blockchain"
	"usdc-credits.backend/internal/infrastructure/custodial"
	"usdc-credits.backend/internal/infrastructure/repositories"
	"usdc-credits.backend/internal/interfaces/http/handlers"
	"usdc-credits.backend/internal/interfaces/http/middleware"
	"usdc-credits.backend/internal/usecases"
	"usdc-credits.backend/pkg/jwt"
	"usdc-credits.backend/pkg/logger"
	"usdc-credits.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
			// Map driver unique-violation errors to gorm.ErrDuplicatedKey so
			// the repositories can surface ErrAlreadyExists.
			TranslateError: true,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	txRepo := repositories.NewCreditTransactionRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize provider and blockchain clients
	providerClient := custodial.NewClient(cfg.Provider)
	clientFactory := blockchain.NewClientFactory()

	if cfg.Payment.DestinationAddress == "" {
		log.Println("⚠️ PAYMENT_DESTINATION_ADDRESS is not set; credit purchases will be rejected")
	}

	// Initialize payment methods
	custodialMethod := usecases.NewCustodialPaymentMethod(providerClient, cfg.Provider, cfg.Payment)
	externalMethod := usecases.NewExternalPaymentMethod(clientFactory, cfg.Blockchain, cfg.Payment)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	walletUsecase := usecases.NewWalletUsecase(walletRepo, providerClient, clientFactory, cfg.Provider, cfg.Blockchain, cfg.Payment)
	purchaseUsecase := usecases.NewPurchaseUsecase(txRepo, walletRepo, uow, custodialMethod, externalMethod, cfg.Payment)
	webhookUsecase := usecases.NewWebhookUsecase(txRepo, userRepo, uow)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	walletHandler := handlers.NewWalletHandler(walletUsecase)
	creditsHandler := handlers.NewCreditsHandler(purchaseUsecase)
	webhookHandler := handlers.NewWebhookHandler(webhookUsecase)
	adminHandler := handlers.NewAdminHandler(txRepo)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:    authHandler,
		walletHandler:  walletHandler,
		creditsHandler: creditsHandler,
		webhookHandler: webhookHandler,
		adminHandler:   adminHandler,
		authMiddleware: authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Start server
	log.Printf("🚀 USDC Credits Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
