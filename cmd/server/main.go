package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	billingapp "github.com/aigym/backend/internal/application/billing"
	catalogapp "github.com/aigym/backend/internal/application/catalog"
	integrationapp "github.com/aigym/backend/internal/application/integration"
	membershipapp "github.com/aigym/backend/internal/application/membership"
	reportapp "github.com/aigym/backend/internal/application/report"
	scheduleapp "github.com/aigym/backend/internal/application/schedule"
	staffapp "github.com/aigym/backend/internal/application/staff"
	"github.com/aigym/backend/internal/domain/integration"
	"github.com/aigym/backend/internal/infrastructure/auth"
	"github.com/aigym/backend/internal/infrastructure/config"
	"github.com/aigym/backend/internal/infrastructure/logger"
	"github.com/aigym/backend/internal/infrastructure/persistence"
	"github.com/aigym/backend/internal/interfaces/http/handler"
	"github.com/aigym/backend/internal/interfaces/http/middleware"
	"github.com/aigym/backend/internal/interfaces/http/router"
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
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting gym backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Token blacklist backed by Redis. Falls back to the in-memory
	// implementation when Redis is unreachable so a cache outage does
	// not take the whole API down.
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		defer func() {
			if err := redisBlacklist.Close(); err != nil {
				log.Error("Error closing Redis blacklist", zap.Error(err))
			}
		}()
		blacklist = redisBlacklist
	}

	// Repositories
	memberRepo := persistence.NewGormMemberRepository(db.DB)
	contractRepo := persistence.NewGormContractRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	classRepo := persistence.NewGormClassRepository(db.DB)
	webhookLogRepo := persistence.NewGormWebhookLogRepository(db.DB)

	// Application services
	memberService := membershipapp.NewMemberService(memberRepo)
	contractService := membershipapp.NewContractService(contractRepo)
	employeeService := staffapp.NewEmployeeService(employeeRepo)
	productService := catalogapp.NewProductService(productRepo)
	paymentService := billingapp.NewPaymentService(paymentRepo)
	classService := scheduleapp.NewClassService(classRepo)
	statsService := reportapp.NewStatsService(memberRepo, contractRepo, paymentRepo, classRepo)
	webhookService := integrationapp.NewMondayWebhookService(
		memberRepo,
		contractRepo,
		webhookLogRepo,
		integration.BoardMap{
			MembersBoardID:   cfg.Monday.MembersBoardID,
			ContractsBoardID: cfg.Monday.ContractsBoardID,
		},
		log,
	)

	jwtService := auth.NewJWTService(cfg.JWT)
	authService := staffapp.NewAuthService(employeeRepo, jwtService, blacklist, log)

	// HTTP handlers
	memberHandler := handler.NewMemberHandler(memberService)
	contractHandler := handler.NewContractHandler(contractService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	productHandler := handler.NewProductHandler(productService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	scheduleHandler := handler.NewScheduleHandler(classService)
	statsHandler := handler.NewStatsHandler(statsService)
	webhookHandler := handler.NewWebhookHandler(webhookService)
	authHandler := handler.NewAuthHandler(authService)
	healthHandler := handler.NewHealthHandler(db)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSFromConfig(cfg.HTTP))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow))
	}

	// Health check outside API versioning for load balancers
	engine.GET("/health", healthHandler.Health)

	// Payments sit behind employee authentication; type B accounts are
	// denied access. Everything else is served to the front end directly.
	paymentsGuard := []gin.HandlerFunc{
		middleware.EmployeeAuth(middleware.EmployeeAuthConfig{
			JWTService:     jwtService,
			TokenBlacklist: blacklist,
			Logger:         log,
		}),
		middleware.RequirePaymentsAccess(),
	}

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(
		memberHandler,
		contractHandler,
		employeeHandler,
		productHandler,
		scheduleHandler,
		statsHandler,
		webhookHandler,
		authHandler,
		healthHandler,
	)
	r.RegisterGuarded(paymentsGuard, paymentHandler)
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
