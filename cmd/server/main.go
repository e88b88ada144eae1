package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tokenomics-lab/internal/adapters/primary/http/handlers"
	"tokenomics-lab/internal/adapters/primary/http/middleware"
	"tokenomics-lab/internal/adapters/secondary/openai"
	"tokenomics-lab/internal/adapters/secondary/postgres"
	"tokenomics-lab/internal/config"
	"tokenomics-lab/internal/core/services"
	"tokenomics-lab/internal/environment"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Create database pool
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("parse db config: %v", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("create db pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("ping db: %v", err)
	}
	log.Info("database connection established")

	if err := postgres.InitSchema(context.Background(), pool); err != nil {
		log.Fatalf("init schema: %v", err)
	}

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Secondary Adapters (Output Ports - Repositories)
	scenarioRepo := postgres.NewScenarioRepository(pool)
	runRepo := postgres.NewRunRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)

	// Risk Advisor Client (Optional - based on config)
	advisor := openai.NewAdvisorClient(&cfg.Advisor)
	if advisor.IsAvailable() {
		log.Info("risk advisor client initialized")
	} else {
		log.Warn("risk advisor disabled (no API key configured); analysis endpoints will report unavailable")
	}

	// Environment Descriptor (Optional - the API reports unavailable if missing)
	descriptor, err := environment.Load(cfg.Environment.DescriptorPath)
	if err != nil {
		log.Warnf("environment descriptor not loaded (continuing without it): %v", err)
	} else {
		log.Infof("environment descriptor loaded: %s", descriptor.Name)
	}

	// Core Services (Application Layer)
	simulationSvc := services.NewSimulationService()
	scenarioSvc := services.NewScenarioService(scenarioRepo, runRepo)
	analysisSvc := services.NewAnalysisService(advisor, runRepo)
	reportSvc := services.NewReportService(reportRepo, runRepo, advisor)
	environmentSvc := services.NewEnvironmentService(descriptor)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(simulationSvc, scenarioSvc, analysisSvc, reportSvc, environmentSvc)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), middleware.CORS(cfg.CORS.AllowedOrigins), gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Tokenomics Lab API!"})
	})

	api := router.Group("/api/v1/tokenomics")
	h.RegisterRoutes(api)

	// Health check with DB ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "connected"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
