package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clockwisecapital/kronos/config"
	"github.com/clockwisecapital/kronos/internal/cache"
	"github.com/clockwisecapital/kronos/internal/database"
	"github.com/clockwisecapital/kronos/internal/handlers"
	"github.com/clockwisecapital/kronos/internal/llm"
	"github.com/clockwisecapital/kronos/internal/marketdata"
	"github.com/clockwisecapital/kronos/internal/middleware"
	"github.com/clockwisecapital/kronos/internal/repository"
	"github.com/clockwisecapital/kronos/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context for initialization
	ctx := context.Background()

	// Initialize database connection
	db, err := database.New(ctx, cfg.PGURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize market data client
	mdClient := marketdata.NewClient(cfg.AVKey)

	// Initialize the generative classifier; nil disables those tiers and
	// every consumer degrades to its deterministic fallback.
	var llmClient llm.Client
	if cfg.AnthropicKey != "" {
		client, err := llm.NewAnthropicClient(cfg.AnthropicKey, "")
		if err != nil {
			log.Fatalf("Failed to create LLM client: %v", err)
		}
		llmClient = client
	} else {
		log.Warn("ANTHROPIC_KEY not set; generative classification tiers disabled")
	}

	// Initialize caches
	memCache := cache.NewMemoryCache(30 * time.Minute)

	// Initialize repositories
	returnRepo := repository.NewReturnCacheRepository(db.Pool)
	classificationRepo := repository.NewClassificationCacheRepository(db.Pool)

	// Initialize services
	scenarioSvc := services.NewScenarioService(llmClient)
	analogSvc := services.NewAnalogService(llmClient)
	returnsSvc := services.NewReturnsService(returnRepo, mdClient, memCache, cfg.CacheVersion)
	classifierSvc := services.NewTickerClassifierService(classificationRepo, llmClient)
	scoringSvc := services.NewScoringService()
	kronosSvc := services.NewKronosService(scenarioSvc, analogSvc, returnsSvc, classifierSvc, scoringSvc)

	// Initialize handlers
	kronosHandler := handlers.NewKronosHandler(kronosSvc, classifierSvc)

	// Setup Gin router
	router := gin.Default()

	// Apply global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.RequireAPIKey(cfg.APIKey))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Kronos routes
	router.POST("/kronos/score", kronosHandler.Score)
	router.POST("/kronos/classify-tickers", kronosHandler.ClassifyTickers)
	router.GET("/kronos/scenarios", kronosHandler.Scenarios)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Starting server on port %s (cache version %d)", cfg.Port, cfg.CacheVersion)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	fmt.Println("Server exited")
}
