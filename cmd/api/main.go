package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nkchunduri/stock-tracker/internal/alerts"
	"github.com/nkchunduri/stock-tracker/internal/config"
	"github.com/nkchunduri/stock-tracker/internal/database"
	"github.com/nkchunduri/stock-tracker/internal/logger"
	"github.com/nkchunduri/stock-tracker/internal/quote"
	"github.com/nkchunduri/stock-tracker/internal/router"
	"github.com/nkchunduri/stock-tracker/internal/services"
	"github.com/nkchunduri/stock-tracker/internal/validator"

	_ "github.com/nkchunduri/stock-tracker/internal/docs" // Import swagger docs
)

// @title           Stock Tracker API
// @version         1.0
// @description     Tracks NSE/BSE holdings at live prices and raises price alerts during market hours.

// @host      localhost:3001
// @BasePath  /api

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	quoteClient := quote.NewClient(quote.Options{
		ChartURL:      appConfig.QuoteChartURL,
		SearchURL:     appConfig.QuoteSearchURL,
		Timeout:       appConfig.QuoteTimeout,
		MaxConcurrent: appConfig.QuoteMaxConcurrent,
		Logger:        logger.Named("quote"),
	})

	// Initialize services
	db := dbManager.DB()
	holdingService := services.NewHoldingService(db)
	alertService := services.NewAlertService(db)
	priceHistoryService := services.NewPriceHistoryService(db)

	engine := router.New(router.Services{
		Holdings:     holdingService,
		Alerts:       alertService,
		PriceHistory: priceHistoryService,
		MarketData:   services.NewMarketDataService(quoteClient),
		Portfolio:    services.NewPortfolioService(holdingService, quoteClient, appConfig.SummaryCurrency),
	})

	// Alert scheduler
	hours, err := alerts.NewMarketHours(appConfig.MarketTimezone, appConfig.MarketOpen, appConfig.MarketClose, appConfig.MarketWeekdaysOnly)
	if err != nil {
		return fmt.Errorf("failed to configure market hours: %w", err)
	}
	alertLog := logger.Named("alerts")
	evalConfig := alerts.EvaluatorConfig{Exchange: appConfig.AlertExchange}
	if appConfig.RecordPriceHistory {
		evalConfig.Recorder = priceHistoryService
	}
	evaluator := alerts.NewEvaluator(alertService, quoteClient, alerts.NewLogNotifier(alertLog), evalConfig, alertLog)
	scheduler := alerts.NewScheduler(evaluator, hours, appConfig.AlertInterval, alertLog)

	schedulerDone := make(chan struct{})
	go func() {
		defer close(schedulerDone)
		scheduler.Run(ctx)
	}()

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Starting stock tracker server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		stop()
		<-schedulerDone
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warnf("server shutdown error: %v", err)
	}
	<-schedulerDone
	log.Info("Shutdown complete")
	return nil
}
