package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/config"
	"github.com/dright/marketplace/internal/logger"
	temporal "github.com/dright/marketplace/internal/providers/temporal"
	"github.com/dright/marketplace/internal/store"
	"github.com/dright/marketplace/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sweeper")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize clock adapter
	clock := adapter.NewClock()

	// Connect to Temporal; sweeps dispatch settlement and payout workflows
	temporalLogger := temporal.NewZapLoggerAdapter(logger.Default())
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporalLogger,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	// Initialize auction sweeper
	auctionSweeper := sweeper.NewAuctionSweeper(&sweeper.AuctionSweeperConfig{
		SweepInterval: cfg.Auctions.SweepInterval,
		BatchSize:     cfg.Auctions.BatchSize,
		TaskQueue:     cfg.Temporal.MarketTaskQueue,
	}, dataStore, clock, temporalClient)
	logger.InfoCtx(ctx, "Initialized auction sweeper",
		zap.Duration("sweep_interval", cfg.Auctions.SweepInterval),
		zap.Int("batch_size", cfg.Auctions.BatchSize),
	)

	// Initialize distribution scheduler
	distributionScheduler := sweeper.NewDistributionScheduler(&sweeper.DistributionSchedulerConfig{
		CheckInterval: cfg.Distributions.CheckInterval,
		Period:        cfg.Distributions.Period,
		BatchSize:     cfg.Distributions.BatchSize,
		TaskQueue:     cfg.Temporal.MarketTaskQueue,
	}, dataStore, clock, temporalClient)
	logger.InfoCtx(ctx, "Initialized distribution scheduler",
		zap.Duration("check_interval", cfg.Distributions.CheckInterval),
		zap.Duration("period", cfg.Distributions.Period),
	)

	// Start both sweepers
	errChan := make(chan error, 2)
	go func() {
		if err := auctionSweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()
	go func() {
		if err := distributionScheduler.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the sweepers
	cancel()

	// Give the sweepers time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := auctionSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}
	if err := distributionScheduler.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
