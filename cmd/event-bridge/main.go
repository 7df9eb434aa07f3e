package main

import (
	"context"
	"errors"
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
	"github.com/dright/marketplace/internal/bridge"
	"github.com/dright/marketplace/internal/config"
	"github.com/dright/marketplace/internal/logger"
	temporal "github.com/dright/marketplace/internal/providers/temporal"
	"github.com/dright/marketplace/internal/registry"
	"github.com/dright/marketplace/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadBridgeConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "event-bridge",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Event Bridge")

	// Connect to database for the moderation ban overlay
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	dataStore := store.NewPGStore(db)
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize adapters
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()

	// Connect to Temporal with logger integration
	temporalLogger := temporal.NewZapLoggerAdapter(logger.Default())
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporalLogger,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("host_port", cfg.Temporal.HostPort))

	// Load moderation lists; banned actors are dropped before fan-out
	var moderation registry.Moderation
	if cfg.BlocklistPath != "" {
		moderation, err = registry.NewModerationLoader(fs, jsonAdapter, dataStore).Load(ctx, cfg.BlocklistPath)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to load moderation lists",
				zap.Error(err),
				zap.String("path", cfg.BlocklistPath))
		}
		logger.InfoCtx(ctx, "Loaded moderation lists", zap.String("path", cfg.BlocklistPath))
	} else {
		logger.WarnCtx(ctx, "Blocklist path not configured, no events will be dropped for bans")
	}

	// Create the bridge
	b, err := bridge.NewBridge(bridge.Config{
		URL:                      cfg.NATS.URL,
		StreamName:               cfg.NATS.StreamName,
		ConsumerName:             cfg.NATS.ConsumerName,
		MaxReconnects:            cfg.NATS.MaxReconnects,
		ReconnectWait:            cfg.NATS.ReconnectWait,
		ConnectionName:           "dright-event-bridge",
		AckWaitTimeout:           cfg.NATS.AckWait,
		MaxDeliver:               cfg.NATS.MaxDeliver,
		TemporalTaskQueue:        cfg.Temporal.MarketTaskQueue,
		ModerationReloadInterval: cfg.ModerationReloadInterval,
	}, adapter.NewNatsJetStream(), temporalClient, jsonAdapter, moderation)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create bridge", zap.Error(err))
	}
	defer b.Close()

	// Run the bridge in a goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- b.Run(ctx)
	}()

	// Wait for interrupt signal or bridge failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err)
		}
		cancel()
	}

	logger.Info("Event bridge stopped")
}
