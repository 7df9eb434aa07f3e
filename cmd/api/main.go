package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/api/server"
	"github.com/dright/marketplace/internal/api/shared/executor"
	"github.com/dright/marketplace/internal/auth"
	"github.com/dright/marketplace/internal/config"
	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/metadata"
	"github.com/dright/marketplace/internal/nft"
	"github.com/dright/marketplace/internal/pricing"
	"github.com/dright/marketplace/internal/providers/ethereum"
	"github.com/dright/marketplace/internal/providers/hedera"
	"github.com/dright/marketplace/internal/providers/jetstream"
	"github.com/dright/marketplace/internal/providers/rates"
	temporal "github.com/dright/marketplace/internal/providers/temporal"
	"github.com/dright/marketplace/internal/ratelimit"
	"github.com/dright/marketplace/internal/registry"
	"github.com/dright/marketplace/internal/store"
	"github.com/dright/marketplace/internal/uri"
	"github.com/dright/marketplace/internal/vault"
	"github.com/dright/marketplace/internal/wallet"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Dright API")

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

	// Initialize adapters
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

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

	// Outbound rate limiting, distributed when Redis is configured
	var redisClient adapter.RedisClient
	if cfg.RateLimiter.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RateLimiter.RedisURL)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to parse Redis URL", zap.Error(err))
		}
		redisClient = adapter.NewRedisClient(opts.Addr, opts.Password, opts.DB)
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("Failed to close Redis client", zap.Error(err))
			}
		}()
	}
	rateLimitProxy, err := ratelimit.NewProxy(cfg.RateLimiter, redisClient, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limit proxy", zap.Error(err))
	}
	defer rateLimitProxy.Close()

	// Hedera mirror node client backs both NFT lookups and wallet key checks
	httpClient := adapter.NewHTTPClient(30 * time.Second)
	mirrorHTTP := ratelimit.NewHTTPClient(httpClient, rateLimitProxy, hedera.PROVIDER_NAME)
	mirrorClient := hedera.NewMirrorClient(cfg.Hedera.MirrorBaseURL, mirrorHTTP)

	hederaSDK, err := hedera.NewSDKClient(hedera.Config{
		Network:     cfg.Hedera.Network,
		OperatorID:  cfg.Hedera.OperatorID,
		OperatorKey: cfg.Hedera.OperatorKey,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create Hedera client", zap.Error(err))
	}
	defer hederaSDK.Close()

	// Ethereum client is read-only here; minting runs in the worker
	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial Ethereum RPC", zap.Error(err), zap.String("url", cfg.Ethereum.RPCURL))
	}
	ethereumClient, err := ethereum.NewClient(ethereum.ClientConfig{
		ChainID:         cfg.Ethereum.ChainID,
		ContractAddress: cfg.Ethereum.ContractAddress,
	}, ethClient, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create Ethereum client", zap.Error(err))
	}
	defer ethereumClient.Close()

	// Chain router dispatches NFT operations by CAIP-2 chain ID
	chains := nft.NewRouter(
		nft.NewHederaService(nft.HederaConfig{
			ChainID:           cfg.Hedera.ChainID,
			Network:           cfg.Hedera.Network,
			CollectionTokenID: cfg.Hedera.CollectionTokenID,
		}, hederaSDK, mirrorClient),
		nft.NewEthereumService(nft.EthereumConfig{
			ChainID: cfg.Ethereum.ChainID,
			Network: cfg.Ethereum.ChainID.Network(),
		}, ethereumClient),
	)

	// Wallet providers share one short-timeout probe client
	probeHTTP := adapter.NewHTTPClient(cfg.Wallets.ProbeTimeout)
	wallets := wallet.NewRegistry(
		wallet.NewMetaMaskProvider(),
		wallet.NewWalletConnectProvider(cfg.Wallets.WalletConnectRelayURL, probeHTTP),
		wallet.NewHashPackProvider(cfg.Wallets.HashPackStatusURL, probeHTTP, mirrorClient),
		wallet.NewBladeProvider(cfg.Wallets.BladeStatusURL, probeHTTP, mirrorClient),
	)

	nonces := auth.NewNonceService(dataStore, clock, cfg.Auth.NonceTTL)
	jwtService, err := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.JWTPublicKey, cfg.Auth.JWTTTL, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create JWT service", zap.Error(err))
	}

	pricer := pricing.NewCalculator(pricing.Config{
		PlatformFeeBps: cfg.Fees.PlatformFeeBps,
		MinPlatformFee: domain.Amount(cfg.Fees.MinPlatformFee),
	})

	// Display metadata resolution races the configured IPFS gateways
	uriResolver := uri.NewResolver(httpClient, &uri.Config{IPFSGateways: cfg.IPFS.Gateways})
	metadataResolver := metadata.NewResolver(uriResolver, httpClient, jsonAdapter)
	metadataEnhancer := metadata.NewEnhancer(metadataResolver, uriResolver, httpClient, cfg.IPFS.Gateways)

	ratesHTTP := ratelimit.NewHTTPClient(httpClient, rateLimitProxy, rates.PROVIDER_NAME)
	ratesClient := rates.NewClient(rates.Config{
		APIURL: cfg.Fees.RatesURL,
		TTL:    cfg.Fees.RatesTTL,
	}, ratesHTTP, rateLimitProxy, clock)

	// Secure file vault
	keys, err := vault.NewKeySet(cfg.Vault.ActiveKeyID, cfg.Vault.Keys)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load vault keys", zap.Error(err))
	}
	vaultStorage, err := vault.NewS3Storage(ctx, cfg.Vault)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create vault storage", zap.Error(err))
	}
	vaultService := vault.NewService(vaultStorage, keys, vault.Config{
		MaxUploadBytes: cfg.Vault.MaxUploadBytes,
		AllowedTypes:   cfg.Vault.AllowedTypes,
	})

	// Load moderation lists
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
		logger.WarnCtx(ctx, "Blocklist path not configured, all accounts will be allowed")
	}

	// Events published here fan out to followers and webhooks
	natsPublisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: "dright-api",
	}, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
	}
	defer natsPublisher.Close()

	// Create server config
	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		APIKeys:        cfg.Auth.APIKeys,
		MaxUploadBytes: cfg.Vault.MaxUploadBytes,
		Executor: executor.Config{
			MarketTaskQueue:    cfg.Temporal.MarketTaskQueue,
			HederaChainID:      cfg.Hedera.ChainID,
			EthereumChainID:    cfg.Ethereum.ChainID,
			MinBidIncrementBps: cfg.Auctions.MinIncrementBps,
			Debug:              cfg.Debug,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, server.Dependencies{
		Store:        dataStore,
		Orchestrator: temporalClient,
		Publisher:    natsPublisher,
		Wallets:      wallets,
		Nonces:       nonces,
		JWT:          jwtService,
		Chains:       chains,
		Pricer:       pricer,
		Rates:        ratesClient,
		Vault:        vaultService,
		Moderation:   moderation,
		Resolver:     metadataResolver,
		Enhancer:     metadataEnhancer,
		Clock:        clock,
	})

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
