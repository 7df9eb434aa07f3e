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
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/config"
	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/ipfs"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/metadata"
	"github.com/dright/marketplace/internal/nft"
	"github.com/dright/marketplace/internal/preview"
	"github.com/dright/marketplace/internal/pricing"
	"github.com/dright/marketplace/internal/providers/cloudflare"
	"github.com/dright/marketplace/internal/providers/ethereum"
	"github.com/dright/marketplace/internal/providers/hedera"
	"github.com/dright/marketplace/internal/providers/jetstream"
	temporal "github.com/dright/marketplace/internal/providers/temporal"
	"github.com/dright/marketplace/internal/ratelimit"
	"github.com/dright/marketplace/internal/store"
	"github.com/dright/marketplace/internal/uri"
	"github.com/dright/marketplace/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerConfig(*configFile, *envPath)
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
			"service": "worker",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Dright worker")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	dataStore := store.NewPGStore(db)
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

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

	// Hedera clients; the SDK client signs mints and custodial transfers
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

	// Ethereum client with the minter key loaded, so mint activities can sign
	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial Ethereum RPC", zap.Error(err), zap.String("url", cfg.Ethereum.RPCURL))
	}
	ethereumClient, err := ethereum.NewClient(ethereum.ClientConfig{
		ChainID:         cfg.Ethereum.ChainID,
		ContractAddress: cfg.Ethereum.ContractAddress,
		MinterKey:       cfg.Ethereum.MinterKey,
	}, ethClient, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create Ethereum client", zap.Error(err))
	}
	defer ethereumClient.Close()
	logger.InfoCtx(ctx, "Connected to Ethereum RPC", zap.String("url", cfg.Ethereum.RPCURL))

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

	pricer := pricing.NewCalculator(pricing.Config{
		PlatformFeeBps: cfg.Fees.PlatformFeeBps,
		MinPlatformFee: domain.Amount(cfg.Fees.MinPlatformFee),
	})

	// Metadata pinning
	ipfsClient := ipfs.NewClient(ipfs.Config{
		NodeURL:           cfg.IPFS.NodeURL,
		PinTimeout:        cfg.IPFS.PinTimeout,
		MaxConcurrentPins: cfg.IPFS.MaxConcurrentPins,
	}, jsonAdapter)
	defer ipfsClient.Close()
	builder := metadata.NewBuilder(cfg.SiteURL, jsonAdapter, adapter.NewJCS())

	// Preview rendering pipeline over Cloudflare Images and Stream
	cfClient, err := adapter.NewCloudflareClient(cfg.Cloudflare.APIToken)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create Cloudflare client", zap.Error(err))
	}
	uriResolver := uri.NewResolver(httpClient, &uri.Config{IPFSGateways: cfg.IPFS.Gateways})
	rasterizer := preview.NewRasterizer(adapter.NewResvgClient(), adapter.NewImageEncoder(), &preview.RasterizerConfig{
		Width: cfg.Preview.RasterizerWidth,
	})
	thumbnailer := preview.NewThumbnailer(preview.ThumbnailConfig{
		MaxDimension: cfg.Preview.ThumbnailWidth,
	}, adapter.NewVipsClient())
	defer func() {
		if err := thumbnailer.Close(); err != nil {
			logger.Warn("Failed to close thumbnailer", zap.Error(err))
		}
	}()
	uploader := cloudflare.NewUploader(cfClient, cloudflare.Config{
		AccountID: cfg.Cloudflare.AccountID,
		APIToken:  cfg.Cloudflare.APIToken,
	})
	previewer := preview.NewGenerator(uriResolver, httpClient, rasterizer, thumbnailer, uploader, preview.Config{
		MaxImageBytes: cfg.Preview.MaxImageBytes,
	})

	// Events published by activities fan out through NATS
	natsPublisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: "dright-worker",
	}, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
	}
	defer natsPublisher.Close()

	// Webhook deliveries get their own client so slow consumers are cut off
	webhookHTTP := adapter.NewHTTPClient(cfg.Webhook.DeliveryTimeout)

	// Initialize executor for activities
	executor := workflows.NewExecutor(
		dataStore,
		chains,
		pricer,
		builder,
		ipfsClient,
		natsPublisher,
		previewer,
		webhookHTTP,
		jsonAdapter,
		clock,
		adapter.NewActivity(),
	)

	// Connect to Temporal with logger integration
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

	// Create Temporal worker
	temporalWorker := worker.New(
		temporalClient,
		cfg.Temporal.MarketTaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
		})
	logger.InfoCtx(ctx, "Created Temporal worker", zap.String("task_queue", cfg.Temporal.MarketTaskQueue))

	// Create worker core instance
	workerCore := workflows.NewWorkerCore(executor,
		workflows.WorkerCoreConfig{
			HederaChainID:   cfg.Hedera.ChainID,
			EthereumChainID: cfg.Ethereum.ChainID,
			MarketTaskQueue: cfg.Temporal.MarketTaskQueue,
		})

	// Register workflows
	temporalWorker.RegisterWorkflow(workerCore.MintRight)
	temporalWorker.RegisterWorkflow(workerCore.TransferRight)
	temporalWorker.RegisterWorkflow(workerCore.SettleAuction)
	temporalWorker.RegisterWorkflow(workerCore.DistributeRevenue)
	temporalWorker.RegisterWorkflow(workerCore.ProcessMarketplaceEvent)
	temporalWorker.RegisterWorkflow(workerCore.NotifyWebhookClients)
	temporalWorker.RegisterWorkflow(workerCore.DeliverWebhook)
	logger.InfoCtx(ctx, "Registered workflows")

	// Register activities
	temporalWorker.RegisterActivity(executor.GetRight)
	temporalWorker.RegisterActivity(executor.GetUser)
	temporalWorker.RegisterActivity(executor.PinRightMetadata)
	temporalWorker.RegisterActivity(executor.MintNFT)
	temporalWorker.RegisterActivity(executor.MarkRightMinted)
	temporalWorker.RegisterActivity(executor.UpdateRightStatus)
	temporalWorker.RegisterActivity(executor.AppendTransaction)
	temporalWorker.RegisterActivity(executor.GeneratePreview)
	temporalWorker.RegisterActivity(executor.TransferNFT)
	temporalWorker.RegisterActivity(executor.UpdateTransactionStatus)
	temporalWorker.RegisterActivity(executor.GetHighestActiveBid)
	temporalWorker.RegisterActivity(executor.DeactivateBids)
	temporalWorker.RegisterActivity(executor.RevertAuctionToFixed)
	temporalWorker.RegisterActivity(executor.SettleAuctionTrade)
	temporalWorker.RegisterActivity(executor.GetDistribution)
	temporalWorker.RegisterActivity(executor.UpdateDistributionStatus)
	temporalWorker.RegisterActivity(executor.GetActiveStakes)
	temporalWorker.RegisterActivity(executor.CompleteDistributionPayouts)
	temporalWorker.RegisterActivity(executor.ReconcileTransfer)
	temporalWorker.RegisterActivity(executor.CreateEventNotifications)
	temporalWorker.RegisterActivity(executor.PublishEvent)
	temporalWorker.RegisterActivity(executor.GetActiveWebhookClientsByEventType)
	temporalWorker.RegisterActivity(executor.GetWebhookClientByID)
	temporalWorker.RegisterActivity(executor.CreateWebhookDeliveryRecord)
	temporalWorker.RegisterActivity(executor.DeliverWebhookHTTP)
	logger.InfoCtx(ctx, "Registered activities")

	// Start worker
	if err := temporalWorker.Start(); err != nil {
		logger.FatalCtx(ctx, "Failed to start worker", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Worker started and listening for tasks")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	logger.Info("Shutting down worker...")
	temporalWorker.Stop()
	logger.Info("Worker stopped")
}
