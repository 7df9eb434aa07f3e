package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/dright/marketplace/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadHost        string        `mapstructure:"read_host"`
	ReadPort        int           `mapstructure:"read_port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	ConsumerName   string        `mapstructure:"consumer_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	AckWait        time.Duration `mapstructure:"ack_wait"`
	MaxDeliver     int           `mapstructure:"max_deliver"`
}

// EthereumConfig holds Ethereum-specific configuration
type EthereumConfig struct {
	WebSocketURL         string        `mapstructure:"websocket_url"`
	RPCURL               string        `mapstructure:"rpc_url"`
	ChainID              domain.Chain  `mapstructure:"chain_id"`
	ContractAddress      string        `mapstructure:"contract_address"` // marketplace ERC-721 contract
	MinterKey            string        `mapstructure:"minter_key"`       // hex private key of the minting account
	StartBlock           uint64        `mapstructure:"start_block"`
	BlockHeadTTL         time.Duration `mapstructure:"block_head_ttl"`
	BlockHeadStaleWindow time.Duration `mapstructure:"block_head_stale_window"`
}

// HederaConfig holds Hedera-specific configuration
type HederaConfig struct {
	Network           string        `mapstructure:"network"` // mainnet, testnet
	ChainID           domain.Chain  `mapstructure:"chain_id"`
	MirrorBaseURL     string        `mapstructure:"mirror_base_url"`
	OperatorID        string        `mapstructure:"operator_id"`  // treasury account (shard.realm.num)
	OperatorKey       string        `mapstructure:"operator_key"` // DER/hex encoded private key
	CollectionTokenID string        `mapstructure:"collection_token_id"`
	PollInterval      time.Duration `mapstructure:"poll_interval"` // mirror-node polling cadence for the emitter
	PageSize          int           `mapstructure:"page_size"`     // serials fetched per mirror page
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string  `mapstructure:"host_port"`
	Namespace                          string  `mapstructure:"namespace"`
	MarketTaskQueue                    string  `mapstructure:"market_task_queue"`
	MaxConcurrentActivityExecutionSize int     `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64 `mapstructure:"worker_activities_per_second"`
	MaxConcurrentActivityTaskPollers   int     `mapstructure:"max_concurrent_activity_task_pollers"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	ReadTimeout    int      `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout   int      `mapstructure:"write_timeout"` // in seconds
	IdleTimeout    int      `mapstructure:"idle_timeout"`  // in seconds
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret    string        `mapstructure:"jwt_secret"`     // HS256 signing secret for tokens this service issues
	JWTPublicKey string        `mapstructure:"jwt_public_key"` // optional RS256 public key for externally issued tokens
	JWTTTL       time.Duration `mapstructure:"jwt_ttl"`
	NonceTTL     time.Duration `mapstructure:"nonce_ttl"`
	APIKeys      []string      `mapstructure:"api_keys"`
}

// IPFSConfig holds IPFS node and gateway configuration
type IPFSConfig struct {
	NodeURL           string        `mapstructure:"node_url"` // API multiaddr or host:port of the pinning node
	Gateways          []string      `mapstructure:"gateways"`
	PinTimeout        time.Duration `mapstructure:"pin_timeout"`
	MaxConcurrentPins int           `mapstructure:"max_concurrent_pins"`
}

// VaultConfig holds secure file vault configuration
type VaultConfig struct {
	S3Endpoint      string   `mapstructure:"s3_endpoint"` // empty = AWS default resolution; set for R2-compatible stores
	S3Region        string   `mapstructure:"s3_region"`
	S3Bucket        string   `mapstructure:"s3_bucket"`
	AccessKeyID     string   `mapstructure:"access_key_id"`
	SecretAccessKey string   `mapstructure:"secret_access_key"`
	ActiveKeyID     string   `mapstructure:"active_key_id"`
	Keys            []string `mapstructure:"keys"` // "keyID:base64Key" entries; all listed keys can decrypt
	MaxUploadBytes  int64    `mapstructure:"max_upload_bytes"`
	AllowedTypes    []string `mapstructure:"allowed_types"` // MIME prefixes, e.g. "application/pdf", "image/"
}

// FeesConfig holds marketplace fee configuration
type FeesConfig struct {
	PlatformFeeBps int64         `mapstructure:"platform_fee_bps"`
	MinPlatformFee string        `mapstructure:"min_platform_fee"` // base units; applied when the bps cut is smaller
	RoyaltyCapBps  int64         `mapstructure:"royalty_cap_bps"`
	RatesURL       string        `mapstructure:"rates_url"` // spot price API for fiat display estimates
	RatesTTL       time.Duration `mapstructure:"rates_ttl"`
}

// AuctionsConfig holds auction behavior configuration
type AuctionsConfig struct {
	MinIncrementBps int64         `mapstructure:"min_increment_bps"` // next bid must exceed the highest by this fraction
	SweepInterval   time.Duration `mapstructure:"sweep_interval"`
	BatchSize       int           `mapstructure:"batch_size"`
}

// DistributionsConfig holds revenue distribution scheduling configuration
type DistributionsConfig struct {
	CheckInterval time.Duration `mapstructure:"check_interval"`
	Period        time.Duration `mapstructure:"period"` // revenue accrual window per distribution round
	BatchSize     int           `mapstructure:"batch_size"`
}

// CloudflareConfig holds Cloudflare configuration
type CloudflareConfig struct {
	// AccountID is the Cloudflare account ID (used for both Images and Stream)
	AccountID string `mapstructure:"account_id"`
	APIToken  string `mapstructure:"api_token"`
}

// PreviewConfig holds preview generation configuration
type PreviewConfig struct {
	// RasterizerWidth is the target width for SVG rasterization (0 = use SVG natural size)
	RasterizerWidth int   `mapstructure:"rasterizer_width"`
	ThumbnailWidth  int   `mapstructure:"thumbnail_width"`
	MaxImageBytes   int64 `mapstructure:"max_image_bytes"`
}

// RateLimitConfig holds the limit for a single outbound provider
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// RateLimiterConfig holds outbound rate limiter configuration
type RateLimiterConfig struct {
	RedisURL  string                     `mapstructure:"redis_url"` // empty = local limiting only
	PoolSize  int                        `mapstructure:"pool_size"`
	QueueSize int                        `mapstructure:"queue_size"`
	Providers map[string]RateLimitConfig `mapstructure:"providers"`
}

// WebhookConfig holds outbound webhook delivery configuration
type WebhookConfig struct {
	DeliveryTimeout time.Duration `mapstructure:"delivery_timeout"`
	MaxAttempts     int           `mapstructure:"max_attempts"`
}

// WalletsConfig holds wallet provider probing configuration
type WalletsConfig struct {
	HashPackStatusURL      string        `mapstructure:"hashpack_status_url"`
	BladeStatusURL         string        `mapstructure:"blade_status_url"`
	WalletConnectRelayURL  string        `mapstructure:"walletconnect_relay_url"`
	WalletConnectProjectID string        `mapstructure:"walletconnect_project_id"`
	ProbeTimeout           time.Duration `mapstructure:"probe_timeout"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig    `mapstructure:",squash"`
	Server        ServerConfig      `mapstructure:"server"`
	Database      DatabaseConfig    `mapstructure:"database"`
	Temporal      TemporalConfig    `mapstructure:"temporal"`
	Auth          AuthConfig        `mapstructure:"auth"`
	Hedera        HederaConfig      `mapstructure:"hedera"`
	Ethereum      EthereumConfig    `mapstructure:"ethereum"`
	IPFS          IPFSConfig        `mapstructure:"ipfs"`
	Vault         VaultConfig       `mapstructure:"vault"`
	Fees          FeesConfig        `mapstructure:"fees"`
	Auctions      AuctionsConfig    `mapstructure:"auctions"`
	NATS          NATSConfig        `mapstructure:"nats"`
	Wallets       WalletsConfig     `mapstructure:"wallets"`
	RateLimiter   RateLimiterConfig `mapstructure:"rate_limiter"`
	BlocklistPath string            `mapstructure:"blocklist_path"`
}

// WorkerServiceConfig holds configuration for the Temporal worker
type WorkerServiceConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Temporal    TemporalConfig    `mapstructure:"temporal"`
	Hedera      HederaConfig      `mapstructure:"hedera"`
	Ethereum    EthereumConfig    `mapstructure:"ethereum"`
	IPFS        IPFSConfig        `mapstructure:"ipfs"`
	NATS        NATSConfig        `mapstructure:"nats"`
	Fees        FeesConfig        `mapstructure:"fees"`
	Cloudflare  CloudflareConfig  `mapstructure:"cloudflare"`
	Preview     PreviewConfig     `mapstructure:"preview"`
	Webhook     WebhookConfig     `mapstructure:"webhook"`
	RateLimiter RateLimiterConfig `mapstructure:"rate_limiter"`
	// SiteURL is the public marketplace base URL embedded in NFT metadata
	SiteURL string `mapstructure:"site_url"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig    `mapstructure:",squash"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Temporal      TemporalConfig      `mapstructure:"temporal"`
	Auctions      AuctionsConfig      `mapstructure:"auctions"`
	Distributions DistributionsConfig `mapstructure:"distributions"`
}

// BridgeConfig holds configuration for event-bridge
type BridgeConfig struct {
	BaseConfig    `mapstructure:",squash"`
	Database      DatabaseConfig `mapstructure:"database"`
	NATS          NATSConfig     `mapstructure:"nats"`
	Temporal      TemporalConfig `mapstructure:"temporal"`
	BlocklistPath string         `mapstructure:"blocklist_path"`
	// ModerationReloadInterval refreshes runtime bans from the store
	ModerationReloadInterval time.Duration `mapstructure:"moderation_reload_interval"`
}

// EthereumEmitterConfig holds configuration for ethereum-event-emitter
type EthereumEmitterConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Ethereum   EthereumConfig `mapstructure:"ethereum"`
}

// HederaEmitterConfig holds configuration for hedera-event-emitter
type HederaEmitterConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Hedera     HederaConfig   `mapstructure:"hedera"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.market_task_queue", "marketplace")
	v.SetDefault("auth.jwt_ttl", "24h")
	v.SetDefault("auth.nonce_ttl", "5m")
	v.SetDefault("hedera.network", "testnet")
	v.SetDefault("hedera.chain_id", "hedera:testnet")
	v.SetDefault("hedera.mirror_base_url", "https://testnet.mirrornode.hedera.com")
	v.SetDefault("ethereum.chain_id", "eip155:11155111")
	v.SetDefault("ipfs.gateways", []string{"https://ipfs.io", "https://cloudflare-ipfs.com"})
	v.SetDefault("ipfs.pin_timeout", "60s")
	v.SetDefault("ipfs.max_concurrent_pins", 4)
	v.SetDefault("vault.max_upload_bytes", domain.MAX_SECURE_FILE_BYTES)
	v.SetDefault("vault.allowed_types", []string{"application/pdf", "image/", "text/plain"})
	v.SetDefault("fees.platform_fee_bps", 250)
	v.SetDefault("fees.min_platform_fee", "0")
	v.SetDefault("fees.royalty_cap_bps", domain.MAX_ROYALTY_BPS)
	v.SetDefault("fees.rates_url", "https://api.coingecko.com/api/v3")
	v.SetDefault("fees.rates_ttl", "1m")
	v.SetDefault("auctions.min_increment_bps", 500)
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "MARKETPLACE_EVENTS")
	v.SetDefault("wallets.hashpack_status_url", "https://api.hashpack.app/status")
	v.SetDefault("wallets.blade_status_url", "https://api.bladewallet.io/status")
	v.SetDefault("wallets.walletconnect_relay_url", "https://relay.walletconnect.com/health")
	v.SetDefault("wallets.probe_timeout", "3s")

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadWorkerConfig loads configuration for the Temporal worker
func LoadWorkerConfig(configFile string, envPath string) (*WorkerServiceConfig, error) {
	v := configureViper("worker", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.market_task_queue", "marketplace")
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 50)
	v.SetDefault("temporal.worker_activities_per_second", 50)
	v.SetDefault("temporal.max_concurrent_activity_task_pollers", 10)
	v.SetDefault("hedera.network", "testnet")
	v.SetDefault("hedera.chain_id", "hedera:testnet")
	v.SetDefault("hedera.mirror_base_url", "https://testnet.mirrornode.hedera.com")
	v.SetDefault("ethereum.chain_id", "eip155:11155111")
	v.SetDefault("ipfs.gateways", []string{"https://ipfs.io", "https://cloudflare-ipfs.com"})
	v.SetDefault("ipfs.pin_timeout", "60s")
	v.SetDefault("ipfs.max_concurrent_pins", 4)
	v.SetDefault("fees.platform_fee_bps", 250)
	v.SetDefault("fees.min_platform_fee", "0")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "MARKETPLACE_EVENTS")
	v.SetDefault("preview.rasterizer_width", 2048)
	v.SetDefault("preview.thumbnail_width", 1024)
	v.SetDefault("preview.max_image_bytes", 50*1024*1024)
	v.SetDefault("webhook.delivery_timeout", "10s")
	v.SetDefault("webhook.max_attempts", 5)
	v.SetDefault("site_url", "https://dright.io")

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config WorkerServiceConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.market_task_queue", "marketplace")
	v.SetDefault("auctions.sweep_interval", "30s")
	v.SetDefault("auctions.batch_size", 100)
	v.SetDefault("distributions.check_interval", "1m")
	v.SetDefault("distributions.period", "720h") // 30 days
	v.SetDefault("distributions.batch_size", 100)

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &cfg, nil
}

// LoadBridgeConfig loads configuration for event-bridge
func LoadBridgeConfig(configFile string, envPath string) (*BridgeConfig, error) {
	v := configureViper("event-bridge", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "MARKETPLACE_EVENTS")
	v.SetDefault("nats.consumer_name", "event-bridge")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("nats.max_deliver", 3)
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.market_task_queue", "marketplace")
	v.SetDefault("moderation_reload_interval", "1m")

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config BridgeConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadEthereumEmitterConfig loads configuration for ethereum-event-emitter
func LoadEthereumEmitterConfig(configFile string, envPath string) (*EthereumEmitterConfig, error) {
	v := configureViper("ethereum-event-emitter", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "MARKETPLACE_EVENTS")
	v.SetDefault("ethereum.chain_id", "eip155:1")
	v.SetDefault("ethereum.block_head_ttl", "12s")
	v.SetDefault("ethereum.block_head_stale_window", "60s")

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config EthereumEmitterConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadHederaEmitterConfig loads configuration for hedera-event-emitter
func LoadHederaEmitterConfig(configFile string, envPath string) (*HederaEmitterConfig, error) {
	v := configureViper("hedera-event-emitter", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "MARKETPLACE_EVENTS")
	v.SetDefault("hedera.network", "mainnet")
	v.SetDefault("hedera.chain_id", "hedera:mainnet")
	v.SetDefault("hedera.mirror_base_url", "https://mainnet-public.mirrornode.hedera.com")
	v.SetDefault("hedera.poll_interval", "10s")
	v.SetDefault("hedera.page_size", 100)

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config HederaEmitterConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/sweeper/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("DRIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	// Common config keys
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.read_host",
		"database.read_port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.consumer_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		"nats.max_deliver",
		// Ethereum
		"ethereum.websocket_url",
		"ethereum.rpc_url",
		"ethereum.chain_id",
		"ethereum.contract_address",
		"ethereum.minter_key",
		"ethereum.start_block",
		"ethereum.block_head_ttl",
		"ethereum.block_head_stale_window",
		// Hedera
		"hedera.network",
		"hedera.chain_id",
		"hedera.mirror_base_url",
		"hedera.operator_id",
		"hedera.operator_key",
		"hedera.collection_token_id",
		"hedera.poll_interval",
		"hedera.page_size",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.market_task_queue",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		"temporal.max_concurrent_activity_task_pollers",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Auth
		"auth.jwt_secret",
		"auth.jwt_public_key",
		"auth.jwt_ttl",
		"auth.nonce_ttl",
		"auth.api_keys",
		// IPFS
		"ipfs.node_url",
		"ipfs.gateways",
		"ipfs.pin_timeout",
		"ipfs.max_concurrent_pins",
		// Vault
		"vault.s3_endpoint",
		"vault.s3_region",
		"vault.s3_bucket",
		"vault.access_key_id",
		"vault.secret_access_key",
		"vault.active_key_id",
		"vault.keys",
		"vault.max_upload_bytes",
		"vault.allowed_types",
		// Fees
		"fees.platform_fee_bps",
		"fees.min_platform_fee",
		"fees.royalty_cap_bps",
		"fees.rates_url",
		"fees.rates_ttl",
		// Auctions
		"auctions.min_increment_bps",
		"auctions.sweep_interval",
		"auctions.batch_size",
		// Distributions
		"distributions.check_interval",
		"distributions.period",
		"distributions.batch_size",
		// Cloudflare
		"cloudflare.account_id",
		"cloudflare.api_token",
		// Preview
		"preview.rasterizer_width",
		"preview.thumbnail_width",
		"preview.max_image_bytes",
		// Rate limiter
		"rate_limiter.redis_url",
		"rate_limiter.pool_size",
		"rate_limiter.queue_size",
		// Webhook
		"webhook.delivery_timeout",
		"webhook.max_attempts",
		// Wallets
		"wallets.hashpack_status_url",
		"wallets.blade_status_url",
		"wallets.walletconnect_relay_url",
		"wallets.walletconnect_project_id",
		"wallets.probe_timeout",
		// Paths
		"blocklist_path",
		// Service-level keys
		"site_url",
		"moderation_reload_interval",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	// Create candidates list
	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ReadDSN returns the read-replica database connection string.
// If ReadPort is not configured, it falls back to Port.
func (c *DatabaseConfig) ReadDSN() string {
	port := c.ReadPort
	if port == 0 {
		port = c.Port
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.ReadHost, port, c.User, c.Password, c.DBName, c.SSLMode)
}
