package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 15
  allowed_origins:
    - "https://dright.io"
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
auth:
  jwt_secret: "super-secret"
  jwt_ttl: "12h"
  nonce_ttl: "2m"
  api_keys:
    - "admin-key-1"
hedera:
  network: mainnet
  chain_id: "hedera:mainnet"
  mirror_base_url: "https://mainnet-public.mirrornode.hedera.com"
  operator_id: "0.0.1001"
  collection_token_id: "0.0.4521"
ethereum:
  rpc_url: "http://localhost:8545"
  chain_id: "eip155:1"
  contract_address: "0x396343362be2A4dA1cE0C1C210945346fb82Aa49"
ipfs:
  node_url: "localhost:5001"
  gateways:
    - "https://ipfs.io"
vault:
  s3_bucket: "dright-vault"
  active_key_id: "k1"
  keys:
    - "k1:c2VjcmV0LWtleQ=="
fees:
  platform_fee_bps: 300
auctions:
  min_increment_bps: 1000
nats:
  url: "nats://localhost:4222"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 15, cfg.Server.ReadTimeout)
				assert.Equal(t, []string{"https://dright.io"}, cfg.Server.AllowedOrigins)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "super-secret", cfg.Auth.JWTSecret)
				assert.Equal(t, 12*time.Hour, cfg.Auth.JWTTTL)
				assert.Equal(t, 2*time.Minute, cfg.Auth.NonceTTL)
				assert.Equal(t, []string{"admin-key-1"}, cfg.Auth.APIKeys)
				assert.Equal(t, "mainnet", cfg.Hedera.Network)
				assert.Equal(t, "hedera:mainnet", string(cfg.Hedera.ChainID))
				assert.Equal(t, "0.0.1001", cfg.Hedera.OperatorID)
				assert.Equal(t, "0.0.4521", cfg.Hedera.CollectionTokenID)
				assert.Equal(t, "eip155:1", string(cfg.Ethereum.ChainID))
				assert.Equal(t, "0x396343362be2A4dA1cE0C1C210945346fb82Aa49", cfg.Ethereum.ContractAddress)
				assert.Equal(t, "localhost:5001", cfg.IPFS.NodeURL)
				assert.Equal(t, "dright-vault", cfg.Vault.S3Bucket)
				assert.Equal(t, int64(300), cfg.Fees.PlatformFeeBps)
				assert.Equal(t, int64(1000), cfg.Auctions.MinIncrementBps)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 24*time.Hour, cfg.Auth.JWTTTL)
				assert.Equal(t, 5*time.Minute, cfg.Auth.NonceTTL)
				assert.Equal(t, "testnet", cfg.Hedera.Network)
				assert.Equal(t, "hedera:testnet", string(cfg.Hedera.ChainID))
				assert.Equal(t, "eip155:11155111", string(cfg.Ethereum.ChainID))
				assert.Equal(t, int64(250), cfg.Fees.PlatformFeeBps)
				assert.Equal(t, int64(500), cfg.Auctions.MinIncrementBps)
				assert.Equal(t, int64(50<<20), cfg.Vault.MaxUploadBytes)
				assert.Equal(t, "MARKETPLACE_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "marketplace", cfg.Temporal.MarketTaskQueue)
				assert.Equal(t, 3*time.Second, cfg.Wallets.ProbeTimeout)
			},
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadAPIConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadSweeperConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *SweeperConfig)
	}{
		{
			name: "valid config file",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
auctions:
  sweep_interval: "10s"
  batch_size: 25
  worker:
    pool_size: 4
    queue_size: 50
distributions:
  check_interval: "30s"
  period: "168h"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *SweeperConfig) {
				assert.Equal(t, 10*time.Second, cfg.Auctions.SweepInterval)
				assert.Equal(t, 25, cfg.Auctions.BatchSize)
				assert.Equal(t, 4, cfg.Auctions.Worker.WorkerPoolSize)
				assert.Equal(t, 50, cfg.Auctions.Worker.WorkerQueueSize)
				assert.Equal(t, 30*time.Second, cfg.Distributions.CheckInterval)
				assert.Equal(t, 168*time.Hour, cfg.Distributions.Period)
				// Pool defaults applied for the sweeper's small footprint
				assert.Equal(t, 5, cfg.Database.MaxOpenConns)
				assert.Equal(t, 2, cfg.Database.MaxIdleConns)
			},
		},
		{
			name: "missing database host",
			configFile: `
database:
  user: testuser
  dbname: testdb
`,
			expectError: true,
		},
		{
			name: "missing database name",
			configFile: `
database:
  host: localhost
  user: testuser
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadSweeperConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadWorkerConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	content := `
database:
  host: localhost
  user: u
  password: p
  dbname: d
temporal:
  host_port: "temporal:7233"
hedera:
  operator_id: "0.0.1001"
  operator_key: "302e0201..."
cloudflare:
  account_id: "cf-account"
  api_token: "cf-token"
preview:
  thumbnail_width: 512
webhook:
  max_attempts: 3
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))

	cfg, err := LoadWorkerConfig(configFile, "")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "temporal:7233", cfg.Temporal.HostPort)
	assert.Equal(t, "marketplace", cfg.Temporal.MarketTaskQueue)
	assert.Equal(t, 50, cfg.Temporal.MaxConcurrentActivityExecutionSize)
	assert.Equal(t, "0.0.1001", cfg.Hedera.OperatorID)
	assert.Equal(t, "cf-account", cfg.Cloudflare.AccountID)
	assert.Equal(t, 512, cfg.Preview.ThumbnailWidth)
	assert.Equal(t, 2048, cfg.Preview.RasterizerWidth)
	assert.Equal(t, 3, cfg.Webhook.MaxAttempts)
	assert.Equal(t, 10*time.Second, cfg.Webhook.DeliveryTimeout)
}

func TestLoadBridgeConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	content := `
database:
  host: localhost
  user: u
  password: p
  dbname: d
nats:
  url: "nats://localhost:4222"
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))

	cfg, err := LoadBridgeConfig(configFile, "")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "event-bridge", cfg.NATS.ConsumerName)
	assert.Equal(t, 30*time.Second, cfg.NATS.AckWait)
	assert.Equal(t, 3, cfg.NATS.MaxDeliver)
	assert.Equal(t, "MARKETPLACE_EVENTS", cfg.NATS.StreamName)
}

func TestLoadEmitterConfigs(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	content := `
database:
  host: localhost
  user: u
  password: p
  dbname: d
nats:
  url: "nats://localhost:4222"
ethereum:
  websocket_url: "ws://localhost:8545"
  rpc_url: "http://localhost:8545"
  contract_address: "0x396343362be2A4dA1cE0C1C210945346fb82Aa49"
  start_block: 1000
hedera:
  collection_token_id: "0.0.4521"
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))

	ethCfg, err := LoadEthereumEmitterConfig(configFile, "")
	require.NoError(t, err)
	assert.Equal(t, "ws://localhost:8545", ethCfg.Ethereum.WebSocketURL)
	assert.Equal(t, uint64(1000), ethCfg.Ethereum.StartBlock)
	assert.Equal(t, "eip155:1", string(ethCfg.Ethereum.ChainID))
	assert.Equal(t, 20, ethCfg.Worker.WorkerPoolSize)

	hCfg, err := LoadHederaEmitterConfig(configFile, "")
	require.NoError(t, err)
	assert.Equal(t, "0.0.4521", hCfg.Hedera.CollectionTokenID)
	assert.Equal(t, 10*time.Second, hCfg.Hedera.PollInterval)
	assert.Equal(t, "hedera:mainnet", string(hCfg.Hedera.ChainID))
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := tt.config.DSN()
			assert.Equal(t, tt.expected, dsn)
		})
	}
}

func TestDatabaseConfig_ReadDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "primary",
		Port:     5432,
		ReadHost: "replica",
		User:     "u",
		Password: "p",
		DBName:   "d",
		SSLMode:  "disable",
	}

	// ReadPort falls back to Port when unset
	assert.Equal(t,
		"host=replica port=5432 user=u password=p dbname=d sslmode=disable",
		cfg.ReadDSN())

	cfg.ReadPort = 5433
	assert.Equal(t,
		"host=replica port=5433 user=u password=p dbname=d sslmode=disable",
		cfg.ReadDSN())
}

func TestVaultConfig_VaultKeys(t *testing.T) {
	tests := []struct {
		name        string
		entries     []string
		expectError bool
		expected    map[string]string
	}{
		{
			name:     "single key",
			entries:  []string{"k1:c2VjcmV0"},
			expected: map[string]string{"k1": "c2VjcmV0"},
		},
		{
			name:     "multiple keys for rotation",
			entries:  []string{"k1:b2xk", "k2:bmV3"},
			expected: map[string]string{"k1": "b2xk", "k2": "bmV3"},
		},
		{
			name:        "missing separator",
			entries:     []string{"k1c2VjcmV0"},
			expectError: true,
		},
		{
			name:        "empty key id",
			entries:     []string{":c2VjcmV0"},
			expectError: true,
		},
		{
			name:        "empty key material",
			entries:     []string{"k1:"},
			expectError: true,
		},
		{
			name:     "no keys",
			entries:  nil,
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := VaultConfig{Keys: tt.entries}
			keys, err := cfg.VaultKeys()
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, keys)
		})
	}
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	// Create temporary directory for env files
	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// Create .env file with environment variables
	// Note: Viper uses DRIGHT_ prefix, so env vars need the prefix
	envFile := filepath.Join(envDir, ".env")
	envContent := `DRIGHT_DEBUG=true
DRIGHT_DATABASE_HOST=env-host
DRIGHT_DATABASE_PORT=3306
DRIGHT_DATABASE_USER=env-user
DRIGHT_DATABASE_PASSWORD=env-pass
DRIGHT_DATABASE_DBNAME=env-db
DRIGHT_DATABASE_SSLMODE=require
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)

	// Create config file with different values to verify env vars override
	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
  user: file-user
  password: file-pass
  dbname: file-db
  sslmode: disable
`

	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	// Load config with envPath pointing to the temporary env directory
	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Env vars loaded through godotenv.Overload take precedence over file values
	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "env-user", cfg.Database.User)
	assert.Equal(t, "env-pass", cfg.Database.Password)
	assert.Equal(t, "env-db", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
}
