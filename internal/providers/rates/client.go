package rates

import (
	"context"
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/ratelimit"
)

const PROVIDER_NAME = "rates"

// coinIDs maps a blockchain to the spot price API's asset identifier.
var coinIDs = map[domain.Blockchain]string{
	domain.BlockchainHedera:   "hedera-hashgraph",
	domain.BlockchainEthereum: "ethereum",
}

// Client fetches spot prices for fiat display estimates. Prices are cached
// for the configured TTL; a stale price is served when a refresh fails.
//
//go:generate mockgen -source=client.go -destination=../../mocks/rates_client.go -package=mocks -mock_names=Client=MockRatesClient
type Client interface {
	// USDRate returns the spot USD price of the chain's native currency.
	USDRate(ctx context.Context, blockchain domain.Blockchain) (float64, error)

	// EstimateUSD converts a base-unit amount into a USD display string.
	EstimateUSD(ctx context.Context, blockchain domain.Blockchain, amount domain.Amount) (string, error)
}

// Config holds rates client configuration
type Config struct {
	APIURL string
	TTL    time.Duration
}

type cachedRate struct {
	rate      float64
	fetchedAt time.Time
}

type ratesClient struct {
	config         Config
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	clock          adapter.Clock

	mu    sync.Mutex
	cache map[domain.Blockchain]cachedRate
}

// NewClient creates a new spot price client
func NewClient(config Config, httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, clock adapter.Clock) Client {
	if config.TTL <= 0 {
		config.TTL = time.Minute
	}
	return &ratesClient{
		config:         config,
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		clock:          clock,
		cache:          make(map[domain.Blockchain]cachedRate),
	}
}

func (c *ratesClient) USDRate(ctx context.Context, blockchain domain.Blockchain) (float64, error) {
	coinID, ok := coinIDs[blockchain]
	if !ok {
		return 0, fmt.Errorf("no spot price asset for blockchain %s", blockchain)
	}

	c.mu.Lock()
	cached, hit := c.cache[blockchain]
	c.mu.Unlock()
	if hit && c.clock.Since(cached.fetchedAt) < c.config.TTL {
		return cached.rate, nil
	}

	rate, err := c.fetchRate(ctx, coinID)
	if err != nil {
		// Serve the stale price over failing a display-only lookup
		if hit {
			return cached.rate, nil
		}
		return 0, err
	}

	c.mu.Lock()
	c.cache[blockchain] = cachedRate{rate: rate, fetchedAt: c.clock.Now()}
	c.mu.Unlock()
	return rate, nil
}

func (c *ratesClient) EstimateUSD(ctx context.Context, blockchain domain.Blockchain, amount domain.Amount) (string, error) {
	rate, err := c.USDRate(ctx, blockchain)
	if err != nil {
		return "", err
	}

	v, err := amount.BigInt()
	if err != nil {
		return "", err
	}

	decimals := domain.CurrencyDecimals(blockchain)
	scale := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))

	usd := new(big.Float).SetInt(v)
	usd.Mul(usd, big.NewFloat(rate))
	usd.Quo(usd, scale)
	return usd.Text('f', 2), nil
}

// fetchRate calls the spot price API (CoinGecko simple/price shape).
func (c *ratesClient) fetchRate(ctx context.Context, coinID string) (float64, error) {
	reqURL := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd",
		strings.TrimSuffix(c.config.APIURL, "/"),
		url.QueryEscape(coinID),
	)

	// Response shape: {"<coin-id>": {"usd": 0.23}}
	result, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) (map[string]map[string]float64, error) {
		var prices map[string]map[string]float64
		if err := c.httpClient.Get(ctx, reqURL, &prices); err != nil {
			return nil, err
		}
		return prices, nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to call rates API: %w", err)
	}

	rate, ok := result[coinID]["usd"]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("rates API returned no USD price for %s", coinID)
	}
	return rate, nil
}
