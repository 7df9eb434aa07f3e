package ratelimit_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/dright/marketplace/internal/config"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/mocks"
	"github.com/dright/marketplace/internal/ratelimit"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testProxyMocks contains all the mocks needed for testing the proxy
type testProxyMocks struct {
	ctrl             *gomock.Controller
	redisClient      *mocks.MockRedisClient
	redisRateLimiter *mocks.MockRedisRateLimiter
	clock            *mocks.MockClock
}

// setupTestProxy creates all the mocks for testing
func setupTestProxy(t *testing.T) *testProxyMocks {
	ctrl := gomock.NewController(t)

	tm := &testProxyMocks{
		ctrl:             ctrl,
		redisClient:      mocks.NewMockRedisClient(ctrl),
		redisRateLimiter: mocks.NewMockRedisRateLimiter(ctrl),
		clock:            mocks.NewMockClock(ctrl),
	}

	return tm
}

// tearDownTestProxy cleans up the test mocks
func tearDownTestProxy(mocks *testProxyMocks) {
	mocks.ctrl.Finish()
}

func testConfig() config.RateLimiterConfig {
	return config.RateLimiterConfig{
		RedisURL:  "localhost:6379",
		PoolSize:  10,
		QueueSize: 100,
		Providers: map[string]config.RateLimitConfig{
			"mirror": {
				RPS:   10,
				Burst: 20,
			},
		},
	}
}

// setupProxyWithRedis creates a proxy against the mocked Redis client
func setupProxyWithRedis(t *testing.T, tm *testProxyMocks, cfg config.RateLimiterConfig, redisUp bool) (ratelimit.Proxy, *time.Ticker) {
	statusCmd := redis.NewStatusCmd(context.Background())
	if redisUp {
		statusCmd.SetVal("PONG")
	} else {
		statusCmd.SetErr(errors.New("connection refused"))
	}
	tm.redisClient.EXPECT().
		Ping(gomock.Any()).
		Return(statusCmd)

	tm.redisClient.EXPECT().
		NewRateLimiter().
		Return(tm.redisRateLimiter)

	// Ticker for the health monitoring goroutine
	ticker := time.NewTicker(10 * time.Second)
	tm.clock.EXPECT().
		NewTicker(10 * time.Second).
		Return(ticker)

	proxy, err := ratelimit.NewProxy(cfg, tm.redisClient, tm.clock)
	assert.NoError(t, err)

	// Give the monitoring goroutine time to start
	time.Sleep(15 * time.Millisecond)

	return proxy, ticker
}

func TestNewProxy_Success(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	proxy, ticker := setupProxyWithRedis(t, tm, testConfig(), true)
	assert.NotNil(t, proxy)

	ticker.Stop()
	tm.redisClient.EXPECT().Close().Return(nil).AnyTimes()
	_ = proxy.Close()
}

func TestNewProxy_NoRedis_LimitsLocally(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	cfg := testConfig()
	cfg.RedisURL = ""

	proxy, err := ratelimit.NewProxy(cfg, nil, tm.clock)
	assert.NoError(t, err)
	assert.NotNil(t, proxy)

	// Requests go through the local token bucket
	result, err := proxy.Request(context.Background(), "mirror", func(ctx context.Context) (interface{}, error) {
		return "ok", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "ok", result)

	_ = proxy.Close()
}

func TestNewProxy_InvalidConfig_NoProviders(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	cfg := testConfig()
	cfg.Providers = map[string]config.RateLimitConfig{}

	proxy, err := ratelimit.NewProxy(cfg, tm.redisClient, tm.clock)

	assert.Error(t, err)
	assert.Nil(t, proxy)
	assert.Contains(t, err.Error(), "at least one provider must be configured")
}

func TestNewProxy_InvalidConfig_InvalidRPS(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	cfg := testConfig()
	cfg.Providers = map[string]config.RateLimitConfig{
		"mirror": {RPS: 0},
	}

	proxy, err := ratelimit.NewProxy(cfg, tm.redisClient, tm.clock)

	assert.Error(t, err)
	assert.Nil(t, proxy)
	assert.Contains(t, err.Error(), "rps must be positive")
}

func TestProxy_Request_DistributedAllow(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	proxy, ticker := setupProxyWithRedis(t, tm, testConfig(), true)
	defer ticker.Stop()

	tm.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), "dright:market:limiter:mirror", gomock.Any()).
		Return(&redis_rate.Result{Allowed: 1, Remaining: 9}, nil)

	result, err := proxy.Request(context.Background(), "mirror", func(ctx context.Context) (interface{}, error) {
		return 42, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 42, result)

	tm.redisClient.EXPECT().Close().Return(nil).AnyTimes()
	_ = proxy.Close()
}

func TestProxy_Request_DeniedThenAllowed(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	proxy, ticker := setupProxyWithRedis(t, tm, testConfig(), true)
	defer ticker.Stop()

	// First attempt is rate limited, the retry succeeds
	gomock.InOrder(
		tm.redisRateLimiter.EXPECT().
			Allow(gomock.Any(), "dright:market:limiter:mirror", gomock.Any()).
			Return(&redis_rate.Result{Allowed: 0, RetryAfter: 10 * time.Millisecond}, nil),
		tm.redisRateLimiter.EXPECT().
			Allow(gomock.Any(), "dright:market:limiter:mirror", gomock.Any()).
			Return(&redis_rate.Result{Allowed: 1}, nil),
	)

	// Jittered sleep fires immediately
	tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		ch <- time.Now()
		return ch
	})

	result, err := proxy.Request(context.Background(), "mirror", func(ctx context.Context) (interface{}, error) {
		return "retried", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "retried", result)

	tm.redisClient.EXPECT().Close().Return(nil).AnyTimes()
	_ = proxy.Close()
}

func TestProxy_Request_RedisErrorFallsBackToLocal(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	proxy, ticker := setupProxyWithRedis(t, tm, testConfig(), true)
	defer ticker.Stop()

	tm.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), "dright:market:limiter:mirror", gomock.Any()).
		Return(nil, errors.New("redis gone"))

	// After the Redis error the local limiter admits the request
	result, err := proxy.Request(context.Background(), "mirror", func(ctx context.Context) (interface{}, error) {
		return "local", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "local", result)

	tm.redisClient.EXPECT().Close().Return(nil).AnyTimes()
	_ = proxy.Close()
}

func TestProxy_Request_UnknownProvider(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	proxy, ticker := setupProxyWithRedis(t, tm, testConfig(), true)
	defer ticker.Stop()

	result, err := proxy.Request(context.Background(), "nope", func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "provider 'nope' not configured")

	tm.redisClient.EXPECT().Close().Return(nil).AnyTimes()
	_ = proxy.Close()
}

func TestProxy_Request_AfterClose(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	proxy, ticker := setupProxyWithRedis(t, tm, testConfig(), true)
	defer ticker.Stop()

	tm.redisClient.EXPECT().Close().Return(nil)
	assert.NoError(t, proxy.Close())

	_, err := proxy.Request(context.Background(), "mirror", func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "proxy is closed")
}

func TestRequest_TypedHelper(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	proxy, ticker := setupProxyWithRedis(t, tm, testConfig(), true)
	defer ticker.Stop()

	tm.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&redis_rate.Result{Allowed: 1}, nil)

	value, err := ratelimit.Request(context.Background(), proxy, "mirror", func(ctx context.Context) (string, error) {
		return "typed", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "typed", value)

	tm.redisClient.EXPECT().Close().Return(nil).AnyTimes()
	_ = proxy.Close()
}

func TestRequest_NilProxyExecutesDirectly(t *testing.T) {
	value, err := ratelimit.Request(context.Background(), nil, "mirror", func(ctx context.Context) (int, error) {
		return 7, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 7, value)
}
