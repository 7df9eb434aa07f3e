package block_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dright/marketplace/internal/block"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// Mainnet-ish fixtures. TTL mirrors the Ethereum block cadence the emitter
// config defaults to.
var (
	t0        = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	headBlock = uint64(19_250_000)
)

func newProvider(t *testing.T, cfg block.Config) (block.BlockProvider, *mocks.MockBlockFetcher, *mocks.MockClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	fetcher := mocks.NewMockBlockFetcher(ctrl)
	clock := mocks.NewMockClock(ctrl)
	return block.NewBlockProvider(fetcher, cfg, clock), fetcher, clock
}

func headConfig() block.Config {
	return block.Config{
		TTL:         12 * time.Second,
		StaleWindow: time.Minute,
	}
}

func TestGetLatestBlock_FetchesOnFirstCall(t *testing.T) {
	provider, fetcher, clock := newProvider(t, headConfig())
	ctx := context.Background()

	clock.EXPECT().Now().Return(t0)
	fetcher.EXPECT().FetchLatestBlock(ctx).Return(headBlock, nil)

	got, err := provider.GetLatestBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, headBlock, got)
}

func TestGetLatestBlock_CacheBehavior(t *testing.T) {
	tests := []struct {
		name      string
		elapsed   time.Duration
		refetched bool
	}{
		{name: "within TTL serves cached head", elapsed: 6 * time.Second, refetched: false},
		{name: "past TTL refetches", elapsed: 13 * time.Second, refetched: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, fetcher, clock := newProvider(t, headConfig())
			ctx := context.Background()

			clock.EXPECT().Now().Return(t0)
			fetcher.EXPECT().FetchLatestBlock(ctx).Return(headBlock, nil)
			first, err := provider.GetLatestBlock(ctx)
			require.NoError(t, err)
			require.Equal(t, headBlock, first)

			clock.EXPECT().Now().Return(t0.Add(tt.elapsed))
			want := headBlock
			if tt.refetched {
				want = headBlock + 1
				fetcher.EXPECT().FetchLatestBlock(ctx).Return(want, nil)
			}

			second, err := provider.GetLatestBlock(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, second)
		})
	}
}

func TestGetLatestBlock_FetchFailure(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    uint64
		wantErr bool
	}{
		// Cache is 30s old, StaleWindow is 1m: stale head is still usable
		{name: "stale head within window", elapsed: 30 * time.Second, want: headBlock},
		// Cache is 3m old: too stale to trust for backfill ranges
		{name: "stale head past window errors", elapsed: 3 * time.Minute, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, fetcher, clock := newProvider(t, headConfig())
			ctx := context.Background()

			clock.EXPECT().Now().Return(t0)
			fetcher.EXPECT().FetchLatestBlock(ctx).Return(headBlock, nil)
			_, err := provider.GetLatestBlock(ctx)
			require.NoError(t, err)

			clock.EXPECT().Now().Return(t0.Add(tt.elapsed))
			fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(0), errors.New("rpc unreachable"))

			got, err := provider.GetLatestBlock(ctx)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "no valid cache available")
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetLatestBlock_ErrorsWithColdCache(t *testing.T) {
	provider, fetcher, clock := newProvider(t, headConfig())
	ctx := context.Background()

	clock.EXPECT().Now().Return(t0)
	fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(0), errors.New("rpc unreachable"))

	got, err := provider.GetLatestBlock(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch latest block and no valid cache available")
	assert.Zero(t, got)
}

func TestGetLatestBlock_Concurrent(t *testing.T) {
	provider, fetcher, clock := newProvider(t, headConfig())
	ctx := context.Background()

	fetcher.EXPECT().FetchLatestBlock(ctx).Return(headBlock, nil).AnyTimes()
	clock.EXPECT().Now().Return(t0).AnyTimes()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := provider.GetLatestBlock(ctx)
			assert.NoError(t, err)
			assert.Equal(t, headBlock, got)
		}()
	}
	wg.Wait()
}

func TestGetBlockTimestamp_CachesForever_ByDefault(t *testing.T) {
	// Zero BlockTimestampTTL means confirmed timestamps never expire
	provider, fetcher, clock := newProvider(t, headConfig())
	ctx := context.Background()
	mined := t0.Add(-time.Hour)

	clock.EXPECT().Now().Return(t0)
	fetcher.EXPECT().FetchBlockTimestamp(ctx, headBlock).Return(mined, nil)

	got, err := provider.GetBlockTimestamp(ctx, headBlock)
	require.NoError(t, err)
	assert.Equal(t, mined, got)

	// A week later the cached timestamp is still served
	clock.EXPECT().Now().Return(t0.Add(7 * 24 * time.Hour))
	got, err = provider.GetBlockTimestamp(ctx, headBlock)
	require.NoError(t, err)
	assert.Equal(t, mined, got)
}

func TestGetBlockTimestamp_WithTTL(t *testing.T) {
	cfg := headConfig()
	cfg.BlockTimestampTTL = 30 * time.Second
	mined := t0.Add(-time.Hour)
	reorged := mined.Add(time.Second)

	t.Run("refetches after expiry", func(t *testing.T) {
		provider, fetcher, clock := newProvider(t, cfg)
		ctx := context.Background()

		clock.EXPECT().Now().Return(t0)
		fetcher.EXPECT().FetchBlockTimestamp(ctx, headBlock).Return(mined, nil)
		got, err := provider.GetBlockTimestamp(ctx, headBlock)
		require.NoError(t, err)
		require.Equal(t, mined, got)

		clock.EXPECT().Now().Return(t0.Add(31 * time.Second))
		fetcher.EXPECT().FetchBlockTimestamp(ctx, headBlock).Return(reorged, nil)
		got, err = provider.GetBlockTimestamp(ctx, headBlock)
		require.NoError(t, err)
		assert.Equal(t, reorged, got)
	})

	t.Run("serves stale timestamp when refetch fails", func(t *testing.T) {
		provider, fetcher, clock := newProvider(t, cfg)
		ctx := context.Background()

		clock.EXPECT().Now().Return(t0)
		fetcher.EXPECT().FetchBlockTimestamp(ctx, headBlock).Return(mined, nil)
		_, err := provider.GetBlockTimestamp(ctx, headBlock)
		require.NoError(t, err)

		clock.EXPECT().Now().Return(t0.Add(45 * time.Second))
		fetcher.EXPECT().FetchBlockTimestamp(ctx, headBlock).Return(time.Time{}, errors.New("rpc unreachable"))
		got, err := provider.GetBlockTimestamp(ctx, headBlock)
		require.NoError(t, err)
		assert.Equal(t, mined, got)
	})
}

func TestGetBlockTimestamp_ErrorsWithColdCache(t *testing.T) {
	provider, fetcher, clock := newProvider(t, headConfig())
	ctx := context.Background()

	clock.EXPECT().Now().Return(t0)
	fetcher.EXPECT().FetchBlockTimestamp(ctx, headBlock).Return(time.Time{}, errors.New("rpc unreachable"))

	got, err := provider.GetBlockTimestamp(ctx, headBlock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid cache available")
	assert.True(t, got.IsZero())
}

func TestGetBlockTimestamp_PerBlockEntries(t *testing.T) {
	provider, fetcher, clock := newProvider(t, headConfig())
	ctx := context.Background()
	minedA := t0.Add(-2 * time.Hour)
	minedB := t0.Add(-time.Hour)

	clock.EXPECT().Now().Return(t0).Times(2)
	fetcher.EXPECT().FetchBlockTimestamp(ctx, headBlock).Return(minedA, nil)
	fetcher.EXPECT().FetchBlockTimestamp(ctx, headBlock+500).Return(minedB, nil)

	gotA, err := provider.GetBlockTimestamp(ctx, headBlock)
	require.NoError(t, err)
	gotB, err := provider.GetBlockTimestamp(ctx, headBlock+500)
	require.NoError(t, err)
	assert.Equal(t, minedA, gotA)
	assert.Equal(t, minedB, gotB)

	// Earlier block stays cached independently of the later one
	clock.EXPECT().Now().Return(t0.Add(time.Hour))
	gotA, err = provider.GetBlockTimestamp(ctx, headBlock)
	require.NoError(t, err)
	assert.Equal(t, minedA, gotA)
}

func TestGetBlockTimestamp_Concurrent(t *testing.T) {
	provider, fetcher, clock := newProvider(t, headConfig())
	ctx := context.Background()
	mined := t0.Add(-time.Hour)

	fetcher.EXPECT().FetchBlockTimestamp(ctx, headBlock).Return(mined, nil).AnyTimes()
	clock.EXPECT().Now().Return(t0).AnyTimes()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := provider.GetBlockTimestamp(ctx, headBlock)
			assert.NoError(t, err)
			assert.Equal(t, mined, got)
		}()
	}
	wg.Wait()
}
