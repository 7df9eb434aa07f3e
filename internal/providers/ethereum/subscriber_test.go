package ethereum_test

import (
	"context"
	"testing"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/messaging"
	"github.com/dright/marketplace/internal/mocks"
	"github.com/dright/marketplace/internal/providers/ethereum"
)

// fakeSubscription satisfies the geth subscription interface for tests
type fakeSubscription struct {
	errCh chan error
}

func newFakeSubscription() *fakeSubscription {
	return &fakeSubscription{errCh: make(chan error, 1)}
}

func (f *fakeSubscription) Unsubscribe()      {}
func (f *fakeSubscription) Err() <-chan error { return f.errCh }

var _ goethereum.Subscription = (*fakeSubscription)(nil)

type testEthSubscriberMocks struct {
	ctrl       *gomock.Controller
	client     *mocks.MockEthereumClient
	blocks     *mocks.MockBlockProvider
	subscriber messaging.Subscriber
}

func setupEthSubscriber(t *testing.T) *testEthSubscriberMocks {
	ctrl := gomock.NewController(t)
	tm := &testEthSubscriberMocks{
		ctrl:   ctrl,
		client: mocks.NewMockEthereumClient(ctrl),
		blocks: mocks.NewMockBlockProvider(ctrl),
	}
	tm.subscriber = ethereum.NewSubscriber(ethereum.Config{
		WebSocketURL: "wss://sepolia.example.com/ws",
		ChainID:      domain.ChainEthereumSepolia,
	}, tm.client, tm.blocks)
	return tm
}

func subscriberTransferEvent(blockNumber uint64) *domain.MarketplaceEvent {
	return &domain.MarketplaceEvent{
		EventType:    domain.EventRightTransferred,
		Chain:        domain.ChainEthereumSepolia,
		Ref:          domain.NewNFTRef(domain.ChainEthereumSepolia, testContractAddress, "7"),
		Actor:        "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
		Counterparty: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		TxHash:       common.HexToHash("0xabc").Hex(),
		Timestamp:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSubscriber_GetLatestBlock(t *testing.T) {
	tm := setupEthSubscriber(t)
	defer tm.ctrl.Finish()

	tm.blocks.EXPECT().
		GetLatestBlock(gomock.Any()).
		Return(uint64(4_200_000), nil)

	head, err := tm.subscriber.GetLatestBlock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(4_200_000), head)
}

func TestSubscriber_GetLatestBlock_Error(t *testing.T) {
	tm := setupEthSubscriber(t)
	defer tm.ctrl.Finish()

	tm.blocks.EXPECT().
		GetLatestBlock(gomock.Any()).
		Return(uint64(0), assert.AnError)

	_, err := tm.subscriber.GetLatestBlock(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get latest block")
}

func TestSubscribeEvents_BackfillsThenStreams(t *testing.T) {
	tm := setupEthSubscriber(t)
	defer tm.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backfillLog := types.Log{BlockNumber: 60, TxHash: common.HexToHash("0x1")}
	liveLog := types.Log{BlockNumber: 101, TxHash: common.HexToHash("0x2")}

	tm.blocks.EXPECT().
		GetLatestBlock(gomock.Any()).
		Return(uint64(100), nil)
	tm.client.EXPECT().
		FilterTransfers(gomock.Any(), uint64(50), uint64(100)).
		Return([]types.Log{backfillLog}, nil)
	tm.client.EXPECT().
		ParseTransferLog(gomock.Any(), backfillLog).
		Return(subscriberTransferEvent(60), nil)
	tm.client.EXPECT().
		ParseTransferLog(gomock.Any(), liveLog).
		Return(subscriberTransferEvent(101), nil)

	sub := newFakeSubscription()
	tm.client.EXPECT().
		SubscribeTransfers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ch chan<- types.Log) (goethereum.Subscription, error) {
			go func() {
				ch <- liveLog
			}()
			return sub, nil
		})

	var cursors []uint64
	handler := func(event *domain.MarketplaceEvent, cursor uint64) error {
		require.NotNil(t, event)
		assert.Equal(t, domain.EventRightTransferred, event.EventType)
		cursors = append(cursors, cursor)
		if len(cursors) == 2 {
			cancel()
		}
		return nil
	}

	err := tm.subscriber.SubscribeEvents(ctx, 50, handler)
	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, []uint64{60, 101}, cursors)
}

func TestSubscribeEvents_NoBackfillFromChainHead(t *testing.T) {
	tm := setupEthSubscriber(t)
	defer tm.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.blocks.EXPECT().
		GetLatestBlock(gomock.Any()).
		Return(uint64(100), nil)

	sub := newFakeSubscription()
	tm.client.EXPECT().
		SubscribeTransfers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ch chan<- types.Log) (goethereum.Subscription, error) {
			cancel()
			return sub, nil
		})

	err := tm.subscriber.SubscribeEvents(ctx, 0, func(event *domain.MarketplaceEvent, cursor uint64) error {
		t.Fatal("No events expected")
		return nil
	})
	assert.Equal(t, context.Canceled, err)
}

func TestSubscribeEvents_SkipsOtherContracts(t *testing.T) {
	tm := setupEthSubscriber(t)
	defer tm.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	foreignLog := types.Log{BlockNumber: 101, TxHash: common.HexToHash("0x3")}

	tm.blocks.EXPECT().
		GetLatestBlock(gomock.Any()).
		Return(uint64(100), nil)

	// Logs from other contracts parse to nil and are dropped
	tm.client.EXPECT().
		ParseTransferLog(gomock.Any(), foreignLog).
		DoAndReturn(func(context.Context, types.Log) (*domain.MarketplaceEvent, error) {
			go cancel()
			return nil, nil
		})

	sub := newFakeSubscription()
	tm.client.EXPECT().
		SubscribeTransfers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ch chan<- types.Log) (goethereum.Subscription, error) {
			go func() {
				ch <- foreignLog
			}()
			return sub, nil
		})

	err := tm.subscriber.SubscribeEvents(ctx, 0, func(event *domain.MarketplaceEvent, cursor uint64) error {
		t.Fatal("No events expected")
		return nil
	})
	assert.Equal(t, context.Canceled, err)
}

func TestSubscribeEvents_SubscribeError(t *testing.T) {
	tm := setupEthSubscriber(t)
	defer tm.ctrl.Finish()

	tm.blocks.EXPECT().
		GetLatestBlock(gomock.Any()).
		Return(uint64(100), nil)
	tm.client.EXPECT().
		SubscribeTransfers(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	err := tm.subscriber.SubscribeEvents(context.Background(), 0, func(*domain.MarketplaceEvent, uint64) error {
		return nil
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to subscribe to transfer logs")
}

func TestSubscribeEvents_SubscriptionFailure(t *testing.T) {
	tm := setupEthSubscriber(t)
	defer tm.ctrl.Finish()

	tm.blocks.EXPECT().
		GetLatestBlock(gomock.Any()).
		Return(uint64(100), nil)

	sub := newFakeSubscription()
	tm.client.EXPECT().
		SubscribeTransfers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, chan<- types.Log) (goethereum.Subscription, error) {
			sub.errCh <- assert.AnError
			return sub, nil
		})

	err := tm.subscriber.SubscribeEvents(context.Background(), 0, func(*domain.MarketplaceEvent, uint64) error {
		return nil
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "subscription error")
}

func TestSubscriber_Close(t *testing.T) {
	tm := setupEthSubscriber(t)
	defer tm.ctrl.Finish()

	tm.client.EXPECT().Close()
	tm.subscriber.Close()
}
