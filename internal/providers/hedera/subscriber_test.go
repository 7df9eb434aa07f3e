package hedera_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/messaging"
	"github.com/dright/marketplace/internal/mocks"
	"github.com/dright/marketplace/internal/providers/hedera"
)

const testTokenID = "0.0.5005"

type testSubscriberMocks struct {
	ctrl       *gomock.Controller
	mirror     *mocks.MockMirrorClient
	clock      *mocks.MockClock
	subscriber messaging.Subscriber
}

func setupSubscriber(t *testing.T) *testSubscriberMocks {
	ctrl := gomock.NewController(t)

	tm := &testSubscriberMocks{
		ctrl:   ctrl,
		mirror: mocks.NewMockMirrorClient(ctrl),
		clock:  mocks.NewMockClock(ctrl),
	}

	tm.subscriber = hedera.NewSubscriber(hedera.SubscriberConfig{
		ChainID:      domain.ChainHederaTestnet,
		TokenID:      testTokenID,
		PollInterval: time.Second,
		PageSize:     100,
	}, tm.mirror, tm.clock)

	return tm
}

func tearDownSubscriber(tm *testSubscriberMocks) {
	tm.ctrl.Finish()
}

// blockAfter makes clock.After block until the context is canceled so a
// test observes exactly one sweep
func blockAfter(tm *testSubscriberMocks) {
	tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		return make(chan time.Time)
	}).AnyTimes()
}

func TestSubscriber_GetLatestBlock_ReturnsCurrentTime(t *testing.T) {
	tm := setupSubscriber(t)
	defer tearDownSubscriber(tm)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)

	cursor, err := tm.subscriber.GetLatestBlock(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, uint64(now.Unix()), cursor)
}

func TestSubscriber_SweepHandlesTransfers(t *testing.T) {
	tm := setupSubscriber(t)
	defer tearDownSubscriber(tm)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	blockAfter(tm)

	tm.mirror.EXPECT().
		CollectionSerials(gomock.Any(), testTokenID, int64(0), 100).
		Return([]hedera.NFTInfo{
			{TokenID: testTokenID, Serial: 7, ModifiedTimestamp: "1726240000.000000001"},
		}, nil)

	tm.mirror.EXPECT().
		NFTTransfers(gomock.Any(), testTokenID, int64(7), "1726239000.000000000").
		Return([]hedera.NFTTransfer{
			{
				ConsensusTimestamp: "1726240000.000000001",
				TransactionID:      "0.0.1111@1726240000.000000000",
				Type:               "CRYPTOTRANSFER",
				SenderAccountID:    "0.0.2001",
				ReceiverAccountID:  "0.0.2002",
			},
		}, nil)

	var handled []*domain.MarketplaceEvent
	handler := func(event *domain.MarketplaceEvent, cursor uint64) error {
		handled = append(handled, event)
		assert.Equal(t, uint64(1726240000), cursor)
		cancel()
		return nil
	}

	err := tm.subscriber.SubscribeEvents(ctx, 1726239000, handler)
	assert.Equal(t, context.Canceled, err)

	assert.Len(t, handled, 1)
	event := handled[0]
	assert.Equal(t, domain.EventRightTransferred, event.EventType)
	assert.Equal(t, domain.ChainHederaTestnet, event.Chain)
	assert.Equal(t, "hedera:testnet:0.0.5005:7", event.Ref.String())
	assert.Equal(t, "0.0.2001", event.Actor)
	assert.Equal(t, "0.0.2002", event.Counterparty)
	assert.Equal(t, "0.0.1111@1726240000.000000000", event.TxHash)
	assert.True(t, event.Valid())
}

func TestSubscriber_SweepSkipsMints(t *testing.T) {
	tm := setupSubscriber(t)
	defer tearDownSubscriber(tm)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		// The sweep found nothing to handle; stop after the first cycle
		cancel()
		return make(chan time.Time)
	}).AnyTimes()

	tm.mirror.EXPECT().
		CollectionSerials(gomock.Any(), testTokenID, int64(0), 100).
		Return([]hedera.NFTInfo{
			{TokenID: testTokenID, Serial: 7, ModifiedTimestamp: "1726240000.000000001"},
		}, nil)

	tm.mirror.EXPECT().
		NFTTransfers(gomock.Any(), testTokenID, int64(7), "1726239000.000000000").
		Return([]hedera.NFTTransfer{
			{
				ConsensusTimestamp: "1726240000.000000001",
				TransactionID:      "0.0.1111@1726240000.000000000",
				Type:               "TOKENMINT",
				ReceiverAccountID:  "0.0.2002",
			},
		}, nil)

	handler := func(event *domain.MarketplaceEvent, cursor uint64) error {
		t.Fatal("mint transfers must not reach the handler")
		return nil
	}

	err := tm.subscriber.SubscribeEvents(ctx, 1726239000, handler)
	assert.Equal(t, context.Canceled, err)
}

func TestSubscriber_SweepSkipsUntouchedSerials(t *testing.T) {
	tm := setupSubscriber(t)
	defer tearDownSubscriber(tm)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		cancel()
		return make(chan time.Time)
	}).AnyTimes()

	// Serial modified before the cursor: no per-serial fetch happens
	tm.mirror.EXPECT().
		CollectionSerials(gomock.Any(), testTokenID, int64(0), 100).
		Return([]hedera.NFTInfo{
			{TokenID: testTokenID, Serial: 7, ModifiedTimestamp: "1726238000.000000001"},
		}, nil)

	handler := func(event *domain.MarketplaceEvent, cursor uint64) error {
		t.Fatal("no transfers expected")
		return nil
	}

	err := tm.subscriber.SubscribeEvents(ctx, 1726239000, handler)
	assert.Equal(t, context.Canceled, err)
}

func TestSubscriber_SweepSurvivesMirrorErrors(t *testing.T) {
	tm := setupSubscriber(t)
	defer tearDownSubscriber(tm)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		cancel()
		return make(chan time.Time)
	}).AnyTimes()

	tm.mirror.EXPECT().
		CollectionSerials(gomock.Any(), testTokenID, int64(0), 100).
		Return(nil, assert.AnError)

	handler := func(event *domain.MarketplaceEvent, cursor uint64) error {
		t.Fatal("no transfers expected")
		return nil
	}

	// The sweep error is logged, not fatal; the loop exits via context
	err := tm.subscriber.SubscribeEvents(ctx, 1726239000, handler)
	assert.Equal(t, context.Canceled, err)
}
