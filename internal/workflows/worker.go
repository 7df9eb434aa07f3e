package workflows

import (
	"go.temporal.io/sdk/workflow"

	"github.com/dright/marketplace/internal/domain"
)

// TransferRightInput carries everything the transfer workflow needs to move
// a sold right on chain and settle its ledger entries
type TransferRightInput struct {
	// RightID is the right being transferred
	RightID string
	// Ref is the on-chain token reference
	Ref domain.NFTRef
	// FromAddress is the current holder's wallet
	FromAddress string
	// ToAddress is the new holder's wallet
	ToAddress string
	// PurchaseRef is the pending purchase ledger entry to confirm
	PurchaseRef string
	// RoyaltyRef is the pending royalty ledger entry to confirm (empty when no royalty)
	RoyaltyRef string
	// Price is the sale amount in base units
	Price string
	// Settlement marks auction settlements; they publish auction.settled too
	Settlement bool
}

// DeliverWebhookInput carries the event to deliver to a single webhook client
type DeliverWebhookInput struct {
	ClientID string
	Event    domain.MarketplaceEvent
}

// WorkerCore defines the marketplace workflows
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockCoreWorker
type WorkerCore interface {
	// MintRight pins metadata, mints the NFT, records the result, and
	// publishes the mint events for a draft right
	MintRight(ctx workflow.Context, rightID string) error

	// TransferRight moves a sold right on chain, confirms its ledger
	// entries, and publishes the sale events
	TransferRight(ctx workflow.Context, input TransferRightInput) error

	// SettleAuction closes an ended auction: the highest active bid wins,
	// or the listing reverts to a fixed price when nobody bid
	SettleAuction(ctx workflow.Context, rightID string) error

	// DistributeRevenue pays one scheduled distribution out to the right's
	// active stakers pro rata
	DistributeRevenue(ctx workflow.Context, distributionID int64) error

	// ProcessMarketplaceEvent fans a bus event out to notifications,
	// ownership reconciliation, and webhook clients
	ProcessMarketplaceEvent(ctx workflow.Context, event *domain.MarketplaceEvent) error

	// NotifyWebhookClients starts a delivery workflow per webhook client
	// subscribed to the event's type
	NotifyWebhookClients(ctx workflow.Context, event *domain.MarketplaceEvent) error

	// DeliverWebhook delivers one event to one webhook client with retries
	DeliverWebhook(ctx workflow.Context, input DeliverWebhookInput) error
}

type WorkerCoreConfig struct {
	// HederaChainID is the CAIP-2 chain ID for the Hedera network in use
	HederaChainID domain.Chain
	// EthereumChainID is the CAIP-2 chain ID for the Ethereum network in use
	EthereumChainID domain.Chain
	// MarketTaskQueue is the task queue child workflows are started on
	MarketTaskQueue string
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	config   WorkerCoreConfig
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor, config WorkerCoreConfig) WorkerCore {
	return &workerCore{
		executor: executor,
		config:   config,
	}
}
