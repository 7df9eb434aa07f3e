package messaging

import (
	"context"

	"github.com/dright/marketplace/internal/domain"
)

// EventHandler is called when a new chain transfer event is observed.
// cursor is the chain position the event was read at (block number on
// Ethereum, consensus timestamp seconds on Hedera) and is used for
// resumable checkpointing.
type EventHandler func(event *domain.MarketplaceEvent, cursor uint64) error

// Subscriber defines the common interface for watching on-chain transfers of
// marketplace tokens. Both the Ethereum and Hedera emitters implement it.
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// SubscribeEvents subscribes to transfer events of the marketplace
	// collection. fromBlock is the starting block (Ethereum) or consensus
	// timestamp cursor (Hedera); 0 means latest. handler is called once
	// per observed transfer.
	SubscribeEvents(ctx context.Context, fromBlock uint64, handler EventHandler) error

	// GetLatestBlock returns the latest block number (Ethereum) or the
	// current cursor position (Hedera)
	GetLatestBlock(ctx context.Context) (uint64, error)

	// Close closes the connection and cleans up resources
	Close()
}
