package messaging

import (
	"context"

	"github.com/dright/marketplace/internal/domain"
)

// Publisher defines the interface for publishing events to the message bus
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a marketplace event to the message broker.
	// The event's EventID is assigned by the publisher when empty.
	PublishEvent(ctx context.Context, event *domain.MarketplaceEvent) error
	// Close closes the connection
	Close()
	// CloseChan returns a channel that is closed when the publisher is closed
	CloseChan() <-chan struct{}
}
