package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/providers/temporal"
	"github.com/dright/marketplace/internal/registry"
	"github.com/dright/marketplace/internal/workflows"
)

// Config holds the configuration for the event bridge
type Config struct {
	URL               string
	StreamName        string
	ConsumerName      string
	MaxReconnects     int
	ReconnectWait     time.Duration
	ConnectionName    string
	AckWaitTimeout    time.Duration
	MaxDeliver        int
	TemporalTaskQueue string
	// ModerationReloadInterval refreshes the runtime ban overlay; admin bans
	// land here without a redeploy. Zero disables reloading.
	ModerationReloadInterval time.Duration
}

// Bridge drains marketplace events off JetStream and fans each one out to a
// processing workflow. Notifications and webhook deliveries all hang off
// that workflow, so the bridge is the only NATS consumer.
type Bridge interface {
	// Run starts the event bridge
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc           adapter.NatsConn
	js           adapter.JetStream
	orchestrator temporal.TemporalOrchestrator
	json         adapter.JSON
	moderation   registry.Moderation
	config       Config
}

// NewBridge creates a new event bridge. moderation may be nil, in which case
// no events are dropped for bans.
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	orchestrator temporal.TemporalOrchestrator,
	jsonAdapter adapter.JSON,
	moderation registry.Moderation,
) (Bridge, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	b := &bridge{
		nc:           nc,
		js:           js,
		orchestrator: orchestrator,
		json:         jsonAdapter,
		moderation:   moderation,
		config:       cfg,
	}

	return b, nil
}

// Run starts the event bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.Info("Starting event bridge", zap.String("stream", b.config.StreamName), zap.String("consumer", b.config.ConsumerName))

	// Subjects are events.{chain}.{event_type}
	subject := "events.*.>"

	// Create or get consumer
	consumerConfig := jetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWaitTimeout,
		MaxDeliver:    b.config.MaxDeliver,
		FilterSubject: subject,
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	// Create subscription
	msgChan := make(chan adapter.Message, 100)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming messages")

	if b.moderation != nil && b.config.ModerationReloadInterval > 0 {
		go b.reloadModeration(ctx)
	}

	// Process messages
	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down event bridge")
			return ctx.Err()
		case msg := <-msgChan:
			// Spawn goroutine to handle message asynchronously
			go b.handleMessage(ctx, msg)
		}
	}
}

// handleMessage processes a single NATS message
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) {
	// Get metadata for logging
	var deliveryCount uint64
	if metadata, err := msg.Metadata(); err == nil && metadata != nil {
		deliveryCount = metadata.NumDelivered
	}

	// Parse event
	var event domain.MarketplaceEvent
	if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal event"))
		// Terminate message for unparseable data
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	logger.Info("Received event",
		zap.String("chain", string(event.Chain)),
		zap.String("eventType", string(event.EventType)),
		zap.String("eventID", event.EventID),
		zap.String("txHash", event.TxHash),
		zap.Uint64("deliveryCount", deliveryCount),
	)

	// Malformed events are rejected here rather than redelivered forever
	if !event.Valid() {
		logger.Warn("Dropping invalid event",
			zap.String("eventType", string(event.EventType)),
			zap.String("eventID", event.EventID),
		)
		if err := msg.Ack(); err != nil {
			logger.Error(err, zap.String("message", "Failed to ACK message"))
		}
		return
	}

	// Banned actors and blocked tokens stop here, before any fan-out
	if b.blocked(&event) {
		logger.Warn("Dropping event for blocked actor or ref",
			zap.String("eventType", string(event.EventType)),
			zap.String("eventID", event.EventID),
			zap.String("actor", event.Actor),
		)
		if err := msg.Ack(); err != nil {
			logger.Error(err, zap.String("message", "Failed to ACK message"))
		}
		return
	}

	// Forward to the processing workflow
	if err := b.forwardToWorker(ctx, &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to forward event to worker"))
		// NAK to retry
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	// ACK message after successful processing
	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

// blocked reports whether moderation rules exclude the event
func (b *bridge) blocked(event *domain.MarketplaceEvent) bool {
	if b.moderation == nil {
		return false
	}
	blockchain := event.Chain.Blockchain()
	if event.Actor != "" && b.moderation.IsAddressBlocked(blockchain, event.Actor) {
		return true
	}
	if event.Ref != "" && b.moderation.IsRefBlocked(event.Ref) {
		return true
	}
	return false
}

// reloadModeration refreshes the ban overlay until the context ends
func (b *bridge) reloadModeration(ctx context.Context) {
	ticker := time.NewTicker(b.config.ModerationReloadInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := b.moderation.Reload(ctx); err != nil {
				logger.Error(fmt.Errorf("failed to reload moderation overlay: %w", err))
			}
		}
	}
}

// forwardToWorker starts a processing workflow for the event
func (b *bridge) forwardToWorker(ctx context.Context, event *domain.MarketplaceEvent) error {
	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})

	opt := client.StartWorkflowOptions{
		ID:                    fmt.Sprintf("process-event-%s", event.EventID),
		TaskQueue:             b.config.TemporalTaskQueue,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
		WorkflowRunTimeout:    30 * time.Minute,
	}
	_, err := b.orchestrator.ExecuteWorkflow(ctx, opt, w.ProcessMarketplaceEvent, event)
	if err != nil {
		return fmt.Errorf("failed to execute workflow: %w", err)
	}

	logger.Info("Event forwarded to worker",
		zap.String("eventID", event.EventID),
		zap.String("eventType", string(event.EventType)),
	)

	return nil
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	b.nc.Close()
}
