package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/store"
	"github.com/dright/marketplace/internal/store/schema"
)

// ProcessMarketplaceEvent fans one bus event out:
// 1. right.transferred events reconcile ownership with the chain
// 2. Every event creates its in-app notifications
// 3. Webhook clients subscribed to the type get notified (fire-and-forget)
func (w *workerCore) ProcessMarketplaceEvent(ctx workflow.Context, event *domain.MarketplaceEvent) error {
	logger.InfoWf(ctx, "Processing marketplace event",
		zap.String("eventID", event.EventID),
		zap.String("eventType", string(event.EventType)),
		zap.String("rightID", event.RightID),
	)

	if !event.Valid() {
		logger.WarnWf(ctx, "Skipping malformed marketplace event",
			zap.String("eventID", event.EventID),
			zap.String("eventType", string(event.EventType)),
		)
		return nil
	}

	// Configure activity options
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 1 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
			InitialInterval: 5 * time.Second,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	// Step 1: Reconcile ownership for emitter-sourced transfers. Transfers
	// the marketplace executed itself converge to the same owner, so the
	// update is idempotent.
	if event.EventType == domain.EventRightTransferred {
		var right *schema.Right
		err := workflow.ExecuteActivity(ctx, w.executor.ReconcileTransfer, store.TransferRightByRefInput{
			NFTRef:    event.Ref.String(),
			ToAddress: event.Counterparty,
			ToChain:   event.Chain.Blockchain(),
		}).Get(ctx, &right)
		if err != nil {
			logger.ErrorWf(ctx,
				fmt.Errorf("failed to reconcile transfer"),
				zap.Error(err),
				zap.String("nftRef", event.Ref.String()),
			)
			return err
		}
		if right == nil {
			// Token not tracked by the marketplace
			logger.InfoWf(ctx, "Transfer references an untracked token, skipping",
				zap.String("nftRef", event.Ref.String()),
			)
			return nil
		}
		// Downstream steps address the right by its row ID
		event.RightID = right.ID
	}

	// Step 2: Create in-app notifications. Best effort: a missed
	// notification never blocks webhook delivery.
	var created int
	err := workflow.ExecuteActivity(ctx, w.executor.CreateEventNotifications, event).Get(ctx, &created)
	if err != nil {
		logger.WarnWf(ctx, "Failed to create event notifications",
			zap.String("eventID", event.EventID),
			zap.String("eventType", string(event.EventType)),
			zap.Error(err),
		)
	} else if created > 0 {
		logger.InfoWf(ctx, "Event notifications created",
			zap.String("eventID", event.EventID),
			zap.Int("count", created),
		)
	}

	// Step 3: Notify webhook clients (fire-and-forget)
	childWorkflowOptions := workflow.ChildWorkflowOptions{
		WorkflowID:            fmt.Sprintf("webhook-notify-%s-%s", event.EventType, event.EventID),
		WorkflowRunTimeout:    1 * time.Hour,
		TaskQueue:             w.config.MarketTaskQueue,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
		ParentClosePolicy:     enums.PARENT_CLOSE_POLICY_ABANDON,
	}
	childCtx := workflow.WithChildOptions(ctx, childWorkflowOptions)

	childWorkflow := workflow.ExecuteChildWorkflow(childCtx, w.NotifyWebhookClients, event)

	var childExecution workflow.Execution
	if err := childWorkflow.GetChildWorkflowExecution().Get(ctx, &childExecution); err != nil {
		logger.WarnWf(ctx, "Failed to start webhook notification workflow",
			zap.String("eventID", event.EventID),
			zap.String("eventType", string(event.EventType)),
			zap.Error(err),
		)
		return nil
	}

	logger.InfoWf(ctx, "Marketplace event processed",
		zap.String("eventID", event.EventID),
		zap.String("webhookWorkflowID", childExecution.ID),
	)

	return nil
}
