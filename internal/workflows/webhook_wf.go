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
	"github.com/dright/marketplace/internal/store/schema"
	"github.com/dright/marketplace/internal/webhook"
)

// NotifyWebhookClients is the orchestration workflow that:
// 1. Queries active webhook clients matching the event type
// 2. Triggers a delivery workflow for each client (fire-and-forget)
func (w *workerCore) NotifyWebhookClients(ctx workflow.Context, event *domain.MarketplaceEvent) error {
	logger.InfoWf(ctx, "Starting webhook notification orchestration",
		zap.String("eventID", event.EventID),
		zap.String("eventType", string(event.EventType)))

	// Configure activity options
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 2,
			InitialInterval: 5 * time.Second,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	// Get active webhook clients matching the event type
	var clients []*schema.WebhookClient
	err := workflow.ExecuteActivity(activityCtx, w.executor.GetActiveWebhookClientsByEventType, string(event.EventType)).Get(activityCtx, &clients)
	if err != nil {
		return err
	}

	if len(clients) == 0 {
		logger.InfoWf(ctx, "No active webhook clients found for event type",
			zap.String("eventType", string(event.EventType)))
		return nil
	}

	logger.InfoWf(ctx, "Found active webhook clients",
		zap.Int("count", len(clients)),
		zap.String("eventType", string(event.EventType)))

	// Trigger delivery workflow for each client (fire-and-forget)
	for _, client := range clients {
		deliveryWorkflowOptions := workflow.ChildWorkflowOptions{
			WorkflowID:            fmt.Sprintf("webhook-delivery-%s-%s", client.ClientID, event.EventID),
			WorkflowRunTimeout:    1 * time.Hour, // Allow time for all retries
			TaskQueue:             w.config.MarketTaskQueue,
			WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
			ParentClosePolicy:     enums.PARENT_CLOSE_POLICY_ABANDON, // Don't wait
		}
		deliveryCtx := workflow.WithChildOptions(ctx, deliveryWorkflowOptions)

		// Start delivery workflow (don't wait for result)
		deliveryWorkflow := workflow.ExecuteChildWorkflow(deliveryCtx, w.DeliverWebhook, DeliverWebhookInput{
			ClientID: client.ClientID,
			Event:    *event,
		})

		// Only verify it started successfully
		var deliveryExecution workflow.Execution
		if err := deliveryWorkflow.GetChildWorkflowExecution().Get(ctx, &deliveryExecution); err != nil {
			logger.WarnWf(ctx, "Failed to start webhook delivery workflow",
				zap.String("clientID", client.ClientID),
				zap.String("eventID", event.EventID),
				zap.Error(err))
			continue
		}

		logger.InfoWf(ctx, "Webhook delivery workflow started",
			zap.String("clientID", client.ClientID),
			zap.String("workflowID", deliveryExecution.ID))
	}

	logger.InfoWf(ctx, "Webhook notification orchestration completed",
		zap.Int("clientsNotified", len(clients)))

	return nil
}

// DeliverWebhook handles webhook delivery to a single client
// Uses Temporal's retry policy for automatic retry with exponential backoff
func (w *workerCore) DeliverWebhook(ctx workflow.Context, input DeliverWebhookInput) error {
	event := input.Event
	logger.InfoWf(ctx, "Starting webhook delivery",
		zap.String("clientID", input.ClientID),
		zap.String("eventID", event.EventID),
		zap.String("eventType", string(event.EventType)))

	// Configure activity options for client lookup
	lookupActivityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 2,
			InitialInterval: 5 * time.Second,
		},
	}
	lookupCtx := workflow.WithActivityOptions(ctx, lookupActivityOptions)

	// Get client details
	var client *schema.WebhookClient
	err := workflow.ExecuteActivity(lookupCtx, w.executor.GetWebhookClientByID, input.ClientID).Get(lookupCtx, &client)
	if err != nil {
		return err
	}
	if client == nil {
		logger.InfoWf(ctx, "Client not found, skipping delivery",
			zap.String("clientID", input.ClientID))
		return nil
	}

	if !client.IsActive {
		logger.InfoWf(ctx, "Client is not active, skipping delivery",
			zap.String("clientID", input.ClientID))
		return nil
	}

	// Create delivery record
	workflowInfo := workflow.GetInfo(ctx)
	var deliveryID uint64
	delivery := &schema.WebhookDelivery{
		ClientID:      client.ClientID,
		EventID:       event.EventID,
		EventType:     string(event.EventType),
		WorkflowID:    workflowInfo.WorkflowExecution.ID,
		WorkflowRunID: workflowInfo.WorkflowExecution.RunID,
		// Payload is marshaled by the activity when creating the record
	}

	err = workflow.ExecuteActivity(lookupCtx, w.executor.CreateWebhookDeliveryRecord, delivery, event).Get(lookupCtx, &deliveryID)
	if err != nil {
		return err
	}

	logger.InfoWf(ctx, "Webhook delivery record created",
		zap.Uint64("deliveryID", deliveryID))

	// Configure delivery activity with exponential backoff retry policy
	// Temporal will automatically retry with exponential backoff: 5s, 10s, 20s, 40s, 80s
	deliveryActivityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    5 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumAttempts:    int32(client.RetryMaxAttempts), //nolint:gosec,G115
		},
	}
	deliveryCtx := workflow.WithActivityOptions(ctx, deliveryActivityOptions)

	// Execute delivery activity - Temporal handles retries automatically
	var deliveryResult webhook.DeliveryResult
	err = workflow.ExecuteActivity(deliveryCtx, w.executor.DeliverWebhookHTTP, client, event, deliveryID).Get(deliveryCtx, &deliveryResult)
	if err != nil {
		return err
	}

	logger.InfoWf(ctx, "Webhook delivered successfully",
		zap.String("clientID", input.ClientID),
		zap.String("eventID", event.EventID),
		zap.Int("statusCode", deliveryResult.StatusCode))

	return nil
}
