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
)

// SettleAuction closes an ended auction:
// 1. With no active bids the listing reverts to a fixed price
// 2. Otherwise the highest bid wins, the trade executes atomically, and a
//    transfer workflow moves the token to the winner
func (w *workerCore) SettleAuction(ctx workflow.Context, rightID string) error {
	logger.InfoWf(ctx, "Processing auction settlement",
		zap.String("rightID", rightID),
	)

	// Configure activity options
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 1 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
			InitialInterval: 5 * time.Second,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	// Step 1: Load the right and check the auction actually ended
	var right *schema.Right
	err := workflow.ExecuteActivity(ctx, w.executor.GetRight, rightID).Get(ctx, &right)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to get right"),
			zap.Error(err),
			zap.String("rightID", rightID),
		)
		return err
	}
	if right.ListingType != domain.ListingAuction {
		// The sweeper can race a settlement that already reverted or sold
		logger.InfoWf(ctx, "Right is no longer an auction, skipping",
			zap.String("rightID", rightID),
		)
		return nil
	}
	if right.AuctionEnd == nil || right.AuctionEnd.After(workflow.Now(ctx)) {
		logger.InfoWf(ctx, "Auction has not ended yet, skipping",
			zap.String("rightID", rightID),
		)
		return nil
	}

	// Step 2: Find the winning bid
	var winning *schema.Bid
	err = workflow.ExecuteActivity(ctx, w.executor.GetHighestActiveBid, rightID).Get(ctx, &winning)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to get highest active bid"),
			zap.Error(err),
			zap.String("rightID", rightID),
		)
		return err
	}

	// Step 3a: Nobody bid; revert the listing to a fixed price
	if winning == nil {
		err = workflow.ExecuteActivity(ctx, w.executor.RevertAuctionToFixed, rightID).Get(ctx, nil)
		if err != nil {
			logger.ErrorWf(ctx,
				fmt.Errorf("failed to revert auction to fixed listing"),
				zap.Error(err),
				zap.String("rightID", rightID),
			)
			return err
		}

		logger.InfoWf(ctx, "Auction ended without bids, reverted to fixed listing",
			zap.String("rightID", rightID),
		)
		return nil
	}

	// Step 3b: Execute the winning bid as a trade
	var trade *SettledTrade
	err = workflow.ExecuteActivity(ctx, w.executor.SettleAuctionTrade, SettleAuctionTradeInput{
		RightID:  rightID,
		WinnerID: winning.BidderID,
		Amount:   winning.Amount,
	}).Get(ctx, &trade)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to settle auction trade"),
			zap.Error(err),
			zap.String("rightID", rightID),
			zap.Int64("winnerID", winning.BidderID),
		)
		return err
	}

	// Step 4: Start the transfer workflow to move the token to the winner.
	// Fire-and-forget: the transfer confirms the ledger entries and
	// publishes the sale events on its own.
	childWorkflowOptions := workflow.ChildWorkflowOptions{
		WorkflowID:            fmt.Sprintf("transfer-right-%s-%s", rightID, trade.PurchaseRef),
		WorkflowRunTimeout:    30 * time.Minute,
		TaskQueue:             w.config.MarketTaskQueue,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
		ParentClosePolicy:     enums.PARENT_CLOSE_POLICY_ABANDON,
	}
	childCtx := workflow.WithChildOptions(ctx, childWorkflowOptions)

	childWorkflow := workflow.ExecuteChildWorkflow(childCtx, w.TransferRight, TransferRightInput{
		RightID:     rightID,
		Ref:         trade.Ref,
		FromAddress: trade.SellerAddress,
		ToAddress:   trade.BuyerAddress,
		PurchaseRef: trade.PurchaseRef,
		RoyaltyRef:  trade.RoyaltyRef,
		Price:       trade.Price,
		Settlement:  true,
	})

	var childExecution workflow.Execution
	if err := childWorkflow.GetChildWorkflowExecution().Get(ctx, &childExecution); err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to start transfer workflow"),
			zap.Error(err),
			zap.String("rightID", rightID),
		)
		return err
	}

	logger.InfoWf(ctx, "Auction settled, transfer started",
		zap.String("rightID", rightID),
		zap.Int64("winnerID", trade.BuyerID),
		zap.String("amount", trade.Price),
		zap.String("transferWorkflowID", childExecution.ID),
	)

	return nil
}
