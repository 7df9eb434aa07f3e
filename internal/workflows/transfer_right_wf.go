package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/logger"
)

// TransferRight moves a sold right's token on chain and settles the
// pending ledger entries the trade created:
// 1. Transfers the NFT from the seller to the buyer
// 2. Confirms (or fails) the purchase and royalty ledger entries
// 3. Publishes the sale events
func (w *workerCore) TransferRight(ctx workflow.Context, input TransferRightInput) error {
	logger.InfoWf(ctx, "Processing right transfer",
		zap.String("rightID", input.RightID),
		zap.String("nftRef", input.Ref.String()),
		zap.String("from", input.FromAddress),
		zap.String("to", input.ToAddress),
	)

	// Configure activity options for ledger updates
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 1 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
			InitialInterval: 5 * time.Second,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	// Step 1: Transfer on chain. A single attempt: a lost result could
	// mean the transfer landed, and retrying would double-spend.
	transferOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	transferCtx := workflow.WithActivityOptions(ctx, transferOptions)

	var txHash string
	err := workflow.ExecuteActivity(transferCtx, w.executor.TransferNFT, TransferNFTInput{
		Ref:  input.Ref,
		From: input.FromAddress,
		To:   input.ToAddress,
	}).Get(transferCtx, &txHash)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to transfer right token"),
			zap.Error(err),
			zap.String("rightID", input.RightID),
			zap.String("nftRef", input.Ref.String()),
		)
		w.failLedgerEntries(ctx, input)
		return err
	}

	// Step 2: Confirm the ledger entries with the transfer hash
	err = workflow.ExecuteActivity(ctx, w.executor.UpdateTransactionStatus, UpdateTransactionStatusInput{
		Reference: input.PurchaseRef,
		Status:    domain.TxStatusConfirmed,
		TxHash:    &txHash,
	}).Get(ctx, nil)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to confirm purchase entry"),
			zap.Error(err),
			zap.String("reference", input.PurchaseRef),
		)
		return err
	}
	if input.RoyaltyRef != "" {
		err = workflow.ExecuteActivity(ctx, w.executor.UpdateTransactionStatus, UpdateTransactionStatusInput{
			Reference: input.RoyaltyRef,
			Status:    domain.TxStatusConfirmed,
			TxHash:    &txHash,
		}).Get(ctx, nil)
		if err != nil {
			logger.ErrorWf(ctx,
				fmt.Errorf("failed to confirm royalty entry"),
				zap.Error(err),
				zap.String("reference", input.RoyaltyRef),
			)
			return err
		}
	}

	// Step 3: Publish the sale events
	chainID, _, _ := input.Ref.Parse()
	w.publishEvent(ctx, &domain.MarketplaceEvent{
		EventType:    domain.EventRightSold,
		Chain:        chainID,
		RightID:      input.RightID,
		Ref:          input.Ref,
		Actor:        input.FromAddress,
		Counterparty: input.ToAddress,
		Amount:       domain.Amount(input.Price),
		TxHash:       txHash,
	})
	if input.Settlement {
		w.publishEvent(ctx, &domain.MarketplaceEvent{
			EventType:    domain.EventAuctionSettled,
			Chain:        chainID,
			RightID:      input.RightID,
			Ref:          input.Ref,
			Actor:        input.FromAddress,
			Counterparty: input.ToAddress,
			Amount:       domain.Amount(input.Price),
			TxHash:       txHash,
		})
	}

	logger.InfoWf(ctx, "Right transferred successfully",
		zap.String("rightID", input.RightID),
		zap.String("txHash", txHash),
	)

	return nil
}

// failLedgerEntries marks the trade's pending entries failed after an
// unsuccessful on-chain transfer
func (w *workerCore) failLedgerEntries(ctx workflow.Context, input TransferRightInput) {
	refs := []string{input.PurchaseRef}
	if input.RoyaltyRef != "" {
		refs = append(refs, input.RoyaltyRef)
	}
	for _, ref := range refs {
		err := workflow.ExecuteActivity(ctx, w.executor.UpdateTransactionStatus, UpdateTransactionStatusInput{
			Reference: ref,
			Status:    domain.TxStatusFailed,
		}).Get(ctx, nil)
		if err != nil {
			logger.ErrorWf(ctx,
				fmt.Errorf("failed to mark ledger entry as failed"),
				zap.Error(err),
				zap.String("reference", ref),
			)
		}
	}
}
