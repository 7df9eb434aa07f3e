package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/nft"
	"github.com/dright/marketplace/internal/store"
	"github.com/dright/marketplace/internal/store/schema"
)

// chainID maps a blockchain to the configured CAIP-2 chain identifier
func (w *workerCore) chainID(blockchain domain.Blockchain) domain.Chain {
	if blockchain == domain.BlockchainEthereum {
		return w.config.EthereumChainID
	}
	return w.config.HederaChainID
}

// MintRight takes a draft right on chain:
// 1. Pins the canonical metadata document to IPFS
// 2. Mints the NFT on the right's chain
// 3. Records token identifiers and activates the listing
// 4. Generates the preview image (best effort)
// 5. Publishes the mint and listing events
func (w *workerCore) MintRight(ctx workflow.Context, rightID string) error {
	logger.InfoWf(ctx, "Processing right mint",
		zap.String("rightID", rightID),
	)

	// Configure activity options for database and IPFS steps
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
			InitialInterval: 5 * time.Second,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	// Step 1: Load the right and check it is still mintable
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
	if right.Status != domain.RightStatusDraft && right.Status != domain.RightStatusMinting {
		logger.InfoWf(ctx, "Right is not mintable, skipping",
			zap.String("rightID", rightID),
			zap.String("status", string(right.Status)),
		)
		return nil
	}

	var creator *schema.User
	err = workflow.ExecuteActivity(ctx, w.executor.GetUser, right.CreatorID).Get(ctx, &creator)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to get creator"),
			zap.Error(err),
			zap.String("rightID", rightID),
		)
		return err
	}

	// Step 2: Mark the right as minting so the API rejects edits meanwhile
	err = workflow.ExecuteActivity(ctx, w.executor.UpdateRightStatus, rightID, domain.RightStatusMinting).Get(ctx, nil)
	if err != nil {
		return err
	}

	// Step 3: Pin the metadata document
	var pinned *PinnedMetadata
	err = workflow.ExecuteActivity(ctx, w.executor.PinRightMetadata, rightID).Get(ctx, &pinned)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to pin right metadata"),
			zap.Error(err),
			zap.String("rightID", rightID),
		)
		return w.failMint(ctx, rightID, err)
	}

	// Step 4: Mint on chain. A single attempt: the SDK call may have
	// landed even when its result was lost, and a blind retry would
	// double-mint. Failed mints are retried by resubmitting the workflow.
	mintOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	mintCtx := workflow.WithActivityOptions(ctx, mintOptions)

	var minted *nft.MintResult
	err = workflow.ExecuteActivity(mintCtx, w.executor.MintNFT, MintNFTInput{
		RightID:     rightID,
		Chain:       right.Chain,
		ToAddress:   creator.Address,
		MetadataCID: pinned.CID,
	}).Get(mintCtx, &minted)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to mint right token"),
			zap.Error(err),
			zap.String("rightID", rightID),
			zap.String("chain", string(right.Chain)),
		)
		return w.failMint(ctx, rightID, err)
	}

	// Step 5: Record the token identifiers and activate the listing
	err = workflow.ExecuteActivity(ctx, w.executor.MarkRightMinted, store.MarkRightMintedInput{
		RightID:         rightID,
		NFTRef:          minted.Ref.String(),
		TokenID:         minted.TokenID,
		TokenSerial:     minted.TokenSerial,
		ContractAddress: minted.ContractAddress,
		TokenNumber:     minted.TokenNumber,
		MetadataURI:     pinned.URI,
		MetadataHash:    pinned.Hash,
		MintTxHash:      minted.TxHash,
	}).Get(ctx, nil)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to record mint"),
			zap.Error(err),
			zap.String("rightID", rightID),
			zap.String("nftRef", minted.Ref.String()),
		)
		return err
	}

	// Step 6: Generate the preview image. Best effort: a right without a
	// rendered preview is still tradable.
	var previewURL string
	err = workflow.ExecuteActivity(ctx, w.executor.GeneratePreview, rightID).Get(ctx, &previewURL)
	if err != nil {
		logger.WarnWf(ctx, "Failed to generate preview",
			zap.String("rightID", rightID),
			zap.Error(err),
		)
	}

	// Step 7: Publish the mint and listing events
	chainID := w.chainID(right.Chain)
	w.publishEvent(ctx, &domain.MarketplaceEvent{
		EventType: domain.EventRightMinted,
		Chain:     chainID,
		RightID:   rightID,
		Ref:       minted.Ref,
		Actor:     creator.Address,
		TxHash:    minted.TxHash,
	})
	w.publishEvent(ctx, &domain.MarketplaceEvent{
		EventType: domain.EventRightListed,
		Chain:     chainID,
		RightID:   rightID,
		Ref:       minted.Ref,
		Actor:     creator.Address,
	})

	logger.InfoWf(ctx, "Right minted successfully",
		zap.String("rightID", rightID),
		zap.String("nftRef", minted.Ref.String()),
		zap.String("txHash", minted.TxHash),
	)

	return nil
}

// failMint marks the right failed and returns the original error
func (w *workerCore) failMint(ctx workflow.Context, rightID string, cause error) error {
	err := workflow.ExecuteActivity(ctx, w.executor.UpdateRightStatus, rightID, domain.RightStatusFailed).Get(ctx, nil)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to mark right as failed"),
			zap.Error(err),
			zap.String("rightID", rightID),
		)
	}
	return cause
}

// publishEvent publishes a marketplace event, logging instead of failing
// the workflow when the bus is unavailable
func (w *workerCore) publishEvent(ctx workflow.Context, event *domain.MarketplaceEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = workflow.Now(ctx).UTC()
	}
	if err := workflow.ExecuteActivity(ctx, w.executor.PublishEvent, event).Get(ctx, nil); err != nil {
		logger.WarnWf(ctx, "Failed to publish marketplace event",
			zap.String("eventType", string(event.EventType)),
			zap.String("rightID", event.RightID),
			zap.Error(err),
		)
	}
}
