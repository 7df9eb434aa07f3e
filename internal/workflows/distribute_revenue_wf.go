package workflows

import (
	"fmt"
	"math/big"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/store/schema"
)

// DistributeRevenue pays one scheduled distribution out to the right's
// active stakers:
// 1. Marks the distribution running
// 2. Splits the period revenue pro rata across the active stakes
// 3. Writes the dividend ledger entries and the payout snapshot
// 4. Publishes the distribution event
func (w *workerCore) DistributeRevenue(ctx workflow.Context, distributionID int64) error {
	logger.InfoWf(ctx, "Processing revenue distribution",
		zap.Int64("distributionID", distributionID),
	)

	// Configure activity options
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
			InitialInterval: 5 * time.Second,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	// Step 1: Load the distribution and check it is still runnable
	var dist *schema.RevenueDistribution
	err := workflow.ExecuteActivity(ctx, w.executor.GetDistribution, distributionID).Get(ctx, &dist)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to get distribution"),
			zap.Error(err),
			zap.Int64("distributionID", distributionID),
		)
		return err
	}
	if dist.Status == schema.DistributionStatusCompleted {
		logger.InfoWf(ctx, "Distribution already completed, skipping",
			zap.Int64("distributionID", distributionID),
		)
		return nil
	}

	err = workflow.ExecuteActivity(ctx, w.executor.UpdateDistributionStatus, distributionID, schema.DistributionStatusRunning).Get(ctx, nil)
	if err != nil {
		return err
	}

	var right *schema.Right
	err = workflow.ExecuteActivity(ctx, w.executor.GetRight, dist.RightID).Get(ctx, &right)
	if err != nil {
		return w.failDistribution(ctx, distributionID, err)
	}

	// Step 2: Load the active stakes, oldest first
	var stakes []*schema.Stake
	err = workflow.ExecuteActivity(ctx, w.executor.GetActiveStakes, dist.RightID).Get(ctx, &stakes)
	if err != nil {
		return w.failDistribution(ctx, distributionID, err)
	}

	// Step 3: Split the revenue pro rata. Deterministic pure computation,
	// safe to run inside the workflow.
	payouts, err := computePayouts(dist.TotalRevenue, stakes)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to compute payouts"),
			zap.Error(err),
			zap.Int64("distributionID", distributionID),
		)
		return w.failDistribution(ctx, distributionID, err)
	}

	// Step 4: Write the dividend entries, notifications, and the snapshot
	err = workflow.ExecuteActivity(ctx, w.executor.CompleteDistributionPayouts, CompletePayoutsInput{
		DistributionID: distributionID,
		RightID:        dist.RightID,
		Chain:          right.Chain,
		Payouts:        payouts,
		TotalRevenue:   dist.TotalRevenue,
	}).Get(ctx, nil)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to complete distribution payouts"),
			zap.Error(err),
			zap.Int64("distributionID", distributionID),
		)
		return w.failDistribution(ctx, distributionID, err)
	}

	// Step 5: Publish the distribution event
	w.publishEvent(ctx, &domain.MarketplaceEvent{
		EventType: domain.EventRevenueDistributed,
		Chain:     w.chainID(right.Chain),
		RightID:   dist.RightID,
		Amount:    domain.Amount(dist.TotalRevenue),
	})

	logger.InfoWf(ctx, "Revenue distributed successfully",
		zap.Int64("distributionID", distributionID),
		zap.String("rightID", dist.RightID),
		zap.String("totalRevenue", dist.TotalRevenue),
		zap.Int("stakers", len(payouts)),
	)

	return nil
}

// failDistribution marks the distribution failed and returns the original error
func (w *workerCore) failDistribution(ctx workflow.Context, distributionID int64, cause error) error {
	err := workflow.ExecuteActivity(ctx, w.executor.UpdateDistributionStatus, distributionID, schema.DistributionStatusFailed).Get(ctx, nil)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to mark distribution as failed"),
			zap.Error(err),
			zap.Int64("distributionID", distributionID),
		)
	}
	return cause
}

// computePayouts splits totalRevenue across the stakes in proportion to
// their staked amounts. Integer division remainders go to the earliest
// stake so the payouts always add back up to the total. Stakes must be
// ordered oldest first.
func computePayouts(totalRevenue string, stakes []*schema.Stake) ([]StakePayout, error) {
	revenue, ok := new(big.Int).SetString(totalRevenue, 10)
	if !ok || revenue.Sign() < 0 {
		return nil, fmt.Errorf("invalid total revenue: %s", totalRevenue)
	}
	if len(stakes) == 0 {
		return []StakePayout{}, nil
	}

	totalStaked := new(big.Int)
	amounts := make([]*big.Int, len(stakes))
	for i, stake := range stakes {
		amount, ok := new(big.Int).SetString(stake.Amount, 10)
		if !ok || amount.Sign() < 0 {
			return nil, fmt.Errorf("invalid stake amount for stake %d: %s", stake.ID, stake.Amount)
		}
		amounts[i] = amount
		totalStaked.Add(totalStaked, amount)
	}
	if totalStaked.Sign() == 0 {
		return nil, fmt.Errorf("total staked amount is zero")
	}

	payouts := make([]StakePayout, len(stakes))
	distributed := new(big.Int)
	for i, stake := range stakes {
		// payout = revenue * staked / totalStaked, truncated
		payout := new(big.Int).Mul(revenue, amounts[i])
		payout.Quo(payout, totalStaked)
		distributed.Add(distributed, payout)
		payouts[i] = StakePayout{
			StakeID: stake.ID,
			UserID:  stake.UserID,
			Staked:  stake.Amount,
			Payout:  payout.String(),
		}
	}

	// Truncation remainder goes to the earliest stake
	remainder := new(big.Int).Sub(revenue, distributed)
	if remainder.Sign() > 0 {
		first, _ := new(big.Int).SetString(payouts[0].Payout, 10)
		payouts[0].Payout = first.Add(first, remainder).String()
	}

	return payouts, nil
}
