package workflows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dright/marketplace/internal/store/schema"
)

func TestComputePayouts_ProRata(t *testing.T) {
	stakes := []*schema.Stake{
		{ID: 1, UserID: 21, Amount: "600"},
		{ID: 2, UserID: 22, Amount: "300"},
		{ID: 3, UserID: 23, Amount: "100"},
	}

	payouts, err := computePayouts("1000", stakes)
	require.NoError(t, err)
	require.Len(t, payouts, 3)
	assert.Equal(t, "600", payouts[0].Payout)
	assert.Equal(t, "300", payouts[1].Payout)
	assert.Equal(t, "100", payouts[2].Payout)
}

func TestComputePayouts_RemainderToEarliestStake(t *testing.T) {
	stakes := []*schema.Stake{
		{ID: 1, UserID: 21, Amount: "1"},
		{ID: 2, UserID: 22, Amount: "1"},
		{ID: 3, UserID: 23, Amount: "1"},
	}

	payouts, err := computePayouts("10", stakes)
	require.NoError(t, err)
	assert.Equal(t, "4", payouts[0].Payout)
	assert.Equal(t, "3", payouts[1].Payout)
	assert.Equal(t, "3", payouts[2].Payout)
}

func TestComputePayouts_LargeAmounts(t *testing.T) {
	// Amounts beyond uint64 must split without overflow
	stakes := []*schema.Stake{
		{ID: 1, UserID: 21, Amount: "100000000000000000000000000"},
		{ID: 2, UserID: 22, Amount: "300000000000000000000000000"},
	}

	payouts, err := computePayouts("40000000000000000000000000000", stakes)
	require.NoError(t, err)
	assert.Equal(t, "10000000000000000000000000000", payouts[0].Payout)
	assert.Equal(t, "30000000000000000000000000000", payouts[1].Payout)
}

func TestComputePayouts_NoStakes(t *testing.T) {
	payouts, err := computePayouts("1000", nil)
	require.NoError(t, err)
	assert.Empty(t, payouts)
}

func TestComputePayouts_InvalidRevenue(t *testing.T) {
	_, err := computePayouts("abc", []*schema.Stake{{ID: 1, Amount: "1"}})
	assert.Error(t, err)

	_, err = computePayouts("-5", []*schema.Stake{{ID: 1, Amount: "1"}})
	assert.Error(t, err)
}

func TestComputePayouts_ZeroTotalStaked(t *testing.T) {
	_, err := computePayouts("1000", []*schema.Stake{
		{ID: 1, UserID: 21, Amount: "0"},
	})
	assert.Error(t, err)
}
