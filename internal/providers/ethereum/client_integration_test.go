package ethereum_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/providers/ethereum"
)

func TestStatus_Integration(t *testing.T) {
	rpcURL := os.Getenv("ETHEREUM_RPC_URL")
	if rpcURL == "" {
		t.Skip("Skipping integration test: ETHEREUM_RPC_URL not set")
	}
	contract := os.Getenv("ETHEREUM_CONTRACT_ADDRESS")
	if contract == "" {
		contract = testContractAddress
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dialer := adapter.NewEthClientDialer()
	ethClient, err := dialer.Dial(ctx, rpcURL)
	require.NoError(t, err)
	t.Cleanup(func() { ethClient.Close() })

	client, err := ethereum.NewClient(ethereum.ClientConfig{
		ChainID:         domain.ChainEthereumSepolia,
		ContractAddress: contract,
	}, ethClient, adapter.NewClock())
	require.NoError(t, err)

	status, err := client.Status(ctx)
	require.NoError(t, err)
	t.Logf("chain %s at block %d, gas %s wei, synced=%v",
		status.ChainID, status.LatestBlock, status.GasPriceWei, status.Synced)
	require.NotZero(t, status.LatestBlock)
	require.NotEmpty(t, status.GasPriceWei)
}
