package ethereum_test

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"os"
	"testing"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/mocks"
	"github.com/dright/marketplace/internal/providers/ethereum"
)

const (
	testContractAddress = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	// Throwaway key, never funded anywhere
	testMinterKey = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
)

var transferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testEthClientMocks struct {
	ctrl      *gomock.Controller
	ethClient *mocks.MockEthClient
	clock     *mocks.MockClock
}

func setupEthClient(t *testing.T, cfg ethereum.ClientConfig) (*testEthClientMocks, ethereum.EthereumClient) {
	ctrl := gomock.NewController(t)
	tm := &testEthClientMocks{
		ctrl:      ctrl,
		ethClient: mocks.NewMockEthClient(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}

	client, err := ethereum.NewClient(cfg, tm.ethClient, tm.clock)
	require.NoError(t, err)
	return tm, client
}

func writableConfig() ethereum.ClientConfig {
	return ethereum.ClientConfig{
		ChainID:         domain.ChainEthereumSepolia,
		ContractAddress: testContractAddress,
		MinterKey:       testMinterKey,
	}
}

func readOnlyConfig() ethereum.ClientConfig {
	cfg := writableConfig()
	cfg.MinterKey = ""
	return cfg
}

// addressTopic left-pads an address into a 32-byte log topic.
func addressTopic(addr common.Address) common.Hash {
	return common.BytesToHash(addr.Bytes())
}

func transferLog(from, to common.Address, tokenID int64) types.Log {
	return types.Log{
		Address: common.HexToAddress(testContractAddress),
		Topics: []common.Hash{
			transferTopic,
			addressTopic(from),
			addressTopic(to),
			common.BigToHash(big.NewInt(tokenID)),
		},
		BlockNumber: 4_200_000,
		TxHash:      common.HexToHash("0xdeadbeef"),
	}
}

func TestNewClient_InvalidChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := writableConfig()
	cfg.ChainID = domain.ChainHederaTestnet

	_, err := ethereum.NewClient(cfg, mocks.NewMockEthClient(ctrl), mocks.NewMockClock(ctrl))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not an eip155 chain")
}

func TestNewClient_InvalidContractAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := writableConfig()
	cfg.ContractAddress = "not-an-address"

	_, err := ethereum.NewClient(cfg, mocks.NewMockEthClient(ctrl), mocks.NewMockClock(ctrl))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid contract address")
}

func TestNewClient_InvalidMinterKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := writableConfig()
	cfg.MinterKey = "zz"

	_, err := ethereum.NewClient(cfg, mocks.NewMockEthClient(ctrl), mocks.NewMockClock(ctrl))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid minter key")
}

func TestMintRight_Success(t *testing.T) {
	tm, client := setupEthClient(t, writableConfig())
	defer tm.ctrl.Finish()

	ctx := context.Background()
	recipient := common.HexToAddress("0x8ba1f109551bD432803012645Ac136ddd64DBA72")
	minterAddr := crypto.PubkeyToAddress(mustKey(t).PublicKey)

	tm.ethClient.EXPECT().
		PendingNonceAt(gomock.Any(), minterAddr).
		Return(uint64(7), nil)
	tm.ethClient.EXPECT().
		SuggestGasTipCap(gomock.Any()).
		Return(big.NewInt(2_000_000_000), nil)
	tm.ethClient.EXPECT().
		HeaderByNumber(gomock.Any(), nil).
		Return(&types.Header{BaseFee: big.NewInt(30_000_000_000), Number: big.NewInt(4_199_999)}, nil)
	tm.ethClient.EXPECT().
		EstimateGas(gomock.Any(), gomock.Any()).
		Return(uint64(100_000), nil)

	var sentHash common.Hash
	tm.ethClient.EXPECT().
		SendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *types.Transaction) error {
			assert.Equal(t, uint64(7), tx.Nonce())
			assert.Equal(t, common.HexToAddress(testContractAddress), *tx.To())
			assert.Equal(t, uint64(120_000), tx.Gas())
			sentHash = tx.Hash()
			return nil
		})

	tm.ethClient.EXPECT().
		TransactionReceipt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txHash common.Hash) (*types.Receipt, error) {
			assert.Equal(t, sentHash, txHash)
			return &types.Receipt{
				Status:      types.ReceiptStatusSuccessful,
				TxHash:      txHash,
				BlockNumber: big.NewInt(4_200_000),
				Logs: []*types.Log{
					{
						Address: common.HexToAddress(testContractAddress),
						Topics: []common.Hash{
							transferTopic,
							addressTopic(common.Address{}),
							addressTopic(recipient),
							common.BigToHash(big.NewInt(42)),
						},
					},
				},
			}, nil
		})

	receipt, err := client.MintRight(ctx, recipient.Hex(), "ipfs://QmTestRightMetadata")
	require.NoError(t, err)
	assert.Equal(t, "42", receipt.TokenNumber)
	assert.Equal(t, uint64(4_200_000), receipt.BlockNumber)
	assert.Equal(t, sentHash.Hex(), receipt.TxHash)
}

func TestMintRight_NoTransferLog(t *testing.T) {
	tm, client := setupEthClient(t, writableConfig())
	defer tm.ctrl.Finish()

	tm.ethClient.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(1), nil)
	tm.ethClient.EXPECT().SuggestGasTipCap(gomock.Any()).Return(big.NewInt(1), nil)
	tm.ethClient.EXPECT().
		HeaderByNumber(gomock.Any(), nil).
		Return(&types.Header{BaseFee: big.NewInt(1), Number: big.NewInt(1)}, nil)
	tm.ethClient.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint64(50_000), nil)
	tm.ethClient.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil)
	tm.ethClient.EXPECT().
		TransactionReceipt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txHash common.Hash) (*types.Receipt, error) {
			return &types.Receipt{
				Status:      types.ReceiptStatusSuccessful,
				TxHash:      txHash,
				BlockNumber: big.NewInt(1),
			}, nil
		})

	_, err := client.MintRight(context.Background(), "0x8ba1f109551bD432803012645Ac136ddd64DBA72", "ipfs://QmX")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no Transfer log")
}

func TestMintRight_ValidationErrors(t *testing.T) {
	tm, client := setupEthClient(t, writableConfig())
	defer tm.ctrl.Finish()

	_, err := client.MintRight(context.Background(), "bogus", "ipfs://QmX")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid recipient address")

	_, err = client.MintRight(context.Background(), "0x8ba1f109551bD432803012645Ac136ddd64DBA72", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "token URI is required")
}

func TestMintRight_ReadOnlyClient(t *testing.T) {
	tm, client := setupEthClient(t, readOnlyConfig())
	defer tm.ctrl.Finish()

	_, err := client.MintRight(context.Background(), "0x8ba1f109551bD432803012645Ac136ddd64DBA72", "ipfs://QmX")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read-only")
}

func TestMintRight_Reverted(t *testing.T) {
	tm, client := setupEthClient(t, writableConfig())
	defer tm.ctrl.Finish()

	tm.ethClient.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(1), nil)
	tm.ethClient.EXPECT().SuggestGasTipCap(gomock.Any()).Return(big.NewInt(1), nil)
	tm.ethClient.EXPECT().
		HeaderByNumber(gomock.Any(), nil).
		Return(&types.Header{BaseFee: big.NewInt(1), Number: big.NewInt(1)}, nil)
	tm.ethClient.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint64(50_000), nil)
	tm.ethClient.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil)
	tm.ethClient.EXPECT().
		TransactionReceipt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txHash common.Hash) (*types.Receipt, error) {
			return &types.Receipt{Status: types.ReceiptStatusFailed, TxHash: txHash, BlockNumber: big.NewInt(1)}, nil
		})

	_, err := client.MintRight(context.Background(), "0x8ba1f109551bD432803012645Ac136ddd64DBA72", "ipfs://QmX")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reverted")
}

func TestTransferRight_ValidationErrors(t *testing.T) {
	tm, client := setupEthClient(t, writableConfig())
	defer tm.ctrl.Finish()

	_, err := client.TransferRight(context.Background(), "bogus", "0x8ba1f109551bD432803012645Ac136ddd64DBA72", "1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sender address")

	_, err = client.TransferRight(context.Background(), "0x8ba1f109551bD432803012645Ac136ddd64DBA72", "bogus", "1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid recipient address")

	_, err = client.TransferRight(context.Background(), "0x8ba1f109551bD432803012645Ac136ddd64DBA72", "0x5FbDB2315678afecb367f032d93F642f64180aa3", "abc")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token number")
}

func TestOwnerOf_Success(t *testing.T) {
	tm, client := setupEthClient(t, readOnlyConfig())
	defer tm.ctrl.Finish()

	owner := common.HexToAddress("0x8ba1f109551bD432803012645Ac136ddd64DBA72")
	tm.ethClient.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, msg goethereum.CallMsg, _ *big.Int) ([]byte, error) {
			assert.Equal(t, common.HexToAddress(testContractAddress), *msg.To)
			return common.LeftPadBytes(owner.Bytes(), 32), nil
		})

	got, err := client.OwnerOf(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, owner.Hex(), got)
}

func TestOwnerOf_InvalidTokenNumber(t *testing.T) {
	tm, client := setupEthClient(t, readOnlyConfig())
	defer tm.ctrl.Finish()

	_, err := client.OwnerOf(context.Background(), "not-a-number")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token number")
}

func TestParseTransferLog_Success(t *testing.T) {
	tm, client := setupEthClient(t, readOnlyConfig())
	defer tm.ctrl.Finish()

	from := common.HexToAddress("0x8ba1f109551bD432803012645Ac136ddd64DBA72")
	to := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	vLog := transferLog(from, to, 42)

	blockTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.ethClient.EXPECT().
		HeaderByNumber(gomock.Any(), big.NewInt(4_200_000)).
		Return(&types.Header{
			Number: big.NewInt(4_200_000),
			Time:   uint64(blockTime.Unix()), //nolint:gosec,G115
		}, nil)
	tm.clock.EXPECT().
		Unix(blockTime.Unix(), int64(0)).
		Return(blockTime)

	event, err := client.ParseTransferLog(context.Background(), vLog)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, domain.EventRightTransferred, event.EventType)
	assert.Equal(t, domain.ChainEthereumSepolia, event.Chain)
	assert.Equal(t, from.Hex(), event.Actor)
	assert.Equal(t, to.Hex(), event.Counterparty)
	assert.Equal(t, vLog.TxHash.Hex(), event.TxHash)
	assert.Equal(t, blockTime, event.Timestamp)
	assert.Equal(t, "eip155:11155111:"+testContractAddress+":42", event.Ref.String())
}

func TestParseTransferLog_OtherContract(t *testing.T) {
	tm, client := setupEthClient(t, readOnlyConfig())
	defer tm.ctrl.Finish()

	vLog := transferLog(common.Address{}, common.Address{}, 1)
	vLog.Address = common.HexToAddress("0x000000000000000000000000000000000000dEaD")

	event, err := client.ParseTransferLog(context.Background(), vLog)
	assert.NoError(t, err)
	assert.Nil(t, event)
}

func TestParseTransferLog_NotATransfer(t *testing.T) {
	tm, client := setupEthClient(t, readOnlyConfig())
	defer tm.ctrl.Finish()

	vLog := transferLog(common.Address{}, common.Address{}, 1)
	vLog.Topics = vLog.Topics[:2]

	_, err := client.ParseTransferLog(context.Background(), vLog)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not an ERC-721 Transfer")
}

func TestFilterTransfers_Success(t *testing.T) {
	tm, client := setupEthClient(t, readOnlyConfig())
	defer tm.ctrl.Finish()

	logs := []types.Log{transferLog(common.Address{}, common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"), 1)}
	tm.ethClient.EXPECT().
		FilterLogs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query goethereum.FilterQuery) ([]types.Log, error) {
			assert.Equal(t, uint64(100), query.FromBlock.Uint64())
			assert.Equal(t, uint64(199), query.ToBlock.Uint64())
			assert.Equal(t, []common.Address{common.HexToAddress(testContractAddress)}, query.Addresses)
			return logs, nil
		})

	got, err := client.FilterTransfers(context.Background(), 100, 199)
	require.NoError(t, err)
	assert.Equal(t, logs, got)
}

func TestFilterTransfers_ShrinksChunkOnTooManyResults(t *testing.T) {
	tm, client := setupEthClient(t, readOnlyConfig())
	defer tm.ctrl.Finish()

	// Full range refused, both halves succeed
	gomock.InOrder(
		tm.ethClient.EXPECT().
			FilterLogs(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, query goethereum.FilterQuery) ([]types.Log, error) {
				assert.Equal(t, uint64(100), query.FromBlock.Uint64())
				assert.Equal(t, uint64(199), query.ToBlock.Uint64())
				return nil, errors.New("query returned more than 10000 results")
			}),
		tm.ethClient.EXPECT().
			FilterLogs(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, query goethereum.FilterQuery) ([]types.Log, error) {
				assert.Equal(t, uint64(100), query.FromBlock.Uint64())
				assert.Equal(t, uint64(149), query.ToBlock.Uint64())
				return []types.Log{transferLog(common.Address{}, common.Address{}, 1)}, nil
			}),
		tm.ethClient.EXPECT().
			FilterLogs(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, query goethereum.FilterQuery) ([]types.Log, error) {
				assert.Equal(t, uint64(150), query.FromBlock.Uint64())
				assert.Equal(t, uint64(199), query.ToBlock.Uint64())
				return []types.Log{transferLog(common.Address{}, common.Address{}, 2)}, nil
			}),
	)

	got, err := client.FilterTransfers(context.Background(), 100, 199)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFilterTransfers_NonRetriableError(t *testing.T) {
	tm, client := setupEthClient(t, readOnlyConfig())
	defer tm.ctrl.Finish()

	tm.ethClient.EXPECT().
		FilterLogs(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := client.FilterTransfers(context.Background(), 100, 199)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to filter logs")
}

func TestFilterTransfers_InvalidRange(t *testing.T) {
	tm, client := setupEthClient(t, readOnlyConfig())
	defer tm.ctrl.Finish()

	_, err := client.FilterTransfers(context.Background(), 200, 100)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid block range")
}

func TestStatus_Success(t *testing.T) {
	tm, client := setupEthClient(t, readOnlyConfig())
	defer tm.ctrl.Finish()

	tm.ethClient.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(11155111), nil)
	tm.ethClient.EXPECT().
		HeaderByNumber(gomock.Any(), nil).
		Return(&types.Header{Number: big.NewInt(4_200_000)}, nil)
	tm.ethClient.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(25_000_000_000), nil)
	tm.ethClient.EXPECT().SyncProgress(gomock.Any()).Return(nil, nil)

	status, err := client.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "11155111", status.ChainID)
	assert.Equal(t, uint64(4_200_000), status.LatestBlock)
	assert.Equal(t, "25000000000", status.GasPriceWei)
	assert.True(t, status.Synced)
}

func TestStatus_ChainMismatch(t *testing.T) {
	tm, client := setupEthClient(t, readOnlyConfig())
	defer tm.ctrl.Finish()

	// Node reports mainnet while the client is configured for Sepolia
	tm.ethClient.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(1), nil)
	tm.ethClient.EXPECT().
		HeaderByNumber(gomock.Any(), nil).
		Return(&types.Header{Number: big.NewInt(19_000_000)}, nil)
	tm.ethClient.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1), nil)
	tm.ethClient.EXPECT().SyncProgress(gomock.Any()).Return(nil, nil)

	status, err := client.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Synced)
}

func TestContractAddress(t *testing.T) {
	tm, client := setupEthClient(t, readOnlyConfig())
	defer tm.ctrl.Finish()

	assert.Equal(t, testContractAddress, client.ContractAddress())
}

func TestClose(t *testing.T) {
	tm, client := setupEthClient(t, readOnlyConfig())
	defer tm.ctrl.Finish()

	tm.ethClient.EXPECT().Close()
	client.Close()
}

func mustKey(t *testing.T) *ecdsa.PrivateKey {
	key, err := crypto.HexToECDSA(testMinterKey)
	require.NoError(t, err)
	return key
}
