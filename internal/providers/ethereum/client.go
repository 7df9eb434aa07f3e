package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/logger"
)

// marketABI is the slice of the rights contract the backend calls: an
// ownable ERC-721 with URI-carrying mints.
const marketABIJSON = `[
	{"inputs":[{"name":"to","type":"address"},{"name":"uri","type":"string"}],"name":"mintTo","outputs":[{"name":"","type":"uint256"}],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"name":"transferFrom","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"tokenId","type":"uint256"}],"name":"ownerOf","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"from","type":"address"},{"indexed":true,"name":"to","type":"address"},{"indexed":true,"name":"tokenId","type":"uint256"}],"name":"Transfer","type":"event"}
]`

// transferEventSignature is keccak256 of the ERC-721 Transfer event.
var transferEventSignature = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

// MintReceipt carries the node-reported identifiers of a mint.
type MintReceipt struct {
	TxHash      string
	TokenNumber string
	BlockNumber uint64
}

// Status is the client's view of the connected network.
type Status struct {
	ChainID     string
	LatestBlock uint64
	GasPriceWei string
	Synced      bool
}

// EthereumClient talks to the rights ERC-721 contract: mints and custodial
// transfers signed with the minter key, ownership reads, and Transfer log
// plumbing for the chain emitter
//
//go:generate mockgen -source=client.go -destination=../../mocks/ethereum.go -package=mocks -mock_names=EthereumClient=MockEthereumClient
type EthereumClient interface {
	// MintRight mints a token to the recipient with the given URI and waits
	// for the receipt. The token number comes from the mint's Transfer log.
	MintRight(ctx context.Context, to string, tokenURI string) (*MintReceipt, error)

	// TransferRight moves a token between wallets, signed by the operator
	// (the marketplace holds operator approval for custodial listings).
	TransferRight(ctx context.Context, from string, to string, tokenNumber string) (string, error)

	// OwnerOf fetches the current owner of a token.
	OwnerOf(ctx context.Context, tokenNumber string) (string, error)

	// ParseTransferLog converts a Transfer log from the rights contract into
	// a marketplace event. The event ID is left for the publisher to assign.
	ParseTransferLog(ctx context.Context, vLog types.Log) (*domain.MarketplaceEvent, error)

	// SubscribeTransfers subscribes to the contract's Transfer logs.
	SubscribeTransfers(ctx context.Context, ch chan<- types.Log) (ethereum.Subscription, error)

	// FilterTransfers fetches the contract's Transfer logs in a block range,
	// shrinking the chunk size when the node refuses large result sets.
	FilterTransfers(ctx context.Context, fromBlock, toBlock uint64) ([]types.Log, error)

	// HeaderByNumber returns a header by number (nil = latest).
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)

	// Status reports chain ID, head block, gas price, and sync state.
	Status(ctx context.Context) (*Status, error)

	// ContractAddress returns the rights contract address.
	ContractAddress() string

	// Close closes the connection.
	Close()
}

// ClientConfig holds Ethereum client configuration
type ClientConfig struct {
	ChainID         domain.Chain // CAIP-2, e.g. eip155:11155111
	ContractAddress string
	MinterKey       string // hex private key; empty for read-only clients
}

type ethereumClient struct {
	chainID    domain.Chain
	numericID  *big.Int
	contract   common.Address
	abi        abi.ABI
	minterKey  *ecdsa.PrivateKey
	minterAddr common.Address
	client     adapter.EthClient
	clock      adapter.Clock
}

// NewClient wires an Ethereum client for the rights contract. MinterKey may
// be empty for emitter-only deployments; write calls then fail fast.
func NewClient(cfg ClientConfig, client adapter.EthClient, clock adapter.Clock) (EthereumClient, error) {
	parsedABI, err := abi.JSON(strings.NewReader(marketABIJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
	}

	numericID, err := caip2NumericID(cfg.ChainID)
	if err != nil {
		return nil, err
	}

	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address: %s", cfg.ContractAddress)
	}

	c := &ethereumClient{
		chainID:   cfg.ChainID,
		numericID: numericID,
		contract:  common.HexToAddress(cfg.ContractAddress),
		abi:       parsedABI,
		client:    client,
		clock:     clock,
	}

	if cfg.MinterKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.MinterKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid minter key: %w", err)
		}
		c.minterKey = key
		c.minterAddr = crypto.PubkeyToAddress(key.PublicKey)
	}

	return c, nil
}

// caip2NumericID extracts the numeric chain ID from a CAIP-2 identifier.
func caip2NumericID(chain domain.Chain) (*big.Int, error) {
	suffix, ok := strings.CutPrefix(string(chain), "eip155:")
	if !ok {
		return nil, fmt.Errorf("chain %q is not an eip155 chain", chain)
	}
	id, ok := new(big.Int).SetString(suffix, 10)
	if !ok {
		return nil, fmt.Errorf("chain %q has a malformed numeric ID", chain)
	}
	return id, nil
}

func (c *ethereumClient) MintRight(ctx context.Context, to string, tokenURI string) (*MintReceipt, error) {
	if !common.IsHexAddress(to) {
		return nil, fmt.Errorf("invalid recipient address: %s", to)
	}
	if tokenURI == "" {
		return nil, fmt.Errorf("token URI is required")
	}

	calldata, err := c.abi.Pack("mintTo", common.HexToAddress(to), tokenURI)
	if err != nil {
		return nil, fmt.Errorf("failed to pack mintTo: %w", err)
	}

	receipt, err := c.submitAndWait(ctx, calldata)
	if err != nil {
		return nil, err
	}

	tokenNumber, err := c.mintedTokenNumber(receipt)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Minted right token",
		zap.String("to", to),
		zap.String("token_number", tokenNumber),
		zap.String("tx_hash", receipt.TxHash.Hex()),
		zap.Uint64("block", receipt.BlockNumber.Uint64()),
	)

	return &MintReceipt{
		TxHash:      receipt.TxHash.Hex(),
		TokenNumber: tokenNumber,
		BlockNumber: receipt.BlockNumber.Uint64(),
	}, nil
}

func (c *ethereumClient) TransferRight(ctx context.Context, from string, to string, tokenNumber string) (string, error) {
	if !common.IsHexAddress(from) {
		return "", fmt.Errorf("invalid sender address: %s", from)
	}
	if !common.IsHexAddress(to) {
		return "", fmt.Errorf("invalid recipient address: %s", to)
	}
	tokenID, ok := new(big.Int).SetString(tokenNumber, 10)
	if !ok {
		return "", fmt.Errorf("invalid token number: %s", tokenNumber)
	}

	calldata, err := c.abi.Pack("transferFrom", common.HexToAddress(from), common.HexToAddress(to), tokenID)
	if err != nil {
		return "", fmt.Errorf("failed to pack transferFrom: %w", err)
	}

	receipt, err := c.submitAndWait(ctx, calldata)
	if err != nil {
		return "", err
	}

	logger.InfoCtx(ctx, "Transferred right token",
		zap.String("from", from),
		zap.String("to", to),
		zap.String("token_number", tokenNumber),
		zap.String("tx_hash", receipt.TxHash.Hex()),
	)
	return receipt.TxHash.Hex(), nil
}

func (c *ethereumClient) OwnerOf(ctx context.Context, tokenNumber string) (string, error) {
	tokenID, ok := new(big.Int).SetString(tokenNumber, 10)
	if !ok {
		return "", fmt.Errorf("invalid token number: %s", tokenNumber)
	}

	calldata, err := c.abi.Pack("ownerOf", tokenID)
	if err != nil {
		return "", fmt.Errorf("failed to pack ownerOf: %w", err)
	}

	result, err := c.client.CallContract(ctx, ethereum.CallMsg{To: &c.contract, Data: calldata}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to call contract: %w", err)
	}

	var owner common.Address
	if err := c.abi.UnpackIntoInterface(&owner, "ownerOf", result); err != nil {
		return "", fmt.Errorf("failed to unpack result: %w", err)
	}
	return owner.Hex(), nil
}

// submitAndWait signs calldata against the rights contract as an EIP-1559
// transaction, broadcasts it, and polls for the receipt. Reverted
// transactions surface as errors with the real tx hash attached.
func (c *ethereumClient) submitAndWait(ctx context.Context, calldata []byte) (*types.Receipt, error) {
	if c.minterKey == nil {
		return nil, fmt.Errorf("no minter key configured: client is read-only")
	}

	nonce, err := c.client.PendingNonceAt(ctx, c.minterAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	tipCap, err := c.client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get gas tip cap: %w", err)
	}

	head, err := c.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get head block: %w", err)
	}
	// Fee cap covers a doubling of the base fee plus the tip.
	feeCap := new(big.Int).Add(tipCap, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))

	gasLimit, err := c.client.EstimateGas(ctx, ethereum.CallMsg{
		From: c.minterAddr,
		To:   &c.contract,
		Data: calldata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   c.numericID,
		Nonce:     nonce,
		GasTipCap: tipCap,
		GasFeeCap: feeCap,
		Gas:       gasLimit + gasLimit/5, // headroom over the estimate
		To:        &c.contract,
		Data:      calldata,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.numericID), c.minterKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := c.client.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}

	receipt, err := c.waitForReceipt(ctx, signed.Hash())
	if err != nil {
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("transaction %s reverted", signed.Hash().Hex())
	}
	return receipt, nil
}

// waitForReceipt polls until the transaction is mined or the context ends.
func (c *ethereumClient) waitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt

	operation := func() error {
		r, err := c.client.TransactionReceipt(ctx, txHash)
		if err != nil {
			return fmt.Errorf("transaction %s not yet mined: %w", txHash.Hex(), err)
		}
		receipt = r
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 15 * time.Second
	b.MaxElapsedTime = 3 * time.Minute
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}
	return receipt, nil
}

// mintedTokenNumber extracts the token ID from the mint's Transfer log
// (from the zero address) in the receipt.
func (c *ethereumClient) mintedTokenNumber(receipt *types.Receipt) (string, error) {
	for _, vLog := range receipt.Logs {
		if vLog.Address != c.contract {
			continue
		}
		if len(vLog.Topics) != 4 || vLog.Topics[0] != transferEventSignature {
			continue
		}
		from := common.BytesToAddress(vLog.Topics[1].Bytes())
		if from != (common.Address{}) {
			continue
		}
		return new(big.Int).SetBytes(vLog.Topics[3].Bytes()).String(), nil
	}
	return "", fmt.Errorf("mint transaction %s has no Transfer log from the zero address", receipt.TxHash.Hex())
}

func (c *ethereumClient) ParseTransferLog(ctx context.Context, vLog types.Log) (*domain.MarketplaceEvent, error) {
	if vLog.Address != c.contract {
		return nil, nil // not ours
	}
	if len(vLog.Topics) != 4 || vLog.Topics[0] != transferEventSignature {
		return nil, fmt.Errorf("log %s is not an ERC-721 Transfer", vLog.TxHash.Hex())
	}

	header, err := c.client.HeaderByNumber(ctx, new(big.Int).SetUint64(vLog.BlockNumber))
	if err != nil {
		return nil, fmt.Errorf("failed to get block %d: %w", vLog.BlockNumber, err)
	}

	from := common.BytesToAddress(vLog.Topics[1].Bytes()).Hex()
	to := common.BytesToAddress(vLog.Topics[2].Bytes()).Hex()
	tokenNumber := new(big.Int).SetBytes(vLog.Topics[3].Bytes()).String()

	return &domain.MarketplaceEvent{
		EventType:    domain.EventRightTransferred,
		Chain:        c.chainID,
		Ref:          domain.NewNFTRef(c.chainID, c.contract.Hex(), tokenNumber),
		Actor:        from,
		Counterparty: to,
		TxHash:       vLog.TxHash.Hex(),
		Timestamp:    c.clock.Unix(int64(header.Time), 0), //nolint:gosec,G115 // header.Time is a uint64 from geth which is safe to cast
	}, nil
}

func (c *ethereumClient) SubscribeTransfers(ctx context.Context, ch chan<- types.Log) (ethereum.Subscription, error) {
	query := ethereum.FilterQuery{
		Addresses: []common.Address{c.contract},
		Topics:    [][]common.Hash{{transferEventSignature}},
	}
	return c.client.SubscribeFilterLogs(ctx, query, ch)
}

func (c *ethereumClient) FilterTransfers(ctx context.Context, fromBlock, toBlock uint64) ([]types.Log, error) {
	if toBlock < fromBlock {
		return nil, fmt.Errorf("invalid block range %d-%d", fromBlock, toBlock)
	}

	var allLogs []types.Log
	currentFrom := fromBlock
	stepSize := toBlock - fromBlock + 1

	for currentFrom <= toBlock {
		currentTo := currentFrom + stepSize - 1
		if currentTo > toBlock {
			currentTo = toBlock
		}

		query := ethereum.FilterQuery{
			FromBlock: new(big.Int).SetUint64(currentFrom),
			ToBlock:   new(big.Int).SetUint64(currentTo),
			Addresses: []common.Address{c.contract},
			Topics:    [][]common.Hash{{transferEventSignature}},
		}

		logs, err := c.client.FilterLogs(ctx, query)
		if err == nil {
			allLogs = append(allLogs, logs...)
			currentFrom = currentTo + 1
			continue
		}

		if !isTooManyResultsError(err) {
			return nil, fmt.Errorf("failed to filter logs %d-%d: %w", currentFrom, currentTo, err)
		}

		// Node refused the range; halve the chunk and retry.
		if stepSize <= 1 {
			return nil, fmt.Errorf("failed to filter logs %d-%d at minimum chunk size: %w", currentFrom, currentTo, err)
		}
		stepSize = stepSize / 2

		logger.WarnCtx(ctx, "Too many results, reducing block chunk",
			zap.Uint64("newStepSize", stepSize),
			zap.Uint64("fromBlock", currentFrom),
			zap.Uint64("toBlock", currentTo))
	}

	return allLogs, nil
}

// isTooManyResultsError checks if the error is related to too many results
func isTooManyResultsError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	// Check for common "too many results" error messages
	return strings.Contains(errStr, "query returned more than 10000 results") ||
		strings.Contains(errStr, "query timeout exceeded") ||
		strings.Contains(errStr, "too many results") ||
		strings.Contains(errStr, "exceeded maximum")
}

func (c *ethereumClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return c.client.HeaderByNumber(ctx, number)
}

func (c *ethereumClient) Status(ctx context.Context) (*Status, error) {
	nodeChainID, err := c.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	head, err := c.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get head block: %w", err)
	}

	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get gas price: %w", err)
	}

	progress, err := c.client.SyncProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get sync progress: %w", err)
	}

	return &Status{
		ChainID:     nodeChainID.String(),
		LatestBlock: head.Number.Uint64(),
		GasPriceWei: gasPrice.String(),
		Synced:      progress == nil && nodeChainID.Cmp(c.numericID) == 0,
	}, nil
}

func (c *ethereumClient) ContractAddress() string {
	return c.contract.Hex()
}

func (c *ethereumClient) Close() {
	c.client.Close()
}
