package hedera

import (
	"context"
	"fmt"
	"time"

	hederasdk "github.com/hashgraph/hedera-sdk-go/v2"
	"go.uber.org/zap"

	"github.com/dright/marketplace/internal/logger"
)

// MintReceipt carries the SDK-reported identifiers of a mint.
type MintReceipt struct {
	// TransactionID is the Hedera transaction ID (payer@seconds.nanos).
	TransactionID string
	// Serial is the NFT serial number assigned by consensus.
	Serial int64
}

// SDKClient executes consensus transactions against Hedera. The concrete
// implementation wraps the official SDK; the interface exists so the NFT
// service can be tested without a network
//
//go:generate mockgen -source=client.go -destination=../../mocks/hedera.go -package=mocks -mock_names=SDKClient=MockHederaSDKClient
type SDKClient interface {
	// MintNFT mints one serial under the collection token with the given
	// metadata bytes and waits for the receipt.
	MintNFT(ctx context.Context, tokenID string, metadata []byte) (*MintReceipt, error)
	// TransferNFT moves a serial between accounts and waits for the
	// receipt. Returns the transaction ID.
	TransferNFT(ctx context.Context, tokenID string, serial int64, from string, to string) (string, error)
	// OperatorID returns the treasury account this client signs as.
	OperatorID() string
	Close() error
}

// Config holds Hedera SDK client configuration
type Config struct {
	Network        string // mainnet, testnet, previewnet
	OperatorID     string
	OperatorKey    string
	RequestTimeout time.Duration
}

type sdkClient struct {
	client     *hederasdk.Client
	operatorID hederasdk.AccountID
}

// NewSDKClient connects to the named Hedera network and registers the
// operator; the operator account is the collection treasury and supply key
// holder, so mints and custodial transfers are signed with its key.
func NewSDKClient(cfg Config) (SDKClient, error) {
	client, err := hederasdk.ClientForName(cfg.Network)
	if err != nil {
		return nil, fmt.Errorf("unknown Hedera network %q: %w", cfg.Network, err)
	}

	operatorID, err := hederasdk.AccountIDFromString(cfg.OperatorID)
	if err != nil {
		return nil, fmt.Errorf("invalid operator account ID: %w", err)
	}
	operatorKey, err := hederasdk.PrivateKeyFromString(cfg.OperatorKey)
	if err != nil {
		return nil, fmt.Errorf("invalid operator key: %w", err)
	}
	client.SetOperator(operatorID, operatorKey)

	if cfg.RequestTimeout > 0 {
		client.SetRequestTimeout(cfg.RequestTimeout)
	}

	return &sdkClient{client: client, operatorID: operatorID}, nil
}

func (c *sdkClient) MintNFT(ctx context.Context, tokenID string, metadata []byte) (*MintReceipt, error) {
	tid, err := hederasdk.TokenIDFromString(tokenID)
	if err != nil {
		return nil, fmt.Errorf("invalid collection token ID %q: %w", tokenID, err)
	}

	var receipt *MintReceipt
	err = c.execute(ctx, func() error {
		resp, err := hederasdk.NewTokenMintTransaction().
			SetTokenID(tid).
			SetMetadata(metadata).
			Execute(c.client)
		if err != nil {
			return fmt.Errorf("mint transaction failed: %w", err)
		}

		rec, err := resp.GetReceipt(c.client)
		if err != nil {
			return fmt.Errorf("mint receipt failed: %w", err)
		}
		if rec.Status != hederasdk.StatusSuccess {
			return fmt.Errorf("mint transaction ended with status %s", rec.Status)
		}
		if len(rec.SerialNumbers) == 0 {
			return fmt.Errorf("mint receipt carries no serial numbers")
		}

		receipt = &MintReceipt{
			TransactionID: resp.TransactionID.String(),
			Serial:        rec.SerialNumbers[0],
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Minted Hedera NFT",
		zap.String("token_id", tokenID),
		zap.Int64("serial", receipt.Serial),
		zap.String("transaction_id", receipt.TransactionID),
	)
	return receipt, nil
}

func (c *sdkClient) TransferNFT(ctx context.Context, tokenID string, serial int64, from string, to string) (string, error) {
	tid, err := hederasdk.TokenIDFromString(tokenID)
	if err != nil {
		return "", fmt.Errorf("invalid collection token ID %q: %w", tokenID, err)
	}
	sender, err := hederasdk.AccountIDFromString(from)
	if err != nil {
		return "", fmt.Errorf("invalid sender account: %w", err)
	}
	receiver, err := hederasdk.AccountIDFromString(to)
	if err != nil {
		return "", fmt.Errorf("invalid receiver account: %w", err)
	}

	nftID := hederasdk.NftID{TokenID: tid, SerialNumber: serial}

	var txID string
	err = c.execute(ctx, func() error {
		resp, err := hederasdk.NewTransferTransaction().
			AddNftTransfer(nftID, sender, receiver).
			Execute(c.client)
		if err != nil {
			return fmt.Errorf("transfer transaction failed: %w", err)
		}

		rec, err := resp.GetReceipt(c.client)
		if err != nil {
			return fmt.Errorf("transfer receipt failed: %w", err)
		}
		if rec.Status != hederasdk.StatusSuccess {
			return fmt.Errorf("transfer transaction ended with status %s", rec.Status)
		}

		txID = resp.TransactionID.String()
		return nil
	})
	if err != nil {
		return "", err
	}

	logger.InfoCtx(ctx, "Transferred Hedera NFT",
		zap.String("token_id", tokenID),
		zap.Int64("serial", serial),
		zap.String("from", from),
		zap.String("to", to),
		zap.String("transaction_id", txID),
	)
	return txID, nil
}

func (c *sdkClient) OperatorID() string {
	return c.operatorID.String()
}

func (c *sdkClient) Close() error {
	return c.client.Close()
}

// execute runs an SDK call on a goroutine so a canceled context unblocks the
// caller. A transaction already submitted may still reach consensus; callers
// treat cancellation as unknown outcome, not failure.
func (c *sdkClient) execute(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
