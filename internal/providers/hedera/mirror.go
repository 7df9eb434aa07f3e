package hedera

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/domain"
)

// PROVIDER_NAME keys the mirror node's outbound rate limit bucket
const PROVIDER_NAME = "hedera_mirror"

// NFTInfo is a mirror node's view of one serial.
type NFTInfo struct {
	AccountID string `json:"account_id"`
	TokenID   string `json:"token_id"`
	Serial    int64  `json:"serial_number"`
	Deleted   bool   `json:"deleted"`
	// Metadata is base64 as served by the mirror node.
	Metadata string `json:"metadata"`
	// ModifiedTimestamp is the consensus timestamp of the last change.
	ModifiedTimestamp string `json:"modified_timestamp"`
}

// NFTTransfer is one mint or ownership change of a serial, as reported by
// the mirror node's NFT transaction history.
type NFTTransfer struct {
	ConsensusTimestamp string `json:"consensus_timestamp"`
	TransactionID      string `json:"transaction_id"`
	Type               string `json:"type"` // TOKENMINT, CRYPTOTRANSFER, ...
	SenderAccountID    string `json:"sender_account_id"`
	ReceiverAccountID  string `json:"receiver_account_id"`
}

// MirrorClient reads Hedera state from a mirror node's REST API. Requests
// ride the retrying HTTP adapter, so mirror rate limits back off instead of
// failing
//
//go:generate mockgen -source=mirror.go -destination=../../mocks/hedera_mirror.go -package=mocks -mock_names=MirrorClient=MockMirrorClient
type MirrorClient interface {
	// AccountPublicKey returns the hex-encoded key of an account. Satisfies
	// the wallet layer's key lookup for signature cross-checks.
	AccountPublicKey(ctx context.Context, accountID string) (string, error)
	// NFTInfo returns the current state of one serial.
	NFTInfo(ctx context.Context, tokenID string, serial int64) (*NFTInfo, error)
	// NFTTransfers lists a serial's mint/transfer history after the given
	// consensus timestamp, oldest first. Empty after means from the start.
	NFTTransfers(ctx context.Context, tokenID string, serial int64, after string) ([]NFTTransfer, error)
	// CollectionSerials pages the live serials of the collection token,
	// ascending, starting after the given serial.
	CollectionSerials(ctx context.Context, tokenID string, afterSerial int64, limit int) ([]NFTInfo, error)
	// LatestBlock returns the most recent mirror block number.
	LatestBlock(ctx context.Context) (uint64, error)
}

type mirrorClient struct {
	baseURL    string
	httpClient adapter.HTTPClient
}

// NewMirrorClient creates a mirror REST client rooted at baseURL
// (e.g. https://testnet.mirrornode.hedera.com).
func NewMirrorClient(baseURL string, httpClient adapter.HTTPClient) MirrorClient {
	return &mirrorClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type mirrorAccount struct {
	Account string `json:"account"`
	Key     *struct {
		Type string `json:"_type"`
		Key  string `json:"key"`
	} `json:"key"`
}

func (c *mirrorClient) AccountPublicKey(ctx context.Context, accountID string) (string, error) {
	if !domain.IsHederaAccountID(accountID) {
		return "", fmt.Errorf("invalid Hedera account ID: %s", accountID)
	}

	var account mirrorAccount
	endpoint := fmt.Sprintf("%s/api/v1/accounts/%s", c.baseURL, url.PathEscape(accountID))
	if err := c.httpClient.Get(ctx, endpoint, &account); err != nil {
		return "", fmt.Errorf("failed to fetch account %s: %w", accountID, err)
	}
	if account.Key == nil || account.Key.Key == "" {
		return "", fmt.Errorf("account %s has no key on record", accountID)
	}

	return account.Key.Key, nil
}

func (c *mirrorClient) NFTInfo(ctx context.Context, tokenID string, serial int64) (*NFTInfo, error) {
	var info NFTInfo
	endpoint := fmt.Sprintf("%s/api/v1/tokens/%s/nfts/%d", c.baseURL, url.PathEscape(tokenID), serial)
	if err := c.httpClient.Get(ctx, endpoint, &info); err != nil {
		return nil, fmt.Errorf("failed to fetch NFT %s/%d: %w", tokenID, serial, err)
	}
	return &info, nil
}

type mirrorNFTTransactions struct {
	Transactions []struct {
		ConsensusTimestamp string `json:"consensus_timestamp"`
		TransactionID      string `json:"transaction_id"`
		Type               string `json:"type"`
		SenderAccountID    string `json:"sender_account_id"`
		ReceiverAccountID  string `json:"receiver_account_id"`
	} `json:"transactions"`
}

func (c *mirrorClient) NFTTransfers(ctx context.Context, tokenID string, serial int64, after string) ([]NFTTransfer, error) {
	endpoint := fmt.Sprintf("%s/api/v1/tokens/%s/nfts/%d/transactions?order=asc",
		c.baseURL, url.PathEscape(tokenID), serial)
	if after != "" {
		endpoint += "&timestamp=gt:" + url.QueryEscape(after)
	}

	var page mirrorNFTTransactions
	if err := c.httpClient.Get(ctx, endpoint, &page); err != nil {
		return nil, fmt.Errorf("failed to fetch NFT transactions %s/%d: %w", tokenID, serial, err)
	}

	transfers := make([]NFTTransfer, 0, len(page.Transactions))
	for _, tx := range page.Transactions {
		transfers = append(transfers, NFTTransfer(tx))
	}
	return transfers, nil
}

type mirrorNFTPage struct {
	NFTs []NFTInfo `json:"nfts"`
}

func (c *mirrorClient) CollectionSerials(ctx context.Context, tokenID string, afterSerial int64, limit int) ([]NFTInfo, error) {
	if limit <= 0 {
		limit = 100
	}

	endpoint := fmt.Sprintf("%s/api/v1/tokens/%s/nfts?order=asc&limit=%d",
		c.baseURL, url.PathEscape(tokenID), limit)
	if afterSerial > 0 {
		endpoint += fmt.Sprintf("&serialnumber=gt:%d", afterSerial)
	}

	var page mirrorNFTPage
	if err := c.httpClient.Get(ctx, endpoint, &page); err != nil {
		return nil, fmt.Errorf("failed to list collection %s serials: %w", tokenID, err)
	}
	return page.NFTs, nil
}

type mirrorBlocks struct {
	Blocks []struct {
		Number uint64 `json:"number"`
	} `json:"blocks"`
}

func (c *mirrorClient) LatestBlock(ctx context.Context) (uint64, error) {
	var page mirrorBlocks
	endpoint := c.baseURL + "/api/v1/blocks?order=desc&limit=1"
	if err := c.httpClient.Get(ctx, endpoint, &page); err != nil {
		return 0, fmt.Errorf("failed to fetch latest block: %w", err)
	}
	if len(page.Blocks) == 0 {
		return 0, fmt.Errorf("mirror node returned no blocks")
	}
	return page.Blocks[0].Number, nil
}
