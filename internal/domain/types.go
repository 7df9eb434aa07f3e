package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Blockchain represents the blockchain name
type Blockchain string

const (
	BlockchainHedera   Blockchain = "hedera"
	BlockchainEthereum Blockchain = "ethereum"
)

// IsValidBlockchain checks if a blockchain is supported
func IsValidBlockchain(b Blockchain) bool {
	return b == BlockchainHedera || b == BlockchainEthereum
}

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainEthereumMainnet Chain = "eip155:1"
	ChainEthereumSepolia Chain = "eip155:11155111"
	ChainHederaMainnet   Chain = "hedera:mainnet"
	ChainHederaTestnet   Chain = "hedera:testnet"
)

// IsValidChain checks if a chain is valid
func IsValidChain(chain Chain) bool {
	return chain == ChainEthereumMainnet ||
		chain == ChainEthereumSepolia ||
		chain == ChainHederaMainnet ||
		chain == ChainHederaTestnet
}

// Blockchain returns the blockchain a chain belongs to
func (c Chain) Blockchain() Blockchain {
	if strings.HasPrefix(string(c), "eip155:") {
		return BlockchainEthereum
	}
	return BlockchainHedera
}

// Network returns a human-readable network name for status reporting
func (c Chain) Network() string {
	switch c {
	case ChainEthereumMainnet:
		return "mainnet"
	case ChainEthereumSepolia:
		return "sepolia"
	default:
		_, network, _ := strings.Cut(string(c), ":")
		return network
	}
}

// WalletKind identifies a supported wallet application
type WalletKind string

const (
	WalletHashPack      WalletKind = "hashpack"
	WalletBlade         WalletKind = "blade"
	WalletMetaMask      WalletKind = "metamask"
	WalletWalletConnect WalletKind = "walletconnect"
)

// IsValidWalletKind checks if a wallet kind is supported
func IsValidWalletKind(k WalletKind) bool {
	switch k {
	case WalletHashPack, WalletBlade, WalletMetaMask, WalletWalletConnect:
		return true
	}
	return false
}

// Blockchain returns the blockchain a wallet kind operates on
func (k WalletKind) Blockchain() Blockchain {
	switch k {
	case WalletHashPack, WalletBlade:
		return BlockchainHedera
	default:
		return BlockchainEthereum
	}
}

// RightType categorizes the legal right a listing tokenizes
type RightType string

const (
	RightTypeCopyright RightType = "copyright"
	RightTypeRoyalty   RightType = "royalty"
	RightTypeAccess    RightType = "access"
	RightTypeOwnership RightType = "ownership"
	RightTypeLicense   RightType = "license"
)

// IsValidRightType checks if a right type is supported
func IsValidRightType(t RightType) bool {
	switch t {
	case RightTypeCopyright, RightTypeRoyalty, RightTypeAccess, RightTypeOwnership, RightTypeLicense:
		return true
	}
	return false
}

// ListingType represents how a right is offered for sale
type ListingType string

const (
	ListingFixed   ListingType = "fixed"
	ListingAuction ListingType = "auction"
)

// IsValidListingType checks if a listing type is supported
func IsValidListingType(t ListingType) bool {
	return t == ListingFixed || t == ListingAuction
}

// RightStatus represents the lifecycle state of a right
type RightStatus string

const (
	RightStatusDraft   RightStatus = "draft"
	RightStatusMinting RightStatus = "minting"
	RightStatusActive  RightStatus = "active"
	RightStatusFailed  RightStatus = "failed"
)

// IsValidRightStatus checks if a right status is supported
func IsValidRightStatus(s RightStatus) bool {
	switch s {
	case RightStatusDraft, RightStatusMinting, RightStatusActive, RightStatusFailed:
		return true
	}
	return false
}

// VerificationStatus represents the admin review state of a right's legal backing
type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationPending    VerificationStatus = "pending"
	VerificationVerified   VerificationStatus = "verified"
	VerificationRejected   VerificationStatus = "rejected"
)

// TxType represents the type of a ledger entry
type TxType string

const (
	TxTypeMint      TxType = "mint"
	TxTypePurchase  TxType = "purchase"
	TxTypeSale      TxType = "sale"
	TxTypeBidRefund TxType = "bid_refund"
	TxTypeRoyalty   TxType = "royalty"
	TxTypeStake     TxType = "stake"
	TxTypeUnstake   TxType = "unstake"
	TxTypeDividend  TxType = "dividend"
)

// TxStatus represents the settlement state of a ledger entry
type TxStatus string

const (
	TxStatusPending   TxStatus = "pending"
	TxStatusConfirmed TxStatus = "confirmed"
	TxStatusFailed    TxStatus = "failed"
)

// NFTRef is the canonical on-chain token reference in format chain:contract:serial
// (e.g., "eip155:1:0xabc...:1234" or "hedera:mainnet:0.0.4521:7")
type NFTRef string

// NewNFTRef creates a new NFTRef
func NewNFTRef(chain Chain, contract string, serial string) NFTRef {
	return NFTRef(fmt.Sprintf("%s:%s:%s", chain, contract, serial))
}

// String returns the string representation of the NFTRef
func (r NFTRef) String() string {
	return string(r)
}

// Parse parses the NFTRef into chain, contract address (or token ID), and serial
func (r NFTRef) Parse() (Chain, string, string) {
	parts := strings.SplitN(string(r), ":", 4)
	if len(parts) != 4 {
		return "", "", ""
	}
	return Chain(fmt.Sprintf("%s:%s", parts[0], parts[1])), parts[2], parts[3]
}

// Valid checks if the NFTRef is well formed for its chain
func (r NFTRef) Valid() bool {
	chain, contract, serial := r.Parse()
	if !validSerial(serial) {
		return false
	}

	switch chain {
	case ChainEthereumMainnet, ChainEthereumSepolia:
		return common.IsHexAddress(contract)
	case ChainHederaMainnet, ChainHederaTestnet:
		return IsHederaAccountID(contract)
	default:
		return false
	}
}

// EventType represents the type of marketplace event published to the bus
type EventType string

const (
	EventRightCreated       EventType = "right.created"
	EventRightMinted        EventType = "right.minted"
	EventRightListed        EventType = "right.listed"
	EventRightSold          EventType = "right.sold"
	EventRightTransferred   EventType = "right.transferred"
	EventRightVerified      EventType = "right.verified"
	EventBidPlaced          EventType = "bid.placed"
	EventAuctionSettled     EventType = "auction.settled"
	EventRevenueDistributed EventType = "revenue.distributed"
	EventUserFollowed       EventType = "user.followed"
)

// EventFilterWildcard subscribes a webhook client to every event type
const EventFilterWildcard = "*"

// SupportedEventTypes lists every event type a webhook client can filter on
var SupportedEventTypes = []EventType{
	EventRightCreated,
	EventRightMinted,
	EventRightListed,
	EventRightSold,
	EventRightTransferred,
	EventRightVerified,
	EventBidPlaced,
	EventAuctionSettled,
	EventRevenueDistributed,
	EventUserFollowed,
}

// IsValidEventType checks if an event type is supported
func IsValidEventType(t EventType) bool {
	for _, supported := range SupportedEventTypes {
		if t == supported {
			return true
		}
	}
	return false
}

// IsValidEventFilter checks if a webhook event filter is a supported event
// type or the wildcard
func IsValidEventFilter(filter string) bool {
	return filter == EventFilterWildcard || IsValidEventType(EventType(filter))
}

// MarketplaceEvent represents a normalized marketplace event
// This is the standard format published to NATS
type MarketplaceEvent struct {
	EventID      string    `json:"event_id"`   // ULID, assigned by the publisher
	EventType    EventType `json:"event_type"` // right.created, right.sold, bid.placed, ...
	Chain        Chain     `json:"chain"`
	RightID      string    `json:"right_id,omitempty"`
	Ref          NFTRef    `json:"nft_ref,omitempty"`
	Actor        string    `json:"actor,omitempty"`        // address that caused the event
	Counterparty string    `json:"counterparty,omitempty"` // other side of a trade, if any
	Amount       Amount    `json:"amount,omitempty"`       // base units
	TxHash       string    `json:"tx_hash,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Valid checks the event carries the fields its type requires
func (e *MarketplaceEvent) Valid() bool {
	if e.EventID == "" || !IsValidChain(e.Chain) {
		return false
	}

	switch e.EventType {
	case EventRightCreated, EventRightMinted, EventRightListed, EventRightVerified:
		return e.RightID != ""
	case EventRightSold, EventAuctionSettled:
		return e.RightID != "" && e.Actor != "" && e.Counterparty != "" && e.Amount.Valid()
	case EventRightTransferred:
		// Emitter-sourced; carries the on-chain reference rather than a row ID
		return e.Ref.Valid() && e.Actor != "" && e.Counterparty != ""
	case EventBidPlaced:
		return e.RightID != "" && e.Actor != "" && e.Amount.Valid()
	case EventRevenueDistributed:
		return e.RightID != "" && e.Amount.Valid()
	case EventUserFollowed:
		return e.Actor != "" && e.Counterparty != ""
	default:
		return false
	}
}

var hederaAccountIDPattern = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+$`)

// IsHederaAccountID checks if an address is a well-formed Hedera entity ID (shard.realm.num)
func IsHederaAccountID(address string) bool {
	return hederaAccountIDPattern.MatchString(address)
}

// IsValidAddress checks if an address is well formed for the given blockchain
func IsValidAddress(address string, blockchain Blockchain) bool {
	switch blockchain {
	case BlockchainEthereum:
		return common.IsHexAddress(address)
	case BlockchainHedera:
		return IsHederaAccountID(address)
	default:
		return false
	}
}

// AddressToBlockchain converts an address to the blockchain it belongs to
func AddressToBlockchain(address string) Blockchain {
	if strings.HasPrefix(address, "0x") {
		return BlockchainEthereum
	}
	return BlockchainHedera
}

// NormalizeAddress normalizes an address to the format used by the blockchain.
// Ethereum addresses become EIP-55 checksummed, Hedera entity IDs are trimmed.
func NormalizeAddress(address string) string {
	address = strings.TrimSpace(address)
	if strings.HasPrefix(address, "0x") {
		return common.HexToAddress(address).String()
	}
	return address
}

// validSerial checks if a token serial is a plain decimal number
func validSerial(serial string) bool {
	return regexp.MustCompile(`^[0-9]+$`).MatchString(serial)
}
