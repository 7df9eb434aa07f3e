package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidChain(t *testing.T) {
	tests := []struct {
		name     string
		chain    Chain
		expected bool
	}{
		{
			name:     "valid ethereum mainnet",
			chain:    ChainEthereumMainnet,
			expected: true,
		},
		{
			name:     "valid ethereum sepolia",
			chain:    ChainEthereumSepolia,
			expected: true,
		},
		{
			name:     "valid hedera mainnet",
			chain:    ChainHederaMainnet,
			expected: true,
		},
		{
			name:     "valid hedera testnet",
			chain:    ChainHederaTestnet,
			expected: true,
		},
		{
			name:     "invalid empty chain",
			chain:    Chain(""),
			expected: false,
		},
		{
			name:     "invalid random chain",
			chain:    Chain("invalid:chain"),
			expected: false,
		},
		{
			name:     "invalid polygon chain",
			chain:    Chain("eip155:137"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidChain(tt.chain)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestChain_Blockchain(t *testing.T) {
	assert.Equal(t, BlockchainEthereum, ChainEthereumMainnet.Blockchain())
	assert.Equal(t, BlockchainEthereum, ChainEthereumSepolia.Blockchain())
	assert.Equal(t, BlockchainHedera, ChainHederaMainnet.Blockchain())
	assert.Equal(t, BlockchainHedera, ChainHederaTestnet.Blockchain())
}

func TestWalletKind_Blockchain(t *testing.T) {
	tests := []struct {
		name     string
		kind     WalletKind
		expected Blockchain
	}{
		{
			name:     "hashpack is hedera",
			kind:     WalletHashPack,
			expected: BlockchainHedera,
		},
		{
			name:     "blade is hedera",
			kind:     WalletBlade,
			expected: BlockchainHedera,
		},
		{
			name:     "metamask is ethereum",
			kind:     WalletMetaMask,
			expected: BlockchainEthereum,
		},
		{
			name:     "walletconnect is ethereum",
			kind:     WalletWalletConnect,
			expected: BlockchainEthereum,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.Blockchain())
		})
	}
}

func TestIsValidRightType(t *testing.T) {
	for _, valid := range []RightType{RightTypeCopyright, RightTypeRoyalty, RightTypeAccess, RightTypeOwnership, RightTypeLicense} {
		assert.True(t, IsValidRightType(valid), string(valid))
	}
	assert.False(t, IsValidRightType(RightType("")))
	assert.False(t, IsValidRightType(RightType("patent")))
}

func TestNFTRef(t *testing.T) {
	validEthereumAddress := "0x396343362be2A4dA1cE0C1C210945346fb82Aa49"

	tests := []struct {
		name     string
		ref      NFTRef
		expected bool
	}{
		{
			name:     "valid ethereum ref",
			ref:      NewNFTRef(ChainEthereumMainnet, validEthereumAddress, "123"),
			expected: true,
		},
		{
			name:     "valid hedera ref",
			ref:      NewNFTRef(ChainHederaMainnet, "0.0.4521", "7"),
			expected: true,
		},
		{
			name:     "invalid chain",
			ref:      NewNFTRef(Chain("eip155:137"), validEthereumAddress, "1"),
			expected: false,
		},
		{
			name:     "invalid ethereum contract",
			ref:      NewNFTRef(ChainEthereumMainnet, "not-an-address", "1"),
			expected: false,
		},
		{
			name:     "invalid hedera token id",
			ref:      NewNFTRef(ChainHederaMainnet, "0xabc", "1"),
			expected: false,
		},
		{
			name:     "invalid serial",
			ref:      NewNFTRef(ChainHederaMainnet, "0.0.4521", "abc"),
			expected: false,
		},
		{
			name:     "malformed ref",
			ref:      NFTRef("garbage"),
			expected: false,
		},
		{
			name:     "empty ref",
			ref:      NFTRef(""),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ref.Valid())
		})
	}
}

func TestNFTRef_Parse(t *testing.T) {
	chain, contract, serial := NFTRef("hedera:mainnet:0.0.4521:7").Parse()
	assert.Equal(t, ChainHederaMainnet, chain)
	assert.Equal(t, "0.0.4521", contract)
	assert.Equal(t, "7", serial)

	chain, contract, serial = NFTRef("bad").Parse()
	assert.Equal(t, Chain(""), chain)
	assert.Empty(t, contract)
	assert.Empty(t, serial)
}

func TestMarketplaceEvent_Valid(t *testing.T) {
	validEthereumAddress := "0x396343362be2A4dA1cE0C1C210945346fb82Aa49"
	validEthereumAddress2 := "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb1"

	tests := []struct {
		name     string
		event    MarketplaceEvent
		expected bool
	}{
		{
			name: "valid right created",
			event: MarketplaceEvent{
				EventID:   "01J5ZXYJ0F1QZJ1Q2W3E4R5T6Y",
				EventType: EventRightCreated,
				Chain:     ChainHederaMainnet,
				RightID:   "b3c1f0e8-0000-0000-0000-000000000001",
				Timestamp: time.Now(),
			},
			expected: true,
		},
		{
			name: "valid right sold",
			event: MarketplaceEvent{
				EventID:      "01J5ZXYJ0F1QZJ1Q2W3E4R5T6Y",
				EventType:    EventRightSold,
				Chain:        ChainEthereumMainnet,
				RightID:      "b3c1f0e8-0000-0000-0000-000000000001",
				Actor:        validEthereumAddress,
				Counterparty: validEthereumAddress2,
				Amount:       Amount("1000000000000000000"),
				Timestamp:    time.Now(),
			},
			expected: true,
		},
		{
			name: "sold without counterparty",
			event: MarketplaceEvent{
				EventID:   "01J5ZXYJ0F1QZJ1Q2W3E4R5T6Y",
				EventType: EventRightSold,
				Chain:     ChainEthereumMainnet,
				RightID:   "b3c1f0e8-0000-0000-0000-000000000001",
				Actor:     validEthereumAddress,
				Amount:    Amount("1"),
				Timestamp: time.Now(),
			},
			expected: false,
		},
		{
			name: "valid transferred with ref",
			event: MarketplaceEvent{
				EventID:      "01J5ZXYJ0F1QZJ1Q2W3E4R5T6Y",
				EventType:    EventRightTransferred,
				Chain:        ChainEthereumMainnet,
				Ref:          NewNFTRef(ChainEthereumMainnet, validEthereumAddress, "5"),
				Actor:        validEthereumAddress,
				Counterparty: validEthereumAddress2,
				Timestamp:    time.Now(),
			},
			expected: true,
		},
		{
			name: "transferred without ref",
			event: MarketplaceEvent{
				EventID:      "01J5ZXYJ0F1QZJ1Q2W3E4R5T6Y",
				EventType:    EventRightTransferred,
				Chain:        ChainEthereumMainnet,
				Actor:        validEthereumAddress,
				Counterparty: validEthereumAddress2,
				Timestamp:    time.Now(),
			},
			expected: false,
		},
		{
			name: "bid with invalid amount",
			event: MarketplaceEvent{
				EventID:   "01J5ZXYJ0F1QZJ1Q2W3E4R5T6Y",
				EventType: EventBidPlaced,
				Chain:     ChainHederaMainnet,
				RightID:   "b3c1f0e8-0000-0000-0000-000000000001",
				Actor:     "0.0.1001",
				Amount:    Amount("1.5"),
				Timestamp: time.Now(),
			},
			expected: false,
		},
		{
			name: "missing event id",
			event: MarketplaceEvent{
				EventType: EventRightCreated,
				Chain:     ChainHederaMainnet,
				RightID:   "b3c1f0e8-0000-0000-0000-000000000001",
				Timestamp: time.Now(),
			},
			expected: false,
		},
		{
			name: "unknown event type",
			event: MarketplaceEvent{
				EventID:   "01J5ZXYJ0F1QZJ1Q2W3E4R5T6Y",
				EventType: EventType("right.exploded"),
				Chain:     ChainHederaMainnet,
				RightID:   "b3c1f0e8-0000-0000-0000-000000000001",
				Timestamp: time.Now(),
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.Valid())
		})
	}
}

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		name       string
		address    string
		blockchain Blockchain
		expected   bool
	}{
		{
			name:       "valid ethereum address",
			address:    "0x396343362be2A4dA1cE0C1C210945346fb82Aa49",
			blockchain: BlockchainEthereum,
			expected:   true,
		},
		{
			name:       "valid hedera account",
			address:    "0.0.1234",
			blockchain: BlockchainHedera,
			expected:   true,
		},
		{
			name:       "hedera account on ethereum",
			address:    "0.0.1234",
			blockchain: BlockchainEthereum,
			expected:   false,
		},
		{
			name:       "ethereum address on hedera",
			address:    "0x396343362be2A4dA1cE0C1C210945346fb82Aa49",
			blockchain: BlockchainHedera,
			expected:   false,
		},
		{
			name:       "empty address",
			address:    "",
			blockchain: BlockchainHedera,
			expected:   false,
		},
		{
			name:       "unknown blockchain",
			address:    "0.0.1234",
			blockchain: Blockchain("solana"),
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidAddress(tt.address, tt.blockchain))
		})
	}
}

func TestNormalizeAddress(t *testing.T) {
	// Lowercased hex input is normalized to the EIP-55 checksum form
	assert.Equal(t,
		"0x396343362be2A4dA1cE0C1C210945346fb82Aa49",
		NormalizeAddress("0x396343362be2a4da1ce0c1c210945346fb82aa49"))

	// Hedera entity IDs only get trimmed
	assert.Equal(t, "0.0.1234", NormalizeAddress("  0.0.1234 "))
}

func TestAddressToBlockchain(t *testing.T) {
	assert.Equal(t, BlockchainEthereum, AddressToBlockchain("0x396343362be2A4dA1cE0C1C210945346fb82Aa49"))
	assert.Equal(t, BlockchainHedera, AddressToBlockchain("0.0.1234"))
}
