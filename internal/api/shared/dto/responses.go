package dto

import (
	"time"

	"github.com/dright/marketplace/internal/nft"
	"github.com/dright/marketplace/internal/pricing"
	"github.com/dright/marketplace/internal/wallet"
)

// NonceResponse represents the login challenge returned to a wallet
type NonceResponse struct {
	Nonce     string    `json:"nonce"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthResponse represents a completed wallet login
type AuthResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	User      *UserResponse `json:"user"`
}

// WalletProvidersResponse reports per-provider availability
type WalletProvidersResponse struct {
	Providers []wallet.DetectResult `json:"providers"`
}

// MintStartedResponse represents an accepted mint request; the right stays
// in minting status until the workflow completes
type MintStartedResponse struct {
	Right      *RightResponse `json:"right"`
	WorkflowID string         `json:"workflow_id"`
	RunID      string         `json:"run_id"`
}

// PurchaseResponse represents a completed purchase; the on-chain transfer
// settles asynchronously under the returned workflow
type PurchaseResponse struct {
	Right       *RightResponse     `json:"right"`
	Breakdown   *pricing.Breakdown `json:"breakdown"`
	PurchaseRef string             `json:"purchase_ref"`
	WorkflowID  string             `json:"workflow_id,omitempty"`
	RunID       string             `json:"run_id,omitempty"`
}

// BreakdownResponse wraps a purchase price breakdown for a right
type BreakdownResponse struct {
	RightID     string             `json:"right_id"`
	Breakdown   *pricing.Breakdown `json:"breakdown"`
	UsdEstimate string             `json:"usd_estimate,omitempty"` // spot price display only
}

// FavoriteToggleResponse reports the favorite state after a toggle
type FavoriteToggleResponse struct {
	RightID   string `json:"right_id"`
	Favorited bool   `json:"favorited"`
}

// FollowToggleResponse reports the follow state after a toggle
type FollowToggleResponse struct {
	Address   string `json:"address"`
	Following bool   `json:"following"`
}

// ChainStatusResponse wraps a chain service's network status
type ChainStatusResponse struct {
	Status *nft.ChainStatus `json:"status"`
}
