package pricing

import (
	"fmt"

	"github.com/dright/marketplace/internal/domain"
)

// Config holds the marketplace fee parameters
type Config struct {
	// PlatformFeeBps is the marketplace cut in basis points
	PlatformFeeBps int64
	// MinPlatformFee is the fee floor in base units, applied when the bps cut is smaller
	MinPlatformFee domain.Amount
}

// Breakdown itemizes where a purchase price goes. All amounts are base-unit
// integers; the display fields render them in whole currency units for clients.
type Breakdown struct {
	Price          domain.Amount `json:"price"`
	PlatformFee    domain.Amount `json:"platform_fee"`
	CreatorRoyalty domain.Amount `json:"creator_royalty"`
	SellerNet      domain.Amount `json:"seller_net"`

	FeeBps     int64 `json:"fee_bps"`
	RoyaltyBps int64 `json:"royalty_bps"`
	IsResale   bool  `json:"is_resale"`

	Currency              string `json:"currency"`
	PriceDisplay          string `json:"price_display"`
	PlatformFeeDisplay    string `json:"platform_fee_display"`
	CreatorRoyaltyDisplay string `json:"creator_royalty_display"`
	SellerNetDisplay      string `json:"seller_net_display"`
}

// Calculator computes purchase breakdowns from the configured fee schedule
type Calculator struct {
	config Config
}

// NewCalculator creates a pricing calculator
func NewCalculator(config Config) *Calculator {
	return &Calculator{config: config}
}

// Breakdown itemizes a purchase at the given price.
// The platform fee is the configured bps cut floored at the configured
// minimum and capped at the price. The creator royalty applies on resales
// only and is capped at what remains after the fee, so the seller net is
// never negative.
func (c *Calculator) Breakdown(price domain.Amount, chain domain.Blockchain, royaltyBps int64, isResale bool) (*Breakdown, error) {
	if !price.Valid() {
		return nil, fmt.Errorf("invalid price: %q", price)
	}
	if royaltyBps < 0 || royaltyBps > domain.MAX_ROYALTY_BPS {
		return nil, fmt.Errorf("royalty basis points out of range: %d", royaltyBps)
	}

	fee, err := price.ApplyBps(c.config.PlatformFeeBps)
	if err != nil {
		return nil, fmt.Errorf("failed to compute platform fee: %w", err)
	}

	// Floor the fee at the configured minimum
	if c.config.MinPlatformFee.Valid() {
		if cmp, err := fee.Cmp(c.config.MinPlatformFee); err == nil && cmp < 0 {
			fee = c.config.MinPlatformFee
		}
	}

	// The fee can never exceed the price itself
	if cmp, err := fee.Cmp(price); err == nil && cmp > 0 {
		fee = price
	}

	remainder, err := price.Sub(fee)
	if err != nil {
		return nil, err
	}

	royalty := domain.Amount("0")
	if isResale && royaltyBps > 0 {
		royalty, err = price.ApplyBps(royaltyBps)
		if err != nil {
			return nil, fmt.Errorf("failed to compute creator royalty: %w", err)
		}
		// Cap the royalty at what remains after the fee
		if cmp, err := royalty.Cmp(remainder); err == nil && cmp > 0 {
			royalty = remainder
		}
	}

	sellerNet, err := remainder.Sub(royalty)
	if err != nil {
		return nil, err
	}

	b := &Breakdown{
		Price:          price,
		PlatformFee:    fee,
		CreatorRoyalty: royalty,
		SellerNet:      sellerNet,
		FeeBps:         c.config.PlatformFeeBps,
		RoyaltyBps:     royaltyBps,
		IsResale:       isResale,
		Currency:       domain.CurrencySymbol(chain),
	}

	decimals := domain.CurrencyDecimals(chain)
	if b.PriceDisplay, err = price.Display(decimals); err != nil {
		return nil, err
	}
	if b.PlatformFeeDisplay, err = fee.Display(decimals); err != nil {
		return nil, err
	}
	if b.CreatorRoyaltyDisplay, err = royalty.Display(decimals); err != nil {
		return nil, err
	}
	if b.SellerNetDisplay, err = sellerNet.Display(decimals); err != nil {
		return nil, err
	}

	return b, nil
}
