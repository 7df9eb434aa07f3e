package dto

import (
	"fmt"
	"regexp"
	"time"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"

	"github.com/dright/marketplace/internal/api/shared/constants"
	apierrors "github.com/dright/marketplace/internal/api/shared/errors"
	"github.com/dright/marketplace/internal/domain"
	internalTypes "github.com/dright/marketplace/internal/types"
)

// usernamePattern restricts usernames to URL-safe handles
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// RequestNonceRequest represents the request body for requesting a login nonce
type RequestNonceRequest struct {
	Address    string            `json:"address"`
	Blockchain domain.Blockchain `json:"blockchain"`
}

// Validate validates the request body
func (r *RequestNonceRequest) Validate() error {
	if err := validation.ValidateStruct(r,
		validation.Field(&r.Address, validation.Required),
		validation.Field(&r.Blockchain, validation.Required),
	); err != nil {
		return apierrors.NewValidationError(err.Error())
	}

	// Validate: blockchain must be supported
	if !domain.IsValidBlockchain(r.Blockchain) {
		return apierrors.NewValidationError(fmt.Sprintf("unsupported blockchain: %s", r.Blockchain))
	}

	// Validate: address must belong to the blockchain
	if !domain.IsValidAddress(r.Address, r.Blockchain) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid %s address: %s", r.Blockchain, r.Address))
	}

	return nil
}

// WalletLoginRequest represents the request body for completing a wallet login
type WalletLoginRequest struct {
	Wallet     domain.WalletKind `json:"wallet"`
	Blockchain domain.Blockchain `json:"blockchain"`
	Address    string            `json:"address"`
	Nonce      string            `json:"nonce"`
	Signature  string            `json:"signature"`
	// PublicKey is the hex ed25519 key for Hedera wallets; ignored for Ethereum
	PublicKey string `json:"public_key,omitempty"`
}

// Validate validates the request body
func (r *WalletLoginRequest) Validate() error {
	if err := validation.ValidateStruct(r,
		validation.Field(&r.Wallet, validation.Required),
		validation.Field(&r.Blockchain, validation.Required),
		validation.Field(&r.Address, validation.Required),
		validation.Field(&r.Nonce, validation.Required, is.UUID),
		validation.Field(&r.Signature, validation.Required),
	); err != nil {
		return apierrors.NewValidationError(err.Error())
	}

	// Validate: wallet kind must be supported
	if !domain.IsValidWalletKind(r.Wallet) {
		return apierrors.NewValidationError(fmt.Sprintf("unsupported wallet: %s", r.Wallet))
	}

	// Validate: wallet must operate on the claimed blockchain
	if r.Wallet.Blockchain() != r.Blockchain {
		return apierrors.NewValidationError(fmt.Sprintf("wallet %s does not operate on %s", r.Wallet, r.Blockchain))
	}

	// Validate: address must belong to the blockchain
	if !domain.IsValidAddress(r.Address, r.Blockchain) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid %s address: %s", r.Blockchain, r.Address))
	}

	// Validate: Hedera signatures cannot be checked without the signing key
	if r.Blockchain == domain.BlockchainHedera && r.PublicKey == "" {
		return apierrors.NewValidationError("public_key is required for Hedera wallets")
	}

	return nil
}

// CreateRightRequest represents the request body for creating a right draft
type CreateRightRequest struct {
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	RightType     domain.RightType   `json:"right_type"`
	CategorySlug  *string            `json:"category_slug,omitempty"`
	Chain         domain.Blockchain  `json:"chain"`
	Price         string             `json:"price"`
	ListingType   domain.ListingType `json:"listing_type"`
	AuctionEnd    *time.Time         `json:"auction_end,omitempty"`
	PaysDividends bool               `json:"pays_dividends"`
	RoyaltyBps    int32              `json:"royalty_bps"`
	LegalFileID   *int64             `json:"legal_file_id,omitempty"`
	// ImageURL points at the artwork to render previews from (http(s) or ipfs)
	ImageURL *string `json:"image_url,omitempty"`
}

// Validate validates the request body
func (r *CreateRightRequest) Validate() error {
	if err := validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, constants.MAX_TITLE_LENGTH)),
		validation.Field(&r.Description, validation.Length(0, constants.MAX_DESCRIPTION_LENGTH)),
		validation.Field(&r.RightType, validation.Required),
		validation.Field(&r.Chain, validation.Required),
		validation.Field(&r.Price, validation.Required),
		validation.Field(&r.ListingType, validation.Required),
	); err != nil {
		return apierrors.NewValidationError(err.Error())
	}

	// Validate: right type must be supported
	if !domain.IsValidRightType(r.RightType) {
		return apierrors.NewValidationError(fmt.Sprintf("unsupported right type: %s", r.RightType))
	}

	// Validate: chain must be supported
	if !domain.IsValidBlockchain(r.Chain) {
		return apierrors.NewValidationError(fmt.Sprintf("unsupported chain: %s", r.Chain))
	}

	// Validate: price must be a base-unit integer
	if !domain.Amount(r.Price).Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("price must be a non-negative base-unit integer, got %q", r.Price))
	}

	// Validate: listing type must be supported
	if !domain.IsValidListingType(r.ListingType) {
		return apierrors.NewValidationError(fmt.Sprintf("unsupported listing type: %s", r.ListingType))
	}

	// Validate: auctions need a closing time within the allowed window
	if r.ListingType == domain.ListingAuction {
		if r.AuctionEnd == nil {
			return apierrors.NewValidationError("auction_end is required for auction listings")
		}
		if err := validateAuctionEnd(*r.AuctionEnd); err != nil {
			return err
		}
	}

	// Validate: royalty must stay within the marketplace cap
	if r.RoyaltyBps < 0 || int64(r.RoyaltyBps) > domain.MAX_ROYALTY_BPS {
		return apierrors.NewValidationError(fmt.Sprintf("royalty_bps must be between 0 and %d", domain.MAX_ROYALTY_BPS))
	}

	return nil
}

// UpdateRightRequest represents the request body for updating a right.
// All fields are optional; absent fields are left untouched.
type UpdateRightRequest struct {
	Title        *string             `json:"title,omitempty"`
	Description  *string             `json:"description,omitempty"`
	CategorySlug *string             `json:"category_slug,omitempty"`
	Price        *string             `json:"price,omitempty"`
	ListingType  *domain.ListingType `json:"listing_type,omitempty"`
	AuctionEnd   *time.Time          `json:"auction_end,omitempty"`
	IsListed     *bool               `json:"is_listed,omitempty"`
}

// Validate validates the request body
func (r *UpdateRightRequest) Validate() error {
	// Validate: at least one field must be present
	if r.Title == nil && r.Description == nil && r.CategorySlug == nil &&
		r.Price == nil && r.ListingType == nil && r.AuctionEnd == nil && r.IsListed == nil {
		return apierrors.NewValidationError("at least one field must be provided")
	}

	if r.Title != nil {
		if err := validation.Validate(*r.Title, validation.Required, validation.Length(1, constants.MAX_TITLE_LENGTH)); err != nil {
			return apierrors.NewValidationError(fmt.Sprintf("title: %s", err.Error()))
		}
	}

	if r.Description != nil {
		if err := validation.Validate(*r.Description, validation.Length(0, constants.MAX_DESCRIPTION_LENGTH)); err != nil {
			return apierrors.NewValidationError(fmt.Sprintf("description: %s", err.Error()))
		}
	}

	if r.Price != nil && !domain.Amount(*r.Price).Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("price must be a non-negative base-unit integer, got %q", *r.Price))
	}

	if r.ListingType != nil {
		if !domain.IsValidListingType(*r.ListingType) {
			return apierrors.NewValidationError(fmt.Sprintf("unsupported listing type: %s", *r.ListingType))
		}
		// Validate: switching to auction needs a closing time
		if *r.ListingType == domain.ListingAuction && r.AuctionEnd == nil {
			return apierrors.NewValidationError("auction_end is required when switching to an auction listing")
		}
	}

	if r.AuctionEnd != nil {
		if err := validateAuctionEnd(*r.AuctionEnd); err != nil {
			return err
		}
	}

	return nil
}

// PlaceBidRequest represents the request body for placing a bid
type PlaceBidRequest struct {
	Amount string `json:"amount"`
}

// Validate validates the request body
func (r *PlaceBidRequest) Validate() error {
	if err := validation.ValidateStruct(r,
		validation.Field(&r.Amount, validation.Required),
	); err != nil {
		return apierrors.NewValidationError(err.Error())
	}

	// Validate: amount must be a positive base-unit integer
	amount := domain.Amount(r.Amount)
	if !amount.Valid() || amount.IsZero() {
		return apierrors.NewValidationError(fmt.Sprintf("amount must be a positive base-unit integer, got %q", r.Amount))
	}

	return nil
}

// StakeRequest represents the request body for staking on a right
type StakeRequest struct {
	Amount string `json:"amount"`
}

// Validate validates the request body
func (r *StakeRequest) Validate() error {
	if err := validation.ValidateStruct(r,
		validation.Field(&r.Amount, validation.Required),
	); err != nil {
		return apierrors.NewValidationError(err.Error())
	}

	// Validate: amount must be a positive base-unit integer
	amount := domain.Amount(r.Amount)
	if !amount.Valid() || amount.IsZero() {
		return apierrors.NewValidationError(fmt.Sprintf("amount must be a positive base-unit integer, got %q", r.Amount))
	}

	return nil
}

// UpdateProfileRequest represents the request body for updating the caller's profile
type UpdateProfileRequest struct {
	Username  *string `json:"username,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// Validate validates the request body
func (r *UpdateProfileRequest) Validate() error {
	// Validate: at least one field must be present
	if r.Username == nil && r.Bio == nil && r.AvatarURL == nil {
		return apierrors.NewValidationError("at least one field must be provided")
	}

	if r.Username != nil {
		if err := validation.Validate(*r.Username,
			validation.Required,
			validation.Length(constants.MIN_USERNAME_LENGTH, constants.MAX_USERNAME_LENGTH),
			validation.Match(usernamePattern),
		); err != nil {
			return apierrors.NewValidationError(fmt.Sprintf("username: %s", err.Error()))
		}
	}

	if r.Bio != nil {
		if err := validation.Validate(*r.Bio, validation.Length(0, constants.MAX_BIO_LENGTH)); err != nil {
			return apierrors.NewValidationError(fmt.Sprintf("bio: %s", err.Error()))
		}
	}

	if r.AvatarURL != nil && *r.AvatarURL != "" && !internalTypes.IsValidURL(*r.AvatarURL) {
		return apierrors.NewValidationError("avatar_url must be a valid URL")
	}

	return nil
}

// MarkNotificationsReadRequest represents the request body for marking notifications read.
// An empty ID list marks everything unread as read.
type MarkNotificationsReadRequest struct {
	IDs []int64 `json:"ids"`
}

// Validate validates the request body
func (r *MarkNotificationsReadRequest) Validate() error {
	for _, id := range r.IDs {
		if id <= 0 {
			return apierrors.NewValidationError(fmt.Sprintf("invalid notification id: %d", id))
		}
	}
	return nil
}

// VerifyRightRequest represents the request body for an admin verification decision
type VerifyRightRequest struct {
	Decision domain.VerificationStatus `json:"decision"`
	Notes    *string                   `json:"notes,omitempty"`
}

// Validate validates the request body
func (r *VerifyRightRequest) Validate() error {
	if err := validation.ValidateStruct(r,
		validation.Field(&r.Decision, validation.Required),
	); err != nil {
		return apierrors.NewValidationError(err.Error())
	}

	// Validate: only terminal review decisions are accepted
	if r.Decision != domain.VerificationVerified && r.Decision != domain.VerificationRejected {
		return apierrors.NewValidationError(fmt.Sprintf("decision must be %q or %q", domain.VerificationVerified, domain.VerificationRejected))
	}

	if r.Notes != nil {
		if err := validation.Validate(*r.Notes, validation.Length(0, constants.MAX_DESCRIPTION_LENGTH)); err != nil {
			return apierrors.NewValidationError(fmt.Sprintf("notes: %s", err.Error()))
		}
	}

	return nil
}

// BanUserRequest represents the request body for banning or unbanning a user
type BanUserRequest struct {
	Banned bool    `json:"banned"`
	Reason *string `json:"reason,omitempty"`
}

// Validate validates the request body
func (r *BanUserRequest) Validate() error {
	if r.Reason != nil {
		if err := validation.Validate(*r.Reason, validation.Length(0, constants.MAX_DESCRIPTION_LENGTH)); err != nil {
			return apierrors.NewValidationError(fmt.Sprintf("reason: %s", err.Error()))
		}
	}
	return nil
}

// CreateWebhookClientRequest represents the request body for registering a webhook client
type CreateWebhookClientRequest struct {
	WebhookURL       string   `json:"webhook_url"`
	EventFilters     []string `json:"event_filters"`
	RetryMaxAttempts *int     `json:"retry_max_attempts,omitempty"`
}

// Validate validates the request body
func (r *CreateWebhookClientRequest) Validate(debug bool) error {
	if err := validation.ValidateStruct(r,
		validation.Field(&r.WebhookURL, validation.Required),
		validation.Field(&r.EventFilters, validation.Required),
	); err != nil {
		return apierrors.NewValidationError(err.Error())
	}

	// Validate: production clients must be HTTPS
	if debug {
		if !internalTypes.IsValidURL(r.WebhookURL) {
			return apierrors.NewValidationError("webhook_url must be a valid URL")
		}
	} else {
		if !internalTypes.IsHTTPSURL(r.WebhookURL) {
			return apierrors.NewValidationError("webhook_url must be a valid HTTPS URL")
		}
	}

	// Validate: each event filter must be a known event type or the wildcard
	for _, eventType := range r.EventFilters {
		if !domain.IsValidEventFilter(eventType) {
			return apierrors.NewValidationError(fmt.Sprintf("unsupported event type: %s. Supported types: %v", eventType, domain.SupportedEventTypes))
		}
	}

	// Validate: retry_max_attempts must be within bounds if provided
	if r.RetryMaxAttempts != nil {
		if *r.RetryMaxAttempts < 0 || *r.RetryMaxAttempts > constants.MAX_WEBHOOK_ATTEMPTS {
			return apierrors.NewValidationError(fmt.Sprintf("retry_max_attempts must be between 0 and %d", constants.MAX_WEBHOOK_ATTEMPTS))
		}
	}

	return nil
}

// validateAuctionEnd rejects closing times outside the allowed window
func validateAuctionEnd(end time.Time) error {
	now := time.Now()
	if end.Before(now.Add(constants.MIN_AUCTION_DURATION)) {
		return apierrors.NewValidationError(fmt.Sprintf("auction_end must be at least %s from now", constants.MIN_AUCTION_DURATION))
	}
	if end.After(now.Add(constants.MAX_AUCTION_DURATION)) {
		return apierrors.NewValidationError(fmt.Sprintf("auction_end must be within %s from now", constants.MAX_AUCTION_DURATION))
	}
	return nil
}
