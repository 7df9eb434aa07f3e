package domain

import "errors"

var (
	// ErrRightNotFound is returned when a right is not found
	ErrRightNotFound = errors.New("right not found")

	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrNotOwner is returned when an operation requires ownership of the right
	ErrNotOwner = errors.New("caller does not own this right")

	// ErrNotDraft is returned when deleting a right that already left the draft state
	ErrNotDraft = errors.New("right is no longer a draft")

	// ErrSelfPurchase is returned when an owner attempts to buy their own right
	ErrSelfPurchase = errors.New("cannot purchase your own right")

	// ErrSelfFollow is returned when a user attempts to follow themselves
	ErrSelfFollow = errors.New("cannot follow yourself")

	// ErrNotForSale is returned when the right is not purchasable in its current state
	ErrNotForSale = errors.New("right is not for sale")

	// ErrAuctionClosed is returned when bidding on an auction past its end time
	ErrAuctionClosed = errors.New("auction has ended")

	// ErrAuctionNotOpen is returned when bidding on a non-auction listing
	ErrAuctionNotOpen = errors.New("right is not an open auction")

	// ErrBidTooLow is returned when a bid does not clear the current minimum
	ErrBidTooLow = errors.New("bid is below the minimum acceptable amount")

	// ErrNoDividends is returned when staking a right without dividends enabled
	ErrNoDividends = errors.New("right does not pay dividends")

	// ErrAlreadyStaked is returned when the user already holds an active stake
	ErrAlreadyStaked = errors.New("active stake already exists")

	// ErrStakeNotFound is returned when unstaking without an active stake
	ErrStakeNotFound = errors.New("no active stake found")

	// ErrAddressBanned is returned when a banned address attempts a gated operation
	ErrAddressBanned = errors.New("address is banned")

	// ErrInvalidNonce is returned when a login nonce is unknown or expired
	ErrInvalidNonce = errors.New("invalid or expired nonce")

	// ErrInvalidSignature is returned when wallet signature verification fails
	ErrInvalidSignature = errors.New("signature verification failed")

	// ErrFileTooLarge is returned when an upload exceeds the configured size limit
	ErrFileTooLarge = errors.New("file exceeds maximum allowed size")

	// ErrUnsupportedFileType is returned when an upload's sniffed type is not allowed
	ErrUnsupportedFileType = errors.New("file type is not allowed")

	// ErrInvalidURL is returned when a URL fails validation
	ErrInvalidURL = errors.New("invalid URL")

	// ErrProviderUnavailable is returned when a wallet provider cannot be reached
	ErrProviderUnavailable = errors.New("wallet provider unavailable")
)
