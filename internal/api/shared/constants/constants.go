package constants

import (
	"time"

	"github.com/dright/marketplace/internal/api/shared/types"
)

const (
	MAX_PAGE_SIZE               = uint8(100)
	DEFAULT_OFFSET              = uint64(0)
	DEFAULT_RIGHTS_LIMIT        = uint8(20)
	DEFAULT_BIDS_LIMIT          = uint8(20)
	DEFAULT_TRANSACTIONS_LIMIT  = uint8(20)
	DEFAULT_NOTIFICATIONS_LIMIT = uint8(20)
	DEFAULT_FOLLOWS_LIMIT       = uint8(20)
	DEFAULT_FAVORITES_LIMIT     = uint8(20)
	DEFAULT_DISTRIBUTIONS_LIMIT = uint8(20)
	DEFAULT_FILES_LIMIT         = uint8(20)
	DEFAULT_TOP_CREATORS_LIMIT  = 10
	DEFAULT_BIDS_ORDER          = types.OrderDesc

	MAX_TITLE_LENGTH         = 200
	MAX_DESCRIPTION_LENGTH   = 10000
	MAX_USERNAME_LENGTH      = 32
	MIN_USERNAME_LENGTH      = 3
	MAX_BIO_LENGTH           = 1000
	MAX_WEBHOOK_ATTEMPTS     = 10
	DEFAULT_WEBHOOK_ATTEMPTS = 5

	MIN_AUCTION_DURATION = time.Hour
	MAX_AUCTION_DURATION = 90 * 24 * time.Hour
)
