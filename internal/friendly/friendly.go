package friendly

import (
	"strings"
)

// FallbackMessage is shown when no pattern matches the error chain
const FallbackMessage = "😕 Something went wrong. Please try again."

// rule pairs a lowercase substring pattern with the user-facing message
// shown when the pattern appears anywhere in the error chain
type rule struct {
	pattern string
	message string
}

// rules is matched top to bottom; the first hit wins, so more specific
// patterns must come before the broader ones they contain
var rules = []rule{
	// Hedera status codes
	{"token_not_associated_to_account", "🔗 Your account is not associated with this token. Associate it in your wallet and try again."},
	{"insufficient_payer_balance", "💰 Insufficient funds in your wallet to complete this transaction."},
	{"insufficient_token_balance", "💰 Insufficient token balance to complete this transaction."},
	{"invalid_signature", "✍️ The network rejected the signature. Reconnect your wallet and try again."},
	{"transaction_expired", "⏰ The transaction expired before it reached the network. Please try again."},
	{"duplicate_transaction", "🔁 This transaction was already submitted. Check your wallet history before retrying."},

	// Ethereum node errors
	{"replacement transaction underpriced", "⛽ A pending transaction is blocking this one. Wait for it to confirm or speed it up in your wallet."},
	{"intrinsic gas too low", "⛽ Gas limit too low for this transaction. Increase the gas limit and try again."},
	{"gas too low", "⛽ Gas limit too low for this transaction. Increase the gas limit and try again."},
	{"max fee per gas less than block base fee", "⛽ Gas price too low for current network conditions. Try again with a higher fee."},
	{"nonce too low", "🔁 A previous transaction is still pending. Wait a moment and try again."},
	{"insufficient funds", "💰 Insufficient funds in your wallet to complete this transaction."},
	{"execution reverted", "⚠️ The contract rejected this transaction. The listing may have changed since you loaded it."},

	// Wallet rejections
	{"user rejected", "🚫 Transaction was cancelled."},
	{"user denied", "🚫 Transaction was cancelled."},
	{"request rejected", "🚫 Transaction was cancelled."},

	// Transport failures
	{"context deadline exceeded", "🌐 Network timeout. Check your connection and try again."},
	{"timeout", "🌐 Network timeout. Check your connection and try again."},
	{"connection refused", "🌐 Could not reach the network. Try again in a moment."},
	{"connection reset", "🌐 The connection dropped. Try again in a moment."},
	{"no such host", "🌐 Could not reach the network. Check your connection and try again."},
	{"rate limited", "🐢 Too many requests. Wait a moment before trying again."},
	{"too many requests", "🐢 Too many requests. Wait a moment before trying again."},

	// Storage failures
	{"duplicate key value", "📋 That name is already taken. Choose a different one."},
	{"record not found", "🔍 We couldn't find what you were looking for. It may have been removed."},

	// Marketplace rules surfaced by the API
	{"bid is below the minimum", "📈 Your bid is too low. It must beat the current highest bid by the minimum increment."},
	{"auction has ended", "⏰ This auction has already ended."},
	{"not an open auction", "🔨 This listing does not accept bids."},
	{"cannot purchase your own", "🛑 You already own this right."},
	{"cannot follow yourself", "🙃 You cannot follow yourself."},
	{"not for sale", "🏷️ This right is not for sale right now."},
	{"does not pay dividends", "📉 This right does not share revenue, so it cannot be staked."},
	{"active stake already exists", "🔒 You already have an active stake on this right."},
	{"no active stake", "🔍 You do not have an active stake on this right."},
	{"no longer a draft", "🔒 This right has already been minted and can no longer be removed."},
	{"does not own this right", "🔐 Only the owner of this right can do that."},
	{"address is banned", "⛔ This account has been suspended from the marketplace."},
	{"invalid or expired nonce", "⏰ Your login challenge expired. Request a new one and sign again."},
	{"signature verification failed", "✍️ We couldn't verify your wallet signature. Reconnect your wallet and try again."},
	{"exceeds maximum allowed size", "📦 That file is too large to upload."},
	{"file type is not allowed", "📄 That file type isn't supported. Upload a PDF, an image, or a text document."},
	{"right not found", "🔍 That right doesn't exist or has been removed."},
	{"user not found", "🔍 We couldn't find that user."},
	{"validation failed", "📝 Some fields need attention. Check the highlighted values and try again."},
}

// Translate maps an error to the user-facing message for it
// Matching is case-insensitive substring over the whole error chain;
// the first matching rule wins, with a generic fallback
func Translate(err error) string {
	if err == nil {
		return ""
	}
	return TranslateMessage(err.Error())
}

// TranslateMessage maps a raw error string to the user-facing message for it
func TranslateMessage(msg string) string {
	lowered := strings.ToLower(msg)
	for _, r := range rules {
		if strings.Contains(lowered, r.pattern) {
			return r.message
		}
	}
	return FallbackMessage
}
