package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dright/marketplace/internal/domain"
)

// GenerateSignedPayload generates a signed webhook payload with an
// HMAC-SHA256 signature. Returns the JSON payload, signature header value,
// and the timestamp the signature covers.
func GenerateSignedPayload(secret string, event domain.MarketplaceEvent) (payload []byte, signature string, timestamp int64, err error) {
	payload, err = json.Marshal(event)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to marshal event: %w", err)
	}

	timestamp = time.Now().Unix()

	// Signature covers {timestamp}.{event_id}.{json_body} so clients can
	// check replay windows, deduplicate by event ID, and verify integrity
	// with one HMAC.
	signaturePayload := fmt.Sprintf("%d.%s.%s", timestamp, event.EventID, string(payload))

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(signaturePayload))

	// Format: "sha256=<hex_signature>"
	signature = "sha256=" + hex.EncodeToString(h.Sum(nil))

	return payload, signature, timestamp, nil
}

// VerifySignature recomputes the signature over the raw payload and compares
// it in constant time. Consumers use this to authenticate deliveries.
func VerifySignature(secret string, eventID string, timestamp int64, payload []byte, signature string) bool {
	signaturePayload := fmt.Sprintf("%d.%s.%s", timestamp, eventID, string(payload))

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(signaturePayload))
	expected := "sha256=" + hex.EncodeToString(h.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
