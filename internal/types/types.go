package types

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// StringPtr converts a string to a pointer to a string
func StringPtr(s string) *string {
	return &s
}

// StringNilOrEmpty checks if a pointer to a string is nil or empty
func StringNilOrEmpty(s *string) bool {
	return s == nil || *s == ""
}

// SafeString returns a safe string from a pointer to a string
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// IsPositiveNumeric checks if a string is a valid positive numeric value
func IsPositiveNumeric(s string) bool {
	regex := regexp.MustCompile(`^[1-9][0-9]*$`)
	return regex.MatchString(s)
}

// IsEthereumAddress checks if a string is a valid Ethereum address
func IsEthereumAddress(s string) bool {
	return common.IsHexAddress(s)
}

// IsValidURL checks if a string parses as an absolute URL with a scheme and host
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// IsHTTPSURL checks if a string parses as an absolute HTTPS URL
func IsHTTPSURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme == "https" && u.Host != ""
}

// IsIPFSGatewayURL checks if a URL points at an IPFS gateway path
// and returns the CID (including any subpath) when it does
func IsIPFSGatewayURL(s string) (bool, string) {
	idx := strings.Index(s, "/ipfs/")
	if idx < 0 {
		return false, ""
	}
	cid := s[idx+len("/ipfs/"):]
	if cid == "" {
		return false, ""
	}
	return true, cid
}

// DataURI holds the parsed components of an RFC 2397 data URI
type DataURI struct {
	MimeType    string
	IsBase64    bool
	DecodedData []byte
}

// ParseDataURI parses an RFC 2397 data URI of the form
// data:[<mediatype>][;base64],<data>
func ParseDataURI(s string) (*DataURI, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return nil, fmt.Errorf("invalid data URI: missing data: prefix")
	}

	meta, data, found := strings.Cut(rest, ",")
	if !found {
		return nil, fmt.Errorf("invalid data URI: missing comma separator")
	}

	parsed := &DataURI{
		MimeType: "text/plain", // RFC 2397 default
	}

	params := strings.Split(meta, ";")
	if params[0] != "" {
		parsed.MimeType = strings.ToLower(strings.TrimSpace(params[0]))
	}
	for _, p := range params[1:] {
		if strings.EqualFold(strings.TrimSpace(p), "base64") {
			parsed.IsBase64 = true
		}
	}

	if parsed.IsBase64 {
		decoded, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, fmt.Errorf("invalid data URI: malformed base64 payload: %w", err)
		}
		parsed.DecodedData = decoded
	} else {
		decoded, err := url.QueryUnescape(data)
		if err != nil {
			return nil, fmt.Errorf("invalid data URI: malformed percent-encoded payload: %w", err)
		}
		parsed.DecodedData = []byte(decoded)
	}

	return parsed, nil
}
