package domain

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// Amount is a monetary value in the chain's base unit (tinybars for Hedera,
// wei for Ethereum) encoded as a decimal string. Base-unit integers survive
// JSON, postgres numeric columns, and big.Int math without precision loss.
type Amount string

const BASIS_POINT_DENOMINATOR = 10000

var amountPattern = regexp.MustCompile(`^[0-9]+$`)

// NewAmount creates an Amount from a big.Int. Negative values are rejected.
func NewAmount(v *big.Int) (Amount, error) {
	if v == nil {
		return "", fmt.Errorf("amount is nil")
	}
	if v.Sign() < 0 {
		return "", fmt.Errorf("amount is negative: %s", v.String())
	}
	return Amount(v.String()), nil
}

// String returns the string representation of the Amount
func (a Amount) String() string {
	return string(a)
}

// Valid checks if the Amount is a non-negative base-unit integer
func (a Amount) Valid() bool {
	return amountPattern.MatchString(string(a))
}

// IsZero reports whether the Amount is zero
func (a Amount) IsZero() bool {
	v, err := a.BigInt()
	if err != nil {
		return false
	}
	return v.Sign() == 0
}

// BigInt parses the Amount into a big.Int
func (a Amount) BigInt() (*big.Int, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("invalid amount: %q", string(a))
	}
	v, ok := new(big.Int).SetString(string(a), 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount: %q", string(a))
	}
	return v, nil
}

// Cmp compares two Amounts, returning -1, 0, or 1
func (a Amount) Cmp(b Amount) (int, error) {
	av, err := a.BigInt()
	if err != nil {
		return 0, err
	}
	bv, err := b.BigInt()
	if err != nil {
		return 0, err
	}
	return av.Cmp(bv), nil
}

// Add returns a + b
func (a Amount) Add(b Amount) (Amount, error) {
	av, err := a.BigInt()
	if err != nil {
		return "", err
	}
	bv, err := b.BigInt()
	if err != nil {
		return "", err
	}
	return Amount(new(big.Int).Add(av, bv).String()), nil
}

// Sub returns a - b, failing if the result would be negative
func (a Amount) Sub(b Amount) (Amount, error) {
	av, err := a.BigInt()
	if err != nil {
		return "", err
	}
	bv, err := b.BigInt()
	if err != nil {
		return "", err
	}
	r := new(big.Int).Sub(av, bv)
	if r.Sign() < 0 {
		return "", fmt.Errorf("amount underflow: %s - %s", a, b)
	}
	return Amount(r.String()), nil
}

// ApplyBps returns a * bps / 10000, truncated toward zero
func (a Amount) ApplyBps(bps int64) (Amount, error) {
	if bps < 0 || bps > BASIS_POINT_DENOMINATOR {
		return "", fmt.Errorf("basis points out of range: %d", bps)
	}
	av, err := a.BigInt()
	if err != nil {
		return "", err
	}
	r := new(big.Int).Mul(av, big.NewInt(bps))
	r.Quo(r, big.NewInt(BASIS_POINT_DENOMINATOR))
	return Amount(r.String()), nil
}

// CurrencyDecimals returns the base-unit exponent of a blockchain's native currency
func CurrencyDecimals(b Blockchain) int {
	if b == BlockchainHedera {
		return 8 // tinybars per hbar
	}
	return 18 // wei per ether
}

// CurrencySymbol returns the display symbol of a blockchain's native currency
func CurrencySymbol(b Blockchain) string {
	if b == BlockchainHedera {
		return "HBAR"
	}
	return "ETH"
}

// Display renders the Amount in whole currency units with the fractional part
// trimmed of trailing zeros (e.g., 150000000 tinybars -> "1.5")
func (a Amount) Display(decimals int) (string, error) {
	v, err := a.BigInt()
	if err != nil {
		return "", err
	}
	s := v.String()
	if decimals <= 0 {
		return s, nil
	}
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}
	whole := s[:len(s)-decimals]
	frac := strings.TrimRight(s[len(s)-decimals:], "0")
	if frac == "" {
		return whole, nil
	}
	return whole + "." + frac, nil
}

// ParseDecimal converts a whole-unit decimal string (e.g., "1.5" hbar) into a
// base-unit Amount. More fractional digits than the currency carries is an error.
func ParseDecimal(s string, decimals int) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty amount")
	}
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if !amountPattern.MatchString(whole) || (frac != "" && !amountPattern.MatchString(frac)) {
		return "", fmt.Errorf("invalid decimal amount: %q", s)
	}
	if len(frac) > decimals {
		return "", fmt.Errorf("amount %q exceeds %d decimal places", s, decimals)
	}
	frac += strings.Repeat("0", decimals-len(frac))
	v, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return "", fmt.Errorf("invalid decimal amount: %q", s)
	}
	return Amount(v.String()), nil
}
