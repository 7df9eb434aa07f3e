package auth

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dright/marketplace/internal/adapter"
)

// Issuer is the iss claim on every token this service signs.
const Issuer = "dright-api"

// Token is a signed JWT plus its expiry, returned to clients after login.
type Token struct {
	Value     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// JWTService issues HS256 tokens and verifies incoming ones. Verification
// also accepts RS256 tokens when a public key is configured, so externally
// issued admin tokens keep working alongside our own.
type JWTService struct {
	secret    []byte
	publicKey *rsa.PublicKey
	ttl       time.Duration
	clock     adapter.Clock
}

// NewJWTService creates a JWT service. secret signs and verifies HS256
// tokens; publicKeyPEM is optional and only used for verification.
func NewJWTService(secret string, publicKeyPEM string, ttl time.Duration, clock adapter.Clock) (*JWTService, error) {
	if secret == "" {
		return nil, errors.New("JWT secret not configured")
	}

	svc := &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clock,
	}

	if publicKeyPEM != "" {
		publicKey, err := parseRSAPublicKey(publicKeyPEM)
		if err != nil {
			return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
		}
		svc.publicKey = publicKey
	}

	return svc, nil
}

// Issue signs an HS256 token for the given user. The subject is the user ID;
// the wallet address travels as a private claim for request logging.
func (s *JWTService) Issue(userID string, address string) (*Token, error) {
	now := s.clock.Now().UTC()
	expiresAt := now.Add(s.ttl)

	claims := jwt.MapClaims{
		"iss":     Issuer,
		"sub":     userID,
		"iat":     jwt.NewNumericDate(now),
		"exp":     jwt.NewNumericDate(expiresAt),
		"jti":     uuid.NewString(),
		"address": address,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Token{Value: signed, ExpiresAt: expiresAt}, nil
}

// Verify parses and validates a token and returns its registered claims.
// HS256 tokens are checked against the shared secret, RS256 against the
// configured public key; any other signing method is rejected.
func (s *JWTService) Verify(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			return s.secret, nil
		case *jwt.SigningMethodRSA:
			if s.publicKey == nil {
				return nil, errors.New("RSA tokens not accepted: no public key configured")
			}
			return s.publicKey, nil
		default:
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	now := s.clock.Now()
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(now) {
		return nil, errors.New("token has expired")
	}
	if claims.NotBefore != nil && claims.NotBefore.After(now) {
		return nil, errors.New("token not yet valid")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// Try parsing as PKIX (most common format)
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		// Try parsing as PKCS1 format
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
