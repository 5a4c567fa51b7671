package security

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/hkdf"
)

const (
	TokenIssuer     = "cradle"
	TokenSubject    = "owner"
	DefaultTokenTTL = 30 * 24 * time.Hour

	tokenKeyInfo = "cradle.api-token.v1"
)

var (
	ErrSecretKeyRequired = errors.New("secret key is required")
	ErrInvalidToken      = errors.New("invalid token")
)

// TokenAuthority signs and verifies API bearer tokens.
type TokenAuthority struct {
	signingKey []byte
	now        func() time.Time
}

func NewTokenAuthority(secret string) (*TokenAuthority, error) {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return nil, ErrSecretKeyRequired
	}
	if err := ValidateSecretKey(trimmed); err != nil {
		return nil, err
	}

	signingKey, err := deriveTokenKey([]byte(trimmed))
	if err != nil {
		return nil, err
	}
	return &TokenAuthority{signingKey: signingKey, now: time.Now}, nil
}

func deriveTokenKey(secret []byte) ([]byte, error) {
	key := make([]byte, 32)
	reader := hkdf.New(sha256.New, secret, nil, []byte(tokenKeyInfo))
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive token key: %w", err)
	}
	return key, nil
}

// Issue returns a signed token and its expiry. Non-positive ttl falls back to DefaultTokenTTL.
func (authority *TokenAuthority) Issue(ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	now := authority.now()
	expiresAt := now.Add(ttl)

	claims := jwt.RegisteredClaims{
		Issuer:    TokenIssuer,
		Subject:   TokenSubject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(authority.signingKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (authority *TokenAuthority) Verify(raw string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(
		strings.TrimSpace(raw),
		claims,
		func(token *jwt.Token) (interface{}, error) {
			return authority.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithSubject(TokenSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(authority.now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}
