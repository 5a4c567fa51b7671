package security

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestValidateSecretKey(t *testing.T) {
	assert.NoError(t, ValidateSecretKey(""))
	assert.NoError(t, ValidateSecretKey(testSecret))
	assert.ErrorIs(t, ValidateSecretKey("too-short-secret"), ErrSecretKeyTooShort)
	assert.ErrorIs(t, ValidateSecretKey("change_me_in_production"), ErrSecretKeyPlaceholder)
	assert.ErrorIs(t, ValidateSecretKey("replace_with_at_least_32_random_characters"), ErrSecretKeyPlaceholder)
}

func TestNewTokenAuthorityRequiresUsableSecret(t *testing.T) {
	_, err := NewTokenAuthority("  ")
	assert.ErrorIs(t, err, ErrSecretKeyRequired)

	_, err = NewTokenAuthority("short")
	assert.ErrorIs(t, err, ErrSecretKeyTooShort)
}

func TestTokenAuthorityIssueAndVerify(t *testing.T) {
	authority, err := NewTokenAuthority(testSecret)
	require.NoError(t, err)

	token, expiresAt, err := authority.Issue(time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := authority.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, TokenSubject, claims.Subject)
	assert.Equal(t, TokenIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenAuthorityRejectsForeignAndExpiredTokens(t *testing.T) {
	authority, err := NewTokenAuthority(testSecret)
	require.NoError(t, err)
	other, err := NewTokenAuthority("fedcba9876543210fedcba9876543210")
	require.NoError(t, err)

	foreign, _, err := other.Issue(time.Hour)
	require.NoError(t, err)
	_, err = authority.Verify(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	issuedAt := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	authority.now = func() time.Time { return issuedAt }
	expiring, _, err := authority.Issue(time.Minute)
	require.NoError(t, err)

	authority.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	_, err = authority.Verify(expiring)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = authority.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenAuthorityRejectsWrongSubject(t *testing.T) {
	authority, err := NewTokenAuthority(testSecret)
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{
		Issuer:    TokenIssuer,
		Subject:   "someone-else",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(authority.signingKey)
	require.NoError(t, err)

	_, err = authority.Verify(signed)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}
