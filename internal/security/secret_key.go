package security

import (
	"errors"
	"strings"
)

const MinSecretKeyLength = 32

var (
	ErrSecretKeyTooShort    = errors.New("secret key must be at least 32 characters")
	ErrSecretKeyPlaceholder = errors.New("secret key uses an insecure placeholder value")
)

var placeholderSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
	"changeme":                                   {},
	"secret":                                     {},
}

// ValidateSecretKey checks a configured secret. An empty secret is not an
// error here; callers decide whether auth is optional.
func ValidateSecretKey(secret string) error {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return nil
	}
	if _, placeholder := placeholderSecretKeys[strings.ToLower(trimmed)]; placeholder {
		return ErrSecretKeyPlaceholder
	}
	if len(trimmed) < MinSecretKeyLength {
		return ErrSecretKeyTooShort
	}
	return nil
}
