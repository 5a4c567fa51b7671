package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	SecretKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	SecretKeyLength   = 48
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// GenerateSecretKey returns a fresh value suitable for secret_key.
func GenerateSecretKey() (string, error) {
	return RandomString(SecretKeyLength, SecretKeyAlphabet)
}

// RandomString draws length symbols from alphabet with crypto/rand, without modulo bias.
func RandomString(length int, alphabet string) (string, error) {
	switch {
	case length < 0:
		return "", errNegativeLength
	case length == 0:
		return "", nil
	case alphabet == "":
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}
	return string(value), nil
}
