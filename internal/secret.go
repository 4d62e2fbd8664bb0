package internal

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

func RandomSecret(size int) (string, error) {
	if size <= 0 {
		return "", errors.New("invalid secret size")
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	// base64url, no padding, compact
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
