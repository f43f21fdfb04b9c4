// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
)

var ErrInvalidAdminKey = errors.New("invalid admin key")

// ValidateAdminKey checks the provided key against the configured secret.
// Both sides are hashed first so the comparison does not leak the length.
func ValidateAdminKey(provided, secret string) error {
	if secret == "" || provided == "" {
		return ErrInvalidAdminKey
	}
	if !hmac.Equal(digest(provided), digest(secret)) {
		return ErrInvalidAdminKey
	}
	return nil
}

func digest(s string) []byte {
	sum := sha256.Sum256([]byte(s))
	return sum[:]
}
