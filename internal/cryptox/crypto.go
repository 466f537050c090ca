// Package cryptox holds the key-derivation primitives behind the offline
// device unlock: a PIN is stretched with Argon2id and verified against a
// locally stored digest, never against the gateway.
package cryptox

import (
	"crypto/sha256"

	"golang.org/x/crypto/argon2"
)

// DeriveKey stretches a PIN (or password) with Argon2id into a 32-byte key.
// Parameters follow the RFC 9106 low-memory recommendation.
func DeriveKey(secret []byte, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier digests a derived key into the value safe to persist locally.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}
