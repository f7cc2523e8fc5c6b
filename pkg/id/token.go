package id

import (
	"crypto/rand"
	"encoding/hex"
)

// GetSecureToken returns a 64-character hex token from 32 bytes of
// crypto/rand entropy. Used where tokens must be unguessable.
func GetSecureToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(err)
	}
	return hex.EncodeToString(b)
}
