package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// IntegrityHash computes the tamper-evidence digest of a canonical document
// text: SHA-256 over the UTF-8 bytes, uppercase hex, always 64 characters.
// This is a content hash, not a cryptographic signature.
func IntegrityHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// IntegrityHashBytes is the byte-level variant used for rendered artifacts.
func IntegrityHashBytes(content []byte) string {
	sum := sha256.Sum256(content)
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
