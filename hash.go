package doctrans

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashSegment computes the SHA-256 hash of the trimmed segment text. Shared
// translation-memory backends key stored segments by this hash so arbitrary
// source text never leaks into key namespaces.
func HashSegment(text string) string {
	trimmed := strings.TrimSpace(text)
	hash := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(hash[:])
}
