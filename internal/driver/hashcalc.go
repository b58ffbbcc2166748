package driver

import (
	"crypto/sha256"
	"encoding/hex"
)

// Key identifies a cached token list.
type Key [sha256.Size]byte

func (k Key) String() string { return hex.EncodeToString(k[:]) }

// CacheKey combines H(schema || content || fingerprint). The fingerprint
// carries the dialect and every option that changes token output.
func CacheKey(content [sha256.Size]byte, fingerprint string) Key {
	h := sha256.New()
	_, _ = h.Write([]byte{byte(diskCacheSchemaVersion >> 8), byte(diskCacheSchemaVersion)})
	_, _ = h.Write(content[:])
	_, _ = h.Write([]byte(fingerprint))
	var out Key
	copy(out[:], h.Sum(nil))
	return out
}
