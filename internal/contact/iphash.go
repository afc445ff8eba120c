package contact

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// IPHasher turns submitter addresses into keyed BLAKE2b-256 digests so raw
// addresses are never stored.
type IPHasher struct {
	key []byte
}

// NewIPHasher creates a hasher. The key must be at most 64 bytes.
func NewIPHasher(key []byte) (*IPHasher, error) {
	if len(key) > blake2b.Size {
		return nil, fmt.Errorf("IP hash key is %d bytes, maximum is %d", len(key), blake2b.Size)
	}
	return &IPHasher{key: append([]byte(nil), key...)}, nil
}

// Hash returns the hex digest of ip, or "" for an empty ip.
func (h *IPHasher) Hash(ip string) string {
	if ip == "" {
		return ""
	}
	mac, err := blake2b.New256(h.key)
	if err != nil {
		// key length is checked in NewIPHasher
		panic(err)
	}
	mac.Write([]byte(ip))
	return hex.EncodeToString(mac.Sum(nil))
}
