package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of a byte sequence.
// It identifies content, not identity: equal bytes always share a fingerprint.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}
