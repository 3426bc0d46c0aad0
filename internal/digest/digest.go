package digest

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"vnat/internal/nat"
)

const (
	tagEmpty = 0x00
	tagSet   = 0x01
)

// Size is the length of a digest in bytes.
const Size = blake2b.Size256

// Sum returns the digest of n.
//
// The empty set hashes the single byte 0x00. Any other set hashes 0x01, its
// element count as a uvarint, then the digests of its elements in order.
func Sum(n nat.Nat) [Size]byte {
	if n.IsEmpty() {
		return blake2b.Sum256([]byte{tagEmpty})
	}
	buf := make([]byte, 0, 1+binary.MaxVarintLen64+n.Len()*Size)
	buf = append(buf, tagSet)
	buf = binary.AppendUvarint(buf, uint64(n.Len()))
	for i := 0; i < n.Len(); i++ {
		sum := Sum(n.Elem(i))
		buf = append(buf, sum[:]...)
	}
	return blake2b.Sum256(buf)
}

// Fingerprint returns a short hex fingerprint of n.
//
// It truncates Sum to 10 bytes (20 hex chars).
func Fingerprint(n nat.Nat) string {
	sum := Sum(n)
	return hex.EncodeToString(sum[:10])
}
