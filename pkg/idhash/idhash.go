// Package idhash generates short, stable identifiers from strings.
//
// Identifiers are derived purely from content, so rescanning an unchanged
// media tree always reproduces the same ids.
package idhash

import (
	"crypto/sha256"
	"encoding/binary"
	"math/bits"
)

// Sum hashes name with SHA-256, keeps the first 119 bits and encodes
// them as base62 (0-9, A-Z, a-z), least significant digit first.
// The result is always exactly 20 characters long.
func Sum(name string) string {
	digest := sha256.Sum256([]byte(name))

	// 128-bit integer from the first 16 bytes, big-endian.
	hi := binary.BigEndian.Uint64(digest[0:8])
	lo := binary.BigEndian.Uint64(digest[8:16])

	// Keep only the first 119 bits.
	lo = lo>>9 | hi<<55
	hi >>= 9

	var id [20]byte
	for i := range id {
		var m uint64
		hi, lo, m = divmod62(hi, lo)
		switch {
		case m < 10:
			id[i] = byte('0' + m)
		case m < 36:
			id[i] = byte('A' + m - 10)
		default:
			id[i] = byte('a' + m - 36)
		}
	}
	return string(id[:])
}

// divmod62 divides the 128-bit value hi:lo by 62.
func divmod62(hi, lo uint64) (qhi, qlo, rem uint64) {
	qhi = hi / 62
	qlo, rem = bits.Div64(hi%62, lo, 62)
	return qhi, qlo, rem
}
