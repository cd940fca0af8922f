// Package word converts between 32-bit words and little-endian bytes and provides the rotations RC6 is built from.
package word

import (
	"encoding/binary"
	"math/bits"
)

// Size is the width of a word in bytes.
const Size = 4

// Load reads the little-endian word starting at b[off]. Bytes past the end of b are read as zero, so Load never indexes
// out of bounds.
func Load(b []byte, off int) uint32 {
	if off >= 0 && off+Size <= len(b) {
		return binary.LittleEndian.Uint32(b[off:])
	}

	var w uint32
	for i := range Size {
		if j := off + i; j >= 0 && j < len(b) {
			w |= uint32(b[j]) << (8 * i)
		}
	}
	return w
}

// Store writes w to b[off:off+4] in little-endian order. It panics if b is too short.
func Store(w uint32, b []byte, off int) {
	binary.LittleEndian.PutUint32(b[off:], w)
}

// RotateLeft rotates x left by n mod 32 bits.
func RotateLeft(x, n uint32) uint32 {
	return bits.RotateLeft32(x, int(n&31))
}

// RotateRight rotates x right by n mod 32 bits.
func RotateRight(x, n uint32) uint32 {
	return bits.RotateLeft32(x, -int(n&31))
}
