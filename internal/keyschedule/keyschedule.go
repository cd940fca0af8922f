// Package keyschedule derives the RC6 subkey array from a variable-length key.
//
// Key bytes are packed into words most-significant-byte first, in forward key order. This differs from the
// little-endian packing of the RC6 paper for any key with a non-zero byte, and is kept for compatibility with existing
// ciphertexts. All-zero keys produce the published schedules.
package keyschedule

import (
	"fmt"

	"github.com/codahale/rc6/internal/word"
)

const (
	Rounds = 20           // The number of rounds of the round transform.
	Size   = 2*Rounds + 4 // The number of subkeys.
	P32    = 0xB7E15163   // Odd((e-2) * 2^32)
	Q32    = 0x9E3779B9   // Odd((phi-1) * 2^32)
	passes = 3            // Mixing passes over the longer of S and L.
	wBytes = word.Size
)

// A Schedule is an expanded RC6 key.
type Schedule [Size]uint32

// Expand derives the schedule for the given key. Any key length is accepted. An empty key is treated as a single zero
// key word, so it derives the same schedule as any key of one to four zero bytes.
func Expand(key []byte) Schedule {
	var s Schedule
	s[0] = P32
	for i := 1; i < Size; i++ {
		s[i] = s[i-1] + Q32
	}

	l := packKey(key)

	var a, b uint32
	i, j := newRing(Size), newRing(len(l))
	for range passes * max(len(l), Size) {
		a = word.RotateLeft(s[i.at]+a+b, 3)
		s[i.at] = a
		b = word.RotateLeft(l[j.at]+a+b, a+b)
		l[j.at] = b
		i.next()
		j.next()
	}

	clear(l)
	return s
}

// String returns the schedule as hex-encoded words, one per line.
func (s *Schedule) String() string {
	b := make([]byte, 0, Size*len("S[00] = 00000000\n"))
	for i, k := range s {
		b = fmt.Appendf(b, "S[%02d] = %08x\n", i, k)
	}
	return string(b)
}

var _ fmt.Stringer = (*Schedule)(nil)

func packKey(key []byte) []uint32 {
	l := make([]uint32, max(1, (len(key)+wBytes-1)/wBytes))
	for i, k := range key {
		l[i/wBytes] = l[i/wBytes]<<8 + uint32(k)
	}
	return l
}

// ring is an index which wraps around at n.
type ring struct {
	at, n int
}

func newRing(n int) ring {
	if n < 1 {
		panic("rc6: ring length must be positive")
	}
	return ring{at: 0, n: n}
}

func (r *ring) next() {
	r.at++
	if r.at == r.n {
		r.at = 0
	}
}
