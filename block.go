package rc6

import (
	"github.com/codahale/rc6/internal/keyschedule"
	"github.com/codahale/rc6/internal/word"
)

// lgW is log2 of the word size, the fixed rotation applied to t and u.
const lgW = 5

// encryptBlock encrypts the 16-byte block at src into dst. All four words are loaded before any are stored, so dst
// may alias src exactly. A short src is read as if zero-padded.
func encryptBlock(s *keyschedule.Schedule, dst, src []byte) {
	a := word.Load(src, 0)
	b := word.Load(src, 4)
	c := word.Load(src, 8)
	d := word.Load(src, 12)

	b += s[0]
	d += s[1]
	for i := 1; i <= Rounds; i++ {
		t := word.RotateLeft(b*(2*b+1), lgW)
		u := word.RotateLeft(d*(2*d+1), lgW)
		a = word.RotateLeft(a^t, u) + s[2*i]
		c = word.RotateLeft(c^u, t) + s[2*i+1]

		a, b, c, d = b, c, d, a
	}
	a += s[2*Rounds+2]
	c += s[2*Rounds+3]

	word.Store(a, dst, 0)
	word.Store(b, dst, 4)
	word.Store(c, dst, 8)
	word.Store(d, dst, 12)
}

// decryptBlock inverts encryptBlock.
func decryptBlock(s *keyschedule.Schedule, dst, src []byte) {
	a := word.Load(src, 0)
	b := word.Load(src, 4)
	c := word.Load(src, 8)
	d := word.Load(src, 12)

	c -= s[2*Rounds+3]
	a -= s[2*Rounds+2]
	for i := Rounds; i >= 1; i-- {
		a, b, c, d = d, a, b, c

		u := word.RotateLeft(d*(2*d+1), lgW)
		t := word.RotateLeft(b*(2*b+1), lgW)
		c = word.RotateRight(c-s[2*i+1], t) ^ u
		a = word.RotateRight(a-s[2*i], u) ^ t
	}
	d -= s[1]
	b -= s[0]

	word.Store(a, dst, 0)
	word.Store(b, dst, 4)
	word.Store(c, dst, 8)
	word.Store(d, dst, 12)
}
