// Package rc6 implements the RC6 block cipher with 32-bit words and 20 rounds.
//
// A Cipher is built from a key of any length, including an empty one. It encrypts 16-byte blocks, either one at a time
// via the crypto/cipher.Block interface or over whole messages. Messages are zero-padded to a multiple of the block size
// and each block is encrypted independently, so equal plaintext blocks produce equal ciphertext blocks.
//
// The padding is not removed on decryption. Callers whose plaintexts may end in zero bytes must record the original
// length themselves.
//
// Keys are packed into words most-significant-byte first. For keys with non-zero bytes, ciphertexts therefore differ
// from those of the RC6 paper's reference implementation.
package rc6

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/codahale/rc6/internal/keyschedule"
	"github.com/codahale/rc6/internal/mem"
)

const (
	// BlockSize is the RC6 block size in bytes.
	BlockSize = 16

	// Rounds is the number of rounds applied to each block.
	Rounds = keyschedule.Rounds
)

// ErrInvalidLength is returned when decrypting input whose length is not a multiple of BlockSize.
var ErrInvalidLength = errors.New("rc6: input length is not a multiple of the block size")

// A Cipher is an instance of RC6 using a particular key.
//
// A Cipher is immutable once created and is safe for concurrent use.
type Cipher struct {
	s keyschedule.Schedule
}

// NewCipher expands the given key and returns a Cipher. The key may be any length. An empty key is equivalent to a key
// of four zero bytes.
func NewCipher(key []byte) *Cipher {
	return &Cipher{s: keyschedule.Expand(key)}
}

// BlockSize returns BlockSize. It implements cipher.Block.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the first block in src into dst. Dst and src must overlap entirely or not at all. It implements
// cipher.Block.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rc6: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rc6: output not full block")
	}
	encryptBlock(&c.s, dst, src)
}

// Decrypt decrypts the first block in src into dst. Dst and src must overlap entirely or not at all. It implements
// cipher.Block.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rc6: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rc6: output not full block")
	}
	decryptBlock(&c.s, dst, src)
}

// EncryptMessage zero-pads the plaintext to a multiple of BlockSize and encrypts each block independently. It appends
// the ciphertext to dst and returns the resulting slice. An empty plaintext produces no output.
//
// To reuse plaintext's storage for the encrypted output, use plaintext[:0] as dst. Otherwise, the remaining capacity of
// dst must not overlap plaintext.
func (c *Cipher) EncryptMessage(dst, plaintext []byte) []byte {
	ret, ciphertext := mem.SliceForAppend(dst, PaddedLen(len(plaintext)))
	for i := 0; i < len(ciphertext); i += BlockSize {
		// The final block may be short, in which case it is read as zero-padded.
		encryptBlock(&c.s, ciphertext[i:], plaintext[i:min(i+BlockSize, len(plaintext))])
	}
	return ret
}

// DecryptMessage decrypts each block of the ciphertext independently. It appends the plaintext, including any zero
// padding, to dst and returns the resulting slice. If the ciphertext's length is not a multiple of BlockSize, it returns
// ErrInvalidLength.
//
// To reuse ciphertext's storage for the decrypted output, use ciphertext[:0] as dst. Otherwise, the remaining capacity
// of dst must not overlap ciphertext.
func (c *Cipher) DecryptMessage(dst, ciphertext []byte) ([]byte, error) {
	if len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(ciphertext))
	}

	ret, plaintext := mem.SliceForAppend(dst, len(ciphertext))
	c.decryptBlocks(plaintext, ciphertext)
	return ret, nil
}

// PaddedLen returns the length of a message of n bytes after zero padding.
//
// PaddedLen panics if n is negative.
func PaddedLen(n int) int {
	if n < 0 {
		panic("rc6: negative length")
	}
	return (n + BlockSize - 1) / BlockSize * BlockSize
}

// decryptBlocks decrypts len(src) bytes of whole blocks from src into dst.
func (c *Cipher) decryptBlocks(dst, src []byte) {
	for i := 0; i < len(src); i += BlockSize {
		decryptBlock(&c.s, dst[i:], src[i:i+BlockSize])
	}
}

var _ cipher.Block = (*Cipher)(nil)
