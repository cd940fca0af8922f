// Package dump renders byte buffers as ASCII, hex, decimal, and little-endian word listings.
package dump

import (
	"fmt"
	"io"
	"strconv"

	"github.com/codahale/rc6/internal/word"
)

// Write writes a listing of b to w.
//
// Printable ASCII bytes are rendered as-is, NUL as \0, and every other byte as a backslash followed by its decimal
// value. A trailing partial word is zero-filled.
func Write(w io.Writer, b []byte) error {
	_, err := w.Write(Append(nil, b))
	return err
}

// Append appends the listing Write would produce to dst and returns the resulting slice.
func Append(dst, b []byte) []byte {
	dst = append(dst, "ASCII:"...)
	for _, c := range b {
		dst = append(dst, ' ')
		switch {
		case c == 0:
			dst = append(dst, `\0`...)
		case c < ' ' || c > '~':
			dst = append(dst, '\\')
			dst = strconv.AppendUint(dst, uint64(c), 10)
		default:
			dst = append(dst, c)
		}
	}

	dst = append(dst, "\nHEX:"...)
	for _, c := range b {
		dst = fmt.Appendf(dst, " %02X", c)
	}

	dst = append(dst, "\nDEC:"...)
	for _, c := range b {
		dst = append(dst, ' ')
		dst = strconv.AppendUint(dst, uint64(c), 10)
	}

	dst = append(dst, "\n32-bit Words (Little Endian):\n"...)
	for i := 0; i < len(b); i += word.Size {
		v := word.Load(b, i)
		dst = fmt.Appendf(dst, "Word %d: %d (0x%08X)\n", i/word.Size, v, v)
	}
	return dst
}
