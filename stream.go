package rc6

import (
	"errors"
	"fmt"
	"io"
)

// streamBufSize is the number of bytes DecryptReader reads from its source at a time.
const streamBufSize = 64 * BlockSize

// EncryptWriter returns an io.WriteCloser which encrypts whatever is written to it and writes the ciphertext to w.
// Writes are buffered until a whole block is available. Close zero-pads and flushes any partial final block, then closes
// w if it is an io.WriteCloser. The bytes written to w are the same as EncryptMessage over everything written.
//
// If a Write call returns an error, the stream is out of sync and must be discarded.
//
// N.B.: The returned io.WriteCloser must be closed for the final block to be written.
func (c *Cipher) EncryptWriter(w io.Writer) io.WriteCloser {
	return &encryptWriter{c: c, w: w, pending: make([]byte, 0, BlockSize), out: nil, closed: false}
}

// DecryptReader returns an io.Reader which decrypts the ciphertext read from r. If r ends with a partial block, the
// reader returns ErrInvalidLength after the plaintext of every whole block. Zero padding is not removed.
func (c *Cipher) DecryptReader(r io.Reader) io.Reader {
	return &decryptReader{c: c, r: r, buf: make([]byte, streamBufSize), plain: nil, err: nil}
}

type encryptWriter struct {
	c       *Cipher
	w       io.Writer
	pending []byte
	out     []byte
	closed  bool
}

func (e *encryptWriter) Write(p []byte) (n int, err error) {
	if e.closed {
		return 0, io.ErrClosedPipe
	}

	e.pending = append(e.pending, p...)
	if full := len(e.pending) - len(e.pending)%BlockSize; full > 0 {
		e.out = e.c.EncryptMessage(e.out[:0], e.pending[:full])
		if _, err := e.w.Write(e.out); err != nil {
			return 0, err
		}
		e.pending = append(e.pending[:0], e.pending[full:]...)
	}
	return len(p), nil
}

func (e *encryptWriter) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	if len(e.pending) > 0 {
		e.out = e.c.EncryptMessage(e.out[:0], e.pending)
		clear(e.pending)
		e.pending = e.pending[:0]
		if _, err := e.w.Write(e.out); err != nil {
			return err
		}
	}

	if wc, ok := e.w.(io.WriteCloser); ok {
		return wc.Close()
	}
	return nil
}

type decryptReader struct {
	c     *Cipher
	r     io.Reader
	buf   []byte
	plain []byte
	err   error
}

func (d *decryptReader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}

	for len(d.plain) == 0 {
		if d.err != nil {
			return 0, d.err
		}
		d.fill()
	}

	n = copy(p, d.plain)
	d.plain = d.plain[n:]
	return n, nil
}

// fill reads the next run of ciphertext and decrypts its whole blocks in place.
func (d *decryptReader) fill() {
	n, err := io.ReadFull(d.r, d.buf)
	full := n - n%BlockSize
	d.c.decryptBlocks(d.buf[:full], d.buf[:full])
	d.plain = d.buf[:full]

	switch {
	case err == nil:
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		if n%BlockSize != 0 {
			d.err = fmt.Errorf("%w: trailing %d bytes", ErrInvalidLength, n%BlockSize)
		} else {
			d.err = io.EOF
		}
	default:
		d.err = err
	}
}

var (
	_ io.WriteCloser = (*encryptWriter)(nil)
	_ io.Reader      = (*decryptReader)(nil)
)
