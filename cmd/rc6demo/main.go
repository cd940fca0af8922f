// Command rc6demo encrypts and decrypts a short plaintext with RC6 and prints the original, encrypted, and decrypted
// buffers as ASCII, hex, decimal, and little-endian words.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/codahale/rc6"
	"github.com/codahale/rc6/internal/config"
	"github.com/codahale/rc6/internal/dump"
	"golang.org/x/sys/cpu"
)

func main() {
	var (
		configPath = flag.String("config", "", "an optional JSON config file")
		flags      config.Flags
	)
	flag.StringVar(&flags.Key, "key", "", "the key, as raw bytes (default \"ABC\")")
	flag.StringVar(&flags.KeyHex, "key-hex", "", "the key, hex-encoded")
	flag.StringVar(&flags.Plaintext, "plaintext", "", "the plaintext to encrypt (default \"Anh\")")
	flag.StringVar(&flags.LogLevel, "log-level", "", "the log level (default \"info\")")
	flag.Parse()

	log := slog.New(slog.Default().Handler())

	var cfg config.Config
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Error("failed to load config", "err", err)
			os.Exit(2)
		}
	}
	cfg.Resolve(flags)

	level, err := cfg.Level()
	if err != nil {
		log.Error("invalid config", "err", err)
		os.Exit(2)
	}
	slog.SetLogLoggerLevel(level)

	key, err := cfg.KeyBytes()
	if err != nil {
		log.Error("invalid config", "err", err)
		os.Exit(2)
	}

	out := bufio.NewWriter(os.Stdout)
	ok, err := run(log, out, key, []byte(cfg.Plaintext))
	if err == nil {
		err = out.Flush()
	}
	if err != nil {
		log.Error("failed to write output", "err", err)
		os.Exit(2)
	}
	if !ok {
		os.Exit(1)
	}
}

// run encrypts and decrypts the plaintext, writing listings of each buffer to w. It reports whether the decrypted
// buffer matches the plaintext.
func run(log *slog.Logger, w io.Writer, key, plaintext []byte) (bool, error) {
	c := rc6.NewCipher(key)
	log.Debug("expanded key", "key_len", len(key), "host_big_endian", cpu.IsBigEndian)

	padded := make([]byte, rc6.PaddedLen(max(len(plaintext), 1)))
	copy(padded, plaintext)

	ciphertext := c.EncryptMessage(nil, padded)
	decrypted, err := c.DecryptMessage(nil, ciphertext)
	if err != nil {
		return false, err
	}
	log.Debug("round trip complete", "blocks", len(ciphertext)/rc6.BlockSize)

	var b []byte
	b = fmt.Appendf(b, "Original Text: %s\nKey: %s\n", plaintext, key)
	b = append(b, "\nOriginal Bytes:\n"...)
	b = dump.Append(b, padded)
	b = append(b, "\nEncrypted Bytes:\n"...)
	b = dump.Append(b, ciphertext)
	b = append(b, "\nDecrypted Bytes:\n"...)
	b = dump.Append(b, decrypted)
	b = fmt.Appendf(b, "\nDecrypted Text: %s\n", bytes.TrimRight(decrypted, "\x00"))

	ok := bytes.Equal(decrypted[:len(plaintext)], plaintext)
	b = append(b, "\nVerification:\n"...)
	if ok {
		b = append(b, "Decryption successful!\n"...)
	} else {
		b = append(b, "Decryption failed!\n"...)
	}

	if _, err := w.Write(b); err != nil {
		return false, err
	}
	return ok, nil
}
