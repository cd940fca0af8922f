package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	buf := bytes.NewBuffer(nil)

	ok, err := run(log, buf, []byte("ABC"), []byte("Anh"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("run() = false, want = true")
	}

	out := buf.String()
	for _, want := range []string{
		"Original Text: Anh\nKey: ABC\n",
		"HEX: 41 6E 68 00 00 00 00 00 00 00 00 00 00 00 00 00\n",
		"HEX: 3E 3F 90 49 A3 1F 36 98 C7 15 4A B2 15 03 2D DB\n",
		"Word 0: 6843969 (0x00686E41)\n",
		"Decrypted Text: Anh\n",
		"Decryption successful!\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("run() output is missing %q:\n%s", want, out)
		}
	}
}

func TestRunLongPlaintext(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	buf := bytes.NewBuffer(nil)

	ok, err := run(log, buf, nil, []byte("longer than a single block of plaintext"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("run() = false, want = true")
	}

	if got, want := strings.Count(buf.String(), "Word 11:"), 3; got != want {
		t.Errorf("Word 11 lines = %d, want = %d", got, want)
	}
}
