package log

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestWriteTimeTermFormat(t *testing.T) {
	b := bytes.NewBufferString("")
	writeTimeTermFormat(b, time.Now())
	if b.Len() == 0 {
		t.Fatal("expected formatted timestamp")
	}
}

func TestTerminalHandlerWritesMessageAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewTerminalHandler(&buf, false)
	l := NewLogger(h)
	l.Info("submitted transaction", "hash", "0xaa", "sender", "0x01")

	out := buf.String()
	if !strings.Contains(out, "submitted transaction") {
		t.Fatalf("missing message in output: %q", out)
	}
	if !strings.Contains(out, "hash=0xaa") {
		t.Fatalf("missing attribute in output: %q", out)
	}
}

func TestDiscardHandlerNeverEnabled(t *testing.T) {
	h := DiscardHandler()
	if h.Enabled(nil, LevelCrit) {
		t.Fatal("discard handler must never be enabled")
	}
}
