package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestInitWithWriterWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("s2p-test", false, &buf)
	t.Cleanup(func() {
		Logger = zerolog.Nop()
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	})
	SetLevel("info")

	Info(context.Background()).Str("supplier_email", "a@acme.com").Msg("supplier created")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["service"] != "s2p-test" {
		t.Fatalf("unexpected service field: %#v", entry["service"])
	}
	if entry["message"] != "supplier created" {
		t.Fatalf("unexpected message: %#v", entry["message"])
	}
	if _, ok := entry["trace_id"]; ok {
		t.Fatalf("trace_id must be absent without an active span")
	}
}

func TestSetLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("s2p-test", false, &buf)
	t.Cleanup(func() {
		Logger = zerolog.Nop()
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	})

	SetLevel("warn")
	Debug(context.Background()).Msg("hidden")
	Info(context.Background()).Msg("hidden too")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %q", buf.String())
	}

	Warn(context.Background()).Msg("shown")
	if buf.Len() == 0 {
		t.Fatalf("expected warn line to be written")
	}
}
