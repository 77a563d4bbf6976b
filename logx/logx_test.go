package logx

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevelFromString(t *testing.T) {
	if LevelFromString("warn") != zapcore.WarnLevel {
		t.Error("warn should map to WarnLevel")
	}
	if LevelFromString("bogus") != zapcore.InfoLevel {
		t.Error("unknown level should default to info")
	}
	if ValidLevel("bogus") || !ValidLevel("debug") {
		t.Error("ValidLevel mismatch")
	}
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Level: "info"})
	l.Debugf("hidden %d", 1)
	l.Warnf("square %s has stray bits", "e4")
	_ = l.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["MESSAGE"] != "square e4 has stray bits" {
		t.Errorf("MESSAGE = %v", entry["MESSAGE"])
	}
	if entry["LEVEL"] != "warn" {
		t.Errorf("LEVEL = %v, want warn", entry["LEVEL"])
	}
}

func TestFromZapObserved(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core))
	l.Errorf("apply %s failed", "e2e4")

	if logs.Len() != 1 {
		t.Fatalf("observed %d entries, want 1", logs.Len())
	}
	e := logs.All()[0]
	if e.Level != zapcore.ErrorLevel || e.Message != "apply e2e4 failed" {
		t.Errorf("entry = %v %q", e.Level, e.Message)
	}
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Errorf("nothing %d", 1)
	if err := l.Sync(); err != nil {
		t.Errorf("Sync: %v", err)
	}
}
