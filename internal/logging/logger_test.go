package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" WARN ":  zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestNewWriterLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger("warn", &buf)
	logger.Info("hidden")
	logger.Warn("visible", zap.String("k", "v"))
	_ = logger.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info entry should be filtered, got %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "visible") {
		t.Fatalf("expected warn entry, got %q", out)
	}
}

func TestNewLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "analyze.log")
	logger, err := NewLogger("info", path)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("written")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(raw), "written") {
		t.Fatalf("expected entry in file, got %q", raw)
	}
}
