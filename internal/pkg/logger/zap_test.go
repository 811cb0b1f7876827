package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewFromZapForwardsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewFromZap(zap.New(core)).With(zap.String("component", "store"))

	log.Info("opened", zap.Int64("category_id", 7))

	entries := logs.FilterMessage("opened").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["component"] != "store" {
		t.Fatalf("component = %v, want store", ctx["component"])
	}
	if ctx["category_id"] != int64(7) {
		t.Fatalf("category_id = %v, want 7", ctx["category_id"])
	}
}

func TestNewZapLoggerWritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peeky.log")
	log := NewZapLogger(&ZapLoggerConfig{
		Encoding:          "json",
		Level:             "info",
		DisableStacktrace: true,
		FilePath:          path,
		FileMaxSizeMB:     1,
		FileMaxBackups:    1,
	})

	log.Debug("hidden")
	log.Info("visible")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "visible") {
		t.Fatalf("expected info entry in log file, got %q", data)
	}
	if strings.Contains(string(data), "hidden") {
		t.Fatalf("debug entry should be filtered at info level, got %q", data)
	}
}

func TestNewZapLoggerFallsBackToInfoOnBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peeky.log")
	log := NewZapLogger(&ZapLoggerConfig{
		Encoding:       "console",
		Level:          "loud",
		FilePath:       path,
		FileMaxSizeMB:  1,
		FileMaxBackups: 1,
	})
	log.Debug("dropped")
	log.Warn("kept")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(data), "dropped") || !strings.Contains(string(data), "kept") {
		t.Fatalf("unexpected log contents %q", data)
	}
}
