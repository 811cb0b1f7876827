package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("GRPC_PORT", ":9000")
	t.Setenv("SQLITE_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("LOGGER_DISABLE_CALLER", "true")

	cfg := LoadEnv()
	if cfg.Server.GRPCPort != ":9000" {
		t.Fatalf("grpc port = %q, want %q", cfg.Server.GRPCPort, ":9000")
	}
	if cfg.SQLite.MaxOpenConns != 4 {
		t.Fatalf("max open conns = %d, want fallback 4", cfg.SQLite.MaxOpenConns)
	}
	if !cfg.Logger.DisableCaller {
		t.Fatal("expected disable caller to be true")
	}
}

func TestDatabasePathCreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "nested", "peeky.db")

	got, err := SQLiteConfig{Path: want}.DatabasePath()
	if err != nil {
		t.Fatalf("database path: %v", err)
	}
	if got != want {
		t.Fatalf("path = %q, want %q", got, want)
	}
	if info, err := os.Stat(filepath.Join(dir, "nested")); err != nil || !info.IsDir() {
		t.Fatalf("expected parent dir to exist: %v", err)
	}
}

func TestDatabasePathDefaultsToDataHome(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_DATA_HOME", dir)
	xdg.Reload()

	got, err := SQLiteConfig{}.DatabasePath()
	if err != nil {
		t.Fatalf("database path: %v", err)
	}
	if filepath.Base(got) != "peeky.db" {
		t.Fatalf("path = %q, want peeky.db file", got)
	}
}
