package common

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("XRAY_DATA_DIR", "/tmp/xray-test")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	if cfg.DataDir != "/tmp/xray-test" {
		t.Errorf("DataDir: want /tmp/xray-test, got %q", cfg.DataDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: want debug, got %q", cfg.LogLevel)
	}
	if got := cfg.SnapshotDir(); got != filepath.Join("/tmp/xray-test", "snapshots") {
		t.Errorf("SnapshotDir: got %q", got)
	}
	if got := cfg.ExportDir(); got != filepath.Join("/tmp/xray-test", "exports") {
		t.Errorf("ExportDir: got %q", got)
	}
}

func TestDefaultConfigFallbacks(t *testing.T) {
	t.Setenv("XRAY_DATA_DIR", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := DefaultConfig()
	if cfg.DataDir == "" {
		t.Error("DataDir fallback must not be empty")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel fallback: want info, got %q", cfg.LogLevel)
	}
}
