// Package common provides shared utilities for the GOES X-ray tools.
package common

import (
	"os"
	"path/filepath"
)

// Config holds environment-driven defaults shared by all tools.
type Config struct {
	DataDir  string
	LogLevel string
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DataDir:  getEnv("XRAY_DATA_DIR", "/var/lib/goes-xray"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// SnapshotDir returns where xray-download stores feed snapshots.
func (c *Config) SnapshotDir() string {
	return filepath.Join(c.DataDir, "snapshots")
}

// ExportDir returns where xray-monitor writes its exports.
func (c *Config) ExportDir() string {
	return filepath.Join(c.DataDir, "exports")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
