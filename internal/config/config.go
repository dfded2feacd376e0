package config

import "os"

// Default configuration values
const (
	DefaultAddr     = ":8080"
	DefaultLogLevel = "info"
)

// Config holds server configuration
type Config struct {
	// Addr is the listen address for the HTTP/websocket server.
	Addr string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Options for loading config with CLI flag overrides
type Options struct {
	Addr     string
	LogLevel string
}

// Load reads configuration with the following priority:
// 1. CLI flags (passed via Options) - highest priority
// 2. Environment variables
// 3. Hardcoded defaults - lowest priority
func Load(opts Options) *Config {
	addr := opts.Addr
	if addr == "" {
		addr = os.Getenv("ADDR")
	}
	if addr == "" {
		addr = DefaultAddr
	}

	level := opts.LogLevel
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = DefaultLogLevel
	}

	return &Config{
		Addr:     addr,
		LogLevel: level,
	}
}
