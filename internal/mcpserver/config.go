package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/ptrtools/document"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Document limits.
	MaxDocumentSize int64
	MaxPointers     int
	FetchTimeout    time.Duration
	AllowPrivateIPs bool

	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheTTL           time.Duration
	CacheSweepInterval time.Duration
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from PTRTOOLS_MCP_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxDocumentSize:    envInt64("PTRTOOLS_MCP_MAX_DOCUMENT_SIZE", document.DefaultMaxDocumentSize),
		MaxPointers:        envInt("PTRTOOLS_MCP_MAX_POINTERS", 100),
		FetchTimeout:       envDuration("PTRTOOLS_MCP_FETCH_TIMEOUT", 30*time.Second),
		AllowPrivateIPs:    envBool("PTRTOOLS_MCP_ALLOW_PRIVATE_IPS", false),
		CacheEnabled:       envBool("PTRTOOLS_MCP_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("PTRTOOLS_MCP_CACHE_MAX_SIZE", 10),
		CacheTTL:           envDuration("PTRTOOLS_MCP_CACHE_TTL", 5*time.Minute),
		CacheSweepInterval: envDuration("PTRTOOLS_MCP_CACHE_SWEEP_INTERVAL", 60*time.Second),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}
