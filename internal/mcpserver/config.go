package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// ConfigFile is the parity configuration used when a check_parity call names none.
	ConfigFile string
	// SpecDir overrides the spec directory when a check_parity call names none.
	SpecDir string
	// CheckTimeout bounds a single check_parity call.
	CheckTimeout time.Duration

	// MaxInlineSize is the largest inline content accepted by partition_paths.
	MaxInlineSize int64
	// PathLimit is the default number of paths listed per namespace.
	PathLimit int
	// MaxPathLimit caps any requested limit.
	MaxPathLimit int
	// IncludeOther lists paths outside every namespace in partition_paths output.
	IncludeOther bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from SPECPARITY_MCP_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		ConfigFile:    os.Getenv("SPECPARITY_MCP_CONFIG_FILE"),
		SpecDir:       os.Getenv("SPECPARITY_MCP_SPEC_DIR"),
		CheckTimeout:  envDuration("SPECPARITY_MCP_CHECK_TIMEOUT", 30*time.Second),
		MaxInlineSize: int64(envInt("SPECPARITY_MCP_MAX_INLINE_SIZE", 10*1024*1024)),
		PathLimit:     envInt("SPECPARITY_MCP_PATH_LIMIT", 100),
		MaxPathLimit:  envInt("SPECPARITY_MCP_MAX_PATH_LIMIT", 1000),
		IncludeOther:  envBool("SPECPARITY_MCP_INCLUDE_OTHER", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
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
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
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
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
