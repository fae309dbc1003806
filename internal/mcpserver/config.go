package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/mcpgen/validator"
)

// serverConfig holds the tunable defaults of the MCP server.
type serverConfig struct {
	CacheEnabled bool
	CacheMaxSize int
	CacheTTL     time.Duration

	MaxDepth      int // validate: default nesting limit
	ValidateLimit int // validate: default page size
	MaxLimit      int // validate: largest page size a client may ask for

	MaxInlineSize int64 // bytes accepted in the "content" input
	PreviewLimit  int   // bytes of rendered preview returned before truncation
}

var cfg = loadConfig()

// loadConfig reads MCPGEN_* environment variables. Unparseable or
// non-positive values are logged and replaced by the default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:  fromEnv("MCPGEN_CACHE_ENABLED", true, strconv.ParseBool, nil),
		CacheMaxSize:  fromEnv("MCPGEN_CACHE_MAX_SIZE", 10, strconv.Atoi, positive[int]),
		CacheTTL:      fromEnv("MCPGEN_CACHE_TTL", 15*time.Minute, time.ParseDuration, positive[time.Duration]),
		MaxDepth:      fromEnv("MCPGEN_MAX_DEPTH", validator.DefaultMaxDepth, strconv.Atoi, positive[int]),
		ValidateLimit: fromEnv("MCPGEN_VALIDATE_LIMIT", 100, strconv.Atoi, positive[int]),
		MaxLimit:      fromEnv("MCPGEN_MAX_LIMIT", 1000, strconv.Atoi, positive[int]),
		MaxInlineSize: fromEnv("MCPGEN_MAX_INLINE_SIZE", int64(1<<20), parseInt64, positive[int64]),
		PreviewLimit:  fromEnv("MCPGEN_PREVIEW_LIMIT", 256<<10, strconv.Atoi, positive[int]),
	}
}

func fromEnv[T any](key string, def T, parse func(string) (T, error), valid func(T) bool) T {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil || (valid != nil && !valid(v)) {
		slog.Warn("mcpserver: ignoring invalid environment value", "key", key, "value", raw, "default", def)
		return def
	}
	return v
}

func positive[T int | int64 | time.Duration](v T) bool { return v > 0 }

func parseInt64(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }
