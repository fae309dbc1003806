package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/erraggy/mcpgen/loader"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// configInput represents the two ways a configuration can be provided to a tool.
// Exactly one of File or Content must be set.
type configInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a YAML or JSON configuration file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline configuration content (YAML or JSON)"`
}

// configCacheStore is an expiring LRU of loaded configurations shared by
// all tool calls. File inputs are keyed by absolute path and modification
// time, content inputs by a SHA-256 hash.
type configCacheStore struct {
	lru *expirable.LRU[string, *loader.ParseResult]
}

var configCache = newConfigCache(cfg.CacheMaxSize, cfg.CacheTTL)

func newConfigCache(maxSize int, ttl time.Duration) *configCacheStore {
	return &configCacheStore{lru: expirable.NewLRU[string, *loader.ParseResult](maxSize, nil, ttl)}
}

func (c *configCacheStore) get(key string) *loader.ParseResult {
	result, ok := c.lru.Get(key)
	if !ok {
		return nil
	}
	return result
}

func (c *configCacheStore) put(key string, result *loader.ParseResult) {
	c.lru.Add(key, result)
}

func (c *configCacheStore) reset() { c.lru.Purge() }

func (c *configCacheStore) size() int { return c.lru.Len() }

// cacheKey returns the cache key for in, or "" when it cannot be cached.
func (in configInput) cacheKey() string {
	switch {
	case in.File != "":
		abs, err := filepath.Abs(in.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(abs)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", abs, info.ModTime().UnixNano())
	case in.Content != "":
		h := sha256.Sum256([]byte(in.Content))
		return "content:" + hex.EncodeToString(h[:])
	default:
		return ""
	}
}

// resolve loads the configuration from whichever input was provided.
// Parse and structural failures are returned as errors.
func (in configInput) resolve() (*loader.ParseResult, error) {
	if (in.File == "") == (in.Content == "") {
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
	if in.Content != "" && int64(len(in.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set MCPGEN_MAX_INLINE_SIZE to increase",
			len(in.Content), cfg.MaxInlineSize)
	}

	var key string
	if cfg.CacheEnabled {
		key = in.cacheKey()
		if key != "" {
			if cached := configCache.get(key); cached != nil {
				return cached, nil
			}
		}
	}

	var opt loader.Option
	if in.File != "" {
		opt = loader.WithFilePath(in.File)
	} else {
		opt = loader.WithBytes([]byte(in.Content))
	}
	result, err := loader.ParseWithOptions(opt)
	if err != nil {
		return nil, err
	}
	if key != "" {
		configCache.put(key, result)
	}
	return result, nil
}
