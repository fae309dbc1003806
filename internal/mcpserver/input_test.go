package mcpserver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/erraggy/mcpgen/loader"
	"github.com/erraggy/mcpgen/mcperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleContent = `server:
  name: users-api
  base_url: https://api.example.com
tools:
  - name: get_user
    description: Get a user
    endpoint: /users/{user_id}
    method: GET
    parameters:
      - name: user_id
        type: string
        location: path
        required: true
`

// withConfig swaps the active server configuration for the duration of a test.
func withConfig(t *testing.T, mutate func(c *serverConfig)) {
	t.Helper()
	saved := *cfg
	mutate(cfg)
	configCache.reset()
	t.Cleanup(func() {
		*cfg = saved
		configCache.reset()
	})
}

func TestConfigInput_Resolve(t *testing.T) {
	withConfig(t, func(*serverConfig) {})

	t.Run("file", func(t *testing.T) {
		res, err := configInput{File: "testdata/valid.yaml"}.resolve()
		require.NoError(t, err)
		assert.Equal(t, "users-api", res.Config.Server.Name)
		assert.Equal(t, loader.SourceFormatYAML, res.SourceFormat)
	})

	t.Run("content", func(t *testing.T) {
		res, err := configInput{Content: sampleContent}.resolve()
		require.NoError(t, err)
		assert.Len(t, res.Config.Tools, 1)
	})

	t.Run("json content", func(t *testing.T) {
		res, err := configInput{Content: `{"server":{"name":"a","base_url":"http://x.io"},"tools":[]}`}.resolve()
		require.NoError(t, err)
		assert.Equal(t, loader.SourceFormatJSON, res.SourceFormat)
	})

	t.Run("no input", func(t *testing.T) {
		_, err := configInput{}.resolve()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one of file or content")
	})

	t.Run("both inputs", func(t *testing.T) {
		_, err := configInput{File: "testdata/valid.yaml", Content: sampleContent}.resolve()
		require.Error(t, err)
	})

	t.Run("structural error", func(t *testing.T) {
		_, err := configInput{File: "testdata/missing_base_url.yaml"}.resolve()
		require.Error(t, err)
		assert.ErrorIs(t, err, mcperrors.ErrStructural)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := configInput{File: "testdata/malformed.yaml"}.resolve()
		require.Error(t, err)
		assert.ErrorIs(t, err, mcperrors.ErrParse)
	})
}

func TestConfigInput_InlineSizeLimit(t *testing.T) {
	withConfig(t, func(c *serverConfig) { c.MaxInlineSize = 16 })

	_, err := configInput{Content: sampleContent}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum 16 bytes")
	assert.Contains(t, err.Error(), "MCPGEN_MAX_INLINE_SIZE")
}

func TestConfigInput_Cache(t *testing.T) {
	withConfig(t, func(c *serverConfig) { c.CacheEnabled = true })

	first, err := configInput{Content: sampleContent}.resolve()
	require.NoError(t, err)
	second, err := configInput{Content: sampleContent}.resolve()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, configCache.size())

	t.Run("file modification invalidates", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "api.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleContent), 0o600))
		a, err := configInput{File: path}.resolve()
		require.NoError(t, err)

		updated := strings.Replace(sampleContent, "users-api", "accounts-api", 1)
		require.NoError(t, os.WriteFile(path, []byte(updated), 0o600))
		later := time.Now().Add(time.Minute)
		require.NoError(t, os.Chtimes(path, later, later))

		b, err := configInput{File: path}.resolve()
		require.NoError(t, err)
		assert.NotSame(t, a, b)
		assert.Equal(t, "accounts-api", b.Config.Server.Name)
	})
}

func TestConfigInput_CacheDisabled(t *testing.T) {
	withConfig(t, func(c *serverConfig) { c.CacheEnabled = false })

	first, err := configInput{Content: sampleContent}.resolve()
	require.NoError(t, err)
	second, err := configInput{Content: sampleContent}.resolve()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, 0, configCache.size())
}

func TestConfigCache_Eviction(t *testing.T) {
	c := newConfigCache(2, time.Minute)
	a, b, d := &loader.ParseResult{}, &loader.ParseResult{}, &loader.ParseResult{}

	c.put("a", a)
	c.put("b", b)
	require.Same(t, a, c.get("a"))

	c.put("d", d)
	assert.Equal(t, 2, c.size())
	assert.Same(t, a, c.get("a"))
	assert.Nil(t, c.get("b"))
	assert.Same(t, d, c.get("d"))

	c.reset()
	assert.Zero(t, c.size())
}

func TestConfigCache_Expiry(t *testing.T) {
	c := newConfigCache(2, 10*time.Millisecond)
	c.put("a", &loader.ParseResult{})
	assert.Eventually(t, func() bool { return c.get("a") == nil }, time.Second, 5*time.Millisecond)
}
