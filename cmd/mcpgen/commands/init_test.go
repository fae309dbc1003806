package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/mcpgen/config"
	"github.com/erraggy/mcpgen/loader"
	"github.com/erraggy/mcpgen/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleInit(t *testing.T) {
	out, _ := captureOutput(t)
	path := filepath.Join(t.TempDir(), "api.yaml")

	require.NoError(t, HandleInit([]string{"-o", path}))
	assert.Contains(t, out.String(), "Created "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.SampleYAML, data)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	cfg, err := loader.ParseFile(path)
	require.NoError(t, err)
	assert.Empty(t, validator.Validate(cfg))
}

func TestHandleInit_RefusesOverwrite(t *testing.T) {
	captureOutput(t)
	path := filepath.Join(t.TempDir(), "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0o600))

	err := HandleInit([]string{"-o", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))

	require.NoError(t, HandleInit([]string{"-o", path, "--force"}))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.SampleYAML, data)
}

func TestHandleInit_DefaultPath(t *testing.T) {
	captureOutput(t)
	t.Chdir(t.TempDir())

	require.NoError(t, HandleInit(nil))
	_, err := os.Stat(DefaultInitOutput)
	assert.NoError(t, err)
}

func TestHandleInit_RejectsArguments(t *testing.T) {
	captureOutput(t)
	assert.Error(t, HandleInit([]string{"extra"}))
}

func TestHandleInit_RejectsSymlink(t *testing.T) {
	captureOutput(t)
	dir := t.TempDir()
	target := filepath.Join(dir, "real.yaml")
	require.NoError(t, os.WriteFile(target, []byte("keep"), 0o600))
	link := filepath.Join(dir, "link.yaml")
	require.NoError(t, os.Symlink(target, link))

	err := HandleInit([]string{"-o", link, "--force"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "symlink")
}
