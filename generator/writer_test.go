package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	result, err := New().Generate(richConfig())
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "nested", "out")
	require.NoError(t, result.WriteFiles(dir))

	for _, f := range result.Files {
		data, err := os.ReadFile(filepath.Join(dir, f.Name))
		require.NoError(t, err, f.Name)
		assert.Equal(t, f.Content, data, f.Name)

		info, err := os.Stat(filepath.Join(dir, f.Name))
		require.NoError(t, err)
		assert.False(t, info.IsDir())
	}
}

func TestWriteFiles_RejectsPathSeparators(t *testing.T) {
	dir := t.TempDir()
	result := &GenerateResult{Files: []GeneratedFile{{Name: "../escape.go", Content: []byte("package x\n")}}}

	err := result.WriteFiles(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not contain path separators")

	_, statErr := os.Stat(filepath.Join(filepath.Dir(dir), "escape.go"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteFiles_OverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("old"), 0o644))

	result := &GenerateResult{Files: []GeneratedFile{{Name: "main.go", Content: []byte("new")}}}
	require.NoError(t, result.WriteFiles(dir))

	data, err := os.ReadFile(filepath.Join(dir, "main.go"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
