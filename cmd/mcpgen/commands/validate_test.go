package commands

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/erraggy/mcpgen/loader"
	"github.com/erraggy/mcpgen/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestSetupValidateFlags(t *testing.T) {
	fs, flags := SetupValidateFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, FormatText, flags.Format)
		assert.False(t, flags.Quiet)
		assert.Equal(t, validator.DefaultMaxDepth, flags.MaxDepth)
	})

	t.Run("parse flags", func(t *testing.T) {
		require.NoError(t, fs.Parse([]string{"-q", "--format", "json", "--max-depth", "8", "a.yaml", "b.yaml"}))
		assert.True(t, flags.Quiet)
		assert.Equal(t, "json", flags.Format)
		assert.Equal(t, 8, flags.MaxDepth)
		assert.Equal(t, []string{"a.yaml", "b.yaml"}, fs.Args())
	})
}

func TestHandleValidate_Arguments(t *testing.T) {
	captureOutput(t)

	assert.Error(t, HandleValidate([]string{}))
	assert.NoError(t, HandleValidate([]string{"--help"}))
	assert.Error(t, HandleValidate([]string{"--format", "xml", "testdata/valid.yaml"}))
	assert.Error(t, HandleValidate([]string{"--max-depth", "0", "testdata/valid.yaml"}))

	err := HandleValidate([]string{"testdata/*.nothing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no files match")
}

func TestHandleValidate_Valid(t *testing.T) {
	out, _ := captureOutput(t)

	require.NoError(t, HandleValidate([]string{"testdata/valid.yaml"}))
	assert.Contains(t, out.String(), "✓ testdata/valid.yaml: users-api (2 tools)")
	assert.Contains(t, out.String(), "1 file validated: 1 valid, 0 invalid")
}

func TestHandleValidate_Regimes(t *testing.T) {
	out, _ := captureOutput(t)

	err := HandleValidate([]string{
		"testdata/valid.yaml",
		"testdata/semantic_errors.yaml",
		"testdata/missing_base_url.yaml",
		"testdata/malformed.yaml",
		"testdata/absent.yaml",
	})
	require.ErrorIs(t, err, ErrFailed)

	text := out.String()
	assert.Contains(t, text, "✗ testdata/semantic_errors.yaml: 10 validation errors")
	assert.Contains(t, text, "  - Server name is required")
	assert.Contains(t, text, "✗ testdata/missing_base_url.yaml: invalid configuration structure")
	assert.Contains(t, text, "✗ testdata/malformed.yaml: could not parse configuration")
	assert.Contains(t, text, "✗ testdata/absent.yaml: could not parse configuration")
	assert.Contains(t, text, "5 files validated: 1 valid, 4 invalid")
}

func TestHandleValidate_Quiet(t *testing.T) {
	out, _ := captureOutput(t)

	require.NoError(t, HandleValidate([]string{"-q", "testdata/valid.yaml"}))
	assert.Empty(t, out.String())

	err := HandleValidate([]string{"-q", "testdata/valid.yaml", "testdata/semantic_errors.yaml"})
	require.ErrorIs(t, err, ErrFailed)
	assert.NotContains(t, out.String(), "valid.yaml:")
	assert.Contains(t, out.String(), "semantic_errors.yaml")
}

func TestHandleValidate_JSON(t *testing.T) {
	out, _ := captureOutput(t)

	err := HandleValidate([]string{"--format", "json", "testdata/valid.yaml", "testdata/missing_base_url.yaml"})
	require.ErrorIs(t, err, ErrFailed)

	var reports []FileReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &reports))
	require.Len(t, reports, 2)
	assert.True(t, reports[0].Valid)
	assert.Equal(t, "users-api", reports[0].ServerName)
	assert.False(t, reports[1].Valid)
	assert.Equal(t, "structural", reports[1].Regime)
	assert.Equal(t, 1, reports[1].ErrorCount)
}

func TestHandleValidate_YAML(t *testing.T) {
	out, _ := captureOutput(t)

	err := HandleValidate([]string{"--format", "yaml", "testdata/semantic_errors.yaml"})
	require.ErrorIs(t, err, ErrFailed)

	var reports []FileReport
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "semantic", reports[0].Regime)
	assert.Equal(t, 10, reports[0].ErrorCount)
	assert.Len(t, reports[0].Errors, 10)
}

func TestExpandPatterns(t *testing.T) {
	t.Run("recursive glob", func(t *testing.T) {
		paths, err := expandPatterns([]string{"testdata/nested/**/*.{yaml,json}"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join("testdata", "nested", "valid.json"),
			filepath.Join("testdata", "nested", "deeper", "other.yaml"),
		}, paths)
	})

	t.Run("literal paths kept and deduplicated", func(t *testing.T) {
		paths, err := expandPatterns([]string{"missing.yaml", "testdata/valid.yaml", "missing.yaml"})
		require.NoError(t, err)
		assert.Equal(t, []string{"missing.yaml", "testdata/valid.yaml"}, paths)
	})

	t.Run("bad pattern", func(t *testing.T) {
		_, err := expandPatterns([]string{"testdata/[.yaml"})
		require.Error(t, err)
	})
}

func TestValidateFiles_PreservesOrder(t *testing.T) {
	paths := []string{
		"testdata/semantic_errors.yaml",
		"testdata/valid.yaml",
		"testdata/nested/valid.json",
		"testdata/malformed.yaml",
		"testdata/nested/deeper/other.yaml",
	}
	reports := ValidateFiles(paths, validator.DefaultMaxDepth, loader.NopLogger{})
	require.Len(t, reports, len(paths))
	for i, r := range reports {
		assert.Equal(t, paths[i], r.Path)
	}
	assert.False(t, reports[0].Valid)
	assert.True(t, reports[1].Valid)
	assert.True(t, reports[2].Valid)
	assert.Equal(t, "parse", reports[3].Regime)
	assert.True(t, reports[4].Valid)
}
