package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlePreview(t *testing.T) {
	t.Run("server by default", func(t *testing.T) {
		out, _ := captureOutput(t)
		require.NoError(t, HandlePreview([]string{"testdata/valid.yaml"}))
		assert.Contains(t, out.String(), "package main")
		assert.Contains(t, out.String(), "handleSearchUsers")
	})
	t.Run("readme", func(t *testing.T) {
		out, _ := captureOutput(t)
		require.NoError(t, HandlePreview([]string{"--template", "readme", "testdata/valid.yaml"}))
		assert.Contains(t, out.String(), "USERS_API_API_KEY")
	})
	t.Run("gomod with module", func(t *testing.T) {
		out, _ := captureOutput(t)
		require.NoError(t, HandlePreview([]string{"-t", "gomod", "--module", "example.com/users", "testdata/valid.yaml"}))
		assert.Contains(t, out.String(), "module example.com/users")
	})
	t.Run("unknown template", func(t *testing.T) {
		captureOutput(t)
		err := HandlePreview([]string{"--template", "dockerfile", "testdata/valid.yaml"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrFailed)
	})
	t.Run("invalid configuration", func(t *testing.T) {
		_, errOut := captureOutput(t)
		err := HandlePreview([]string{"testdata/semantic_errors.yaml"})
		require.ErrorIs(t, err, ErrFailed)
		assert.Contains(t, errOut.String(), "validation error(s)")
	})
	t.Run("missing argument", func(t *testing.T) {
		captureOutput(t)
		assert.Error(t, HandlePreview(nil))
	})
}
