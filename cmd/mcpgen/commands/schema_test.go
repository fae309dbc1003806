package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/mcpgen/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleSchema_Stdout(t *testing.T) {
	out, _ := captureOutput(t)

	require.NoError(t, HandleSchema(nil))
	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, config.SchemaID, doc["$id"])
}

func TestHandleSchema_File(t *testing.T) {
	out, errOut := captureOutput(t)
	path := filepath.Join(t.TempDir(), "schema.json")

	require.NoError(t, HandleSchema([]string{"-o", path}))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
