package validator

import (
	"errors"
	"testing"

	"github.com/erraggy/mcpgen/mcperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWithOptions_Config(t *testing.T) {
	result, err := ValidateWithOptions(WithConfig(validConfig()))
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Zero(t, result.ErrorCount)
	assert.NotNil(t, result.Errors)
	assert.Empty(t, result.SourcePath)
}

func TestValidateWithOptions_FilePath(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		result, err := ValidateWithOptions(WithFilePath("testdata/valid.yaml"))
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, "testdata/valid.yaml", result.SourcePath)
	})

	t.Run("semantic errors", func(t *testing.T) {
		result, err := ValidateWithOptions(WithFilePath("testdata/semantic_errors.yaml"))
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, []string{
			"Server name is required",
			"Tool name 'get-user' is not a valid identifier",
			"Tool 'get-user': endpoint must start with '/'",
			"Tool 'get-user': path parameter 'user_id' in endpoint is not defined in parameters",
			"Tool 'get-user': parameter 'id' is marked as path but not in endpoint",
			"Duplicate tool name: get-user",
			"Tool name 'get-user' is not a valid identifier",
			"Tool 'get-user': array parameter 'tags' must specify items_type",
			"Tool 'get-user': duplicate parameter name 'tags'",
			"Tool 'get-user': object parameter 'tags' must specify properties",
		}, result.Messages())
		assert.Equal(t, 10, result.ErrorCount)
	})

	t.Run("structural failure never reaches the validator", func(t *testing.T) {
		result, err := ValidateWithOptions(WithFilePath("testdata/missing_base_url.yaml"))
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, mcperrors.ErrStructural))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ValidateWithOptions(WithFilePath("testdata/nope.yaml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, mcperrors.ErrParse))
	})
}

func TestValidateWithOptions_MaxDepth(t *testing.T) {
	result, err := ValidateWithOptions(WithConfig(validConfig()), WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, 2, result.ErrorCount)
	assert.Equal(t, "Tool 'search_users': parameter 'filter.range.max' exceeds maximum nesting depth of 2", result.Errors[0].Message)
	assert.Equal(t, "Tool 'search_users': parameter 'filter.range.min' exceeds maximum nesting depth of 2", result.Errors[1].Message)
}

func TestValidateWithOptions_InvalidOptions(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		contains string
		config   bool
	}{
		{name: "no input", opts: nil, contains: "must specify an input source"},
		{name: "two inputs", opts: []Option{WithConfig(validConfig()), WithFilePath("x.yaml")}, contains: "exactly one input source"},
		{name: "nil config", opts: []Option{WithConfig(nil)}, contains: "configuration cannot be nil", config: true},
		{name: "zero depth", opts: []Option{WithConfig(validConfig()), WithMaxDepth(0)}, contains: "max_depth", config: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateWithOptions(tt.opts...)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), tt.contains)
			assert.Equal(t, tt.config, errors.Is(err, mcperrors.ErrConfig))
		})
	}
}
