package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestCommand(t *testing.T) {
	tests := map[string]string{
		"generat":  "generate",
		"valdiate": "validate",
		"preveiw":  "preview",
		"int":      "init",
		"schemas":  "schema",
		"versoin":  "version",
		"mpc":      "mcp",
		"deploy":   "",
		"":         "",
	}
	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, suggestCommand(input))
		})
	}
}

func TestRun(t *testing.T) {
	assert.Equal(t, 1, run(nil))
	assert.Equal(t, 0, run([]string{"version"}))
	assert.Equal(t, 0, run([]string{"version", "--verbose"}))
	assert.Equal(t, 0, run([]string{"--help"}))
	assert.Equal(t, 1, run([]string{"bogus"}))
	assert.Equal(t, 0, run([]string{"validate", "--help"}))
	assert.Equal(t, 1, run([]string{"validate"}))
}

func TestCommandNamesCoverHandlers(t *testing.T) {
	for name := range commandHandlers {
		assert.Contains(t, commandNames, name)
	}
}
