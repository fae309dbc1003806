package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		want     []string
	}{
		{name: "single placeholder", endpoint: "/users/{user_id}", want: []string{"user_id"}},
		{name: "multiple placeholders", endpoint: "/users/{user_id}/posts/{post_id}", want: []string{"user_id", "post_id"}},
		{name: "no placeholders", endpoint: "/users/123", want: nil},
		{name: "placeholder at start", endpoint: "{version}/users", want: []string{"version"}},
		{name: "duplicates collapse in first-seen order", endpoint: "/{b}/{a}/{b}", want: []string{"b", "a"}},
		{name: "empty braces ignored", endpoint: "/users/{}", want: nil},
		{name: "unclosed brace ignored", endpoint: "/users/{user_id", want: nil},
		{name: "stray closing brace ignored", endpoint: "/users/}{id}", want: []string{"id"}},
		{name: "nested braces run to first close", endpoint: "/x/{a{b}}", want: []string{"a{b"}},
		{name: "placeholder inside segment", endpoint: "/files/{name}.json", want: []string{"name"}},
		{name: "empty endpoint", endpoint: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Placeholders(tt.endpoint))
		})
	}
}
