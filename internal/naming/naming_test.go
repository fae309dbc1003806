package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"___", nil},
		{"user", []string{"user"}},
		{"get_user_by_id", []string{"get", "user", "by", "id"}},
		{"example-api", []string{"example", "api"}},
		{"UserProfile", []string{"User", "Profile"}},
		{"userID", []string{"user", "ID"}},
		{"APIClient", []string{"API", "Client"}},
		{"api_v2_client", []string{"api", "v2", "client"}},
		{"v2Client", []string{"v2", "Client"}},
		{"Users API", []string{"Users", "API"}},
		{"über_user", []string{"über", "user"}},
		{"com.example/api", []string{"com", "example", "api"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.input))
		})
	}
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "single word", input: "user", want: "User"},
		{name: "snake_case", input: "get_user_by_id", want: "GetUserByID"},
		{name: "kebab-case", input: "api-client", want: "APIClient"},
		{name: "initialism alone", input: "id", want: "ID"},
		{name: "already PascalCase", input: "UserProfile", want: "UserProfile"},
		{name: "camelCase", input: "userProfile", want: "UserProfile"},
		{name: "mixed initialism", input: "userUrl", want: "UserURL"},
		{name: "numbers", input: "api_v2_client", want: "APIV2Client"},
		{name: "leading underscore", input: "_private", want: "Private"},
		{name: "unicode", input: "über_user", want: "ÜberUser"},
		{name: "unknown acronym kept", input: "ABC_value", want: "ABCValue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPascalCase(tt.input))
		})
	}
}

func TestToCamelCase(t *testing.T) {
	assert.Equal(t, "", ToCamelCase(""))
	assert.Equal(t, "userID", ToCamelCase("user_id"))
	assert.Equal(t, "id", ToCamelCase("ID"))
	assert.Equal(t, "userProfile", ToCamelCase("UserProfile"))
	assert.Equal(t, "apiClient", ToCamelCase("API-client"))
}

func TestToSnakeAndKebabCase(t *testing.T) {
	tests := []struct {
		input     string
		snake     string
		kebab     string
		screaming string
	}{
		{"", "", "", ""},
		{"UserProfile", "user_profile", "user-profile", "USER_PROFILE"},
		{"APIClient", "api_client", "api-client", "API_CLIENT"},
		{"example-api", "example_api", "example-api", "EXAMPLE_API"},
		{"Users API v2", "users_api_v2", "users-api-v2", "USERS_API_V2"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.snake, ToSnakeCase(tt.input))
			assert.Equal(t, tt.kebab, ToKebabCase(tt.input))
			assert.Equal(t, tt.screaming, ToScreamingSnakeCase(tt.input))
		})
	}
}

func TestToTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"example-api", "Example Api"},
		{"users API", "Users API"},
		{"get_user_by_id", "Get User By Id"},
		{"weather", "Weather"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToTitle(tt.input))
		})
	}
}

func BenchmarkToPascalCase(b *testing.B) {
	for b.Loop() {
		_ = ToPascalCase("get_user_profile_by_id")
	}
}
