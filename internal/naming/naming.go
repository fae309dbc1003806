package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// initialisms are rendered fully upper-case in Go identifiers.
var initialisms = map[string]bool{
	"api":  true,
	"http": true,
	"id":   true,
	"ip":   true,
	"json": true,
	"uri":  true,
	"url":  true,
	"uuid": true,
}

// Words splits s into words. Any rune that is not a letter or digit is a
// separator; a lower-to-upper transition and the end of an upper-case run
// followed by a lower-case letter also start a new word.
//
//	Words("get_user_by_id") // ["get" "user" "by" "id"]
//	Words("APIClient")      // ["API" "Client"]
func Words(s string) []string {
	var words []string
	runes := []rune(s)
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// ToPascalCase converts s to an exported Go-style name, upper-casing known
// initialisms: "user_id" -> "UserID", "api-client" -> "APIClient".
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// ToCamelCase is ToPascalCase with the first word lower-cased:
// "UserID" -> "userID", "id" -> "id".
func ToCamelCase(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// ToSnakeCase joins the lower-cased words of s with underscores.
func ToSnakeCase(s string) string {
	return join(s, "_", strings.ToLower)
}

// ToKebabCase joins the lower-cased words of s with hyphens.
func ToKebabCase(s string) string {
	return join(s, "-", strings.ToLower)
}

// ToScreamingSnakeCase joins the upper-cased words of s with underscores,
// for environment variable names: "example-api" -> "EXAMPLE_API".
func ToScreamingSnakeCase(s string) string {
	return join(s, "_", strings.ToUpper)
}

// ToTitle renders s as a display title, keeping existing capitals:
// "example-api" -> "Example Api", "users API" -> "Users API".
func ToTitle(s string) string {
	return cases.Title(language.English, cases.NoLower).String(strings.Join(Words(s), " "))
}

func capitalize(w string) string {
	lower := strings.ToLower(w)
	if initialisms[lower] {
		return strings.ToUpper(w)
	}
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + w[size:]
}

func join(s, sep string, conv func(string) string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = conv(w)
	}
	return strings.Join(words, sep)
}
