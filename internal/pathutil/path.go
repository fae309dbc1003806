package pathutil

import "regexp"

// PlaceholderRegex matches endpoint template placeholders like {user_id}.
// A token runs from a '{' to the next '}' and must be non-empty, so "{}" and
// an unclosed '{' never produce a placeholder. Inner braces are not balanced:
// "{a{b}" yields "a{b".
var PlaceholderRegex = regexp.MustCompile(`\{([^}]+)\}`)

// Placeholders returns the distinct placeholder names in endpoint, in the
// order they first appear.
func Placeholders(endpoint string) []string {
	matches := PlaceholderRegex.FindAllStringSubmatch(endpoint, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, dup := seen[m[1]]; dup {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	return names
}
