package generator

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/erraggy/mcpgen/config"
	"github.com/erraggy/mcpgen/internal/naming"
)

// scalarGoType maps scalar parameter types to Go types.
func scalarGoType(t config.ParameterType) string {
	switch t {
	case config.TypeString:
		return "string"
	case config.TypeInteger:
		return "int64"
	case config.TypeNumber:
		return "float64"
	case config.TypeBoolean:
		return "bool"
	default:
		return "any"
	}
}

// itemGoType maps an array's items_type to the Go element type.
func itemGoType(t config.ParameterType) string {
	switch t {
	case config.TypeObject:
		return "map[string]any"
	case config.TypeArray:
		return "[]any"
	case "":
		return "any"
	default:
		return scalarGoType(t)
	}
}

// goLiteral renders a default value as a Go literal of the parameter's
// type. ok is false when v does not fit the type.
func goLiteral(t config.ParameterType, v any) (lit string, ok bool) {
	switch t {
	case config.TypeString:
		s, isStr := v.(string)
		if !isStr {
			return "", false
		}
		return strconv.Quote(s), true
	case config.TypeBoolean:
		b, isBool := v.(bool)
		if !isBool {
			return "", false
		}
		return strconv.FormatBool(b), true
	case config.TypeInteger:
		n, isInt := integral(v)
		if !isInt {
			return "", false
		}
		return "int64(" + strconv.FormatInt(n, 10) + ")", true
	case config.TypeNumber:
		f, isNum := number(v)
		if !isNum {
			return "", false
		}
		return "float64(" + strconv.FormatFloat(f, 'g', -1, 64) + ")", true
	default:
		return "", false
	}
}

func integral(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n != math.Trunc(n) || n >= math.MaxInt64 || n < math.MinInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsInf(n, 0) && !math.IsNaN(n)
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// goName converts a configuration name to an exported Go identifier.
// fallback is used when nothing usable remains.
func goName(s, fallback string) string {
	name := naming.ToPascalCase(s)
	if name == "" {
		return fallback
	}
	if r := []rune(name)[0]; unicode.IsDigit(r) {
		name = "X" + name
	}
	return name
}

// nameSet hands out unique identifiers, suffixing repeats with 2, 3, ...
type nameSet map[string]int

func (ns nameSet) unique(name string) string {
	n := ns[name]
	ns[name] = n + 1
	if n == 0 {
		return name
	}
	for {
		n++
		candidate := name + strconv.Itoa(n)
		if ns[candidate] == 0 {
			ns[candidate] = 1
			return candidate
		}
	}
}

// headerName maps a parameter identifier to an HTTP header name:
// "x_request_id" -> "X-Request-Id".
func headerName(param string) string {
	parts := strings.Split(strings.ReplaceAll(param, "-", "_"), "_")
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, naming.ToTitle(strings.ToLower(p)))
		}
	}
	return strings.Join(kept, "-")
}

// reservedTag matches tag values the MCP SDK schema inference rejects.
var reservedTag = regexp.MustCompile(`^\w+=`)

// structTag builds a struct tag literal carrying the JSON name and, when
// set, the schema description.
func structTag(jsonName string, omitEmpty bool, description string) string {
	tag := `json:"` + jsonName
	if omitEmpty {
		tag += ",omitempty"
	}
	tag += `"`
	if description != "" {
		if reservedTag.MatchString(description) {
			description = "Value: " + description
		}
		tag += " jsonschema:" + strconv.Quote(description)
	}
	if strings.Contains(tag, "`") {
		return strconv.Quote(tag)
	}
	return "`" + tag + "`"
}

// cleanDescription collapses a description onto one line.
func cleanDescription(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// describeDefault appends the default value to a description.
func describeDefault(desc string, v any) string {
	note := fmt.Sprintf("(default: %v)", v)
	if desc == "" {
		return note
	}
	return desc + " " + note
}
