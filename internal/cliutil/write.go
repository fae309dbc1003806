// Package cliutil provides output helpers for the mcpgen commands.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// Status symbols printed before result lines.
const (
	SymbolOK   = "✓"
	SymbolFail = "✗"
)

// Writef writes formatted output to w. A failed write is reported on stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Status returns SymbolOK when ok, otherwise SymbolFail.
func Status(ok bool) string {
	if ok {
		return SymbolOK
	}
	return SymbolFail
}

// Plural formats a count with a noun, adding "s" unless n is 1:
// Plural(1, "error") is "1 error", Plural(3, "tool") is "3 tools".
func Plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
