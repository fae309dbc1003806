package issues

import "fmt"

// List accumulates issues in the order rules are evaluated.
// The zero value is ready to use.
type List struct {
	items []Issue
}

// Add appends an issue with a formatted message.
func (l *List) Add(rule Rule, path, tool, param, format string, args ...any) {
	l.items = append(l.items, Issue{
		Rule:      rule,
		Path:      path,
		Tool:      tool,
		Parameter: param,
		Message:   fmt.Sprintf(format, args...),
	})
}

// Len returns the number of accumulated issues.
func (l *List) Len() int {
	return len(l.items)
}

// Items returns the accumulated issues. The slice is never nil.
func (l *List) Items() []Issue {
	if l.items == nil {
		return []Issue{}
	}
	return l.items
}

// Messages returns the message of every issue, in order.
func Messages(items []Issue) []string {
	msgs := make([]string, len(items))
	for i, it := range items {
		msgs[i] = it.Message
	}
	return msgs
}
