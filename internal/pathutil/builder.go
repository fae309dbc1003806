package pathutil

import "strconv"

// PathBuilder builds field paths such as "tools[0].parameters[2].type"
// incrementally. Segments share one byte buffer; marks records where each
// segment starts so Pop is a truncation.
type PathBuilder struct {
	buf   []byte
	marks []int
}

// Push appends a field segment, separated by a dot unless it is the first.
func (p *PathBuilder) Push(segment string) {
	p.marks = append(p.marks, len(p.buf))
	if len(p.buf) > 0 {
		p.buf = append(p.buf, '.')
	}
	p.buf = append(p.buf, segment...)
}

// PushIndex appends a list index segment: "[0]", "[1]", etc.
func (p *PathBuilder) PushIndex(i int) {
	p.marks = append(p.marks, len(p.buf))
	p.buf = append(p.buf, '[')
	p.buf = strconv.AppendInt(p.buf, int64(i), 10)
	p.buf = append(p.buf, ']')
}

// Pop removes the last segment. Popping an empty path is a no-op.
func (p *PathBuilder) Pop() {
	n := len(p.marks)
	if n == 0 {
		return
	}
	p.buf = p.buf[:p.marks[n-1]]
	p.marks = p.marks[:n-1]
}

// Depth returns the number of segments currently on the path.
func (p *PathBuilder) Depth() int {
	return len(p.marks)
}

// Reset clears the builder for reuse, keeping its capacity.
func (p *PathBuilder) Reset() {
	p.buf = p.buf[:0]
	p.marks = p.marks[:0]
}

// Child returns the current path with one more field segment appended,
// leaving the builder unchanged.
func (p *PathBuilder) Child(segment string) string {
	p.Push(segment)
	s := p.String()
	p.Pop()
	return s
}

// String returns the path built so far.
func (p *PathBuilder) String() string {
	return string(p.buf)
}
