package pathutil

import "sync"

// Builders that grew past these limits are dropped instead of pooled.
const (
	maxPooledBytes    = 1024
	maxPooledSegments = 64
)

var builders = sync.Pool{
	New: func() any {
		return &PathBuilder{buf: make([]byte, 0, 64), marks: make([]int, 0, 8)}
	},
}

// Get returns an empty PathBuilder from the pool.
func Get() *PathBuilder {
	p := builders.Get().(*PathBuilder)
	p.Reset()
	return p
}

// Put returns p to the pool. Nil and oversized builders are discarded.
func Put(p *PathBuilder) {
	if p == nil || cap(p.buf) > maxPooledBytes || cap(p.marks) > maxPooledSegments {
		return
	}
	builders.Put(p)
}
