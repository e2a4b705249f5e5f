package pathutil

import (
	"strconv"
	"strings"

	"github.com/erraggy/ptrtools/pointer"
)

// PointerBuilder provides efficient incremental pointer construction.
// Uses push/pop semantics to avoid allocations during traversal.
// The full string is only materialized when String() is called.
type PointerBuilder struct {
	segments []string // Escaped reference tokens
	length   int      // Pre-calculated length for String() allocation
}

// Push adds a reference token. The token is escaped at push time so that
// Pop and String never need to rescan it.
func (p *PointerBuilder) Push(token string) {
	seg := pointer.EscapeToken(token)
	p.segments = append(p.segments, seg)
	p.length += len(seg) + 1 // +1 for the separator
}

// PushIndex adds a sequence index token: "0", "1", etc.
func (p *PointerBuilder) PushIndex(i int) {
	seg := strconv.Itoa(i)
	p.segments = append(p.segments, seg)
	p.length += len(seg) + 1
}

// Pop removes the last token.
func (p *PointerBuilder) Pop() {
	if len(p.segments) == 0 {
		return
	}
	last := p.segments[len(p.segments)-1]
	p.segments = p.segments[:len(p.segments)-1]
	p.length -= len(last) + 1
}

// Depth reports how many tokens are currently pushed.
func (p *PointerBuilder) Depth() int {
	return len(p.segments)
}

// Reset clears the builder for reuse.
func (p *PointerBuilder) Reset() {
	p.segments = p.segments[:0]
	p.length = 0
}

// String materializes the full pointer. Only call when the pointer is
// needed. The root materializes as "".
func (p *PointerBuilder) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(p.length)
	for _, seg := range p.segments {
		b.WriteByte('/')
		b.WriteString(seg)
	}
	return b.String()
}
