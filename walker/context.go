package walker

import (
	"context"
	"sync"
)

// WalkContext carries positional information about the node being visited.
//
// Contexts are pooled: a WalkContext is only valid for the duration of the
// handler call it was passed to. Handlers that need to keep information
// must copy the fields they care about, not the context itself.
type WalkContext struct {
	// Pointer is the node's location as a JSON Pointer string. The root
	// node's pointer is the empty string.
	Pointer string

	// Name is the member name under which this node appears in its parent
	// mapping. Empty for the root and for sequence elements.
	Name string

	// Index is the node's position in its parent sequence, or -1 when the
	// parent is not a sequence.
	Index int

	// Parent describes the containing node, or nil at the root.
	Parent *ParentInfo

	ctx context.Context
}

// Context returns the context supplied via WithContext, or a background
// context when none was set.
func (wc *WalkContext) Context() context.Context {
	if wc.ctx == nil {
		return context.Background()
	}
	return wc.ctx
}

// WithContext returns a copy of wc carrying ctx. The original is unchanged.
func (wc *WalkContext) WithContext(ctx context.Context) *WalkContext {
	cp := *wc
	cp.ctx = ctx
	return &cp
}

var contextPool = sync.Pool{
	New: func() any {
		return &WalkContext{}
	},
}

func acquireContext(ptr, name string, index int, parent *ParentInfo, ctx context.Context) *WalkContext {
	wc := contextPool.Get().(*WalkContext)
	wc.Pointer = ptr
	wc.Name = name
	wc.Index = index
	wc.Parent = parent
	wc.ctx = ctx
	return wc
}

func releaseContext(wc *WalkContext) {
	// Clear all fields so pooled contexts never leak data between walks.
	*wc = WalkContext{}
	contextPool.Put(wc)
}
