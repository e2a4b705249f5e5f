package walker

// ParentInfo describes a node's containing mapping or sequence.
type ParentInfo struct {
	// Node is the parent container itself.
	Node any

	// Pointer is the parent's location as a JSON Pointer string.
	Pointer string

	// Parent links to the grandparent, forming a chain up to the root.
	Parent *ParentInfo
}

// ParentMapping returns the parent as a string-keyed mapping, if it is one.
func (wc *WalkContext) ParentMapping() (map[string]any, bool) {
	if wc.Parent == nil {
		return nil, false
	}
	m, ok := wc.Parent.Node.(map[string]any)
	return m, ok
}

// ParentSequence returns the parent as a sequence, if it is one.
func (wc *WalkContext) ParentSequence() ([]any, bool) {
	if wc.Parent == nil {
		return nil, false
	}
	s, ok := wc.Parent.Node.([]any)
	return s, ok
}

// Ancestors returns the chain of parents from the immediate parent up to
// the root. The slice is newly allocated on each call.
func (wc *WalkContext) Ancestors() []*ParentInfo {
	var chain []*ParentInfo
	for p := wc.Parent; p != nil; p = p.Parent {
		chain = append(chain, p)
	}
	return chain
}

// Depth returns how many containers enclose the current node. The root
// node has depth 0.
func (wc *WalkContext) Depth() int {
	depth := 0
	for p := wc.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}
