package walker

import (
	"context"
	"fmt"
	"reflect"
	"slices"

	"github.com/erraggy/ptrtools/internal/maputil"
	"github.com/erraggy/ptrtools/internal/pathutil"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Handler types for each node kind.
// Each handler receives the walk context and the node, and returns an Action.

// NodeHandler is called for every node in the tree, after the node's
// type-specific handler.
type NodeHandler func(wc *WalkContext, value any) Action

// MappingHandler is called for each string-keyed mapping.
type MappingHandler func(wc *WalkContext, m map[string]any) Action

// SequenceHandler is called for each sequence.
type SequenceHandler func(wc *WalkContext, s []any) Action

// ScalarHandler is called for each leaf value: strings, numbers, booleans,
// and nulls.
type ScalarHandler func(wc *WalkContext, value any) Action

// Walker traverses decoded documents and calls handlers for each node.
type Walker struct {
	// Handlers
	onNode     NodeHandler
	onMapping  MappingHandler
	onSequence SequenceHandler
	onScalar   ScalarHandler

	// Configuration
	maxDepth int
	ctx      context.Context

	// Internal state
	onStack map[visitKey]bool
	stopped bool
}

// New creates a new Walker with default settings.
func New() *Walker {
	return &Walker{
		maxDepth: 100,
	}
}

// Walk traverses root and calls registered handlers for each node.
// Mapping members visit in sorted key order and sequence elements in
// position order, so a walk over the same document is deterministic.
//
// Walk fails when nesting exceeds the configured depth, when a container
// contains itself, or when a handler returns an action outside the
// defined constants.
func Walk(root any, opts ...Option) error {
	w := New()
	for _, opt := range opts {
		opt(w)
	}
	return w.walk(root)
}

// walk performs the actual traversal.
func (w *Walker) walk(root any) error {
	w.onStack = make(map[visitKey]bool)
	w.stopped = false

	b := pathutil.Get()
	defer pathutil.Put(b)

	return w.visit(root, b, nil, "", -1, 0)
}

// visitKey identifies a container for cycle detection. Sequences include
// their length so reslices of a shared backing array stay distinct.
type visitKey struct {
	ptr uintptr
	n   int
}

func mappingKey(v any) visitKey {
	return visitKey{ptr: reflect.ValueOf(v).Pointer(), n: -1}
}

func sequenceKey(s []any) visitKey {
	return visitKey{ptr: reflect.ValueOf(s).Pointer(), n: len(s)}
}

// visit walks one node: type-specific handler, then the generic node
// handler, then children unless a handler said otherwise.
func (w *Walker) visit(v any, b *pathutil.PointerBuilder, parent *ParentInfo, name string, index, depth int) error {
	if w.stopped {
		return nil
	}
	if depth > w.maxDepth {
		return fmt.Errorf("walker: max depth %d exceeded at %q", w.maxDepth, b.String())
	}

	ptr := b.String()
	continueToChildren := true

	switch node := v.(type) {
	case map[string]any:
		if w.onMapping != nil {
			cont, err := w.runHandler(ptr, name, index, parent, func(wc *WalkContext) Action {
				return w.onMapping(wc, node)
			})
			if err != nil {
				return err
			}
			if w.stopped {
				return nil
			}
			continueToChildren = continueToChildren && cont
		}
	case []any:
		if w.onSequence != nil {
			cont, err := w.runHandler(ptr, name, index, parent, func(wc *WalkContext) Action {
				return w.onSequence(wc, node)
			})
			if err != nil {
				return err
			}
			if w.stopped {
				return nil
			}
			continueToChildren = continueToChildren && cont
		}
	case map[any]any:
		// Any-keyed mappings traverse like mappings but only reach the
		// generic node handler; the typed handler is for string keys.
	default:
		if w.onScalar != nil {
			_, err := w.runHandler(ptr, name, index, parent, func(wc *WalkContext) Action {
				return w.onScalar(wc, node)
			})
			if err != nil {
				return err
			}
			if w.stopped {
				return nil
			}
		}
	}

	if w.onNode != nil {
		cont, err := w.runHandler(ptr, name, index, parent, func(wc *WalkContext) Action {
			return w.onNode(wc, v)
		})
		if err != nil {
			return err
		}
		if w.stopped {
			return nil
		}
		continueToChildren = continueToChildren && cont
	}

	if !continueToChildren {
		return nil
	}

	switch node := v.(type) {
	case map[string]any:
		return w.walkMapping(node, b, ptr, parent, depth)
	case map[any]any:
		return w.walkAnyMapping(node, b, ptr, parent, depth)
	case []any:
		return w.walkSequence(node, b, ptr, parent, depth)
	}
	return nil
}

func (w *Walker) walkMapping(node map[string]any, b *pathutil.PointerBuilder, ptr string, parent *ParentInfo, depth int) error {
	key := mappingKey(node)
	if w.onStack[key] {
		return fmt.Errorf("walker: cycle detected at %q", ptr)
	}
	w.onStack[key] = true
	defer delete(w.onStack, key)

	p := &ParentInfo{Node: node, Pointer: ptr, Parent: parent}
	for _, k := range maputil.SortedKeys(node) {
		if w.stopped {
			return nil
		}
		b.Push(k)
		err := w.visit(node[k], b, p, k, -1, depth+1)
		b.Pop()
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) walkAnyMapping(node map[any]any, b *pathutil.PointerBuilder, ptr string, parent *ParentInfo, depth int) error {
	key := mappingKey(node)
	if w.onStack[key] {
		return fmt.Errorf("walker: cycle detected at %q", ptr)
	}
	w.onStack[key] = true
	defer delete(w.onStack, key)

	// Keys stringify for addressing; colliding string forms visit once.
	names := make([]string, 0, len(node))
	byName := make(map[string]any, len(node))
	for k, val := range node {
		ks := fmt.Sprint(k)
		names = append(names, ks)
		byName[ks] = val
	}
	slices.Sort(names)

	p := &ParentInfo{Node: node, Pointer: ptr, Parent: parent}
	for _, ks := range names {
		if w.stopped {
			return nil
		}
		b.Push(ks)
		err := w.visit(byName[ks], b, p, ks, -1, depth+1)
		b.Pop()
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) walkSequence(node []any, b *pathutil.PointerBuilder, ptr string, parent *ParentInfo, depth int) error {
	key := sequenceKey(node)
	if w.onStack[key] {
		return fmt.Errorf("walker: cycle detected at %q", ptr)
	}
	w.onStack[key] = true
	defer delete(w.onStack, key)

	p := &ParentInfo{Node: node, Pointer: ptr, Parent: parent}
	for i, item := range node {
		if w.stopped {
			return nil
		}
		b.PushIndex(i)
		err := w.visit(item, b, p, "", i, depth+1)
		b.Pop()
		if err != nil {
			return err
		}
	}
	return nil
}

// runHandler builds a pooled context, invokes fn, and interprets the
// returned action.
func (w *Walker) runHandler(ptr, name string, index int, parent *ParentInfo, fn func(*WalkContext) Action) (bool, error) {
	wc := acquireContext(ptr, name, index, parent, w.ctx)
	action := fn(wc)
	releaseContext(wc)
	return w.handleAction(action, ptr)
}

// handleAction processes the action returned by a handler.
// Returns true if walking should continue to children.
func (w *Walker) handleAction(action Action, ptr string) (bool, error) {
	switch action {
	case Continue:
		return true, nil
	case SkipChildren:
		return false, nil
	case Stop:
		w.stopped = true
		return false, nil
	default:
		return false, fmt.Errorf("walker: handler returned invalid action %s at %q", action, ptr)
	}
}
