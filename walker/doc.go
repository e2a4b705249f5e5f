// Package walker provides a traversal API for decoded JSON and YAML documents.
//
// The walker enables single-pass traversal of generic document trees built
// from map[string]any, []any, and scalar values, calling handlers for each
// node together with its JSON Pointer. This is useful for analysis,
// transformation, and indexing tasks that need to inspect multiple parts of
// a document in a consistent way.
//
// # Quick Start
//
// Walk a document and collect every string value:
//
//	var strs []string
//	err := walker.Walk(doc,
//	    walker.WithScalarHandler(func(wc *walker.WalkContext, value any) walker.Action {
//	        if s, ok := value.(string); ok {
//	            strs = append(strs, wc.Pointer+" = "+s)
//	        }
//	        return walker.Continue
//	    }),
//	)
//
// # Flow Control
//
// Handlers return an [Action] to control traversal:
//
//   - [Continue]: continue traversing children and siblings normally
//   - [SkipChildren]: skip all children of the current node, continue with siblings
//   - [Stop]: stop the entire walk immediately
//
// Example using SkipChildren to avoid a subtree:
//
//	walker.Walk(doc,
//	    walker.WithMappingHandler(func(wc *walker.WalkContext, m map[string]any) walker.Action {
//	        if wc.Name == "internal" {
//	            return walker.SkipChildren
//	        }
//	        return walker.Continue
//	    }),
//	)
//
// # Handler Types
//
// The walker provides typed handlers for the three node kinds plus a
// generic handler:
//
//   - [MappingHandler]: string-keyed mappings (JSON objects)
//   - [SequenceHandler]: sequences (JSON arrays)
//   - [ScalarHandler]: leaf values, including nulls
//   - [NodeHandler]: every node, called after the type-specific handler
//
// Mappings decoded with non-string keys (map[any]any, as some YAML decoders
// produce) traverse normally but only reach the generic [NodeHandler].
//
// # Deterministic Order
//
// Mapping members visit in sorted key order and sequence elements in
// position order, so walks over the same document always produce the same
// handler sequence.
//
// # Parent Tracking
//
// Every node carries a chain of [ParentInfo] describing its containers:
//
//	walker.Walk(doc,
//	    walker.WithScalarHandler(func(wc *walker.WalkContext, value any) walker.Action {
//	        if m, ok := wc.ParentMapping(); ok {
//	            // Access the containing mapping
//	            _ = m
//	        }
//	        return walker.Continue
//	    }),
//	)
//
// Helper methods: [WalkContext.ParentMapping], [WalkContext.ParentSequence],
// [WalkContext.Ancestors], [WalkContext.Depth].
//
// # WalkContext
//
// Every handler receives a [WalkContext] as its first parameter, providing
// contextual information about the current node:
//
//   - Pointer: the node's location as a JSON Pointer ("" for the root)
//   - Name: the member name in the parent mapping, when there is one
//   - Index: the position in the parent sequence, or -1
//   - Parent: the chain of containing nodes
//
// Contexts are pooled and reused between handler calls. A handler must not
// retain the *WalkContext after returning; copy the fields instead.
//
// # Context Propagation
//
// Pass a [context.Context] to make it available to handlers. The walker
// itself never aborts on cancellation; a handler decides:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//
//	walker.Walk(doc,
//	    walker.WithContext(ctx),
//	    walker.WithNodeHandler(func(wc *walker.WalkContext, _ any) walker.Action {
//	        if wc.Context().Err() != nil {
//	            return walker.Stop
//	        }
//	        return walker.Continue
//	    }),
//	)
//
// # Built-in Collectors
//
// For common collection patterns, the walker provides pre-built helpers that
// reduce boilerplate:
//
//   - [Pointers]: every node's JSON Pointer, in walk order
//   - [Leaves]: every scalar value keyed by its JSON Pointer
//   - [Refs]: every "$ref" member, with source pointer and target
//
// # Safety Limits
//
// Walks fail with an error when nesting exceeds the configured maximum
// depth (default 100, see [WithMaxDepth]) or when a container contains
// itself. Documents decoded from JSON or YAML text can never trip the cycle
// check; it guards programmatically built trees.
//
// # Concurrency
//
// A single Walk call is sequential. Separate Walk calls over the same
// document are safe to run concurrently as long as no handler mutates the
// document.
package walker
