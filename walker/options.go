package walker

import "context"

// Option configures a Walker.
type Option func(*Walker)

// WithNodeHandler sets a handler called for every node. It runs after the
// node's type-specific handler.
func WithNodeHandler(h NodeHandler) Option {
	return func(w *Walker) {
		w.onNode = h
	}
}

// WithMappingHandler sets a handler for string-keyed mappings.
func WithMappingHandler(h MappingHandler) Option {
	return func(w *Walker) {
		w.onMapping = h
	}
}

// WithSequenceHandler sets a handler for sequences.
func WithSequenceHandler(h SequenceHandler) Option {
	return func(w *Walker) {
		w.onSequence = h
	}
}

// WithScalarHandler sets a handler for leaf values.
func WithScalarHandler(h ScalarHandler) Option {
	return func(w *Walker) {
		w.onScalar = h
	}
}

// WithMaxDepth sets the maximum nesting depth. Values <= 0 keep the default.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}

// WithContext makes ctx available to handlers through WalkContext.Context.
// The walker itself does not watch the context; a handler that wants to
// abort on cancellation should check it and return Stop.
func WithContext(ctx context.Context) Option {
	return func(w *Walker) {
		w.ctx = ctx
	}
}
