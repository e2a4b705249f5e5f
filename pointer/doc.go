// Package pointer implements RFC 6901 JSON Pointers over decoded documents.
//
// A [Pointer] addresses a single value inside a nested structure of
// mappings (map[string]any or map[any]any), sequences ([]any), and
// scalars, the shape produced by decoding JSON or YAML into any. The
// package is a leaf utility with no I/O or logging, and it never mutates
// a document except in an explicit [Pointer.Set] or [Pointer.Remove]
// requested by the caller.
//
// # Quick Start
//
// Resolve a value:
//
//	doc := map[string]any{"spec": map[string]any{"replicas": 3}}
//	v, err := pointer.Get(doc, "/spec/replicas")
//	// v == 3
//
// Parse once, resolve many times:
//
//	p, err := pointer.Parse("/spec/containers/0/image")
//	for _, doc := range docs {
//	    img, err := p.Resolve(doc)
//	    ...
//	}
//
// # Pointer Syntax
//
// The empty string addresses the whole document. Every other pointer is a
// "/"-separated token list; "~1" decodes to "/" and "~0" to "~", in that
// order, so a member literally named "a/b~c" is addressed as "/a~1b~0c".
// The URI fragment form is accepted on parse ("#/a~1b/2") and produced by
// [Pointer.Fragment]; its tokens are additionally percent-decoded.
//
// On a sequence, a token must be a base-10 index without sign or leading
// zeros, or the special token "-" denoting the position past the last
// element. Resolving "-" yields the [EndOfList] marker; setting through it
// appends.
//
// # Error Taxonomy
//
// Failures are typed per category, and every category also matches the
// shared base sentinel (see [github.com/erraggy/ptrtools/ptrerrors]):
//
//   - malformed pointer or index token: *ptrerrors.InvalidPointerError
//   - missing member, or descending through a scalar: *ptrerrors.NotFoundError
//   - well-formed index outside the sequence: *ptrerrors.OutOfBoundsError
//
// Callers needing differentiated recovery branch on the narrow kind:
//
//	v, err := p.Resolve(doc)
//	if errors.Is(err, ptrerrors.ErrNotFound) {
//	    // create the member
//	} else if errors.Is(err, ptrerrors.ErrOutOfBounds) {
//	    // hard failure
//	}
//
// # Mutation
//
// [Pointer.Set] and [Pointer.Remove] return the updated document root:
// mappings mutate in place, but a sequence at the root that grows or
// shrinks comes back as a new slice header, so always keep the returned
// value:
//
//	doc, err := pointer.Set(doc, "/items/-", "appended")
//
// # Concurrency
//
// A Pointer is immutable and safe for concurrent use. Resolving against
// independent documents from many goroutines needs no synchronization;
// concurrent mutation of the same document is the caller's responsibility.
package pointer
