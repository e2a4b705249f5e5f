// Package pathutil provides efficient pointer building utilities for
// document traversal.
//
// The primary type is [PointerBuilder], which uses push/pop semantics to
// build pointers incrementally without allocating intermediate strings.
// This is particularly useful in recursive traversal where pointers are
// built on each recursive call but only used when a visitor or collector
// asks for the current location.
//
// # PointerBuilder Usage
//
// Use [Get] to obtain a pooled PointerBuilder, and [Put] to return it:
//
//	ptr := pathutil.Get()
//	defer pathutil.Put(ptr)
//
//	ptr.Push("components")
//	ptr.Push(schemaName)
//	// ... recurse ...
//	ptr.Pop()
//	ptr.Pop()
//
//	// Only call String() when the pointer is needed
//	if matched {
//	    found = append(found, ptr.String())
//	}
//
// Tokens are escaped at push time, so a member name containing "/" or "~"
// renders correctly:
//
//	ptr.Push("a/b") // renders as "/a~1b"
//
// Sequence indices are supported via [PointerBuilder.PushIndex]:
//
//	ptr.Push("items")
//	ptr.PushIndex(0) // produces "/items/0"
package pathutil
