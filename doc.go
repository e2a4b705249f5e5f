// Package ptrtools provides tools for resolving, mutating, and enumerating
// RFC 6901 JSON Pointers in YAML and JSON documents.
//
// ptrtools offers four main packages for working with pointers against the
// generic document trees produced by decoding YAML or JSON (map[string]any,
// []any, and scalar leaves).
//
// # Overview
//
// The library consists of four primary packages:
//
//   - pointer: Parse, evaluate, and mutate JSON Pointers
//   - ptrerrors: Typed error taxonomy shared by every package
//   - document: Load YAML/JSON documents from files, URLs, readers, or bytes
//   - walker: Visit every node of a document and collect pointers
//
// All packages operate on the same decoded representation, so a document
// loaded once can be resolved, rewritten, and walked without conversion.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/ptrtools
//
// # Quick Start
//
// Load a document and resolve a pointer:
//
//	import "github.com/erraggy/ptrtools/document"
//
//	doc, err := document.Load("config.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	name, err := doc.Resolve("/service/name")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(name)
//
// # Pointer Package
//
// The pointer package implements RFC 6901 pointer syntax: parsing with
// escape handling (~0 and ~1), resolution against decoded documents, and
// structural mutation. Pointers are immutable values and safe for
// concurrent use.
//
// Key features:
//   - Strict RFC 6901 parsing with typed errors for malformed input
//   - Resolution over map[string]any, map[any]any, and []any trees
//   - Set and Remove returning the updated (possibly re-rooted) document
//   - The "-" end-of-list token for appends
//   - URI fragment rendering for use in $ref values
//
// Example:
//
//	p, err := pointer.Parse("/users/0/name")
//	if err != nil {
//		log.Fatal(err)
//	}
//	value, err := p.Resolve(doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(value)
//
//	// One-shot helpers parse and evaluate together.
//	value, err = pointer.Get(doc, "/users/0/name")
//
//	// Mutation returns the updated root: appending through "-" or
//	// replacing the root ("") rebinds it.
//	doc, err = pointer.Set(doc, "/users/-", map[string]any{"name": "ada"})
//
// See the pointer package documentation for more details.
//
// # Error Handling
//
// The ptrerrors package defines the error taxonomy every operation reports
// through. Each failure is a typed error carrying the pointer, the failing
// token, and its position, and matches both its specific sentinel and the
// catch-all ErrPointer:
//
//	value, err := pointer.Get(doc, "/users/42/name")
//	if err != nil {
//		var oob *ptrerrors.OutOfBoundsError
//		switch {
//		case errors.As(err, &oob):
//			fmt.Printf("index %d outside [0, %d)\n", oob.Index, oob.Length)
//		case errors.Is(err, ptrerrors.ErrNotFound):
//			fmt.Println("no such member")
//		case errors.Is(err, ptrerrors.ErrInvalidPointer):
//			fmt.Println("malformed pointer")
//		}
//	}
//
//	// Or treat every pointer failure uniformly:
//	if errors.Is(err, ptrerrors.ErrPointer) {
//		// any pointer error
//	}
//
// # Document Package
//
// The document package loads YAML or JSON into a Document that carries its
// source format, so edits can be written back in the format they came from.
// Sources can be file paths, HTTP(S) URLs, readers, or byte slices, with
// "-" meaning stdin.
//
// Key features:
//   - Format detection from extension, content type, and content
//   - Size limits on every source (default 10 MiB)
//   - Context-aware URL fetching with a configurable client
//   - Resolve/Set/Remove/Pointers directly on the Document
//   - Marshal back to the source format, or force JSON/YAML
//
// Example:
//
//	doc, err := document.LoadWithOptions(
//		document.WithFilePath("api.json"),
//		document.WithMaxDocumentSize(1<<20),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := doc.Set("/servers/0/url", "https://api.example.com"); err != nil {
//		log.Fatal(err)
//	}
//	data, err := doc.Marshal() // JSON, because the source was JSON
//
// See the document package documentation for more details.
//
// # Walker Package
//
// The walker package visits every node of a document depth-first in
// deterministic order, handing each handler the node's pointer and parent
// chain. Collectors built on it enumerate pointers, leaves, and $ref
// values.
//
// Key features:
//   - Typed handlers for mappings, sequences, and scalars
//   - Stop and SkipChildren flow control from any handler
//   - Cycle detection and a configurable depth limit
//   - Pointers, Leaves, and Refs collectors
//
// Example:
//
//	err := walker.Walk(doc,
//		walker.WithScalarHandler(func(wc *walker.WalkContext, v any) walker.Action {
//			fmt.Printf("%s = %v\n", wc.Pointer, v)
//			return walker.Continue
//		}),
//	)
//
//	// Or collect instead of visiting:
//	ptrs, err := walker.Pointers(doc)
//	refs, err := walker.Refs(doc)
//
// See the walker package documentation for more details.
//
// # Common Workflows
//
// Rewrite a configuration value and save it:
//
//	doc, err := document.Load("deploy.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := doc.Set("/spec/replicas", 5); err != nil {
//		log.Fatal(err)
//	}
//	data, err := doc.Marshal()
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = os.WriteFile("deploy.yaml", data, 0o600)
//
// Audit that every internal $ref in a document has a live target:
//
//	refs, err := walker.Refs(doc.Root)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, ref := range refs {
//		if !strings.HasPrefix(ref.Target, "#/") {
//			continue
//		}
//		p, err := pointer.Parse(strings.TrimPrefix(ref.Target, "#"))
//		if err != nil {
//			fmt.Printf("%s: malformed target %q\n", ref.Source, ref.Target)
//			continue
//		}
//		if _, err := p.Resolve(doc.Root); err != nil {
//			fmt.Printf("%s: dangling target %q\n", ref.Source, ref.Target)
//		}
//	}
//
// # Security Considerations
//
// The document loader applies resource limits and input validation:
//
//   - Size limits: Every source is capped (default 10 MiB) before decoding,
//     including HTTP response bodies
//   - File output: The CLI writes documents with restrictive permissions
//     (0600) and refuses symlinked output paths
//   - URL fetching: Only http and https schemes are accepted; the MCP
//     server additionally blocks private, loopback, and link-local
//     addresses unless explicitly enabled
//
// # Error Handling Conventions
//
// All packages follow consistent error handling patterns:
//
//   - File I/O errors: Returned wrapped with the failing operation
//   - Pointer failures: Typed ptrerrors values matching both their
//     sentinel and ptrerrors.ErrPointer
//   - Walk failures: Returned from Walk and the collectors (cycles, depth)
//
// Error messages include the full pointer, the failing token, and its
// position, so they can be surfaced to users without reconstruction.
//
// # Command-Line Interface
//
// In addition to the library packages, ptrtools provides a command-line
// interface:
//
//	# Resolve a pointer
//	ptrtools get -f config.yaml /service/name
//
//	# Write a value and save in place
//	ptrtools set -f config.yaml -value 5 -out config.yaml /service/replicas
//
//	# Remove a value
//	ptrtools unset -f config.yaml /service/debug
//
//	# Enumerate pointers
//	ptrtools list -f config.yaml -prefix /service
//
//	# Verify pointers resolve
//	ptrtools check -f config.yaml /service/name /service/port
//
//	# Serve the pointer tools over the Model Context Protocol
//	ptrtools mcp
//
// Install the CLI:
//
//	go install github.com/erraggy/ptrtools/cmd/ptrtools@latest
//
// # Additional Resources
//
//   - GitHub Repository: https://github.com/erraggy/ptrtools
//   - RFC 6901 (JSON Pointer): https://www.rfc-editor.org/rfc/rfc6901
//   - Go Package Documentation: https://pkg.go.dev/github.com/erraggy/ptrtools
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in the
// repository for full details.
package ptrtools
