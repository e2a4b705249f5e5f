// Package document loads JSON and YAML documents into generic trees for
// pointer resolution.
//
// The loader reads from local files, stdin, remote URLs (http:// or
// https://), io.Readers, and byte slices, detects the serialization
// format, and decodes into the map[string]any / []any / scalar shapes
// that the pointer and walker packages operate on.
//
// # Quick Start
//
// Load a file using the source-routing entry point:
//
//	doc, err := document.Load("config.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	port, err := doc.Resolve("/service/port")
//
// Load always routes: "-" reads stdin, http:// and https:// fetch, and
// everything else opens a file. For explicit control use functional
// options:
//
//	doc, err := document.LoadWithOptions(
//		document.WithBytes(data),
//		document.WithSourceName("deploy-config"),
//	)
//
// Or create a reusable Loader instance:
//
//	l := document.New()
//	l.MaxDocumentSize = 1 << 20
//	doc1, _ := l.LoadFile("api1.yaml")
//	doc2, _ := l.LoadURL("https://example.com/api2.yaml")
//
// # Format Detection
//
// The format is taken from the file extension (.json, .yaml, .yml) or
// URL Content-Type when available, and sniffed from the content
// otherwise: input starting with '{' or '[' decodes as JSON, everything
// else as YAML. Since YAML is a superset of JSON this fallback never
// misreads a document, it only routes it through the slower decoder.
//
// # Resource Limits
//
// Files, responses, and reader input are capped at 10MB by default
// (WithMaxDocumentSize). URL fetches use a 30-second timeout unless a
// custom HTTP client is supplied, and send a ptrtools User-Agent.
//
// # Mutating Documents
//
// Document.Set and Document.Remove rebind the root tree, so writes that
// replace the root value stay visible. A Document is not safe for
// concurrent mutation; Copy produces an independent tree:
//
//	working := doc.Copy()
//	if err := working.Set("/service/port", 9090); err != nil {
//		log.Fatal(err)
//	}
//	out, _ := working.Marshal() // rendered in the source format
package document
