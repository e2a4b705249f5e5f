package document

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/ptrtools"
	"github.com/erraggy/ptrtools/pointer"
	"github.com/erraggy/ptrtools/walker"
)

// DefaultMaxDocumentSize is the maximum size (in bytes) allowed for a
// single document. This prevents resource exhaustion from loading
// arbitrarily large files or responses.
const DefaultMaxDocumentSize int64 = 10 * 1024 * 1024 // 10MB

// Loader loads JSON and YAML documents from files, URLs, readers, and
// byte slices into generic trees that the pointer package can address.
type Loader struct {
	// UserAgent is the User-Agent string used when fetching URLs.
	// Defaults to "ptrtools/<version>" if not set.
	UserAgent string
	// HTTPClient is the HTTP client used for fetching URLs.
	// If nil, a default client with 30-second timeout is created.
	HTTPClient *http.Client
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger
	// MaxDocumentSize is the maximum document size in bytes.
	// 0 means use DefaultMaxDocumentSize.
	MaxDocumentSize int64
}

// New creates a new Loader with default settings.
func New() *Loader {
	return &Loader{
		UserAgent: ptrtools.UserAgent(),
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (l *Loader) log() Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return NopLogger{}
}

func (l *Loader) maxSize() int64 {
	if l.MaxDocumentSize > 0 {
		return l.MaxDocumentSize
	}
	return DefaultMaxDocumentSize
}

// Document is a decoded JSON or YAML document together with its source
// metadata. Root holds the generic tree (map[string]any, []any, scalars)
// that pointers resolve against.
//
// A Document is not safe for concurrent mutation. Use Copy to obtain an
// independent tree before modifying a shared document.
type Document struct {
	// SourcePath is the input source the document was read from. For
	// non-file sources this is the loading method name with an extension
	// matching the detected format, unless overridden by WithSourceName.
	SourcePath string
	// SourceFormat is the detected format of the source.
	SourceFormat SourceFormat
	// Root is the decoded document tree.
	Root any
	// SourceSize is the size of the source data in bytes.
	SourceSize int64
	// LoadTime is the time taken to read the source data.
	LoadTime time.Duration
}

// LoadFile loads a document from a file path.
func (l *Loader) LoadFile(path string) (*Document, error) {
	loadStart := time.Now()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("document: failed to read file: %w", err)
	}
	if info.Size() > l.maxSize() {
		return nil, fmt.Errorf("document: %s is %s, exceeding the %s limit",
			path, FormatBytes(info.Size()), FormatBytes(l.maxSize()))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document: failed to read file: %w", err)
	}
	loadTime := time.Since(loadStart)

	doc, err := l.decode(data, detectFormatFromPath(path))
	if err != nil {
		return nil, err
	}
	doc.SourcePath = path
	doc.LoadTime = loadTime

	l.log().Debug("loaded document",
		"path", path, "format", string(doc.SourceFormat), "size", doc.SourceSize)
	return doc, nil
}

// LoadURL loads a document from an http:// or https:// URL.
func (l *Loader) LoadURL(urlStr string) (*Document, error) {
	return l.LoadURLContext(context.Background(), urlStr)
}

// LoadURLContext loads a document from a URL using ctx for the fetch.
func (l *Loader) LoadURLContext(ctx context.Context, urlStr string) (*Document, error) {
	loadStart := time.Now()
	data, contentType, err := l.fetch(ctx, urlStr)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, err
	}

	doc, err := l.decode(data, detectFormatFromURL(urlStr, contentType))
	if err != nil {
		return nil, err
	}
	doc.SourcePath = urlStr
	doc.LoadTime = loadTime

	l.log().Debug("fetched document",
		"url", urlStr, "format", string(doc.SourceFormat), "size", doc.SourceSize)
	return doc, nil
}

// LoadReader loads a document from an io.Reader.
// The SourcePath is set to "LoadReader.json" or "LoadReader.yaml" based on
// the detected format; use WithSourceName for a meaningful name.
func (l *Loader) LoadReader(r io.Reader) (*Document, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(io.LimitReader(r, l.maxSize()+1))
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("document: failed to read data: %w", err)
	}
	if int64(len(data)) > l.maxSize() {
		return nil, fmt.Errorf("document: input exceeds the %s limit", FormatBytes(l.maxSize()))
	}

	doc, err := l.decode(data, SourceFormatUnknown)
	if err != nil {
		return nil, err
	}
	doc.SourcePath = sourceName("LoadReader", doc.SourceFormat)
	doc.LoadTime = loadTime
	return doc, nil
}

// LoadBytes loads a document from a byte slice.
// The SourcePath is set to "LoadBytes.json" or "LoadBytes.yaml" based on
// the detected format; use WithSourceName for a meaningful name.
func (l *Loader) LoadBytes(data []byte) (*Document, error) {
	doc, err := l.decode(data, SourceFormatUnknown)
	if err != nil {
		return nil, err
	}
	doc.SourcePath = sourceName("LoadBytes", doc.SourceFormat)
	return doc, nil
}

// decode turns raw bytes into a Document. When format is unknown it is
// sniffed from the content; content that still defies detection goes to
// the YAML decoder, since YAML is a superset of JSON.
func (l *Loader) decode(data []byte, format SourceFormat) (*Document, error) {
	if int64(len(data)) > l.maxSize() {
		return nil, fmt.Errorf("document: input is %s, exceeding the %s limit",
			FormatBytes(int64(len(data))), FormatBytes(l.maxSize()))
	}
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}

	var root any
	switch format {
	case SourceFormatJSON:
		if err := jsoniter.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("document: failed to parse JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("document: failed to parse YAML: %w", err)
		}
	}

	return &Document{
		SourceFormat: format,
		Root:         root,
		SourceSize:   int64(len(data)),
	}, nil
}

// fetch retrieves content from a URL, returning the body bytes and the
// Content-Type header.
func (l *Loader) fetch(ctx context.Context, urlStr string) ([]byte, string, error) {
	client := l.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, "", fmt.Errorf("document: failed to create request: %w", err)
	}

	userAgent := l.UserAgent
	if userAgent == "" {
		userAgent = ptrtools.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("document: failed to fetch URL: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("document: HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, l.maxSize()+1))
	if err != nil {
		return nil, "", fmt.Errorf("document: failed to read response body: %w", err)
	}
	if int64(len(data)) > l.maxSize() {
		return nil, "", fmt.Errorf("document: response exceeds the %s limit", FormatBytes(l.maxSize()))
	}

	return data, resp.Header.Get("Content-Type"), nil
}

func sourceName(method string, format SourceFormat) string {
	if format == SourceFormatJSON {
		return method + ".json"
	}
	return method + ".yaml"
}

// Resolve evaluates a pointer string against the document tree.
func (d *Document) Resolve(ptr string) (any, error) {
	return pointer.Get(d.Root, ptr)
}

// ResolvePointer evaluates a parsed pointer against the document tree.
func (d *Document) ResolvePointer(p pointer.Pointer) (any, error) {
	return p.Resolve(d.Root)
}

// Set writes value at the location ptr names and rebinds Root, so writes
// that replace the root value (or grow a root sequence) stay visible.
func (d *Document) Set(ptr string, value any) error {
	root, err := pointer.Set(d.Root, ptr, value)
	if err != nil {
		return err
	}
	d.Root = root
	return nil
}

// Remove deletes the value at the location ptr names and rebinds Root.
func (d *Document) Remove(ptr string) error {
	root, err := pointer.Remove(d.Root, ptr)
	if err != nil {
		return err
	}
	d.Root = root
	return nil
}

// Pointers enumerates every addressable node in the document, in
// deterministic walk order.
func (d *Document) Pointers() ([]string, error) {
	return walker.Pointers(d.Root)
}

// MarshalJSON renders the document tree as indented JSON.
func (d *Document) MarshalJSON() ([]byte, error) {
	return jsoniter.MarshalIndent(d.Root, "", "  ")
}

// MarshalYAML renders the document tree as YAML.
func (d *Document) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(d.Root)
}

// Marshal renders the document tree in its source format. Unknown-format
// documents render as YAML.
func (d *Document) Marshal() ([]byte, error) {
	if d.SourceFormat == SourceFormatJSON {
		return d.MarshalJSON()
	}
	return d.MarshalYAML()
}

// Copy creates a deep copy of the Document, so the copy can be modified
// without affecting the original.
func (d *Document) Copy() *Document {
	if d == nil {
		return nil
	}
	return &Document{
		SourcePath:   d.SourcePath,
		SourceFormat: d.SourceFormat,
		Root:         deepCopyValue(d.Root),
		SourceSize:   d.SourceSize,
		LoadTime:     d.LoadTime,
	}
}

// deepCopyValue copies a decoded tree. Scalars copy by value; decoded
// trees hold no container types beyond the three cases.
func deepCopyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		cp := make(map[string]any, len(t))
		for k, item := range t {
			cp[k] = deepCopyValue(item)
		}
		return cp
	case map[any]any:
		cp := make(map[any]any, len(t))
		for k, item := range t {
			cp[k] = deepCopyValue(item)
		}
		return cp
	case []any:
		cp := make([]any, len(t))
		for i, item := range t {
			cp[i] = deepCopyValue(item)
		}
		return cp
	default:
		return t
	}
}
