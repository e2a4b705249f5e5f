package document

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/erraggy/ptrtools"
	"github.com/erraggy/ptrtools/internal/fileutil"
	"github.com/erraggy/ptrtools/internal/options"
)

// Option is a function that configures a load operation.
type Option func(*loadConfig) error

// loadConfig holds configuration for a load operation.
type loadConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	url      *string
	reader   io.Reader
	bytes    []byte

	// Configuration options
	userAgent       string
	httpClient      *http.Client
	logger          Logger
	maxDocumentSize int64
	ctx             context.Context

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// Load loads a document from source: a file path, "-" for stdin, or an
// http:// / https:// URL.
//
// Example:
//
//	doc, err := document.Load("config.yaml")
func Load(source string, opts ...Option) (*Document, error) {
	var src []Option
	switch {
	case source == fileutil.StdinPath:
		src = []Option{WithReader(os.Stdin), WithSourceName(source)}
	case isURL(source):
		src = []Option{WithURL(source)}
	default:
		src = []Option{WithFilePath(source)}
	}
	return LoadWithOptions(append(src, opts...)...)
}

// LoadWithOptions loads a document using functional options. Exactly one
// input source must be given.
//
// Example:
//
//	doc, err := document.LoadWithOptions(
//	    document.WithFilePath("config.yaml"),
//	    document.WithMaxDocumentSize(1<<20),
//	)
func LoadWithOptions(opts ...Option) (*Document, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("document: invalid options: %w", err)
	}

	l := &Loader{
		UserAgent:       cfg.userAgent,
		HTTPClient:      cfg.httpClient,
		Logger:          cfg.logger,
		MaxDocumentSize: cfg.maxDocumentSize,
	}

	var doc *Document
	var loadErr error
	switch {
	case cfg.filePath != nil:
		doc, loadErr = l.LoadFile(*cfg.filePath)
	case cfg.url != nil:
		ctx := cfg.ctx
		if ctx == nil {
			ctx = context.Background()
		}
		doc, loadErr = l.LoadURLContext(ctx, *cfg.url)
	case cfg.reader != nil:
		doc, loadErr = l.LoadReader(cfg.reader)
	case cfg.bytes != nil:
		doc, loadErr = l.LoadBytes(cfg.bytes)
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("document: no input source specified")
	}

	if loadErr != nil {
		return doc, loadErr
	}

	if doc != nil && cfg.sourceName != nil {
		doc.SourcePath = *cfg.sourceName
	}
	return doc, nil
}

// applyOptions applies option functions and validates configuration.
func applyOptions(opts ...Option) (*loadConfig, error) {
	cfg := &loadConfig{
		userAgent: ptrtools.UserAgent(),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"document: must specify an input source (use WithFilePath, WithURL, WithReader, or WithBytes)",
		"document: must specify exactly one input source",
		cfg.filePath != nil, cfg.url != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source.
func WithFilePath(path string) Option {
	return func(cfg *loadConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithURL specifies an http:// or https:// URL as the input source.
func WithURL(urlStr string) Option {
	return func(cfg *loadConfig) error {
		if !isURL(urlStr) {
			return fmt.Errorf("document: URL must start with http:// or https://")
		}
		cfg.url = &urlStr
		return nil
	}
}

// WithReader specifies an io.Reader as the input source.
func WithReader(r io.Reader) Option {
	return func(cfg *loadConfig) error {
		if r == nil {
			return fmt.Errorf("document: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source.
func WithBytes(data []byte) Option {
	return func(cfg *loadConfig) error {
		if data == nil {
			return fmt.Errorf("document: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithUserAgent sets the User-Agent string for HTTP requests.
// Default: "ptrtools/vX.Y.Z"
func WithUserAgent(ua string) Option {
	return func(cfg *loadConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client for fetching URLs.
// If the client is nil, this option has no effect (default client is used).
//
// Example with custom timeout:
//
//	client := &http.Client{Timeout: 60 * time.Second}
//	doc, err := document.LoadWithOptions(
//	    document.WithURL("https://example.com/config.yaml"),
//	    document.WithHTTPClient(client),
//	)
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *loadConfig) error {
		cfg.httpClient = client
		return nil
	}
}

// WithLogger sets a structured logger for debug output during loading.
// By default, no logging is performed (nil logger).
//
// Example:
//
//	logger := document.NewSlogAdapter(slog.Default())
//	doc, err := document.LoadWithOptions(
//	    document.WithFilePath("config.yaml"),
//	    document.WithLogger(logger),
//	)
func WithLogger(l Logger) Option {
	return func(cfg *loadConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxDocumentSize sets the maximum document size in bytes.
// A value of 0 means use the default (10MB).
// Returns an error if size is negative.
func WithMaxDocumentSize(size int64) Option {
	return func(cfg *loadConfig) error {
		if size < 0 {
			return fmt.Errorf("document: maxDocumentSize cannot be negative")
		}
		cfg.maxDocumentSize = size
		return nil
	}
}

// WithContext sets the context used for URL fetches. Local reads are not
// affected.
func WithContext(ctx context.Context) Option {
	return func(cfg *loadConfig) error {
		if ctx == nil {
			return fmt.Errorf("document: context cannot be nil")
		}
		cfg.ctx = ctx
		return nil
	}
}

// WithSourceName specifies a meaningful name for the source document.
// This is particularly useful when loading from bytes or a reader, where
// the default names ("LoadBytes.yaml", "LoadReader.yaml") are not
// descriptive. The name appears in diagnostic output.
//
// Example:
//
//	doc, err := document.LoadWithOptions(
//	    document.WithBytes(data),
//	    document.WithSourceName("deploy-config"),
//	)
func WithSourceName(name string) Option {
	return func(cfg *loadConfig) error {
		if name == "" {
			return fmt.Errorf("document: source name cannot be empty")
		}
		cfg.sourceName = &name
		return nil
	}
}
