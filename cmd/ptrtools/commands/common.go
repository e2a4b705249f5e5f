// Package commands provides CLI command handlers for ptrtools.
package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/ptrtools/document"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// ValidateDocumentFormat validates a document rendering format for commands
// that emit whole documents. Empty means "follow the source format".
func ValidateDocumentFormat(format string) error {
	if format != "" && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s (empty follows the source format)", format, FormatJSON, FormatYAML)
	}
	return nil
}

// UsageError marks an error as command-line misuse so main can exit with
// the conventional usage status instead of the general failure status.
type UsageError struct {
	Err error
}

// Error returns the wrapped message.
func (e *UsageError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped error for chaining.
func (e *UsageError) Unwrap() error { return e.Err }

// Usagef builds a UsageError from a format string.
func Usagef(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// RenderValue renders a resolved value in the requested output format.
// Text mode prints scalars bare and composites in the document's source
// format. The result never carries a trailing newline; callers add one.
func RenderValue(value any, format string, sourceFormat document.SourceFormat) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := jsoniter.MarshalIndent(value, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling to json: %w", err)
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("marshaling to yaml: %w", err)
		}
		return bytes.TrimRight(data, "\n"), nil
	}

	switch value.(type) {
	case map[string]any, map[any]any, []any:
		if sourceFormat == document.SourceFormatJSON {
			return RenderValue(value, FormatJSON, sourceFormat)
		}
		return RenderValue(value, FormatYAML, sourceFormat)
	case nil:
		return []byte("null"), nil
	default:
		return fmt.Appendf(nil, "%v", value), nil
	}
}

// RenderDocument renders a whole document: empty format follows the
// source format, otherwise json or yaml is forced. The result always
// ends with a newline so files and terminals stay tidy.
func RenderDocument(doc *document.Document, format string) ([]byte, error) {
	var data []byte
	var err error
	switch format {
	case FormatJSON:
		data, err = doc.MarshalJSON()
	case FormatYAML:
		data, err = doc.MarshalYAML()
	default:
		data, err = doc.Marshal()
	}
	if err != nil {
		return nil, fmt.Errorf("marshaling document: %w", err)
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	return data, nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var rendered []byte
	var err error

	switch format {
	case FormatJSON:
		rendered, err = jsoniter.MarshalIndent(data, "", "  ")
	case FormatYAML:
		rendered, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes.TrimRight(rendered, "\n")))
	return nil
}

// FormatSuggestions renders near-miss member names as a hint suffix,
// e.g. ` (did you mean "replicas"?)`. Empty input yields an empty string.
func FormatSuggestions(names []string) string {
	if len(names) == 0 {
		return ""
	}
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = strconv.Quote(name)
	}
	return fmt.Sprintf(" (did you mean %s?)", strings.Join(quoted, " or "))
}
