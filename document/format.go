package document

import (
	"bytes"
	"fmt"
	"mime"
	"net/url"
	"path/filepath"
	"strings"
)

// SourceFormat identifies the serialization format of a loaded document.
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// FormatBytes formats a byte count into a human-readable string using binary units (KiB, MiB, etc.)
func FormatBytes(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	value := float64(size)
	for _, prefix := range "KMGTPE" {
		value /= unit
		if value < unit {
			return fmt.Sprintf("%.1f %ciB", value, prefix)
		}
	}
	return fmt.Sprintf("%.1f EiB", value)
}

// detectFormatFromPath maps a file extension to a source format.
func detectFormatFromPath(path string) SourceFormat {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return SourceFormatYAML
	case ".json":
		return SourceFormatJSON
	}
	return SourceFormatUnknown
}

// detectFormatFromContent sniffs the format from the content bytes.
// JSON documents start with '{' or '['; everything else reads as YAML.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	switch {
	case len(trimmed) == 0:
		return SourceFormatUnknown
	case trimmed[0] == '{', trimmed[0] == '[':
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// isURL reports whether path names a remote http(s) resource rather than a file.
func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// detectFormatFromURL picks a format for fetched content. The URL path
// extension is authoritative; the Content-Type header breaks ties.
func detectFormatFromURL(urlStr, contentType string) SourceFormat {
	if u, err := url.Parse(urlStr); err == nil {
		if format := detectFormatFromPath(u.Path); format != SourceFormatUnknown {
			return format
		}
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return SourceFormatUnknown
	}
	switch mediaType {
	case "application/json":
		return SourceFormatJSON
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return SourceFormatYAML
	}
	return SourceFormatUnknown
}
