// Package fileutil provides file access helpers shared by the CLI and the
// MCP server: permission modes, stdin-aware input reading, and output path
// sanitization.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// StdinPath is the conventional path argument meaning "read stdin" (or
// "write stdout" for output targets).
const StdinPath = "-"

// OwnerReadWrite is the file permission mode for written documents, which
// may contain sensitive configuration data (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the file permission mode for output intended to be read
// by other tools and users.
const ReadableByAll os.FileMode = 0o644

// ReadInput returns the contents of path, or of stdin when path is
// StdinPath.
func ReadInput(path string) ([]byte, error) {
	if path == StdinPath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("fileutil: reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fileutil: %w", err)
	}
	return data, nil
}

// WriteOutput writes data to path with mode, or to stdout when path is
// StdinPath. File targets are sanitized first.
func WriteOutput(path string, data []byte, mode os.FileMode) error {
	if path == StdinPath {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("fileutil: writing stdout: %w", err)
		}
		return nil
	}
	safe, err := SanitizeOutputPath(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(safe, data, mode); err != nil {
		return fmt.Errorf("fileutil: %w", err)
	}
	return nil
}

// SanitizeOutputPath validates and cleans an output file path.
// It resolves ".." components via filepath.Clean + filepath.Abs and
// rejects paths that resolve to symlinks. New files in existing
// directories are accepted. Returns the cleaned absolute path.
func SanitizeOutputPath(path string) (string, error) {
	cleaned := filepath.Clean(path)

	abs, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("fileutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("fileutil: refusing to write to symlink: %s", abs)
		}
	case os.IsNotExist(err):
		// New file, nothing to screen.
	default:
		return "", fmt.Errorf("fileutil: cannot stat path: %w", err)
	}

	return abs, nil
}
