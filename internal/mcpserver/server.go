// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes ptrtools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/ptrtools"
	"github.com/erraggy/ptrtools/pointer"
	"github.com/erraggy/ptrtools/ptrerrors"
)

const serverInstructions = `ptrtools MCP server — resolves, writes, removes, lists, and checks RFC 6901 JSON Pointers against JSON and YAML documents.

Configuration: All defaults are configurable via PTRTOOLS_MCP_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- PTRTOOLS_MCP_MAX_DOCUMENT_SIZE (default: 10485760) — maximum document size in bytes
- PTRTOOLS_MCP_MAX_POINTERS (default: 100) — ceiling on pointers accepted by check and returned by list
- PTRTOOLS_MCP_FETCH_TIMEOUT (default: 30s) — HTTP timeout when fetching URL documents
- PTRTOOLS_MCP_CACHE_ENABLED (default: true) — disable document caching entirely
- PTRTOOLS_MCP_CACHE_TTL (default: 5m) — cache TTL for loaded documents
- PTRTOOLS_MCP_ALLOW_PRIVATE_IPS (default: false) — allow URL fetches to private/loopback addresses

Documents: Each tool takes a doc object with exactly one of content (inline JSON or YAML), file (path on disk), or url (http/https). Loaded documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). A background sweeper removes expired entries every 60s.

Pointers: RFC 6901 syntax. "" addresses the whole document, "/a/b" descends by member name or sequence index, "~0" escapes "~" and "~1" escapes "/", and "-" names the position past the end of a sequence (append target for write). Failed resolutions report an error_kind (invalid_pointer, not_found, out_of_bounds) and, for not_found on a mapping, near-miss member suggestions.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "ptrtools", Version: ptrtools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve",
		Description: "Resolve an RFC 6901 JSON Pointer against a JSON or YAML document. Returns the addressed value (rendered as JSON), its kind, and the normalized pointer. On failure, returns error_kind (invalid_pointer, not_found, out_of_bounds) and, for missing mapping members, suggestions of near-miss member names.",
	}, handleResolve)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "write",
		Description: "Write a value at a JSON Pointer location in a document and return the updated document rendered in its source format. The value is JSON-encoded; use raw=true to write it as a literal string instead. A trailing '-' pointer token appends to a sequence. The target's parent must already exist.",
	}, handleWrite)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "remove",
		Description: "Remove the value at a JSON Pointer location in a document and return the updated document rendered in its source format. Removing from a sequence shifts later elements left. The root pointer cannot be removed.",
	}, handleRemove)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list",
		Description: "List every addressable JSON Pointer in a document in deterministic order. Use prefix to restrict to a subtree, leaves_only=true to get scalar leaves with their values, or refs=true to get $ref members with their targets. Results are capped by limit (default and ceiling configurable via PTRTOOLS_MCP_MAX_POINTERS); the output reports total and truncation.",
	}, handleList)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check",
		Description: "Check a batch of JSON Pointers against a document. Returns a per-pointer status with the resolved kind on success or error_kind plus suggestions on failure, and passed/failed counts. Useful for verifying configuration keys or validating generated pointers before writing.",
	}, handleCheck)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// errorKind classifies a pointer failure for structured tool output so
// agents can branch without parsing message text. Non-pointer failures
// return an empty string.
func errorKind(err error) string {
	var invalidErr *ptrerrors.InvalidPointerError
	var notFoundErr *ptrerrors.NotFoundError
	var boundsErr *ptrerrors.OutOfBoundsError
	switch {
	case errors.As(err, &invalidErr):
		return "invalid_pointer"
	case errors.As(err, &notFoundErr):
		return "not_found"
	case errors.As(err, &boundsErr):
		return "out_of_bounds"
	default:
		return ""
	}
}

// valueKind names the kind of a resolved value in tool output.
func valueKind(v any) string {
	switch v.(type) {
	case map[string]any, map[any]any:
		return "mapping"
	case []any:
		return "sequence"
	case pointer.EndOfList:
		return "end_of_list"
	case string:
		return "string"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return "number"
	}
}

// listLimit clamps a requested list limit to the configured ceiling.
// Non-positive limits default to the ceiling.
func listLimit(limit int) int {
	if limit <= 0 || limit > cfg.MaxPointers {
		return cfg.MaxPointers
	}
	return limit
}

// matchesPrefix reports whether ptr equals prefix or lives under it.
// Escaping guarantees "/" appears only as a token separator, so plain
// string comparison is safe.
func matchesPrefix(ptr, prefix string) bool {
	if prefix == "" {
		return true
	}
	return ptr == prefix || strings.HasPrefix(ptr, prefix+"/")
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
