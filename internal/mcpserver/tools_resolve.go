package mcpserver

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/ptrtools/internal/suggest"
	"github.com/erraggy/ptrtools/pointer"
)

type resolveInput struct {
	Doc     documentInput `json:"doc"     jsonschema:"The document to resolve against"`
	Pointer string        `json:"pointer" jsonschema:"RFC 6901 JSON Pointer (empty string addresses the whole document)"`
}

type resolveOutput struct {
	Pointer     string   `json:"pointer"`
	Found       bool     `json:"found"`
	Kind        string   `json:"kind,omitempty"`
	Value       string   `json:"value,omitempty"`
	ErrorKind   string   `json:"error_kind,omitempty"`
	Error       string   `json:"error,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func handleResolve(ctx context.Context, _ *mcp.CallToolRequest, input resolveInput) (*mcp.CallToolResult, resolveOutput, error) {
	doc, err := input.Doc.resolve(ctx)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	p, err := pointer.Parse(input.Pointer)
	if err != nil {
		return nil, resolveOutput{
			Pointer:   input.Pointer,
			ErrorKind: errorKind(err),
			Error:     sanitizeError(err),
		}, nil
	}

	value, err := p.Resolve(doc.Root)
	if err != nil {
		return nil, resolveOutput{
			Pointer:     p.String(),
			ErrorKind:   errorKind(err),
			Error:       sanitizeError(err),
			Suggestions: suggest.NearKeys(doc.Root, err),
		}, nil
	}

	output := resolveOutput{
		Pointer: p.String(),
		Found:   true,
		Kind:    valueKind(value),
	}

	// The end-of-list marker has no JSON rendering; report its token.
	if pointer.IsEndOfList(value) {
		output.Value = "-"
		return nil, output, nil
	}

	rendered, err := jsoniter.MarshalIndent(value, "", "  ")
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}
	output.Value = string(rendered)
	return nil, output, nil
}
