package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/ptrtools/pointer"
)

type removeInput struct {
	Doc     documentInput `json:"doc"     jsonschema:"The document to modify"`
	Pointer string        `json:"pointer" jsonschema:"RFC 6901 JSON Pointer naming the value to remove"`
}

type removeOutput struct {
	Pointer  string `json:"pointer"`
	Format   string `json:"format"`
	Document string `json:"document"`
}

func handleRemove(ctx context.Context, _ *mcp.CallToolRequest, input removeInput) (*mcp.CallToolResult, removeOutput, error) {
	doc, err := input.Doc.resolve(ctx)
	if err != nil {
		return errResult(err), removeOutput{}, nil
	}

	p, err := pointer.Parse(input.Pointer)
	if err != nil {
		return errResult(err), removeOutput{}, nil
	}

	// The cached tree is shared across calls; mutate a copy only.
	cp := doc.Copy()
	if err := cp.Remove(p.String()); err != nil {
		return errResult(err), removeOutput{}, nil
	}

	rendered, err := cp.Marshal()
	if err != nil {
		return errResult(err), removeOutput{}, nil
	}

	return nil, removeOutput{
		Pointer:  p.String(),
		Format:   string(cp.SourceFormat),
		Document: string(rendered),
	}, nil
}
