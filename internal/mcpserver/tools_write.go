package mcpserver

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/ptrtools/pointer"
)

type writeInput struct {
	Doc     documentInput `json:"doc"           jsonschema:"The document to modify"`
	Pointer string        `json:"pointer"       jsonschema:"RFC 6901 JSON Pointer naming the write target ('-' as the final token appends to a sequence)"`
	Value   string        `json:"value"         jsonschema:"JSON-encoded value to write"`
	Raw     bool          `json:"raw,omitempty" jsonschema:"Treat value as a literal string instead of JSON"`
}

type writeOutput struct {
	Pointer  string `json:"pointer"`
	Format   string `json:"format"`
	Document string `json:"document"`
}

func handleWrite(ctx context.Context, _ *mcp.CallToolRequest, input writeInput) (*mcp.CallToolResult, writeOutput, error) {
	doc, err := input.Doc.resolve(ctx)
	if err != nil {
		return errResult(err), writeOutput{}, nil
	}

	p, err := pointer.Parse(input.Pointer)
	if err != nil {
		return errResult(err), writeOutput{}, nil
	}

	var value any
	if input.Raw {
		value = input.Value
	} else if err := jsoniter.UnmarshalFromString(input.Value, &value); err != nil {
		return errResult(fmt.Errorf("invalid value JSON: %w (use raw=true to write a literal string)", err)), writeOutput{}, nil
	}

	// The cached tree is shared across calls; mutate a copy only.
	cp := doc.Copy()
	if err := cp.Set(p.String(), value); err != nil {
		return errResult(err), writeOutput{}, nil
	}

	rendered, err := cp.Marshal()
	if err != nil {
		return errResult(err), writeOutput{}, nil
	}

	return nil, writeOutput{
		Pointer:  p.String(),
		Format:   string(cp.SourceFormat),
		Document: string(rendered),
	}, nil
}
