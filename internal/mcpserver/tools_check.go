package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/ptrtools/internal/suggest"
	"github.com/erraggy/ptrtools/pointer"
)

type checkInput struct {
	Doc      documentInput `json:"doc"      jsonschema:"The document to check against"`
	Pointers []string      `json:"pointers" jsonschema:"JSON Pointers to verify (RFC 6901)"`
}

type checkResult struct {
	Pointer     string   `json:"pointer"`
	Ok          bool     `json:"ok"`
	Kind        string   `json:"kind,omitempty"`
	ErrorKind   string   `json:"error_kind,omitempty"`
	Error       string   `json:"error,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type checkOutput struct {
	Passed  int           `json:"passed"`
	Failed  int           `json:"failed"`
	Results []checkResult `json:"results"`
}

func handleCheck(ctx context.Context, _ *mcp.CallToolRequest, input checkInput) (*mcp.CallToolResult, checkOutput, error) {
	if len(input.Pointers) == 0 {
		return errResult(fmt.Errorf("at least one pointer must be provided")), checkOutput{}, nil
	}
	if len(input.Pointers) > cfg.MaxPointers {
		return errResult(fmt.Errorf("too many pointers: %d exceeds the limit of %d (set PTRTOOLS_MCP_MAX_POINTERS to increase)",
			len(input.Pointers), cfg.MaxPointers)), checkOutput{}, nil
	}

	doc, err := input.Doc.resolve(ctx)
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}

	output := checkOutput{Results: make([]checkResult, 0, len(input.Pointers))}
	for _, ptr := range input.Pointers {
		value, err := pointer.Get(doc.Root, ptr)
		if err != nil {
			output.Failed++
			output.Results = append(output.Results, checkResult{
				Pointer:     ptr,
				ErrorKind:   errorKind(err),
				Error:       sanitizeError(err),
				Suggestions: suggest.NearKeys(doc.Root, err),
			})
			continue
		}
		output.Passed++
		output.Results = append(output.Results, checkResult{
			Pointer: ptr,
			Ok:      true,
			Kind:    valueKind(value),
		})
	}
	return nil, output, nil
}
