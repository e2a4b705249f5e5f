package mcpserver

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/ptrtools/internal/maputil"
	"github.com/erraggy/ptrtools/pointer"
	"github.com/erraggy/ptrtools/walker"
)

type listInput struct {
	Doc        documentInput `json:"doc"                   jsonschema:"The document to enumerate"`
	Prefix     string        `json:"prefix,omitempty"      jsonschema:"Only list pointers at or under this pointer"`
	LeavesOnly bool          `json:"leaves_only,omitempty" jsonschema:"Return only scalar leaves with their values"`
	Refs       bool          `json:"refs,omitempty"        jsonschema:"Return $ref members (source pointer and target) instead of plain pointers"`
	Limit      int           `json:"limit,omitempty"       jsonschema:"Maximum entries to return (capped by PTRTOOLS_MCP_MAX_POINTERS)"`
}

type leafEntry struct {
	Pointer string `json:"pointer"`
	Value   string `json:"value"`
}

type refEntry struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

type listOutput struct {
	Total     int         `json:"total"`
	Returned  int         `json:"returned"`
	Truncated bool        `json:"truncated,omitempty"`
	Pointers  []string    `json:"pointers,omitempty"`
	Leaves    []leafEntry `json:"leaves,omitempty"`
	Refs      []refEntry  `json:"refs,omitempty"`
}

func handleList(ctx context.Context, _ *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, listOutput, error) {
	if input.LeavesOnly && input.Refs {
		return errResult(fmt.Errorf("cannot use both leaves_only and refs")), listOutput{}, nil
	}

	prefix := input.Prefix
	if prefix != "" {
		p, err := pointer.Parse(prefix)
		if err != nil {
			return errResult(err), listOutput{}, nil
		}
		prefix = p.String()
	}

	doc, err := input.Doc.resolve(ctx)
	if err != nil {
		return errResult(err), listOutput{}, nil
	}

	limit := listLimit(input.Limit)

	var output listOutput
	switch {
	case input.Refs:
		refs, err := walker.Refs(doc.Root)
		if err != nil {
			return errResult(err), listOutput{}, nil
		}
		matched := makeSlice[refEntry](len(refs))
		for _, r := range refs {
			if matchesPrefix(r.Source, prefix) {
				matched = append(matched, refEntry{Source: r.Source, Target: r.Target})
			}
		}
		output.Total = len(matched)
		if len(matched) > limit {
			matched = matched[:limit]
		}
		output.Refs = matched
		output.Returned = len(matched)

	case input.LeavesOnly:
		leaves, err := walker.Leaves(doc.Root)
		if err != nil {
			return errResult(err), listOutput{}, nil
		}
		matched := makeSlice[leafEntry](len(leaves))
		for _, ptr := range maputil.SortedKeys(leaves) {
			if !matchesPrefix(ptr, prefix) {
				continue
			}
			rendered, err := jsoniter.MarshalToString(leaves[ptr])
			if err != nil {
				return errResult(err), listOutput{}, nil
			}
			matched = append(matched, leafEntry{Pointer: ptr, Value: rendered})
		}
		output.Total = len(matched)
		if len(matched) > limit {
			matched = matched[:limit]
		}
		output.Leaves = matched
		output.Returned = len(matched)

	default:
		ptrs, err := walker.Pointers(doc.Root)
		if err != nil {
			return errResult(err), listOutput{}, nil
		}
		matched := makeSlice[string](len(ptrs))
		for _, ptr := range ptrs {
			if matchesPrefix(ptr, prefix) {
				matched = append(matched, ptr)
			}
		}
		output.Total = len(matched)
		if len(matched) > limit {
			matched = matched[:limit]
		}
		output.Pointers = matched
		output.Returned = len(matched)
	}

	output.Truncated = output.Returned < output.Total
	return nil, output, nil
}
