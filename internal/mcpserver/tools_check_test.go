package mcpserver

import (
	"context"
	"fmt"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCheck_AllPass(t *testing.T) {
	docCache.reset()
	result, output, err := handleCheck(context.Background(), nil, checkInput{
		Doc:      documentInput{Content: resolveTestDoc},
		Pointers: []string{"", "/name", "/tags/0", "/resources/cpu"},
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, 4, output.Passed)
	assert.Zero(t, output.Failed)
	require.Len(t, output.Results, 4)

	assert.Equal(t, checkResult{Pointer: "", Ok: true, Kind: "mapping"}, output.Results[0])
	assert.Equal(t, checkResult{Pointer: "/name", Ok: true, Kind: "string"}, output.Results[1])
	assert.Equal(t, checkResult{Pointer: "/tags/0", Ok: true, Kind: "string"}, output.Results[2])
	assert.Equal(t, checkResult{Pointer: "/resources/cpu", Ok: true, Kind: "string"}, output.Results[3])
}

func TestHandleCheck_MixedResults(t *testing.T) {
	docCache.reset()
	result, output, err := handleCheck(context.Background(), nil, checkInput{
		Doc:      documentInput{Content: resolveTestDoc},
		Pointers: []string{"/name", "/nam", "/tags/9", "bad"},
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, 1, output.Passed)
	assert.Equal(t, 3, output.Failed)
	require.Len(t, output.Results, 4)

	assert.True(t, output.Results[0].Ok)

	notFound := output.Results[1]
	assert.False(t, notFound.Ok)
	assert.Equal(t, "not_found", notFound.ErrorKind)
	assert.Contains(t, notFound.Suggestions, "name")

	bounds := output.Results[2]
	assert.False(t, bounds.Ok)
	assert.Equal(t, "out_of_bounds", bounds.ErrorKind)

	invalid := output.Results[3]
	assert.False(t, invalid.Ok)
	assert.Equal(t, "invalid_pointer", invalid.ErrorKind)
	assert.Contains(t, invalid.Error, "invalid pointer")
}

func TestHandleCheck_ResultsKeepInputOrder(t *testing.T) {
	docCache.reset()
	pointers := []string{"/tags/1", "/replicas", "/name"}
	result, output, err := handleCheck(context.Background(), nil, checkInput{
		Doc:      documentInput{Content: resolveTestDoc},
		Pointers: pointers,
	})
	require.NoError(t, err)
	require.Nil(t, result)
	for i, ptr := range pointers {
		assert.Equal(t, ptr, output.Results[i].Pointer)
	}
}

func TestHandleCheck_NoPointers(t *testing.T) {
	result, _, err := handleCheck(context.Background(), nil, checkInput{
		Doc: documentInput{Content: resolveTestDoc},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "at least one pointer must be provided")
}

func TestHandleCheck_TooManyPointers(t *testing.T) {
	docCache.reset()
	pointers := make([]string, cfg.MaxPointers+1)
	for i := range pointers {
		pointers[i] = fmt.Sprintf("/p%d", i)
	}
	result, _, err := handleCheck(context.Background(), nil, checkInput{
		Doc:      documentInput{Content: resolveTestDoc},
		Pointers: pointers,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "too many pointers")
	assert.Contains(t, text.Text, "PTRTOOLS_MCP_MAX_POINTERS")
}

func TestHandleCheck_NoDocumentSource(t *testing.T) {
	result, _, err := handleCheck(context.Background(), nil, checkInput{
		Pointers: []string{"/a"},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
