package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listTestDoc = `{
  "a": 1,
  "b": {"c": 2, "d": [true, null]},
  "e": "leaf"
}`

func TestHandleList_AllPointers(t *testing.T) {
	docCache.reset()
	result, output, err := handleList(context.Background(), nil, listInput{
		Doc: documentInput{Content: listTestDoc},
	})
	require.NoError(t, err)
	require.Nil(t, result)
	want := []string{"", "/a", "/b", "/b/c", "/b/d", "/b/d/0", "/b/d/1", "/e"}
	assert.Equal(t, want, output.Pointers)
	assert.Equal(t, len(want), output.Total)
	assert.Equal(t, len(want), output.Returned)
	assert.False(t, output.Truncated)
}

func TestHandleList_Prefix(t *testing.T) {
	docCache.reset()
	result, output, err := handleList(context.Background(), nil, listInput{
		Doc:    documentInput{Content: listTestDoc},
		Prefix: "/b",
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, []string{"/b", "/b/c", "/b/d", "/b/d/0", "/b/d/1"}, output.Pointers)
	assert.Equal(t, 5, output.Total)
}

func TestHandleList_PrefixNoMatches(t *testing.T) {
	docCache.reset()
	result, output, err := handleList(context.Background(), nil, listInput{
		Doc:    documentInput{Content: listTestDoc},
		Prefix: "/zzz",
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Zero(t, output.Total)
	assert.Zero(t, output.Returned)
	assert.Empty(t, output.Pointers)
}

func TestHandleList_InvalidPrefix(t *testing.T) {
	docCache.reset()
	result, _, err := handleList(context.Background(), nil, listInput{
		Doc:    documentInput{Content: listTestDoc},
		Prefix: "no-slash",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleList_Limit(t *testing.T) {
	docCache.reset()
	result, output, err := handleList(context.Background(), nil, listInput{
		Doc:   documentInput{Content: listTestDoc},
		Limit: 3,
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, 8, output.Total)
	assert.Equal(t, 3, output.Returned)
	assert.True(t, output.Truncated)
	assert.Equal(t, []string{"", "/a", "/b"}, output.Pointers)
}

func TestHandleList_LeavesOnly(t *testing.T) {
	docCache.reset()
	result, output, err := handleList(context.Background(), nil, listInput{
		Doc:        documentInput{Content: listTestDoc},
		LeavesOnly: true,
	})
	require.NoError(t, err)
	require.Nil(t, result)
	require.Len(t, output.Leaves, 5)
	assert.Empty(t, output.Pointers)

	// Leaves come back sorted by pointer.
	assert.Equal(t, leafEntry{Pointer: "/a", Value: "1"}, output.Leaves[0])
	assert.Equal(t, leafEntry{Pointer: "/b/c", Value: "2"}, output.Leaves[1])
	assert.Equal(t, leafEntry{Pointer: "/b/d/0", Value: "true"}, output.Leaves[2])
	assert.Equal(t, leafEntry{Pointer: "/b/d/1", Value: "null"}, output.Leaves[3])
	assert.Equal(t, leafEntry{Pointer: "/e", Value: `"leaf"`}, output.Leaves[4])
}

func TestHandleList_LeavesWithPrefix(t *testing.T) {
	docCache.reset()
	result, output, err := handleList(context.Background(), nil, listInput{
		Doc:        documentInput{Content: listTestDoc},
		LeavesOnly: true,
		Prefix:     "/b",
	})
	require.NoError(t, err)
	require.Nil(t, result)
	require.Len(t, output.Leaves, 3)
	assert.Equal(t, "/b/c", output.Leaves[0].Pointer)
}

func TestHandleList_Refs(t *testing.T) {
	docCache.reset()
	content := `{
  "pet": {"$ref": "#/defs/Pet"},
  "defs": {"Pet": {"owner": {"$ref": "#/defs/Owner"}}}
}`
	result, output, err := handleList(context.Background(), nil, listInput{
		Doc:  documentInput{Content: content},
		Refs: true,
	})
	require.NoError(t, err)
	require.Nil(t, result)
	require.Len(t, output.Refs, 2)
	assert.Contains(t, output.Refs, refEntry{Source: "/pet/$ref", Target: "#/defs/Pet"})
	assert.Contains(t, output.Refs, refEntry{Source: "/defs/Pet/owner/$ref", Target: "#/defs/Owner"})
}

func TestHandleList_RefsWithPrefix(t *testing.T) {
	docCache.reset()
	content := `{
  "pet": {"$ref": "#/defs/Pet"},
  "defs": {"Pet": {"owner": {"$ref": "#/defs/Owner"}}}
}`
	result, output, err := handleList(context.Background(), nil, listInput{
		Doc:    documentInput{Content: content},
		Refs:   true,
		Prefix: "/defs",
	})
	require.NoError(t, err)
	require.Nil(t, result)
	require.Len(t, output.Refs, 1)
	assert.Equal(t, "/defs/Pet/owner/$ref", output.Refs[0].Source)
}

func TestHandleList_LeavesAndRefsConflict(t *testing.T) {
	result, _, err := handleList(context.Background(), nil, listInput{
		Doc:        documentInput{Content: listTestDoc},
		LeavesOnly: true,
		Refs:       true,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "cannot use both leaves_only and refs")
}

func TestHandleList_NoDocumentSource(t *testing.T) {
	result, _, err := handleList(context.Background(), nil, listInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
