package mcpserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/ptrtools/internal/testutil"
)

const resolveTestDoc = `{
  "name": "orders",
  "replicas": 3,
  "tags": ["billing", "payments"],
  "resources": {"cpu": "500m", "memory": "128Mi"}
}`

func TestHandleResolve_ScalarMember(t *testing.T) {
	docCache.reset()
	result, output, err := handleResolve(context.Background(), nil, resolveInput{
		Doc:     documentInput{Content: resolveTestDoc},
		Pointer: "/name",
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.True(t, output.Found)
	assert.Equal(t, "/name", output.Pointer)
	assert.Equal(t, "string", output.Kind)
	assert.Equal(t, `"orders"`, output.Value)
	assert.Empty(t, output.ErrorKind)
}

func TestHandleResolve_Root(t *testing.T) {
	docCache.reset()
	result, output, err := handleResolve(context.Background(), nil, resolveInput{
		Doc:     documentInput{Content: resolveTestDoc},
		Pointer: "",
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.True(t, output.Found)
	assert.Equal(t, "", output.Pointer)
	assert.Equal(t, "mapping", output.Kind)
	assert.Contains(t, output.Value, `"name"`)
	assert.Contains(t, output.Value, `"orders"`)
}

func TestHandleResolve_Number(t *testing.T) {
	docCache.reset()
	result, output, err := handleResolve(context.Background(), nil, resolveInput{
		Doc:     documentInput{Content: resolveTestDoc},
		Pointer: "/replicas",
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.True(t, output.Found)
	assert.Equal(t, "number", output.Kind)
	assert.Equal(t, "3", output.Value)
}

func TestHandleResolve_SequenceElement(t *testing.T) {
	docCache.reset()
	result, output, err := handleResolve(context.Background(), nil, resolveInput{
		Doc:     documentInput{Content: resolveTestDoc},
		Pointer: "/tags/1",
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.True(t, output.Found)
	assert.Equal(t, "string", output.Kind)
	assert.Equal(t, `"payments"`, output.Value)
}

func TestHandleResolve_EndOfList(t *testing.T) {
	docCache.reset()
	result, output, err := handleResolve(context.Background(), nil, resolveInput{
		Doc:     documentInput{Content: resolveTestDoc},
		Pointer: "/tags/-",
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.True(t, output.Found)
	assert.Equal(t, "end_of_list", output.Kind)
	assert.Equal(t, "-", output.Value)
}

func TestHandleResolve_NotFoundWithSuggestions(t *testing.T) {
	docCache.reset()
	result, output, err := handleResolve(context.Background(), nil, resolveInput{
		Doc:     documentInput{Content: resolveTestDoc},
		Pointer: "/nam",
	})
	require.NoError(t, err)
	require.Nil(t, result, "resolution failures are structured output, not tool errors")
	assert.False(t, output.Found)
	assert.Equal(t, "not_found", output.ErrorKind)
	assert.Contains(t, output.Error, "path not found")
	assert.Contains(t, output.Suggestions, "name")
}

func TestHandleResolve_OutOfBounds(t *testing.T) {
	docCache.reset()
	result, output, err := handleResolve(context.Background(), nil, resolveInput{
		Doc:     documentInput{Content: resolveTestDoc},
		Pointer: "/tags/9",
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.False(t, output.Found)
	assert.Equal(t, "out_of_bounds", output.ErrorKind)
	assert.Empty(t, output.Suggestions)
}

func TestHandleResolve_InvalidPointer(t *testing.T) {
	docCache.reset()
	result, output, err := handleResolve(context.Background(), nil, resolveInput{
		Doc:     documentInput{Content: resolveTestDoc},
		Pointer: "name",
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.False(t, output.Found)
	assert.Equal(t, "name", output.Pointer)
	assert.Equal(t, "invalid_pointer", output.ErrorKind)
	assert.Contains(t, output.Error, "invalid pointer")
}

func TestHandleResolve_EscapedTokens(t *testing.T) {
	docCache.reset()
	result, output, err := handleResolve(context.Background(), nil, resolveInput{
		Doc:     documentInput{Content: `{"a/b": {"c~d": "escaped"}}`},
		Pointer: "/a~1b/c~0d",
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.True(t, output.Found)
	assert.Equal(t, "/a~1b/c~0d", output.Pointer)
	assert.Equal(t, `"escaped"`, output.Value)
}

func TestHandleResolve_YAMLFile(t *testing.T) {
	docCache.reset()
	path := testutil.WriteTempYAML(t, testutil.NewServiceDocument())
	result, output, err := handleResolve(context.Background(), nil, resolveInput{
		Doc:     documentInput{File: path},
		Pointer: "/service/name",
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.True(t, output.Found)
	assert.Equal(t, "string", output.Kind)
}

func TestHandleResolve_NoDocumentSource(t *testing.T) {
	result, _, err := handleResolve(context.Background(), nil, resolveInput{
		Pointer: "/name",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleResolve_InvalidDocument(t *testing.T) {
	docCache.reset()
	result, _, err := handleResolve(context.Background(), nil, resolveInput{
		Doc:     documentInput{Content: `{"broken":`},
		Pointer: "/name",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
