package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/ptrtools/ptrerrors"
)

func TestSetMapMember(t *testing.T) {
	t.Run("replace existing", func(t *testing.T) {
		doc := map[string]any{"a": 1}
		updated, err := Set(doc, "/a", 2)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": 2}, updated)
	})

	t.Run("create new", func(t *testing.T) {
		doc := map[string]any{"a": 1}
		updated, err := Set(doc, "/b", 2)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": 1, "b": 2}, updated)
	})

	t.Run("nested create", func(t *testing.T) {
		doc := map[string]any{"a": map[string]any{"b": 1}}
		updated, err := Set(doc, "/a/c", 3)
		require.NoError(t, err)

		got, err := Get(updated, "/a/c")
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})

	t.Run("replace with different type", func(t *testing.T) {
		doc := map[string]any{"a": 1}
		updated, err := Set(doc, "/a", []any{"now", "a", "list"})
		require.NoError(t, err)

		got, err := Get(updated, "/a/1")
		require.NoError(t, err)
		assert.Equal(t, "a", got)
	})

	t.Run("escaped member name", func(t *testing.T) {
		doc := map[string]any{}
		updated, err := Set(doc, "/a~1b", "slash")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a/b": "slash"}, updated)
	})
}

func TestSetSliceElement(t *testing.T) {
	t.Run("replace by index", func(t *testing.T) {
		doc := []any{1, 2, 3}
		updated, err := Set(doc, "/1", 9)
		require.NoError(t, err)
		assert.Equal(t, []any{1, 9, 3}, updated)
	})

	t.Run("append with dash", func(t *testing.T) {
		doc := []any{1, 2, 3}
		updated, err := Set(doc, "/-", 9)
		require.NoError(t, err)
		assert.Equal(t, []any{1, 2, 3, 9}, updated)
	})

	t.Run("append into empty", func(t *testing.T) {
		doc := []any{}
		updated, err := Set(doc, "/-", "first")
		require.NoError(t, err)
		assert.Equal(t, []any{"first"}, updated)
	})
}

// TestSetNestedAppend: appending through a parent mapping rebinds the grown
// slice into the parent, so the change is visible from the root.
func TestSetNestedAppend(t *testing.T) {
	doc := map[string]any{"a": []any{1}}

	updated, err := Set(doc, "/a/-", 2)
	require.NoError(t, err)

	got, err := Get(updated, "/a")
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, got)

	got, err = Get(updated, "/a/1")
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestSetRoot(t *testing.T) {
	doc := map[string]any{"old": true}

	updated, err := Set(doc, "", 42)
	require.NoError(t, err)
	assert.Equal(t, 42, updated)

	updated, err = Pointer{}.Set(doc, "replacement")
	require.NoError(t, err)
	assert.Equal(t, "replacement", updated)
}

func TestSetErrors(t *testing.T) {
	t.Run("missing intermediate member", func(t *testing.T) {
		doc := map[string]any{"a": 1}
		_, err := Set(doc, "/missing/b", 2)
		require.Error(t, err)

		var nfErr *ptrerrors.NotFoundError
		require.ErrorAs(t, err, &nfErr)
		assert.Equal(t, "missing", nfErr.Token)
		assert.Equal(t, 0, nfErr.TokenIndex)
	})

	t.Run("index out of bounds", func(t *testing.T) {
		doc := []any{1}
		_, err := Set(doc, "/5", 9)
		require.Error(t, err)

		var oobErr *ptrerrors.OutOfBoundsError
		require.ErrorAs(t, err, &oobErr)
		assert.Equal(t, 5, oobErr.Index)
		assert.Equal(t, 1, oobErr.Length)
	})

	t.Run("invalid index token", func(t *testing.T) {
		doc := []any{1}
		_, err := Set(doc, "/x", 9)
		assert.ErrorIs(t, err, ptrerrors.ErrInvalidPointer)
	})

	t.Run("descend past append position", func(t *testing.T) {
		doc := map[string]any{"a": []any{1}}
		_, err := Set(doc, "/a/-/b", 9)
		require.Error(t, err)

		var nfErr *ptrerrors.NotFoundError
		require.ErrorAs(t, err, &nfErr)
		assert.Equal(t, "b", nfErr.Token)
		assert.Equal(t, 2, nfErr.TokenIndex)
	})

	t.Run("scalar container", func(t *testing.T) {
		doc := map[string]any{"a": 1}
		_, err := Set(doc, "/a/b", 9)
		assert.ErrorIs(t, err, ptrerrors.ErrNotFound)
	})

	t.Run("parse error", func(t *testing.T) {
		_, err := Set(map[string]any{}, "no-slash", 1)
		assert.ErrorIs(t, err, ptrerrors.ErrInvalidPointer)
	})
}

// TestSetThenResolve: after a successful Set, resolving the same pointer
// against the returned root yields the stored value.
func TestSetThenResolve(t *testing.T) {
	doc := map[string]any{
		"a": map[string]any{"b": []any{1, 2, 3}},
	}

	pointers := []string{"/a/b/0", "/a/b/-", "/a/c", "/new"}
	for _, ptr := range pointers {
		t.Run(ptr, func(t *testing.T) {
			updated, err := Set(doc, ptr, "stored")
			require.NoError(t, err)

			p := MustParse(ptr)
			lookup := p
			if last := p.Tokens(); len(last) > 0 && last[len(last)-1] == "-" {
				// An append lands at the old length, not at "-".
				lookup = p.Parent().Child("3")
			}
			got, err := lookup.Resolve(updated)
			require.NoError(t, err)
			assert.Equal(t, "stored", got)
		})
	}
}

func TestRemoveMapKey(t *testing.T) {
	doc := map[string]any{"a": 1, "b": 2}

	updated, err := Remove(doc, "/a")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"b": 2}, updated)

	_, err = Get(updated, "/a")
	assert.ErrorIs(t, err, ptrerrors.ErrNotFound)
}

func TestRemoveMissingKey(t *testing.T) {
	doc := map[string]any{"a": 1}

	_, err := Remove(doc, "/missing")
	require.Error(t, err)

	var nfErr *ptrerrors.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "missing", nfErr.Token)
	assert.Equal(t, 0, nfErr.TokenIndex)
	assert.ErrorIs(t, err, ptrerrors.ErrNotFound)
	assert.ErrorIs(t, err, ptrerrors.ErrPointer)
}

func TestRemoveSliceElement(t *testing.T) {
	t.Run("middle element shifts remainder left", func(t *testing.T) {
		doc := []any{1, 2, 3}
		updated, err := Remove(doc, "/1")
		require.NoError(t, err)
		assert.Equal(t, []any{1, 3}, updated)
	})

	t.Run("first element", func(t *testing.T) {
		doc := []any{"a", "b"}
		updated, err := Remove(doc, "/0")
		require.NoError(t, err)
		assert.Equal(t, []any{"b"}, updated)
	})

	t.Run("last element", func(t *testing.T) {
		doc := []any{"only"}
		updated, err := Remove(doc, "/0")
		require.NoError(t, err)
		assert.Equal(t, []any{}, updated)
	})

	t.Run("out of bounds", func(t *testing.T) {
		doc := []any{1, 2}
		_, err := Remove(doc, "/2")
		require.Error(t, err)

		var oobErr *ptrerrors.OutOfBoundsError
		require.ErrorAs(t, err, &oobErr)
		assert.Equal(t, 2, oobErr.Index)
		assert.Equal(t, 2, oobErr.Length)
	})
}

// TestRemoveNestedSliceElement: removing through a parent mapping rebinds
// the shrunken slice, so the removal is visible from the root.
func TestRemoveNestedSliceElement(t *testing.T) {
	doc := map[string]any{"a": []any{1, 2, 3}}

	updated, err := Remove(doc, "/a/0")
	require.NoError(t, err)

	got, err := Get(updated, "/a")
	require.NoError(t, err)
	assert.Equal(t, []any{2, 3}, got)
}

func TestRemoveEndOfList(t *testing.T) {
	doc := []any{1, 2, 3}

	_, err := Remove(doc, "/-")
	require.Error(t, err)

	var oobErr *ptrerrors.OutOfBoundsError
	require.ErrorAs(t, err, &oobErr)
	assert.Equal(t, "-", oobErr.Token)
	assert.Equal(t, 3, oobErr.Length)
	assert.ErrorIs(t, err, ptrerrors.ErrOutOfBounds)
	assert.Equal(t,
		`index out of bounds "/-": index - outside [0, 3): no element at the append position`,
		err.Error())
}

func TestRemoveRoot(t *testing.T) {
	doc := map[string]any{"a": 1}

	_, err := Remove(doc, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ptrerrors.ErrInvalidPointer)
	assert.Equal(t, "invalid pointer: cannot remove the whole document", err.Error())
}

func TestRemoveErrors(t *testing.T) {
	t.Run("missing intermediate member", func(t *testing.T) {
		doc := map[string]any{"a": 1}
		_, err := Remove(doc, "/missing/b")
		assert.ErrorIs(t, err, ptrerrors.ErrNotFound)
	})

	t.Run("scalar container", func(t *testing.T) {
		doc := map[string]any{"a": 1}
		_, err := Remove(doc, "/a/b")
		assert.ErrorIs(t, err, ptrerrors.ErrNotFound)
	})

	t.Run("invalid index token", func(t *testing.T) {
		doc := []any{1}
		_, err := Remove(doc, "/nope")
		assert.ErrorIs(t, err, ptrerrors.ErrInvalidPointer)
	})

	t.Run("parse error", func(t *testing.T) {
		_, err := Remove(map[string]any{}, "no-slash")
		assert.ErrorIs(t, err, ptrerrors.ErrInvalidPointer)
	})
}

func TestRemoveAnyKeyedMapping(t *testing.T) {
	doc := map[any]any{"a": 1, "b": 2}

	updated, err := Remove(doc, "/a")
	require.NoError(t, err)

	_, err = Get(updated, "/a")
	assert.ErrorIs(t, err, ptrerrors.ErrNotFound)

	got, err := Get(updated, "/b")
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

// TestPointerReuse: the same parsed pointer serves reads and writes without
// accumulating state between calls.
func TestPointerReuse(t *testing.T) {
	p := MustParse("/items/0")
	doc := map[string]any{"items": []any{"a", "b"}}

	got, err := p.Resolve(doc)
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	updated, err := p.Set(doc, "replaced")
	require.NoError(t, err)

	got, err = p.Resolve(updated)
	require.NoError(t, err)
	assert.Equal(t, "replaced", got)

	updated2, err := p.Remove(updated)
	require.NoError(t, err)

	got, err = p.Resolve(updated2)
	require.NoError(t, err)
	assert.Equal(t, "b", got, "removal shifted the next element into index 0")
}
