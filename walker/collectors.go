package walker

// Pointers returns the JSON Pointer of every node in the document, in
// walk order. The root contributes the empty string.
func Pointers(root any) ([]string, error) {
	var ptrs []string
	err := Walk(root, WithNodeHandler(func(wc *WalkContext, _ any) Action {
		ptrs = append(ptrs, wc.Pointer)
		return Continue
	}))
	if err != nil {
		return nil, err
	}
	return ptrs, nil
}

// Leaves returns every scalar value in the document keyed by its JSON
// Pointer.
func Leaves(root any) (map[string]any, error) {
	leaves := make(map[string]any)
	err := Walk(root, WithScalarHandler(func(wc *WalkContext, value any) Action {
		leaves[wc.Pointer] = value
		return Continue
	}))
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

// RefInfo records one $ref member found in a document.
type RefInfo struct {
	// Source is the JSON Pointer of the $ref member itself.
	Source string

	// Target is the reference value, typically a URI fragment.
	Target string
}

// Refs returns every mapping member named "$ref" with a string value, in
// walk order.
func Refs(root any) ([]RefInfo, error) {
	var refs []RefInfo
	err := Walk(root, WithMappingHandler(func(wc *WalkContext, m map[string]any) Action {
		if ref, ok := m["$ref"].(string); ok {
			// "$ref" contains no characters that need escaping.
			refs = append(refs, RefInfo{Source: wc.Pointer + "/$ref", Target: ref})
		}
		return Continue
	}))
	if err != nil {
		return nil, err
	}
	return refs, nil
}
