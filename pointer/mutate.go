package pointer

import (
	"github.com/erraggy/ptrtools/ptrerrors"
)

// Set walks all tokens but the last under Resolve rules, then assigns
// value at the final token's position:
//
//   - mapping: the member is created or replaced
//   - sequence, index token: the in-range element is replaced
//   - sequence, "-" token: value is appended
//
// Set returns the updated document root. Mapping-rooted documents are
// mutated in place and returned unchanged; a sequence at the root that had
// to grow comes back as a new slice, so callers must keep using the
// returned value. The root pointer replaces the whole document: Set
// returns value itself.
//
// Prefix traversal failures carry the same taxonomy as Resolve.
func (p Pointer) Set(doc, value any) (any, error) {
	return p.assign(doc, value, 0)
}

// Remove walks all tokens but the last under Resolve rules, then deletes
// the final member (mapping) or splices out the final element (sequence).
// Like Set it returns the updated document root.
//
// Removing a member that does not exist fails with the Resolve taxonomy.
// The "-" token addresses the position past the end, which never holds an
// element, so removing it fails out of bounds. The root pointer has no
// containing collection to remove from and fails as invalid.
func (p Pointer) Remove(doc any) (any, error) {
	if len(p.tokens) == 0 {
		return nil, &ptrerrors.InvalidPointerError{
			TokenIndex: -1,
			Message:    "cannot remove the whole document",
		}
	}
	return p.discard(doc, 0)
}

// Set parses ptr and assigns value in one call, returning the updated root.
func Set(doc any, ptr string, value any) (any, error) {
	p, err := Parse(ptr)
	if err != nil {
		return nil, err
	}
	return p.Set(doc, value)
}

// Remove parses ptr and deletes its target in one call, returning the
// updated root.
func Remove(doc any, ptr string) (any, error) {
	p, err := Parse(ptr)
	if err != nil {
		return nil, err
	}
	return p.Remove(doc)
}

// assign recursively descends to the write position and returns the
// (possibly replaced) node so parents can rebind children whose slice
// headers changed.
func (p Pointer) assign(cur, value any, pos int) (any, error) {
	if pos == len(p.tokens) {
		return value, nil
	}
	tok := p.tokens[pos]
	terminal := pos == len(p.tokens)-1

	switch node := cur.(type) {
	case map[string]any:
		if terminal {
			node[tok] = value
			return node, nil
		}
		child, ok := node[tok]
		if !ok {
			return nil, p.notFoundError(tok, pos, "member does not exist")
		}
		updated, err := p.assign(child, value, pos+1)
		if err != nil {
			return nil, err
		}
		node[tok] = updated
		return node, nil
	case map[any]any:
		if terminal {
			node[tok] = value
			return node, nil
		}
		child, ok := node[tok]
		if !ok {
			return nil, p.notFoundError(tok, pos, "member does not exist")
		}
		updated, err := p.assign(child, value, pos+1)
		if err != nil {
			return nil, err
		}
		node[tok] = updated
		return node, nil
	case []any:
		if tok == "-" {
			if terminal {
				return append(node, value), nil
			}
			return nil, p.notFoundError(p.tokens[pos+1], pos+1, "cannot descend past the end of a sequence")
		}
		idx, err := p.parseIndex(tok, pos, len(node))
		if err != nil {
			return nil, err
		}
		if terminal {
			node[idx] = value
			return node, nil
		}
		updated, err := p.assign(node[idx], value, pos+1)
		if err != nil {
			return nil, err
		}
		node[idx] = updated
		return node, nil
	case EndOfList:
		return nil, p.notFoundError(tok, pos, "cannot descend past the end of a sequence")
	default:
		return nil, p.notFoundError(tok, pos, "cannot descend into scalar value")
	}
}

// discard mirrors assign for deletion.
func (p Pointer) discard(cur any, pos int) (any, error) {
	tok := p.tokens[pos]
	terminal := pos == len(p.tokens)-1

	switch node := cur.(type) {
	case map[string]any:
		child, ok := node[tok]
		if !ok {
			return nil, p.notFoundError(tok, pos, "member does not exist")
		}
		if terminal {
			delete(node, tok)
			return node, nil
		}
		updated, err := p.discard(child, pos+1)
		if err != nil {
			return nil, err
		}
		node[tok] = updated
		return node, nil
	case map[any]any:
		child, ok := node[tok]
		if !ok {
			return nil, p.notFoundError(tok, pos, "member does not exist")
		}
		if terminal {
			delete(node, tok)
			return node, nil
		}
		updated, err := p.discard(child, pos+1)
		if err != nil {
			return nil, err
		}
		node[tok] = updated
		return node, nil
	case []any:
		if tok == "-" {
			if terminal {
				return nil, &ptrerrors.OutOfBoundsError{
					Pointer:    p.String(),
					Token:      tok,
					TokenIndex: pos,
					Index:      len(node),
					Length:     len(node),
					Message:    "no element at the append position",
				}
			}
			return nil, p.notFoundError(p.tokens[pos+1], pos+1, "cannot descend past the end of a sequence")
		}
		idx, err := p.parseIndex(tok, pos, len(node))
		if err != nil {
			return nil, err
		}
		if terminal {
			return append(node[:idx], node[idx+1:]...), nil
		}
		updated, err := p.discard(node[idx], pos+1)
		if err != nil {
			return nil, err
		}
		node[idx] = updated
		return node, nil
	case EndOfList:
		return nil, p.notFoundError(tok, pos, "cannot descend past the end of a sequence")
	default:
		return nil, p.notFoundError(tok, pos, "cannot descend into scalar value")
	}
}
