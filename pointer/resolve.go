package pointer

import (
	"regexp"
	"strconv"

	"github.com/erraggy/ptrtools/ptrerrors"
)

// EndOfList is the value produced when the "-" token is applied to a
// sequence: it denotes the position immediately past the last element
// (the RFC 6901 append convention). Reading it is not an error; it is
// primarily useful as the target of an append-style Set. Documents decoded
// from JSON or YAML can never contain it, so it never equals a real
// element.
type EndOfList struct{}

// String renders the marker as its pointer token.
func (EndOfList) String() string {
	return "-"
}

// IsEndOfList reports whether a resolved value is the end-of-list marker.
func IsEndOfList(v any) bool {
	_, ok := v.(EndOfList)
	return ok
}

// Sequence index syntax per RFC 6901: no sign, no leading zeros.
var indexPattern = regexp.MustCompile(`^(0|[1-9][0-9]*)$`)

// Resolve walks the document token by token and returns the addressed
// value. The root pointer returns the document itself.
//
// Traversal failures are typed:
//   - missing mapping member, or descending through a scalar: *ptrerrors.NotFoundError
//   - malformed index token on a sequence: *ptrerrors.InvalidPointerError
//   - well-formed index outside [0, length): *ptrerrors.OutOfBoundsError
//
// The "-" token on a sequence resolves to the EndOfList marker.
// Resolving never mutates the document.
func (p Pointer) Resolve(doc any) (any, error) {
	cur := doc
	for i, tok := range p.tokens {
		next, err := p.step(cur, tok, i)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// ResolveWithDefault returns the addressed value, or def when resolution
// fails for any reason.
func (p Pointer) ResolveWithDefault(doc, def any) any {
	v, err := p.Resolve(doc)
	if err != nil {
		return def
	}
	return v
}

// ToLast resolves all tokens but the last and returns the containing value
// together with the decoded final token. For the root pointer it returns
// the document itself and an empty token; callers that need to tell the
// root apart from a pointer ending in an empty token should check IsRoot
// first.
func (p Pointer) ToLast(doc any) (parent any, last string, err error) {
	if len(p.tokens) == 0 {
		return doc, "", nil
	}
	parent, err = p.Parent().Resolve(doc)
	if err != nil {
		return nil, "", err
	}
	return parent, p.tokens[len(p.tokens)-1], nil
}

// Get parses ptr and resolves it against doc in one call.
func Get(doc any, ptr string) (any, error) {
	p, err := Parse(ptr)
	if err != nil {
		return nil, err
	}
	return p.Resolve(doc)
}

// step descends one token from cur. pos is the token's position within p,
// used for error reporting only.
func (p Pointer) step(cur any, tok string, pos int) (any, error) {
	switch node := cur.(type) {
	case map[string]any:
		v, ok := node[tok]
		if !ok {
			return nil, p.notFoundError(tok, pos, "member does not exist")
		}
		return v, nil
	case map[any]any:
		// Some YAML decoders produce any-keyed mappings; tokens are
		// looked up as string keys.
		v, ok := node[tok]
		if !ok {
			return nil, p.notFoundError(tok, pos, "member does not exist")
		}
		return v, nil
	case []any:
		if tok == "-" {
			return EndOfList{}, nil
		}
		idx, err := p.parseIndex(tok, pos, len(node))
		if err != nil {
			return nil, err
		}
		return node[idx], nil
	case EndOfList:
		return nil, p.notFoundError(tok, pos, "cannot descend past the end of a sequence")
	default:
		return nil, p.notFoundError(tok, pos, "cannot descend into scalar value")
	}
}

// parseIndex validates tok as a sequence index and checks it against
// length. Syntax violations are invalid-pointer failures; well-formed
// values outside the sequence are out-of-bounds failures.
func (p Pointer) parseIndex(tok string, pos, length int) (int, error) {
	if !indexPattern.MatchString(tok) {
		return 0, &ptrerrors.InvalidPointerError{
			Pointer:    p.String(),
			Token:      tok,
			TokenIndex: pos,
			Message:    "not an array index",
		}
	}
	idx, err := strconv.Atoi(tok)
	if err != nil {
		// All-digit token too large for int: no sequence can reach it.
		return 0, &ptrerrors.OutOfBoundsError{
			Pointer:    p.String(),
			Token:      tok,
			TokenIndex: pos,
			Index:      -1,
			Length:     length,
			Message:    "index overflows int",
			Cause:      err,
		}
	}
	if idx >= length {
		return 0, &ptrerrors.OutOfBoundsError{
			Pointer:    p.String(),
			Token:      tok,
			TokenIndex: pos,
			Index:      idx,
			Length:     length,
		}
	}
	return idx, nil
}

func (p Pointer) notFoundError(tok string, pos int, msg string) error {
	return &ptrerrors.NotFoundError{
		Pointer:    p.String(),
		Token:      tok,
		TokenIndex: pos,
		Message:    msg,
	}
}
