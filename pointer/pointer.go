package pointer

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/erraggy/ptrtools/ptrerrors"
)

const (
	// Separator splits a pointer string into reference tokens.
	Separator = "/"
	// EncodedTilde is the escape sequence for a literal "~" inside a token.
	EncodedTilde = "~0"
	// EncodedSlash is the escape sequence for a literal "/" inside a token.
	EncodedSlash = "~1"
)

// Escape decode order per RFC 6901: "~1" before "~0", so that "~01" decodes
// to the literal "~1" rather than collapsing to "/". The replacers apply
// their pairs in argument order within a single pass, which preserves that
// ordering. Encoding runs the reverse way: "~" first, then "/".
var (
	tokenUnescaper = strings.NewReplacer(EncodedSlash, "/", EncodedTilde, "~")
	tokenEscaper   = strings.NewReplacer("~", EncodedTilde, "/", EncodedSlash)
)

// Pointer is a parsed RFC 6901 JSON Pointer: an ordered sequence of decoded
// reference tokens. The zero value is the root pointer, which addresses the
// whole document.
//
// A Pointer is immutable after construction, holds no reference to any
// document, and may be reused concurrently against many documents.
type Pointer struct {
	tokens []string
}

// Parse builds a Pointer from its string form.
//
// The empty string denotes the root pointer. A non-empty pointer must begin
// with "/". The URI fragment form is also accepted: a leading "#" is
// stripped and each token is percent-decoded before escape decoding.
// Malformed input fails with a *ptrerrors.InvalidPointerError.
func Parse(s string) (Pointer, error) {
	raw := s
	fragment := false
	if strings.HasPrefix(raw, "#") {
		fragment = true
		raw = raw[1:]
	}
	if raw == "" {
		return Pointer{}, nil
	}
	if !strings.HasPrefix(raw, Separator) {
		return Pointer{}, &ptrerrors.InvalidPointerError{
			Pointer:    s,
			TokenIndex: -1,
			Message:    `must be empty or begin with "/"`,
		}
	}

	parts := strings.Split(raw[1:], Separator)
	tokens := make([]string, len(parts))
	for i, part := range parts {
		if fragment {
			decoded, err := url.PathUnescape(part)
			if err != nil {
				return Pointer{}, &ptrerrors.InvalidPointerError{
					Pointer:    s,
					Token:      part,
					TokenIndex: i,
					Message:    "bad percent-encoding in fragment",
					Cause:      err,
				}
			}
			part = decoded
		}
		tokens[i] = tokenUnescaper.Replace(part)
	}
	return Pointer{tokens: tokens}, nil
}

// MustParse is like Parse but panics on malformed input.
// Intended for compile-time-constant pointers.
func MustParse(s string) Pointer {
	p, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("pointer: MustParse(%q): %v", s, err))
	}
	return p
}

// FromTokens builds a Pointer from already-decoded reference tokens.
// The tokens are copied, so later changes to the arguments do not affect
// the Pointer.
func FromTokens(tokens ...string) Pointer {
	if len(tokens) == 0 {
		return Pointer{}
	}
	tt := make([]string, len(tokens))
	copy(tt, tokens)
	return Pointer{tokens: tt}
}

// String returns the canonical escaped string form, e.g. "/a~1b/2".
// The root pointer renders as the empty string.
func (p Pointer) String() string {
	if len(p.tokens) == 0 {
		return ""
	}
	var b strings.Builder
	for _, tok := range p.tokens {
		b.WriteString(Separator)
		b.WriteString(tokenEscaper.Replace(tok))
	}
	return b.String()
}

// Fragment returns the URI fragment form: "#" followed by the escaped,
// percent-encoded pointer. The root pointer renders as "#".
func (p Pointer) Fragment() string {
	var b strings.Builder
	b.WriteString("#")
	for _, tok := range p.tokens {
		b.WriteString(Separator)
		b.WriteString(url.PathEscape(tokenEscaper.Replace(tok)))
	}
	return b.String()
}

// Tokens returns a copy of the decoded reference tokens.
func (p Pointer) Tokens() []string {
	if len(p.tokens) == 0 {
		return nil
	}
	tt := make([]string, len(p.tokens))
	copy(tt, p.tokens)
	return tt
}

// Len returns the number of reference tokens.
func (p Pointer) Len() int {
	return len(p.tokens)
}

// IsRoot reports whether p is the root pointer (no tokens).
func (p Pointer) IsRoot() bool {
	return len(p.tokens) == 0
}

// Parent returns the pointer to the containing value: all tokens but the
// last. The root pointer is its own parent.
func (p Pointer) Parent() Pointer {
	if len(p.tokens) == 0 {
		return Pointer{}
	}
	return Pointer{tokens: p.tokens[:len(p.tokens)-1]}
}

// Child returns a new Pointer with the given decoded tokens appended.
func (p Pointer) Child(tokens ...string) Pointer {
	if len(tokens) == 0 {
		return p
	}
	tt := make([]string, 0, len(p.tokens)+len(tokens))
	tt = append(tt, p.tokens...)
	tt = append(tt, tokens...)
	return Pointer{tokens: tt}
}

// Equal reports whether two Pointers have the same decoded token sequence.
// Equality is independent of the escaping used in the original strings.
func (p Pointer) Equal(o Pointer) bool {
	if len(p.tokens) != len(o.tokens) {
		return false
	}
	for i, tok := range p.tokens {
		if o.tokens[i] != tok {
			return false
		}
	}
	return true
}

// Contains reports whether p's token sequence is a prefix of o's: the value
// addressed by o lives inside the subtree addressed by p. Every pointer
// contains itself, and the root pointer contains every pointer.
func (p Pointer) Contains(o Pointer) bool {
	if len(p.tokens) > len(o.tokens) {
		return false
	}
	for i, tok := range p.tokens {
		if o.tokens[i] != tok {
			return false
		}
	}
	return true
}

// EscapeToken encodes a decoded reference token for embedding in a pointer
// string: "~" becomes "~0", then "/" becomes "~1".
func EscapeToken(s string) string {
	return tokenEscaper.Replace(s)
}

// UnescapeToken decodes a reference token: "~1" becomes "/", then "~0"
// becomes "~".
func UnescapeToken(s string) string {
	return tokenUnescaper.Replace(s)
}
