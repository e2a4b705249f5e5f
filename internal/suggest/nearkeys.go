package suggest

import (
	"errors"

	"github.com/erraggy/ptrtools/internal/maputil"
	"github.com/erraggy/ptrtools/pointer"
	"github.com/erraggy/ptrtools/ptrerrors"
)

// NearKeys returns near-miss member names for a failed mapping lookup.
// It re-resolves the failing pointer up to the NotFound token and offers
// Near matches among the parent's keys. Sequence and scalar failures,
// and errors that are not NotFound, return nil.
func NearKeys(root any, err error) []string {
	var notFoundErr *ptrerrors.NotFoundError
	if !errors.As(err, &notFoundErr) || notFoundErr.TokenIndex < 0 {
		return nil
	}
	p, parseErr := pointer.Parse(notFoundErr.Pointer)
	if parseErr != nil || notFoundErr.TokenIndex >= p.Len() {
		return nil
	}
	parent, resolveErr := pointer.FromTokens(p.Tokens()[:notFoundErr.TokenIndex]...).Resolve(root)
	if resolveErr != nil {
		return nil
	}
	m, ok := parent.(map[string]any)
	if !ok {
		return nil
	}
	return Near(notFoundErr.Token, maputil.SortedKeys(m))
}
