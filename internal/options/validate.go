// Package options provides shared validation helpers for functional
// options across packages.
package options

import "errors"

// ValidateSingleInputSource ensures exactly one input source is set.
// sources flags which of the caller's inputs were provided; noSourceMsg
// and multiSourceMsg become the error text for the zero and multiple
// cases.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	var count int
	for _, set := range sources {
		if set {
			count++
		}
	}
	switch {
	case count == 0:
		return errors.New(noSourceMsg)
	case count > 1:
		return errors.New(multiSourceMsg)
	}
	return nil
}
