// Package options provides shared utilities for option validation across packages.
package options

import "github.com/erraggy/specparity/parityerrors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// option names the option group in the returned error (e.g. "loader input").
// sources is a variadic list of booleans indicating whether each source is set.
func ValidateSingleInputSource(option string, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}

	switch {
	case count == 0:
		return &parityerrors.ConfigError{Option: option, Message: "must specify an input source"}
	case count > 1:
		return &parityerrors.ConfigError{Option: option, Value: count, Message: "must specify exactly one input source"}
	}
	return nil
}
