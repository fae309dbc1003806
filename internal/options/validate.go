// Package options holds helpers shared by the functional option sets of the
// loader and generator packages.
package options

import "errors"

// ValidateSingleInputSource checks that exactly one of sources is true.
// It returns an error carrying noSourceMsg when none is set and
// multiSourceMsg when more than one is.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	set := 0
	for _, ok := range sources {
		if ok {
			set++
		}
	}
	switch {
	case set == 0:
		return errors.New(noSourceMsg)
	case set > 1:
		return errors.New(multiSourceMsg)
	default:
		return nil
	}
}
