package geom

import "github.com/pkg/errors"

// Threading errors up through the recursive split would add noise to every
// call site for a condition that indicates corrupt input. Instead, we use
// panics, and the public API recovers to convert to an error.

type SplitError error

// Panic with a SplitError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleSplitPanicRecover(r interface{}) error {
	if r != nil {
		if splitError, ok := r.(SplitError); ok {
			return splitError
		}
		panic(r)
	}
	return nil
}
