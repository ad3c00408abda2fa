//go:build !noassert

package assert

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

var disabled atomic.Bool

// Disable will turn off construction checks globally.
// This is intended for tests that deliberately build malformed trees.
func Disable() {
	disabled.Store(true)
}

// Enable re-enables construction checks after Disable.
func Enable() {
	disabled.Store(false)
}

func callerDetails() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("'%s#%d'", file, line)
}

// True will panic with the label and caller location if result is not true.
func True(label string, result bool) {
	if disabled.Load() {
		return
	}
	if !result {
		panic(fmt.Sprintf("invalid parser declaration: '%s' at %s", label, callerDetails()))
	}
}

// NoError will panic with the label, the error text, and the caller location if err is not nil.
func NoError(label string, err error) {
	if disabled.Load() {
		return
	}
	if err != nil {
		panic(fmt.Sprintf("invalid parser declaration: '%s' at %s:\n%v", label, callerDetails(), err))
	}
}
