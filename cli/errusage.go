package cli

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/argx/parse"
)

// UsageError signals that the user invoked a command incorrectly.
// [CommandSet.Run] prints it with [HelpHint] and returns status 2.
type UsageError struct {
	wrapped error
}

func (e *UsageError) Error() string {
	if e.wrapped == nil {
		return "usage error"
	}
	return "usage error: " + e.wrapped.Error()
}

func (e *UsageError) Is(err error) bool {
	_, ok := err.(*UsageError)
	return ok
}

func (e *UsageError) Unwrap() error {
	return e.wrapped
}

// NewUsageError is used to create a [UsageError] from a [CommandFunc].
// The format and args parameters are passed to [fmt.Errorf] to create the underlying error.
func NewUsageError(format string, args ...any) error {
	return &UsageError{wrapped: fmt.Errorf(format, args...)}
}

// UnconsumedUsage converts an error returned from [parse.Parse] into a [UsageError] naming the first argument that wasn't understood.
// Nil is returned for a nil error.
func UnconsumedUsage(err error) error {
	if err == nil {
		return nil
	}
	var unconsumed *parse.UnconsumedError
	if errors.As(err, &unconsumed) && len(unconsumed.Args) > 0 {
		return NewUsageError("unexpected argument '%s'", unconsumed.Args[0])
	}
	return &UsageError{wrapped: err}
}
