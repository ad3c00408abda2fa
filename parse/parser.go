package parse

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/argx/token"
	"strings"
)

var (
	ErrUnconsumed   = errors.New("unconsumed arguments")
	ErrDuplicateTag = errors.New("duplicate tag")
	ErrInvalidSpec  = errors.New("invalid flag spec")
	ErrShadowedFlag = errors.New("shadowed short flag")
)

// Parser is the single contract shared by every primitive and composite.
//
// Advance must return a cursor with a position at or after c, and never past c.End().
// Returning c unchanged signals that nothing matched, and in that case no output may have been written.
type Parser interface {
	Advance(c token.Cursor) token.Cursor
}

// Tag is the key used to address an output slot after parsing.
type Tag string

// Slot is one addressable output.
type Slot interface {
	Tag() Tag
	// Get returns the current value, or nil if the slot holds no value.
	Get() any
	// Reset returns the slot to its state at construction.
	Reset()
}

// Node is a [Parser] that exposes the slots it owns, including those of any descendants.
type Node interface {
	Parser
	Slots() []Slot
}

// forward protects the monotonic cursor contract from children that misbehave.
func forward(from, to token.Cursor) token.Cursor {
	if to.Pos() < from.Pos() || to.Pos() > from.End() {
		return from
	}
	return to
}

// Run parses args with p, and returns the number of arguments consumed.
// Any unconsumed suffix is the caller's responsibility.
func Run(p Parser, args []string) int {
	start := token.New(args)
	return forward(start, p.Advance(start)).Since(start)
}

// Parse parses args with p, and returns the number of arguments consumed.
// If p stops before the end of args, an [*UnconsumedError] is returned that wraps [ErrUnconsumed].
func Parse(p Parser, args []string) (int, error) {
	start := token.New(args)
	end := forward(start, p.Advance(start))
	n := end.Since(start)
	if !end.Done() {
		return n, &UnconsumedError{Pos: end.Pos(), Args: end.Remaining()}
	}
	return n, nil
}

// UnconsumedError reports the arguments that were left over after parsing.
type UnconsumedError struct {
	Pos  int      // Pos is the index of the first argument that wasn't consumed.
	Args []string // Args are the arguments that weren't consumed.
}

func (e *UnconsumedError) Error() string {
	return fmt.Sprintf("%v at position %d: %s", ErrUnconsumed, e.Pos, strings.Join(e.Args, " "))
}

func (e *UnconsumedError) Is(err error) bool {
	_, ok := err.(*UnconsumedError)
	return ok
}

func (e *UnconsumedError) Unwrap() error {
	return ErrUnconsumed
}
