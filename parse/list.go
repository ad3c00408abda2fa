package parse

import (
	"github.com/saylorsolutions/argx/convert"
	"github.com/saylorsolutions/argx/internal/assert"
	"github.com/saylorsolutions/argx/token"
	"slices"
)

// ItemParser appends one converted argument to a list each time it matches.
type ItemParser[T any] struct {
	tag     Tag
	convert convert.Func[T]
	values  []T
}

// Item creates a list primitive that takes a single argument per call.
// Inside a [Group] it will collect every argument the other children don't claim.
func Item[T any](tag Tag, fn convert.Func[T]) *ItemParser[T] {
	assert.True("item tag is not empty", len(tag) > 0)
	assert.True("item converter is not nil", fn != nil)
	return &ItemParser[T]{tag: tag, convert: fn}
}

func (p *ItemParser[T]) Advance(c token.Cursor) token.Cursor {
	tok := c.Peek()
	if !tok.Present() {
		return c
	}
	if err := convert.Append(p.convert, tok.String(), &p.values); err != nil {
		Logger().Debug("Conversion failed", "tag", p.tag, "arg", tok.String(), "error", err)
		return c
	}
	return c.Advance(1)
}

// Values returns the collected values in the order they were parsed.
func (p *ItemParser[T]) Values() []T {
	return p.values
}

func (p *ItemParser[T]) Tag() Tag      { return p.tag }
func (p *ItemParser[T]) Get() any      { return p.values }
func (p *ItemParser[T]) Reset()        { p.values = nil }
func (p *ItemParser[T]) Slots() []Slot { return []Slot{p} }

// RemainingParser takes every argument left in one step.
type RemainingParser[T any] struct {
	tag    Tag
	mapFn  func(string) T
	values []T
}

// Remaining creates a primitive that takes all remaining arguments as text.
func Remaining(tag Tag) *RemainingParser[string] {
	return RemainingFunc(tag, func(arg string) string {
		return arg
	})
}

// RemainingFunc creates a primitive that takes all remaining arguments, mapping each with fn.
// The mapping can't fail, so this primitive always consumes everything it's given.
func RemainingFunc[T any](tag Tag, fn func(string) T) *RemainingParser[T] {
	assert.True("remaining tag is not empty", len(tag) > 0)
	assert.True("remaining mapping is not nil", fn != nil)
	return &RemainingParser[T]{tag: tag, mapFn: fn}
}

// Advance replaces the list with the remaining arguments.
// Nothing changes if no arguments remain.
func (p *RemainingParser[T]) Advance(c token.Cursor) token.Cursor {
	if c.Done() {
		return c
	}
	values := make([]T, 0, c.Len())
	for _, arg := range c.Remaining() {
		values = append(values, p.mapFn(arg))
	}
	p.values = values
	return c.Exhaust()
}

// Values returns the arguments captured by the most recent call to Advance.
func (p *RemainingParser[T]) Values() []T {
	return slices.Clip(p.values)
}

func (p *RemainingParser[T]) Tag() Tag      { return p.tag }
func (p *RemainingParser[T]) Get() any      { return p.values }
func (p *RemainingParser[T]) Reset()        { p.values = nil }
func (p *RemainingParser[T]) Slots() []Slot { return []Slot{p} }

type ignoreParser struct{}

// Ignore creates a primitive that skips one argument, if there is one.
// It has no slot, and is typically used for the program name.
func Ignore() Node {
	return ignoreParser{}
}

func (ignoreParser) Advance(c token.Cursor) token.Cursor {
	return c.Advance(1)
}

func (ignoreParser) Slots() []Slot {
	return nil
}
