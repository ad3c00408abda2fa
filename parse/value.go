package parse

import (
	"github.com/saylorsolutions/argx/convert"
	"github.com/saylorsolutions/argx/internal/assert"
	"github.com/saylorsolutions/argx/match"
	"github.com/saylorsolutions/argx/token"
)

// optional is the single optional value shared by the value primitives.
type optional[T any] struct {
	tag     Tag
	convert convert.Func[T]
	val     T
	set     bool
	def     T
	hasDef  bool
}

func newOptional[T any](tag Tag, fn convert.Func[T]) optional[T] {
	assert.True("value tag is not empty", len(tag) > 0)
	assert.True("value converter is not nil", fn != nil)
	return optional[T]{tag: tag, convert: fn}
}

// emplace only changes the slot when conversion succeeds.
func (o *optional[T]) emplace(arg string) bool {
	if err := convert.Emplace(o.convert, arg, &o.val); err != nil {
		Logger().Debug("Conversion failed", "tag", o.tag, "arg", arg, "error", err)
		return false
	}
	o.set = true
	return true
}

func (o *optional[T]) withDefault(val T) {
	o.def, o.hasDef = val, true
	o.val, o.set = val, true
}

// Value returns the stored value, and whether one has been stored or defaulted.
func (o *optional[T]) Value() (T, bool) {
	return o.val, o.set
}

func (o *optional[T]) Tag() Tag {
	return o.tag
}

func (o *optional[T]) Get() any {
	if !o.set {
		return nil
	}
	return o.val
}

func (o *optional[T]) Reset() {
	o.val, o.set = o.def, o.hasDef
}

// ValueParser takes the current argument, whatever it is, if it converts.
type ValueParser[T any] struct {
	optional[T]
}

// Value creates a primitive that converts and stores the current argument.
func Value[T any](tag Tag, fn convert.Func[T]) *ValueParser[T] {
	return &ValueParser[T]{optional: newOptional(tag, fn)}
}

// String is a [Value] that stores the argument text unchanged.
func String(tag Tag) *ValueParser[string] {
	return Value(tag, convert.String)
}

// Default sets a value that's reported until a different one is parsed, and restored by Reset.
func (p *ValueParser[T]) Default(val T) *ValueParser[T] {
	p.withDefault(val)
	return p
}

func (p *ValueParser[T]) Advance(c token.Cursor) token.Cursor {
	tok := c.Peek()
	if !tok.Present() || !p.emplace(tok.String()) {
		return c
	}
	return c.Advance(1)
}

func (p *ValueParser[T]) Slots() []Slot {
	return []Slot{p}
}

// ValueFlagParser takes a flag followed by a separate value argument.
type ValueFlagParser[T any] struct {
	optional[T]
	spec match.Spec
}

// ValueFlag creates a primitive that matches spec, and converts the argument after it.
// Both arguments are consumed together, or neither is.
func ValueFlag[T any](tag Tag, spec match.Spec, fn convert.Func[T]) *ValueFlagParser[T] {
	assert.True("value flag spec has a short or long form", spec.Valid())
	return &ValueFlagParser[T]{optional: newOptional(tag, fn), spec: spec}
}

// Default sets a value that's reported until a different one is parsed, and restored by Reset.
func (p *ValueFlagParser[T]) Default(val T) *ValueFlagParser[T] {
	p.withDefault(val)
	return p
}

func (p *ValueFlagParser[T]) Advance(c token.Cursor) token.Cursor {
	if c.Len() < 2 || !p.spec.Matches(c.Peek().String()) {
		return c
	}
	if !p.emplace(c.PeekAt(1).String()) {
		return c
	}
	return c.Advance(2)
}

func (p *ValueFlagParser[T]) Slots() []Slot {
	return []Slot{p}
}

func (p *ValueFlagParser[T]) Specs() []match.Spec {
	return []match.Spec{p.spec}
}

// PrefixedParser takes a value attached to its flag, like "-w80" or "--width=80".
type PrefixedParser[T any] struct {
	optional[T]
	spec match.Spec
}

// Prefixed creates a primitive for values attached to a flag.
//
// The long form should include a trailing "=" if that's how the value is separated, e.g. match.Either('w', "--width=").
// The separated forms are accepted too, "-w 80" and "--width 80", and consume two arguments.
func Prefixed[T any](tag Tag, spec match.Spec, fn convert.Func[T]) *PrefixedParser[T] {
	assert.True("prefixed value spec has a short or long form", spec.Valid())
	return &PrefixedParser[T]{optional: newOptional(tag, fn), spec: spec}
}

// Default sets a value that's reported until a different one is parsed, and restored by Reset.
func (p *PrefixedParser[T]) Default(val T) *PrefixedParser[T] {
	p.withDefault(val)
	return p
}

func (p *PrefixedParser[T]) separated(arg string) bool {
	if p.spec.MatchesShort(arg) {
		return true
	}
	bare, ok := p.spec.BareLong()
	return ok && arg == bare
}

func (p *PrefixedParser[T]) Advance(c token.Cursor) token.Cursor {
	tok := c.Peek()
	if !tok.Present() {
		return c
	}
	arg := tok.String()
	if p.separated(arg) {
		next := c.PeekAt(1)
		if !next.Present() || !p.emplace(next.String()) {
			return c
		}
		return c.Advance(2)
	}
	n := p.spec.MatchPrefix(arg)
	if n == 0 || !p.emplace(arg[n:]) {
		return c
	}
	return c.Advance(1)
}

func (p *PrefixedParser[T]) Slots() []Slot {
	return []Slot{p}
}

func (p *PrefixedParser[T]) Specs() []match.Spec {
	return []match.Spec{p.spec}
}
