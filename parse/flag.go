package parse

import (
	"github.com/saylorsolutions/argx/internal/assert"
	"github.com/saylorsolutions/argx/match"
	"github.com/saylorsolutions/argx/token"
)

// FlagParser sets a boolean when its flag is present.
type FlagParser struct {
	tag   Tag
	spec  match.Spec
	value bool
}

// Flag creates a boolean flag that is set when the current argument matches spec.
func Flag(tag Tag, spec match.Spec) *FlagParser {
	assert.True("flag tag is not empty", len(tag) > 0)
	assert.True("flag spec has a short or long form", spec.Valid())
	return &FlagParser{tag: tag, spec: spec}
}

func (f *FlagParser) Advance(c token.Cursor) token.Cursor {
	tok := c.Peek()
	if !tok.Present() || !f.spec.Matches(tok.String()) {
		return c
	}
	f.value = true
	return c.Advance(1)
}

// MatchChar sets the flag if c is its short character.
func (f *FlagParser) MatchChar(c rune) bool {
	if !f.spec.MatchesChar(c) {
		return false
	}
	f.value = true
	return true
}

// MatchLong sets the flag if arg is exactly its long form.
func (f *FlagParser) MatchLong(arg string) bool {
	if !f.spec.MatchesLong(arg) {
		return false
	}
	f.value = true
	return true
}

// Save captures the flag's state, and returns a function that restores it.
func (f *FlagParser) Save() func() {
	saved := f.value
	return func() {
		f.value = saved
	}
}

// Value reports whether the flag was given.
func (f *FlagParser) Value() bool {
	return f.value
}

func (f *FlagParser) Tag() Tag            { return f.tag }
func (f *FlagParser) Get() any            { return f.value }
func (f *FlagParser) Reset()              { f.value = false }
func (f *FlagParser) Slots() []Slot       { return []Slot{f} }
func (f *FlagParser) Specs() []match.Spec { return []match.Spec{f.spec} }
