package parse

import (
	"github.com/saylorsolutions/argx/internal/assert"
	"github.com/saylorsolutions/argx/match"
	"github.com/saylorsolutions/argx/token"
)

// OptionEntry associates a flag spelling with the value it writes into an [OptionSet].
type OptionEntry[T any] struct {
	Spec  match.Spec
	Value T
}

// Option creates an [OptionEntry] that writes val when spec matches.
func Option[T any](spec match.Spec, val T) OptionEntry[T] {
	assert.True("option spec has a short or long form", spec.Valid())
	return OptionEntry[T]{Spec: spec, Value: val}
}

// Named creates an [OptionEntry] matched by exactly the given word, which is common for sub-commands and "--color=always" style choices.
func Named[T any](name string, val T) OptionEntry[T] {
	return Option(match.Long(name), val)
}

// OptionSetParser holds mutually exclusive options that all write one shared slot.
type OptionSetParser[T any] struct {
	tag        Tag
	entries    []OptionEntry[T]
	val        T
	set        bool
	initial    T
	initialSet bool
}

// OptionSet creates a set of options that starts with the initial value.
// Entries are tried in declaration order and the first match writes its value, so across several arguments the last match wins.
func OptionSet[T any](tag Tag, initial T, entries ...OptionEntry[T]) *OptionSetParser[T] {
	p := OptionalSet(tag, entries...)
	p.initial, p.initialSet = initial, true
	p.Reset()
	return p
}

// OptionalSet is like [OptionSet], but the slot holds no value until an option matches.
func OptionalSet[T any](tag Tag, entries ...OptionEntry[T]) *OptionSetParser[T] {
	assert.True("option set tag is not empty", len(tag) > 0)
	assert.True("option set has options", len(entries) > 0)
	return &OptionSetParser[T]{tag: tag, entries: entries}
}

func (p *OptionSetParser[T]) assign(entry OptionEntry[T]) {
	p.val, p.set = entry.Value, true
}

func (p *OptionSetParser[T]) Advance(c token.Cursor) token.Cursor {
	tok := c.Peek()
	if !tok.Present() {
		return c
	}
	for _, entry := range p.entries {
		if entry.Spec.Matches(tok.String()) {
			p.assign(entry)
			return c.Advance(1)
		}
	}
	return c
}

// MatchChar assigns the first option whose short character is c.
func (p *OptionSetParser[T]) MatchChar(c rune) bool {
	for _, entry := range p.entries {
		if entry.Spec.MatchesChar(c) {
			p.assign(entry)
			return true
		}
	}
	return false
}

// MatchLong assigns the first option whose long form is exactly arg.
func (p *OptionSetParser[T]) MatchLong(arg string) bool {
	for _, entry := range p.entries {
		if entry.Spec.MatchesLong(arg) {
			p.assign(entry)
			return true
		}
	}
	return false
}

// Save captures the shared slot, and returns a function that restores it.
func (p *OptionSetParser[T]) Save() func() {
	val, set := p.val, p.set
	return func() {
		p.val, p.set = val, set
	}
}

// Value returns the current value, and whether the slot holds one.
func (p *OptionSetParser[T]) Value() (T, bool) {
	return p.val, p.set
}

// Set overwrites the shared slot, as if an option had matched.
func (p *OptionSetParser[T]) Set(val T) {
	p.val, p.set = val, true
}

func (p *OptionSetParser[T]) Tag() Tag {
	return p.tag
}

func (p *OptionSetParser[T]) Get() any {
	if !p.set {
		return nil
	}
	return p.val
}

func (p *OptionSetParser[T]) Reset() {
	p.val, p.set = p.initial, p.initialSet
}

func (p *OptionSetParser[T]) Slots() []Slot {
	return []Slot{p}
}

func (p *OptionSetParser[T]) Specs() []match.Spec {
	specs := make([]match.Spec, len(p.entries))
	for i, entry := range p.entries {
		specs[i] = entry.Spec
	}
	return specs
}
