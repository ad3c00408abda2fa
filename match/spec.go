// Package match decides whether an argument spells a declared flag.
//
// A [Spec] is built with one of [Short], [Long], or [Either], which select the [Form] the matcher uses.
// Matching is stateless and never allocates.
package match

import (
	"strings"
	"unicode/utf8"
)

// Form identifies which spellings a [Spec] accepts.
type Form int

const (
	ShortOnly Form = 1 << iota // -x
	LongOnly                   // --name
	Both      = ShortOnly | LongOnly
)

func (f Form) String() string {
	switch f {
	case ShortOnly:
		return "short"
	case LongOnly:
		return "long"
	case Both:
		return "both"
	default:
		return "invalid"
	}
}

// Spec declares the spellings of a flag.
// The zero value has no spellings and matches nothing.
type Spec struct {
	short rune
	long  string
	form  Form
}

// Short declares a flag spelled as "-" followed by a single character.
func Short(c rune) Spec {
	return Spec{short: c, form: ShortOnly}
}

// Long declares a flag spelled exactly as the given string, including any leading dashes.
// A trailing "=" is kept, and marks the flag as taking an attached value, e.g. "--width=".
func Long(name string) Spec {
	return Spec{long: name, form: LongOnly}
}

// Either declares a flag that may be spelled in short or long form.
func Either(c rune, name string) Spec {
	return Spec{short: c, long: name, form: Both}
}

// Form returns the [Form] selected when the Spec was declared.
func (s Spec) Form() Form {
	return s.form
}

// ShortForm returns the short character and whether the Spec has one.
func (s Spec) ShortForm() (rune, bool) {
	return s.short, s.hasShort()
}

// LongForm returns the long spelling and whether the Spec has one.
func (s Spec) LongForm() (string, bool) {
	return s.long, s.hasLong()
}

// Valid returns true if the Spec has at least one usable spelling that agrees with its [Form].
func (s Spec) Valid() bool {
	switch s.form {
	case ShortOnly:
		return s.hasShort()
	case LongOnly:
		return s.hasLong()
	case Both:
		return s.hasShort() && s.hasLong()
	default:
		return false
	}
}

// NUL is reserved so an unset Spec can never match.
func (s Spec) hasShort() bool {
	return s.form&ShortOnly != 0 && s.short != 0 && s.short != utf8.RuneError
}

func (s Spec) hasLong() bool {
	return s.form&LongOnly != 0 && len(s.long) > 0
}

// Matches reports whether arg is exactly one of the declared spellings.
func (s Spec) Matches(arg string) bool {
	return s.MatchesShort(arg) || s.MatchesLong(arg)
}

// MatchesShort reports whether arg is exactly "-" followed by the short character, with nothing trailing.
func (s Spec) MatchesShort(arg string) bool {
	if !s.hasShort() || len(arg) < 2 || arg[0] != '-' {
		return false
	}
	r, size := utf8.DecodeRuneInString(arg[1:])
	return r == s.short && 1+size == len(arg)
}

// MatchesLong reports whether arg equals the long spelling.
func (s Spec) MatchesLong(arg string) bool {
	return s.hasLong() && arg == s.long
}

// MatchesChar reports whether c is the short character.
// This is used for one character inside a clustered token like "-abc", regardless of its position.
func (s Spec) MatchesChar(c rune) bool {
	return s.hasShort() && c == s.short
}

// MatchPrefix returns how many bytes at the start of arg spell this flag, so the rest can be treated as an attached value.
//
// The long form is checked first, and matches if arg starts with it.
// The short form matches if arg is "-" followed by the short character and at least one more byte.
// 0 is returned if neither matches.
func (s Spec) MatchPrefix(arg string) int {
	if s.hasLong() && strings.HasPrefix(arg, s.long) {
		return len(s.long)
	}
	if s.hasShort() && len(arg) > 1 && arg[0] == '-' {
		r, size := utf8.DecodeRuneInString(arg[1:])
		if r == s.short && len(arg) > 1+size {
			return 1 + size
		}
	}
	return 0
}

// BareLong returns the long spelling without a trailing "=", which is how the flag is written when its value is a separate argument.
func (s Spec) BareLong() (string, bool) {
	if !s.hasLong() {
		return "", false
	}
	bare := strings.TrimSuffix(s.long, "=")
	return bare, len(bare) > 0
}

// String renders the declared spellings the way usage text commonly shows them, e.g. "-h, --hello".
func (s Spec) String() string {
	var parts []string
	if s.hasShort() {
		parts = append(parts, "-"+string(s.short))
	}
	if s.hasLong() {
		parts = append(parts, s.long)
	}
	return strings.Join(parts, ", ")
}
