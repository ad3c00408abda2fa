// Package token provides the shared read state for argument parsing: a [Token] view over a single argument, and a [Cursor] that marks how much of an argument vector has been consumed.
//
// A Cursor is a plain value. Parsers receive one, and return a new one that is never behind the input.
// Returning the same position is the universal "no match" signal, so there's no separate error channel for ordinary parsing.
package token

import "strings"

// Token is a non-owning view over one argument.
// The zero value is an absent token, which is distinct from a present token holding an empty string.
type Token struct {
	text    string
	present bool
}

// Of creates a present [Token] for the given argument text.
func Of(text string) Token {
	return Token{text: text, present: true}
}

// Absent returns the sentinel [Token] used to signal that no more arguments are available.
func Absent() Token {
	return Token{}
}

// Present returns true if this [Token] refers to an actual argument, even an empty one.
func (t Token) Present() bool {
	return t.present
}

// String returns the text of the argument, or "" if the token is absent.
func (t Token) String() string {
	return t.text
}

// Len is the length of the token text in bytes.
func (t Token) Len() int {
	return len(t.text)
}

// HasPrefix checks if the token is present and starts with the given prefix.
func (t Token) HasPrefix(prefix string) bool {
	return t.present && strings.HasPrefix(t.text, prefix)
}

// IsDash returns true for a lone "-", which is conventionally a positional argument meaning stdin/stdout.
func (t Token) IsDash() bool {
	return t.present && t.text == "-"
}
