package parse

import (
	"github.com/saylorsolutions/argx/convert"
	"github.com/saylorsolutions/argx/match"
	"github.com/saylorsolutions/argx/token"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestValue_Advance(t *testing.T) {
	v := Value("count", convert.Int[int]())
	start := token.New([]string{"abc", "42"})
	assert.Equal(t, start, v.Advance(start), "A failed conversion must not move the cursor")
	assert.Nil(t, v.Get(), "A failed conversion must not write the slot")

	next := start.Advance(1)
	assert.Equal(t, 2, v.Advance(next).Pos())
	val, ok := v.Value()
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	assert.Equal(t, start, v.Advance(start))
	val, _ = v.Value()
	assert.Equal(t, 42, val, "A failed conversion must leave the previous value in place")

	done := token.New(nil)
	assert.Equal(t, done, v.Advance(done))
}

func TestString(t *testing.T) {
	s := String("name")
	s.Advance(token.New([]string{"-not-a-flag"}))
	assert.Equal(t, "-not-a-flag", s.Get(), "String should accept any text")
}

func TestValue_Default(t *testing.T) {
	v := Value("width", convert.Int[int]()).Default(80)
	assert.Equal(t, 80, v.Get())
	v.Advance(token.New([]string{"100"}))
	assert.Equal(t, 100, v.Get())
	v.Reset()
	assert.Equal(t, 80, v.Get(), "Reset should restore the default")

	u := Value("width", convert.Int[int]())
	u.Advance(token.New([]string{"100"}))
	u.Reset()
	_, ok := u.Value()
	assert.False(t, ok, "Reset should clear a slot without a default")
}

func TestValueFlag_Advance(t *testing.T) {
	tests := map[string]struct {
		args      []string
		expected  int
		advanced  int
		expectSet bool
	}{
		"Short form":        {args: []string{"-n", "5"}, expected: 5, advanced: 2, expectSet: true},
		"Long form":         {args: []string{"--number", "7", "extra"}, expected: 7, advanced: 2, expectSet: true},
		"Missing value":     {args: []string{"-n"}},
		"Invalid value":     {args: []string{"-n", "five"}},
		"Other flag":        {args: []string{"-x", "5"}},
		"Attached value":    {args: []string{"-n5"}},
		"Value before flag": {args: []string{"5", "-n"}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			v := ValueFlag("number", match.Either('n', "--number"), convert.Int[int]())
			start := token.New(tc.args)
			end := v.Advance(start)
			assert.Equal(t, tc.advanced, end.Since(start))
			val, ok := v.Value()
			assert.Equal(t, tc.expectSet, ok)
			assert.Equal(t, tc.expected, val)
		})
	}
}

func TestPrefixed_RoundTrip(t *testing.T) {
	tests := map[string]struct {
		args     []string
		advanced int
	}{
		"Short separated": {args: []string{"-o", "value"}, advanced: 2},
		"Short attached":  {args: []string{"-ovalue"}, advanced: 1},
		"Long separated":  {args: []string{"--option", "value"}, advanced: 2},
		"Long attached":   {args: []string{"--option=value"}, advanced: 1},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p := Prefixed("option", match.Either('o', "--option="), convert.String)
			start := token.New(tc.args)
			assert.Equal(t, tc.advanced, p.Advance(start).Since(start))
			assert.Equal(t, "value", p.Get())
		})
	}
}

func TestPrefixed_Declines(t *testing.T) {
	tests := map[string][]string{
		"No arguments":        nil,
		"Bare long, no value": {"--width"},
		"Bare short no value": {"-w"},
		"Unrelated long":      {"--widths=80"},
		"Different prefix":    {"--height=80"},
		"Invalid value":       {"--width=wide"},
		"Invalid separated":   {"-w", "wide"},
		"Plain argument":      {"80"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			p := Prefixed("width", match.Either('w', "--width="), convert.Int[int]()).Default(80)
			start := token.New(args)
			assert.Equal(t, start, p.Advance(start))
			assert.Equal(t, 80, p.Get(), "The default should survive a declined match")
		})
	}
}

func TestPrefixed_ShortOnly(t *testing.T) {
	p := Prefixed("width", match.Short('w'), convert.Int[int]())
	start := token.New([]string{"-w120"})
	assert.Equal(t, 1, p.Advance(start).Since(start))
	assert.Equal(t, 120, p.Get())
	assert.Equal(t, []match.Spec{match.Short('w')}, p.Specs())
}

func TestValue_InvalidDeclaration(t *testing.T) {
	assert.Panics(t, func() {
		Value[int]("count", nil)
	})
	assert.Panics(t, func() {
		String("")
	})
	assert.Panics(t, func() {
		ValueFlag("count", match.Spec{}, convert.Int[int]())
	})
	assert.Panics(t, func() {
		Prefixed("count", match.Spec{}, convert.Int[int]())
	})
}
