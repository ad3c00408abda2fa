package token

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestToken_Present(t *testing.T) {
	assert.False(t, Absent().Present())
	assert.False(t, Token{}.Present())
	assert.True(t, Of("").Present(), "An empty argument is still present")
	assert.Equal(t, "", Of("").String())
	assert.True(t, Of("-").IsDash())
	assert.False(t, Of("--").IsDash())
	assert.False(t, Absent().HasPrefix(""))
	assert.True(t, Of("--name").HasPrefix("--"))
}

func TestCursor_Empty(t *testing.T) {
	c := New(nil)
	assert.True(t, c.Done())
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Peek().Present())

	tok, next := c.Pop()
	assert.False(t, tok.Present())
	assert.Equal(t, c, next)
	assert.Empty(t, c.Remaining())
}

func TestCursor_Pop(t *testing.T) {
	args := []string{"prog", "", "-h"}
	c := New(args)
	require.Equal(t, 3, c.Len())

	var seen []string
	for !c.Done() {
		var tok Token
		before := c
		tok, c = c.Pop()
		require.True(t, tok.Present())
		assert.Equal(t, 1, c.Since(before))
		assert.True(t, c.Moved(before))
		seen = append(seen, tok.String())
	}
	assert.Equal(t, args, seen)
	assert.Equal(t, c.End(), c.Pos())
}

func TestCursor_Advance(t *testing.T) {
	c := New([]string{"a", "b", "c"})
	assert.Equal(t, c, c.Advance(0))
	assert.Equal(t, c, c.Advance(-3), "Cursor should never move backward")
	assert.Equal(t, 2, c.Advance(2).Pos())
	assert.Equal(t, 3, c.Advance(10).Pos(), "Advance should stop at the end")
	assert.Equal(t, []string{"c"}, c.Advance(2).Remaining())
	assert.True(t, c.Exhaust().Done())
}

func TestCursor_PeekAt(t *testing.T) {
	c := New([]string{"-o", "out.txt"})
	assert.Equal(t, "out.txt", c.PeekAt(1).String())
	assert.False(t, c.PeekAt(2).Present())
	assert.False(t, c.PeekAt(-1).Present())
	assert.False(t, c.Advance(1).PeekAt(1).Present())
}

func TestWindow(t *testing.T) {
	args := []string{"a", "b", "c", "d"}
	tests := map[string]struct {
		pos, end          int
		expectedPos       int
		expectedEnd       int
		expectedRemaining []string
	}{
		"Full":         {pos: 0, end: 4, expectedPos: 0, expectedEnd: 4, expectedRemaining: args},
		"Middle":       {pos: 1, end: 3, expectedPos: 1, expectedEnd: 3, expectedRemaining: []string{"b", "c"}},
		"End past len": {pos: 2, end: 10, expectedPos: 2, expectedEnd: 4, expectedRemaining: []string{"c", "d"}},
		"Pos past end": {pos: 3, end: 2, expectedPos: 2, expectedEnd: 2, expectedRemaining: []string{}},
		"Negative":     {pos: -1, end: -1, expectedPos: 0, expectedEnd: 0, expectedRemaining: []string{}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := Window(args, tc.pos, tc.end)
			assert.Equal(t, tc.expectedPos, c.Pos())
			assert.Equal(t, tc.expectedEnd, c.End())
			assert.Equal(t, tc.expectedRemaining, c.Remaining())
			assert.LessOrEqual(t, c.Pos(), c.End())
		})
	}
}

func TestWindow_PeekStopsAtEnd(t *testing.T) {
	c := Window([]string{"a", "b", "c"}, 0, 1)
	assert.Equal(t, "a", c.Peek().String())
	assert.False(t, c.PeekAt(1).Present(), "Arguments past the window end must not be visible")
}
