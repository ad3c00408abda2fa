package token

// Cursor is a shrinking window over an argument vector.
// The window is delimited by a position and an end, and the invariant pos <= end always holds.
// A Cursor borrows the caller's slice, and never copies or mutates argument text.
type Cursor struct {
	args []string
	pos  int
	end  int
}

// New creates a [Cursor] covering all of args.
func New(args []string) Cursor {
	return Cursor{args: args, pos: 0, end: len(args)}
}

// Window creates a [Cursor] over args[pos:end].
// Out of range bounds are clamped, so the result always satisfies 0 <= pos <= end <= len(args).
func Window(args []string, pos, end int) Cursor {
	if end > len(args) {
		end = len(args)
	}
	if end < 0 {
		end = 0
	}
	if pos < 0 {
		pos = 0
	}
	if pos > end {
		pos = end
	}
	return Cursor{args: args, pos: pos, end: end}
}

// Pos is the index of the current argument in the underlying vector.
func (c Cursor) Pos() int {
	return c.pos
}

// End is the index one past the last argument this Cursor may consume.
func (c Cursor) End() int {
	return c.end
}

// Len is the number of arguments remaining.
func (c Cursor) Len() int {
	return c.end - c.pos
}

// Done returns true when the Cursor is exhausted.
func (c Cursor) Done() bool {
	return c.pos >= c.end
}

// Peek returns the current argument, or [Absent] if the Cursor is exhausted.
func (c Cursor) Peek() Token {
	return c.PeekAt(0)
}

// PeekAt returns the argument n positions after the current one, or [Absent] if that is past the end.
func (c Cursor) PeekAt(n int) Token {
	i := c.pos + n
	if n < 0 || i >= c.end {
		return Absent()
	}
	return Of(c.args[i])
}

// Advance moves the Cursor forward by n arguments, stopping at the end.
// Negative values are treated as 0, so a Cursor never moves backward.
func (c Cursor) Advance(n int) Cursor {
	if n <= 0 {
		return c
	}
	c.pos += n
	if c.pos > c.end {
		c.pos = c.end
	}
	return c
}

// Pop returns the current argument along with a Cursor advanced past it.
// An exhausted Cursor returns [Absent] and itself.
func (c Cursor) Pop() (Token, Cursor) {
	tok := c.Peek()
	if !tok.Present() {
		return tok, c
	}
	return tok, c.Advance(1)
}

// Exhaust returns a Cursor positioned at the end.
func (c Cursor) Exhaust() Cursor {
	c.pos = c.end
	return c
}

// Remaining returns the arguments that haven't been consumed.
// The returned slice aliases the caller's argument vector.
func (c Cursor) Remaining() []string {
	return c.args[c.pos:c.end]
}

// Since returns the number of arguments consumed between an earlier Cursor and this one.
func (c Cursor) Since(earlier Cursor) int {
	return c.pos - earlier.pos
}

// Moved returns true if this Cursor is ahead of the given one.
func (c Cursor) Moved(from Cursor) bool {
	return c.pos > from.pos
}
