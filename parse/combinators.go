package parse

import (
	"github.com/saylorsolutions/argx/internal/assert"
	"github.com/saylorsolutions/argx/token"
)

// SequenceParser tries each child once, in order.
type SequenceParser struct {
	*index
}

// Sequence creates a composite for a fixed positional grammar, like a program name followed by options.
// The first child that doesn't advance ends the sequence, and later children are never tried.
func Sequence(children ...Node) *SequenceParser {
	return &SequenceParser{index: newIndex(children)}
}

func (s *SequenceParser) Advance(c token.Cursor) token.Cursor {
	cur := c
	for i, child := range s.children {
		if cur.Done() {
			break
		}
		next := forward(cur, child.Advance(cur))
		if !next.Moved(cur) {
			Logger().Debug("Sequence stopped", "child", i, "pos", cur.Pos())
			break
		}
		cur = next
	}
	return cur
}

// GroupParser sweeps its children repeatedly, so they may match in any order.
type GroupParser struct {
	*index
}

// Group creates a composite that tries every child once per sweep, left to right.
// Sweeps continue until one makes no progress, or there's nothing left to parse.
func Group(children ...Node) *GroupParser {
	return &GroupParser{index: newIndex(children)}
}

// Section is an alias for [Group], read more naturally when a group holds the options for one sub-command.
func Section(children ...Node) *GroupParser {
	return Group(children...)
}

func (g *GroupParser) Advance(c token.Cursor) token.Cursor {
	cur := c
	for sweep := 1; !cur.Done(); sweep++ {
		start := cur
		for _, child := range g.children {
			if cur.Done() {
				break
			}
			cur = forward(cur, child.Advance(cur))
		}
		if !cur.Moved(start) {
			Logger().Debug("Group sweep made no progress", "sweep", sweep, "pos", cur.Pos())
			break
		}
	}
	return cur
}

// Clusterable is a [Node] that can match one character of a short flag cluster like "-hgv".
type Clusterable interface {
	Node
	// MatchChar updates the output if c is a short character this parser recognizes.
	MatchChar(c rune) bool
	// MatchLong updates the output if arg is exactly a long form this parser recognizes.
	MatchLong(arg string) bool
	// Save captures the mutable output state, and returns a function that restores it.
	Save() func()
}

var (
	_ Clusterable = (*FlagParser)(nil)
	_ Clusterable = (*OptionSetParser[int])(nil)
)

// FlagGroupParser matches flags one argument at a time, understanding clusters of short flags.
type FlagGroupParser struct {
	*index
	members []Clusterable
}

// FlagGroup creates a composite of flags that may be given in any order, separately or clustered.
//
// Each argument starting with "-", other than "-" itself, is first read as a cluster where every character must match a member.
// A cluster is all or nothing: if any character isn't recognized, nothing is changed and the whole argument is matched against members' long forms instead.
// The group stops at the first argument that matches neither way.
// When more than one member recognizes a character, the first declared wins.
func FlagGroup(members ...Clusterable) *FlagGroupParser {
	children := make([]Node, len(members))
	for i, member := range members {
		assert.True("flag group member is not nil", member != nil)
		children[i] = member
	}
	return &FlagGroupParser{index: newIndex(children), members: members}
}

// FlagSet is an alias for [FlagGroup].
func FlagSet(members ...Clusterable) *FlagGroupParser {
	return FlagGroup(members...)
}

func isCluster(arg string) bool {
	return len(arg) >= 2 && arg[0] == '-'
}

func (g *FlagGroupParser) matchChar(c rune) bool {
	for _, member := range g.members {
		if member.MatchChar(c) {
			return true
		}
	}
	return false
}

func (g *FlagGroupParser) matchCluster(arg string) bool {
	restores := make([]func(), len(g.members))
	for i, member := range g.members {
		restores[i] = member.Save()
	}
	for _, c := range arg[1:] {
		if !g.matchChar(c) {
			for _, restore := range restores {
				restore()
			}
			Logger().Debug("Cluster rolled back", "arg", arg, "char", string(c))
			return false
		}
	}
	Logger().Debug("Cluster committed", "arg", arg)
	return true
}

func (g *FlagGroupParser) matchLong(arg string) bool {
	for _, member := range g.members {
		if member.MatchLong(arg) {
			return true
		}
	}
	return false
}

func (g *FlagGroupParser) Advance(c token.Cursor) token.Cursor {
	cur := c
	for !cur.Done() {
		arg := cur.Peek().String()
		if isCluster(arg) && g.matchCluster(arg) {
			cur = cur.Advance(1)
			continue
		}
		if g.matchLong(arg) {
			cur = cur.Advance(1)
			continue
		}
		Logger().Debug("Flag group stopped", "arg", arg, "pos", cur.Pos())
		break
	}
	return cur
}
