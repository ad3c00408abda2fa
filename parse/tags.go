package parse

import (
	"fmt"
	"github.com/saylorsolutions/argx/internal/assert"
	"github.com/saylorsolutions/argx/match"
)

// index resolves tags to slots once, when a composite is constructed.
type index struct {
	children []Node
	slots    []Slot
	byTag    map[Tag]Slot
}

func newIndex(children []Node) *index {
	idx := &index{children: children, byTag: map[Tag]Slot{}}
	errs := assert.CollectErrors()
	for i, child := range children {
		assert.True("child parser is not nil", child != nil)
		for _, slot := range child.Slots() {
			if _, ok := idx.byTag[slot.Tag()]; ok {
				errs.AddString("%w %q in child %d", ErrDuplicateTag, slot.Tag(), i)
				continue
			}
			idx.byTag[slot.Tag()] = slot
			idx.slots = append(idx.slots, slot)
		}
	}
	assert.NoError("tags are unique within a parser tree", errs.Result())
	return idx
}

func (i *index) Slots() []Slot {
	return i.slots
}

func (i *index) Lookup(tag Tag) (Slot, bool) {
	slot, ok := i.byTag[tag]
	return slot, ok
}

// Children returns the direct children in declaration order.
func (i *index) Children() []Node {
	return i.children
}

type lookuper interface {
	Lookup(tag Tag) (Slot, bool)
}

type parent interface {
	Children() []Node
}

type specced interface {
	Specs() []match.Spec
}

// Lookup finds the [Slot] with the given tag anywhere in the tree rooted at n.
func Lookup(n Node, tag Tag) (Slot, bool) {
	if n == nil {
		return nil, false
	}
	if l, ok := n.(lookuper); ok {
		return l.Lookup(tag)
	}
	for _, slot := range n.Slots() {
		if slot.Tag() == tag {
			return slot, true
		}
	}
	return nil, false
}

// Get returns the value held by the slot with the given tag.
// False is returned if there's no such slot, the slot holds no value, or the value isn't a T.
func Get[T any](n Node, tag Tag) (T, bool) {
	var mt T
	slot, ok := Lookup(n, tag)
	if !ok {
		return mt, false
	}
	val, ok := slot.Get().(T)
	if !ok {
		return mt, false
	}
	return val, true
}

// MustGet is like [Get], but panics if the value can't be retrieved.
// The developer usually knows the shape of their own parser tree, so this makes access less noisy.
func MustGet[T any](n Node, tag Tag) T {
	val, ok := Get[T](n, tag)
	if !ok {
		var mt T
		panic(fmt.Sprintf("no %T value for tag %q", mt, tag))
	}
	return val
}

// Reset returns every slot in the tree rooted at n to its initial state, so the tree may be used for another parse.
func Reset(n Node) {
	for _, slot := range n.Slots() {
		slot.Reset()
	}
}

// Validate reports every declaration problem in the tree rooted at n.
//
// Duplicate tags and invalid specs are reported, as well as short characters claimed by more than one member of a [FlagGroup].
// A shadowed flag still parses, the first declared member wins, but it's likely a mistake.
func Validate(n Node) error {
	errs := assert.CollectErrors()
	seen := map[Tag]bool{}
	var walk func(n Node)
	walk = func(n Node) {
		if g, ok := n.(*FlagGroupParser); ok {
			validateCluster(g, errs)
		}
		if p, ok := n.(parent); ok {
			for _, child := range p.Children() {
				walk(child)
			}
			return
		}
		if s, ok := n.(specced); ok {
			for _, spec := range s.Specs() {
				if !spec.Valid() {
					errs.AddString("%w: %q", ErrInvalidSpec, spec.String())
				}
			}
		}
		for _, slot := range n.Slots() {
			if seen[slot.Tag()] {
				errs.AddString("%w %q", ErrDuplicateTag, slot.Tag())
				continue
			}
			seen[slot.Tag()] = true
		}
	}
	walk(n)
	return errs.Result()
}

func validateCluster(g *FlagGroupParser, errs *assert.Collector) {
	claimed := map[rune]bool{}
	for _, member := range g.members {
		s, ok := member.(specced)
		if !ok {
			continue
		}
		for _, spec := range s.Specs() {
			c, ok := spec.ShortForm()
			if !ok {
				continue
			}
			if claimed[c] {
				errs.AddString("%w: '-%c' in %q", ErrShadowedFlag, c, spec.String())
				continue
			}
			claimed[c] = true
		}
	}
}
