package parse

import (
	"github.com/google/go-cmp/cmp"
	"github.com/saylorsolutions/argx/convert"
	"github.com/saylorsolutions/argx/match"
	"github.com/saylorsolutions/argx/token"
	"github.com/stretchr/testify/assert"
	"slices"
	"strings"
	"testing"
)

type helloFlags struct {
	hello, printName, goodbye *FlagParser
}

func newHelloFlags() helloFlags {
	return helloFlags{
		hello:     Flag("hello", match.Either('h', "--hello")),
		printName: Flag("print-name", match.Either('n', "--print-name")),
		goodbye:   Flag("goodbye", match.Either('g', "--goodbye")),
	}
}

func (f helloFlags) members() []Clusterable {
	return []Clusterable{f.hello, f.printName, f.goodbye}
}

func (f helloFlags) nodes() []Node {
	return []Node{f.hello, f.printName, f.goodbye}
}

func (f helloFlags) values() [3]bool {
	return [3]bool{f.hello.Value(), f.printName.Value(), f.goodbye.Value()}
}

func TestSequence_ShortCircuit(t *testing.T) {
	name := String("program")
	help := Flag("help", match.Short('h'))
	s := Sequence(name, help)

	start := token.New([]string{"prog"})
	end := s.Advance(start)
	assert.True(t, end.Done())
	assert.Equal(t, 1, end.Since(start))
	assert.Equal(t, "prog", name.Get())
	assert.False(t, help.Value())
}

func TestSequence_StopsAtFirstFailure(t *testing.T) {
	a := Flag("a", match.Short('a'))
	b := Flag("b", match.Short('b'))
	s := Sequence(a, b)

	start := token.New([]string{"-b", "-a"})
	assert.Equal(t, start, s.Advance(start))
	assert.False(t, a.Value())
	assert.False(t, b.Value(), "Later children must not be tried after a failure")

	start = token.New([]string{"-a", "-b", "-a"})
	assert.Equal(t, 2, s.Advance(start).Pos(), "Each child is tried only once")
	assert.True(t, a.Value())
	assert.True(t, b.Value())
}

func permutations(elems []string) [][]string {
	if len(elems) <= 1 {
		return [][]string{slices.Clone(elems)}
	}
	var result [][]string
	for i := range elems {
		rest := append(slices.Clone(elems[:i]), elems[i+1:]...)
		for _, perm := range permutations(rest) {
			result = append(result, append([]string{elems[i]}, perm...))
		}
	}
	return result
}

func subsets(elems []string) [][]string {
	result := [][]string{{}}
	for _, elem := range elems {
		for _, existing := range result {
			result = append(result, append(slices.Clone(existing), elem))
		}
	}
	return result
}

func TestGroup_OrderIndependent(t *testing.T) {
	all := []string{"-h", "-n", "-g"}
	for _, subset := range subsets(all) {
		expected := [3]bool{
			slices.Contains(subset, "-h"),
			slices.Contains(subset, "-n"),
			slices.Contains(subset, "-g"),
		}
		for _, perm := range permutations(subset) {
			t.Run(strings.Join(append([]string{"args"}, perm...), " "), func(t *testing.T) {
				flags := newHelloFlags()
				g := Group(flags.nodes()...)
				assert.Equal(t, len(perm), Run(g, perm))
				assert.Equal(t, expected, flags.values())
			})
		}
	}
}

func TestGroup_LaterChildUnblocked(t *testing.T) {
	count := ValueFlag("count", match.Short('n'), convert.Int[int]())
	verbose := Flag("verbose", match.Short('v'))
	files := Item("files", convert.String)
	g := Section(count, verbose, files)

	n := Run(g, []string{"a", "-n", "3", "-v", "b"})
	assert.Equal(t, 5, n)
	assert.Equal(t, 3, count.Get())
	assert.True(t, verbose.Value())
	assert.Equal(t, []string{"a", "b"}, files.Values())
}

func TestGroup_StopsWithoutProgress(t *testing.T) {
	flags := newHelloFlags()
	g := Group(flags.nodes()...)
	start := token.New([]string{"-h", "unknown", "-g"})
	assert.Equal(t, 1, g.Advance(start).Pos())
	assert.Equal(t, [3]bool{true, false, false}, flags.values())
}

func TestFlagGroup(t *testing.T) {
	tests := map[string]struct {
		args     []string
		consumed int
		expected [3]bool
	}{
		"No arguments":         {},
		"Separate":             {args: []string{"-h", "-g"}, consumed: 2, expected: [3]bool{true, false, true}},
		"Cluster":              {args: []string{"-hg"}, consumed: 1, expected: [3]bool{true, false, true}},
		"Reverse cluster":      {args: []string{"-gnh"}, consumed: 1, expected: [3]bool{true, true, true}},
		"Cluster then long":    {args: []string{"-hn", "--goodbye"}, consumed: 2, expected: [3]bool{true, true, true}},
		"Repeated in cluster":  {args: []string{"-hhh"}, consumed: 1, expected: [3]bool{true, false, false}},
		"Unknown in cluster":   {args: []string{"-hgx"}, consumed: 0},
		"Unknown after commit": {args: []string{"-n", "-hgx"}, consumed: 1, expected: [3]bool{false, true, false}},
		"Long forms":           {args: []string{"--print-name", "--hello"}, consumed: 2, expected: [3]bool{true, true, false}},
		"Unknown long":         {args: []string{"--hello", "--help", "-g"}, consumed: 1, expected: [3]bool{true, false, false}},
		"Lone dash":            {args: []string{"-"}, consumed: 0},
		"Positional":           {args: []string{"-h", "file", "-g"}, consumed: 1, expected: [3]bool{true, false, false}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			flags := newHelloFlags()
			g := FlagGroup(flags.members()...)
			assert.Equal(t, tc.consumed, Run(g, tc.args))
			if diff := cmp.Diff(tc.expected, flags.values()); diff != "" {
				t.Errorf("Unexpected flag values (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlagGroup_OptionSetRollback(t *testing.T) {
	flags := newHelloFlags()
	printName := OptionSet("show-name", false,
		Option(match.Either('n', "--print-name"), true),
		Option(match.Either('x', "--dont-print-name"), false),
	)
	g := FlagSet(flags.hello, printName, flags.goodbye)

	assert.Equal(t, 1, Run(g, []string{"-hnx"}))
	assert.True(t, flags.hello.Value())
	assert.Equal(t, false, printName.Get(), "The last character in a cluster should win")

	Reset(g)
	assert.Equal(t, 1, Run(g, []string{"-hn"}))
	assert.Equal(t, true, printName.Get())
	assert.Equal(t, 0, Run(g, []string{"-xgq"}))
	assert.Equal(t, true, printName.Get(), "A failed cluster must restore the shared slot")
	assert.False(t, flags.goodbye.Value())
}

func TestFlagGroup_FirstDeclaredWins(t *testing.T) {
	first := Flag("first", match.Short('d'))
	second := Flag("second", match.Short('d'))
	g := FlagGroup(first, second)
	Run(g, []string{"-d"})
	assert.True(t, first.Value())
	assert.False(t, second.Value())
}

func TestFlagGroup_InGroup(t *testing.T) {
	flags := newHelloFlags()
	rest := Item("rest", convert.String)
	g := Group(FlagGroup(flags.members()...), rest)
	assert.Equal(t, 4, Run(g, []string{"-hg", "file", "--print-name", "other"}))
	assert.Equal(t, [3]bool{true, true, true}, flags.values())
	assert.Equal(t, []string{"file", "other"}, rest.Values())
}

// rewinding violates the cursor contract by moving backwards.
type rewinding struct{}

func (rewinding) Advance(c token.Cursor) token.Cursor {
	return token.New(c.Remaining())
}

func (rewinding) Slots() []Slot {
	return nil
}

func TestCombinators_ClampMisbehavingChild(t *testing.T) {
	args := []string{"a", "b"}
	assert.Equal(t, 1, Run(Sequence(Ignore(), rewinding{}), args))
	assert.Equal(t, 1, Run(Group(Sequence(Ignore(), rewinding{})), args[:1]))
	assert.Equal(t, 0, Run(rewinding{}, args), "Run should never report a negative count")
}
