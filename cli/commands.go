package cli

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/argx/parse"
	"github.com/saylorsolutions/argx/token"
)

var (
	ErrUnknownCommand = errors.New("unrecognized subcommand")
	ErrMissingCommand = errors.New("missing subcommand")
	HelpHint          = "Try --help for usage." // HelpHint is appended to dispatch failure messages printed by [CommandSet.Run].
)

// CommandFunc is a function that may be dispatched by a [CommandSet].
// It receives the arguments following the sub-command name.
type CommandFunc = func(args []string, printer *Printer) error

// MissFunc handles a dispatch failure in [CommandSet.Run], and returns the exit status.
// The error wraps either [ErrMissingCommand] or [ErrUnknownCommand].
type MissFunc = func(err error, printer *Printer) int

// CommandSet maps sub-command names to the function that should run.
// It's a [parse.Node], so it's usually placed in a [parse.Sequence] after the program name and any global flags.
type CommandSet struct {
	commands *parse.OptionSetParser[CommandFunc]
	def      CommandFunc
	name     string
	named    bool
	onMiss   MissFunc
	printer  *Printer
}

// Commands creates a [CommandSet] from command entries, typically declared with [parse.Named].
//
//	cmds := cli.Commands("command",
//		parse.Named("hello", hello),
//		parse.Named("help", cli.Unimplemented),
//	)
func Commands(tag parse.Tag, commands ...parse.OptionEntry[CommandFunc]) *CommandSet {
	return &CommandSet{
		commands: parse.OptionalSet(tag, commands...),
		printer:  NewPrinter(),
	}
}

// Default specifies the [CommandFunc] that runs when no sub-command is matched.
func (s *CommandSet) Default(fn CommandFunc) *CommandSet {
	s.def = fn
	return s
}

// OnMiss overrides how [CommandSet.Run] reports a sub-command that's missing or not recognized.
func (s *CommandSet) OnMiss(fn MissFunc) *CommandSet {
	s.onMiss = fn
	return s
}

// Printer returns the [Printer] passed to dispatched commands.
func (s *CommandSet) Printer() *Printer {
	if s.printer == nil {
		s.printer = NewPrinter()
	}
	return s.printer
}

// Advance matches the current argument against the declared commands.
// The argument is remembered whether it matches or not, so a miss can be reported by name.
func (s *CommandSet) Advance(c token.Cursor) token.Cursor {
	tok := c.Peek()
	if !tok.Present() {
		return c
	}
	if _, matched := s.commands.Value(); !matched {
		s.name, s.named = tok.String(), true
	}
	next := s.commands.Advance(c)
	if next.Moved(c) {
		s.name = tok.String()
		parse.Logger().Debug("Matched sub-command", "tag", s.Tag(), "command", s.name)
	} else {
		parse.Logger().Debug("Sub-command not recognized", "tag", s.Tag(), "arg", tok.String())
	}
	return next
}

// Name returns the argument that was matched, or last offered, as a sub-command name.
// False is returned if no argument was offered.
func (s *CommandSet) Name() (string, bool) {
	return s.name, s.named
}

// Command returns the matched [CommandFunc], or the default if nothing matched.
// Nil is returned if neither is available.
func (s *CommandSet) Command() CommandFunc {
	if fn, ok := s.commands.Value(); ok {
		return fn
	}
	return s.def
}

func (s *CommandSet) Tag() parse.Tag {
	return s.commands.Tag()
}

// Get returns the [CommandFunc] that would be dispatched, or nil.
func (s *CommandSet) Get() any {
	fn := s.Command()
	if fn == nil {
		return nil
	}
	return fn
}

// Reset forgets the matched command and name. The default is kept.
func (s *CommandSet) Reset() {
	s.commands.Reset()
	s.name, s.named = "", false
}

func (s *CommandSet) Slots() []parse.Slot {
	return []parse.Slot{s}
}

func (s *CommandSet) missing() error {
	if !s.named {
		return ErrMissingCommand
	}
	return fmt.Errorf("%w '%s'", ErrUnknownCommand, s.name)
}

// Exec runs the matched command, or the default, with args.
// Global [PreExec] functions run first, and an error from any of them stops dispatch.
// An error wrapping [ErrMissingCommand] or [ErrUnknownCommand] is returned if there's nothing to run.
func (s *CommandSet) Exec(args []string) error {
	fn := s.Command()
	if fn == nil {
		return s.missing()
	}
	if _, matched := s.commands.Value(); !matched {
		parse.Logger().Debug("Running default sub-command", "tag", s.Tag())
	}
	if err := runGlobalPreExec(s.name); err != nil {
		return err
	}
	return fn(args, s.Printer())
}

// Run calls [CommandSet.Exec], and translates the result to an exit status.
//
// A missing or unrecognized command is reported with [Printer.Errorf] and [HelpHint], unless overridden with [CommandSet.OnMiss].
// An [ExitStatus] error is returned as-is without printing, and any other error is printed.
func (s *CommandSet) Run(args []string) int {
	err := s.Exec(args)
	if err == nil {
		return 0
	}
	var status ExitStatus
	switch {
	case errors.As(err, &status):
		return int(status)
	case errors.Is(err, ErrMissingCommand), errors.Is(err, ErrUnknownCommand):
		if s.onMiss != nil {
			return s.onMiss(err, s.Printer())
		}
		s.Printer().Errorf("%v. %s", err, HelpHint)
		return 1
	case errors.Is(err, &UsageError{}):
		s.Printer().Errorf("%v. %s", err, HelpHint)
		return 2
	default:
		s.Printer().Errorf("%v", err)
		return 1
	}
}

// ExitStatus is an error that carries the process exit status a [CommandFunc] wants to report.
// It's expected that the command has already told the user what went wrong.
type ExitStatus int

func (s ExitStatus) Error() string {
	return fmt.Sprintf("exit status %d", int(s))
}

// Unimplemented is a placeholder [CommandFunc] for sub-commands that are declared, but not written yet.
func Unimplemented(_ []string, printer *Printer) error {
	printer.Println("[No implementation was specified for this subcommand]")
	return ExitStatus(1)
}
