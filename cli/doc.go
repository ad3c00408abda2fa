/*
Package cli dispatches sub-commands selected by a parser built with the parse package.

There are a few reasonable (IMHO) policies for how this operates.

  - User-visible output should go to STDERR by default. This is supported with a configurable [Printer].
  - A sub-command name is matched exactly, the same way any other long form is matched.
  - Dispatch failures are not fatal. [CommandSet.Run] reports them and returns a non-zero exit status for the caller to use.

# Invocation

A [CommandSet] is a [parse.Node], so it's placed in the parser tree where the sub-command name is expected, usually after the program name.

	cmds := cli.Commands("command",
		parse.Named("hello", hello),
		parse.Named("goodbye", goodbye),
	)
	parser := parse.Sequence(parse.String("program"), cmds)
	n := parse.Run(parser, os.Args)
	os.Exit(cmds.Run(os.Args[n:]))

The dispatched [CommandFunc] receives the arguments that weren't consumed by the parser.

# Misses

If no sub-command was given, or the one given isn't recognized, the default set with [CommandSet.Default] runs instead.
Without a default, [CommandSet.Run] prints a message distinguishing the two cases along with [HelpHint], and returns 1.
This may be overridden with [CommandSet.OnMiss].

Global [PreExec] functions, registered with [AddGlobalPreExec], run right before any dispatched command.
*/
package cli
