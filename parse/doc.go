/*
Package parse provides composable command line parsers.

A parser is built by combining small primitives, each owning exactly one output slot, into larger structures.
Every parser, primitive or composite, has the same contract: [Parser.Advance] receives a [token.Cursor] and returns a cursor that is never behind it.
Returning the input position means "didn't match, consumed nothing", and output slots are only written when the cursor moves.

# Primitives

  - [Flag] sets a boolean when its flag is present.
  - [Value] and [String] take the current argument, whatever it is.
  - [ValueFlag] takes a flag followed by a separate value, like "-o out.txt".
  - [Prefixed] takes a value attached to its flag, like "-w80" or "--width=80", and also accepts the separated form.
  - [Item] appends one argument to a list each time it matches, and [Remaining] takes every argument left.
  - [OptionSet] maps several mutually exclusive flags onto one shared slot, and the last match wins.
  - [Ignore] skips one argument.

# Composition

  - [Sequence] tries each child once, in order, and stops at the first child that doesn't advance. This is a fixed positional grammar, like "program name, then options".
  - [Group] (also called [Section]) sweeps all children repeatedly until a sweep makes no progress, so its children may appear in any order.
  - [FlagGroup] reads arguments one at a time and understands clusters like "-hng". A cluster is all or nothing: if any character is unknown, no flag in the cluster is changed.

# Tagged results

Every slot is addressed by a [Tag]. Composites index the tags of all descendants when they're constructed, so the top level parser can answer for any slot in the tree with [Get] or [MustGet].
Tags must be unique within a tree, and constructing a tree with a duplicate tag panics.

A parser tree carries state. Use [Reset] to clear it between runs, or construct a new tree.
Trees are not safe for concurrent use.
*/
package parse
