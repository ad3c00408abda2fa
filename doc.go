/*
Package argx is a toolkit for building command line parsers out of small, composable pieces.

Parsers are assembled from the primitives and combinators in the parse package, and each primitive writes its result into its own slot, found afterward by tag.
Flag spellings are declared with the match package, and argument text is converted to typed values with the convert package.
The cli package dispatches a parsed sub-command name to the function that implements it.

	parser := parse.Sequence(
		parse.String("program"),
		parse.FlagGroup(
			parse.Flag("hello", match.Either('h', "--hello")),
			parse.Flag("goodbye", match.Either('g', "--goodbye")),
		),
	)
	n := parse.Run(parser, os.Args)
	if parse.MustGet[bool](parser, "hello") {
		fmt.Println("Hello, world!")
	}

See examples/ls for a larger parser in the style of ls.
*/
package argx
