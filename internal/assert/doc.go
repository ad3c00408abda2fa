/*
Package assert provides construction-time checks for parser trees.

Parser trees are declared by the programmer, so a malformed declaration (a flag with no spelling, a nil converter, two slots with the same tag) is a bug rather than bad user input.
These checks panic with the label of the violated constraint and the caller's location, so the mistake shows up the first time the tree is built.

Problems that are worth reporting together, like every duplicate tag in a tree, are gathered with a [Collector].

To turn off the panicking checks build with the 'noassert' flag.
*/
package assert
