// Package output renders the human-readable checklists of both tools.
//
// Colour is a capability of a Formatter value handed to every renderer, not
// process-wide state: NewFormatter enables ANSI colour only when the target
// writer is a terminal (go-isatty), Plain never colours and is what tests use.
// Stdout wraps standard output with go-colorable so Windows consoles
// interpret the escape sequences.
package output
