// Package argspec binds flattened parameter fields to a command line.
//
// Every flat field becomes a long flag in a pflag flag set, with help
// text decorated with choices, defaults and units. Positional fields
// are not registered as flags, their tokens pass through the parse
// untouched for later matching against the positional parameters.
//
// Parsing captures a Namespace: each flag's effective value under its
// flat name, where unset flags carry their declared default. A
// default-true bool flag flips to false when named bare on the command
// line.
package argspec
