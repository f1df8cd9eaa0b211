// Package clargs declares CLI argument schemas and parses argv against them.
//
// A schema is a flat list of [Option] values built with constructors such as
// [NewString], [NewFlag], and [NewStrings], composed with fluent With*
// setters for defaults, requirement trees, and value constraints. [New]
// validates the schema and returns a [Parser]; [Parser.Parse] runs the
// 4-state argument loop over a command line (or os.Args, or a
// shell-completion COMP_LINE) and returns the resolved [Values].
//
// The subpackages (schema, validate, parse, normalize, reqeval, term, help,
// clargserr) are usable independently, but this package is the ergonomic
// entry point most callers want: it re-exports the option constructors,
// [Values], and the error/control types alongside [New] and [Parser].
package clargs
